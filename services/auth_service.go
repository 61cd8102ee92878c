package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/Dosada05/padel-live/models"
)

const DefaultSessionTTL = 12 * time.Hour

type IdentityProviderConfig struct {
	ClientID     string
	ClientSecret string
	AuthorizeURL string
	TokenURL     string
	UserInfoURL  string
	RedirectURL  string
	Scopes       []string
}

type AuthConfig struct {
	Provider      IdentityProviderConfig
	SessionSecret string
	SessionTTL    time.Duration
	HTTPClient    *http.Client
	Clock         clockwork.Clock
}

type AuthService interface {
	// LoginURL returns the provider's authorization URL and the state value
	// the callback must echo back.
	LoginURL() (string, string, error)
	// Exchange trades an authorization code for the user's session.
	Exchange(ctx context.Context, code string) (*models.Session, error)
	IssueSession(session *models.Session) (string, error)
	ParseSession(token string) (*models.Session, error)
	SessionTTL() time.Duration
}

type sessionClaims struct {
	Email       string `json:"email,omitempty"`
	Name        string `json:"name,omitempty"`
	AccessToken string `json:"at,omitempty"`
	jwt.RegisteredClaims
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Error       string `json:"error"`
	Description string `json:"error_description"`
}

type userInfoResponse struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

type authService struct {
	provider   IdentityProviderConfig
	secret     []byte
	ttl        time.Duration
	httpClient *http.Client
	clock      clockwork.Clock
}

func NewAuthService(cfg AuthConfig) (AuthService, error) {
	if cfg.SessionSecret == "" {
		return nil, errors.New("session secret is required")
	}
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &authService{
		provider:   cfg.Provider,
		secret:     []byte(cfg.SessionSecret),
		ttl:        ttl,
		httpClient: httpClient,
		clock:      clock,
	}, nil
}

func (s *authService) SessionTTL() time.Duration {
	return s.ttl
}

func (s *authService) LoginURL() (string, string, error) {
	if s.provider.AuthorizeURL == "" || s.provider.ClientID == "" {
		return "", "", fmt.Errorf("%w: provider is not configured", ErrIdentityProvider)
	}
	u, err := url.Parse(s.provider.AuthorizeURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid authorize URL: %w", err)
	}

	state := uuid.NewString()
	q := u.Query()
	q.Set("response_type", "code")
	q.Set("client_id", s.provider.ClientID)
	q.Set("redirect_uri", s.provider.RedirectURL)
	q.Set("state", state)
	if len(s.provider.Scopes) > 0 {
		q.Set("scope", strings.Join(s.provider.Scopes, " "))
	}
	u.RawQuery = q.Encode()
	return u.String(), state, nil
}

func (s *authService) Exchange(ctx context.Context, code string) (*models.Session, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: missing authorization code", ErrIdentityProvider)
	}

	token, err := s.exchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}
	info, err := s.fetchUserInfo(ctx, token.AccessToken)
	if err != nil {
		return nil, err
	}
	if info.Subject == "" {
		return nil, fmt.Errorf("%w: userinfo has no subject", ErrIdentityProvider)
	}

	expires := s.clock.Now().Add(s.ttl)
	if token.ExpiresIn > 0 {
		if tokenExpiry := s.clock.Now().Add(time.Duration(token.ExpiresIn) * time.Second); tokenExpiry.Before(expires) {
			expires = tokenExpiry
		}
	}

	return &models.Session{
		Subject:     info.Subject,
		Email:       info.Email,
		Name:        info.Name,
		AccessToken: token.AccessToken,
		ExpiresAt:   expires.UTC().Truncate(time.Second),
	}, nil
}

func (s *authService) exchangeCode(ctx context.Context, code string) (*tokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", s.provider.RedirectURL)
	form.Set("client_id", s.provider.ClientID)
	form.Set("client_secret", s.provider.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.provider.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	var out tokenResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: token endpoint responded %d", ErrIdentityProvider, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK || out.AccessToken == "" {
		msg := out.Description
		if msg == "" {
			msg = out.Error
		}
		return nil, fmt.Errorf("%w: token endpoint responded %d: %s", ErrIdentityProvider, resp.StatusCode, msg)
	}
	return &out, nil
}

func (s *authService) fetchUserInfo(ctx context.Context, accessToken string) (*userInfoResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.provider.UserInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: userinfo endpoint responded %d", ErrIdentityProvider, resp.StatusCode)
	}
	var out userInfoResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo: %w", err)
	}
	return &out, nil
}

func (s *authService) IssueSession(session *models.Session) (string, error) {
	if session == nil || session.Subject == "" {
		return "", ErrInvalidSession
	}
	now := s.clock.Now()
	expires := session.ExpiresAt
	if expires.IsZero() {
		expires = now.Add(s.ttl)
	}
	claims := sessionClaims{
		Email:       session.Email,
		Name:        session.Name,
		AccessToken: session.AccessToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, nil
}

func (s *authService) ParseSession(token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, ErrInvalidSession
	}
	return &models.Session{
		Subject:     claims.Subject,
		Email:       claims.Email,
		Name:        claims.Name,
		AccessToken: claims.AccessToken,
		ExpiresAt:   claims.ExpiresAt.Time.UTC(),
	}, nil
}
