package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Dosada05/padel-live/metrics"
	"github.com/Dosada05/padel-live/models"
)

var (
	ErrUnauthorized = errors.New("backend: unauthorized")
	ErrForbidden    = errors.New("backend: forbidden")
	ErrNotFound     = errors.New("backend: resource not found")
)

// Error is a non-2xx backend response not covered by the sentinel errors.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the tournament backend API. It performs exactly one
// attempt per call.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("backend base URL is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid backend base URL: %w", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) ListTournaments(ctx context.Context, token string) ([]models.Tournament, error) {
	var out []models.Tournament
	if err := c.get(ctx, "list_tournaments", "tournaments", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetTournament(ctx context.Context, tournamentID int, token string) (*models.Tournament, error) {
	var out models.Tournament
	if err := c.get(ctx, "get_tournament", "tournaments/"+strconv.Itoa(tournamentID), token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListPlayerPairs(ctx context.Context, tournamentID int, token string) ([]models.PlayerPair, error) {
	var out []models.PlayerPair
	path := "tournaments/" + strconv.Itoa(tournamentID) + "/player-pairs"
	if err := c.get(ctx, "list_player_pairs", path, token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListRounds(ctx context.Context, tournamentID int, token string) ([]models.Round, error) {
	var out []models.Round
	path := "tournaments/" + strconv.Itoa(tournamentID) + "/rounds"
	if err := c.get(ctx, "list_rounds", path, token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetGame(ctx context.Context, gameID int, token string) (*models.Game, error) {
	var out models.Game
	if err := c.get(ctx, "get_game", "games/"+strconv.Itoa(gameID), token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListMatchFormats(ctx context.Context, token string) ([]models.MatchFormat, error) {
	var out []models.MatchFormat
	if err := c.get(ctx, "list_match_formats", "match-formats", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, operation, path, token string, dst interface{}) error {
	ref, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("build backend URL %q: %w", path, err)
	}
	endpoint := c.baseURL.ResolveReference(ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(operation, "error").Inc()
		return fmt.Errorf("backend %s: %w", operation, err)
	}
	defer resp.Body.Close()
	metrics.BackendRequestsTotal.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Inc()

	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("backend %s: %w", operation, err)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("backend %s: decode response: %w", operation, err)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &Error{StatusCode: resp.StatusCode, Message: errorMessage(body)}
}

// errorMessage prefers the backend's {"error": "..."} or {"message": "..."}
// envelope and falls back to the raw body.
func errorMessage(body []byte) string {
	var env struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &env); err == nil {
		if env.Error != "" {
			return env.Error
		}
		if env.Message != "" {
			return env.Message
		}
	}
	return strings.TrimSpace(string(body))
}
