package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/Dosada05/padel-live/middleware"
	"github.com/Dosada05/padel-live/services"
)

const (
	oauthStateCookieName = "padel_oauth_state"
	oauthStateTTL        = 10 * time.Minute
)

type AuthHandlerConfig struct {
	SecureCookies bool
	// AfterLoginURL is where the callback sends a signed-in user.
	AfterLoginURL string
}

type AuthHandler struct {
	authService services.AuthService
	cfg         AuthHandlerConfig
}

func NewAuthHandler(as services.AuthService, cfg AuthHandlerConfig) *AuthHandler {
	if cfg.AfterLoginURL == "" {
		cfg.AfterLoginURL = "/"
	}
	return &AuthHandler{authService: as, cfg: cfg}
}

// LoginHandler serves GET /auth/login by redirecting to the identity provider.
func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	redirectURL, state, err := h.authService.LoginURL()
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookieName,
		Value:    state,
		Path:     "/auth",
		MaxAge:   int(oauthStateTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, redirectURL, http.StatusFound)
}

// CallbackHandler serves GET /auth/callback.
func (h *AuthHandler) CallbackHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if providerErr := query.Get("error"); providerErr != "" {
		unauthorizedResponse(w, r, "sign-in was not completed: "+providerErr)
		return
	}

	stateCookie, err := r.Cookie(oauthStateCookieName)
	if err != nil || stateCookie.Value == "" ||
		subtle.ConstantTimeCompare([]byte(stateCookie.Value), []byte(query.Get("state"))) != 1 {
		mapServiceErrorToHTTP(w, r, services.ErrInvalidOAuthState)
		return
	}
	h.clearCookie(w, oauthStateCookieName, "/auth")

	session, err := h.authService.Exchange(r.Context(), query.Get("code"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	token, err := h.authService.IssueSession(session)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	logger(r).Info("user signed in", slog.String("subject", session.Subject))
	http.Redirect(w, r, h.cfg.AfterLoginURL, http.StatusSeeOther)
}

// LogoutHandler serves POST /auth/logout.
func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	h.clearCookie(w, middleware.SessionCookieName, "/")
	w.WriteHeader(http.StatusNoContent)
}

// MeHandler serves GET /auth/me.
func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.GetSessionFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"session": session}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AuthHandler) clearCookie(w http.ResponseWriter, name, path string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
