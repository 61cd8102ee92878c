package middleware

import (
	"context"
	"errors"

	"github.com/Dosada05/padel-live/models"
)

type contextKey string

const sessionContextKey contextKey = "session"

var ErrNoSession = errors.New("session not found in context")

func GetSessionFromContext(ctx context.Context) (*models.Session, error) {
	session, ok := ctx.Value(sessionContextKey).(*models.Session)
	if !ok || session == nil {
		return nil, ErrNoSession
	}
	return session, nil
}

// BackendTokenFromContext returns the caller's backend access token, or ""
// for anonymous requests.
func BackendTokenFromContext(ctx context.Context) string {
	session, err := GetSessionFromContext(ctx)
	if err != nil {
		return ""
	}
	return session.AccessToken
}

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}
