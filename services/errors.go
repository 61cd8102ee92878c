package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/padel-live/apiclient"
	"github.com/Dosada05/padel-live/models"
)

var (
	ErrNotFound           = errors.New("requested resource not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrGameNotFound       = errors.New("game not found")

	ErrValidationFailed  = errors.New("validation failed")
	ErrInvalidTournament = errors.New("tournament id must be positive")
	ErrInvalidGame       = errors.New("game id must be positive")

	ErrAuthenticationRequired = errors.New("authentication required")
	ErrForbiddenOperation     = errors.New("operation not allowed for the current user")
	ErrInvalidSession         = errors.New("session is invalid or expired")
	ErrInvalidOAuthState      = errors.New("sign-in state mismatch")
	ErrIdentityProvider       = errors.New("identity provider rejected the sign-in")

	ErrBackendUnavailable = errors.New("tournament backend is unavailable")
	ErrExportsDisabled    = errors.New("export storage is not configured")
)

// ValidationError carries per-field messages and matches ErrValidationFailed.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// mapBackendError turns apiclient errors into service errors. notFound is
// the sentinel reported when the backend answers 404.
func mapBackendError(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, apiclient.ErrNotFound):
		return notFound
	case errors.Is(err, apiclient.ErrUnauthorized):
		return ErrAuthenticationRequired
	case errors.Is(err, apiclient.ErrForbidden):
		return ErrForbiddenOperation
	default:
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
}

// requireEditor rejects tournaments the caller can read but not manage.
func requireEditor(t *models.Tournament) error {
	if t == nil || !t.CanEdit {
		return ErrForbiddenOperation
	}
	return nil
}
