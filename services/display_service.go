package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/padel-live/models"
	"github.com/Dosada05/padel-live/repositories"
)

type DisplayService interface {
	// Get returns the stored settings or the defaults when none were saved.
	Get(ctx context.Context, tournamentID int) (*models.DisplaySettings, error)
	Update(ctx context.Context, tournamentID int, token string, input UpdateDisplaySettingsInput) (*models.DisplaySettings, error)
	// Reset drops the stored settings and returns the defaults.
	Reset(ctx context.Context, tournamentID int, token string) (*models.DisplaySettings, error)
}

type UpdateDisplaySettingsInput struct {
	HideByes          *bool                `json:"hide_byes"`
	TVRotationSeconds *int                 `json:"tv_rotation_seconds"`
	Theme             *models.DisplayTheme `json:"theme"`
}

type displayService struct {
	api   BackendAPI
	store DisplaySettingsStore
}

func NewDisplayService(api BackendAPI, store DisplaySettingsStore) DisplayService {
	return &displayService{api: api, store: store}
}

func (s *displayService) Get(ctx context.Context, tournamentID int) (*models.DisplaySettings, error) {
	if tournamentID <= 0 {
		return nil, ErrInvalidTournament
	}
	settings, err := s.store.GetByTournamentID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrDisplaySettingsNotFound) {
			defaults := models.DefaultDisplaySettings(tournamentID)
			return &defaults, nil
		}
		return nil, fmt.Errorf("failed to load display settings for tournament %d: %w", tournamentID, err)
	}
	return settings, nil
}

// Update applies the non-nil fields of input. The backend must report the
// tournament as editable for token.
func (s *displayService) Update(ctx context.Context, tournamentID int, token string, input UpdateDisplaySettingsInput) (*models.DisplaySettings, error) {
	if tournamentID <= 0 {
		return nil, ErrInvalidTournament
	}
	if token == "" {
		return nil, ErrAuthenticationRequired
	}
	if err := ValidateDisplaySettingsInput(input); err != nil {
		return nil, err
	}

	if err := s.authorizeEdit(ctx, tournamentID, token); err != nil {
		return nil, err
	}

	settings, err := s.Get(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if input.HideByes != nil {
		settings.HideByes = *input.HideByes
	}
	if input.TVRotationSeconds != nil {
		settings.TVRotationSeconds = *input.TVRotationSeconds
	}
	if input.Theme != nil {
		settings.Theme = *input.Theme
	}

	if err := s.store.Upsert(ctx, settings); err != nil {
		if errors.Is(err, repositories.ErrDisplaySettingsInvalid) {
			return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
		}
		return nil, fmt.Errorf("failed to save display settings for tournament %d: %w", tournamentID, err)
	}
	return settings, nil
}

func (s *displayService) Reset(ctx context.Context, tournamentID int, token string) (*models.DisplaySettings, error) {
	if tournamentID <= 0 {
		return nil, ErrInvalidTournament
	}
	if token == "" {
		return nil, ErrAuthenticationRequired
	}
	if err := s.authorizeEdit(ctx, tournamentID, token); err != nil {
		return nil, err
	}

	if err := s.store.Delete(ctx, tournamentID); err != nil && !errors.Is(err, repositories.ErrDisplaySettingsNotFound) {
		return nil, fmt.Errorf("failed to reset display settings for tournament %d: %w", tournamentID, err)
	}
	defaults := models.DefaultDisplaySettings(tournamentID)
	return &defaults, nil
}

func (s *displayService) authorizeEdit(ctx context.Context, tournamentID int, token string) error {
	t, err := s.api.GetTournament(ctx, tournamentID, token)
	if err != nil {
		return mapBackendError(err, ErrTournamentNotFound)
	}
	return requireEditor(t)
}

func ValidateDisplaySettingsInput(input UpdateDisplaySettingsInput) error {
	fields := make(map[string]string)
	if input.TVRotationSeconds != nil {
		sec := *input.TVRotationSeconds
		if sec < models.MinTVRotationSeconds || sec > models.MaxTVRotationSeconds {
			fields["tv_rotation_seconds"] = fmt.Sprintf("must be between %d and %d", models.MinTVRotationSeconds, models.MaxTVRotationSeconds)
		}
	}
	if input.Theme != nil {
		switch *input.Theme {
		case models.ThemeLight, models.ThemeDark:
		default:
			fields["theme"] = fmt.Sprintf("must be %q or %q", models.ThemeLight, models.ThemeDark)
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
