package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/Dosada05/padel-live/models"
)

var (
	ErrDisplaySettingsNotFound = errors.New("display settings not found")
	ErrDisplaySettingsInvalid  = errors.New("display settings violate a table constraint")
)

const displaySettingsTable = "display_settings"

type DisplaySettingsRepository interface {
	GetByTournamentID(ctx context.Context, tournamentID int) (*models.DisplaySettings, error)
	Upsert(ctx context.Context, settings *models.DisplaySettings) error
	Delete(ctx context.Context, tournamentID int) error
}

type postgresDisplaySettingsRepository struct {
	db SQLExecutor
}

func NewPostgresDisplaySettingsRepository(db *sqlx.DB) DisplaySettingsRepository {
	return &postgresDisplaySettingsRepository{db: db}
}

func (r *postgresDisplaySettingsRepository) GetByTournamentID(ctx context.Context, tournamentID int) (*models.DisplaySettings, error) {
	query, args, err := sq.Select(
		"tournament_id",
		"hide_byes",
		"tv_rotation_seconds",
		"theme",
		"updated_at",
	).
		From(displaySettingsTable).
		Where(sq.Eq{"tournament_id": tournamentID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %w", err)
	}

	var settings models.DisplaySettings
	if err := r.db.GetContext(ctx, &settings, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDisplaySettingsNotFound
		}
		return nil, err
	}
	return &settings, nil
}

func (r *postgresDisplaySettingsRepository) Upsert(ctx context.Context, s *models.DisplaySettings) error {
	query, args, err := sq.Insert(displaySettingsTable).
		Columns("tournament_id", "hide_byes", "tv_rotation_seconds", "theme", "updated_at").
		Values(s.TournamentID, s.HideByes, s.TVRotationSeconds, string(s.Theme), sq.Expr("NOW()")).
		Suffix(`ON CONFLICT (tournament_id) DO UPDATE SET
			hide_byes = EXCLUDED.hide_byes,
			tv_rotation_seconds = EXCLUDED.tv_rotation_seconds,
			theme = EXCLUDED.theme,
			updated_at = NOW()
		RETURNING updated_at`).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&s.UpdatedAt); err != nil {
		if isCheckViolation(err) {
			return ErrDisplaySettingsInvalid
		}
		return err
	}
	return nil
}

func (r *postgresDisplaySettingsRepository) Delete(ctx context.Context, tournamentID int) error {
	query, args, err := sq.Delete(displaySettingsTable).
		Where(sq.Eq{"tournament_id": tournamentID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrDisplaySettingsNotFound)
}
