//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package services

import (
	"context"
	"io"

	"github.com/Dosada05/padel-live/models"
	"github.com/Dosada05/padel-live/storage"
)

type BackendAPI interface {
	ListTournaments(ctx context.Context, token string) ([]models.Tournament, error)
	GetTournament(ctx context.Context, tournamentID int, token string) (*models.Tournament, error)
	ListPlayerPairs(ctx context.Context, tournamentID int, token string) ([]models.PlayerPair, error)
	ListRounds(ctx context.Context, tournamentID int, token string) ([]models.Round, error)
	GetGame(ctx context.Context, gameID int, token string) (*models.Game, error)
	ListMatchFormats(ctx context.Context, token string) ([]models.MatchFormat, error)
}

type DisplaySettingsStore interface {
	GetByTournamentID(ctx context.Context, tournamentID int) (*models.DisplaySettings, error)
	Upsert(ctx context.Context, settings *models.DisplaySettings) error
	Delete(ctx context.Context, tournamentID int) error
}

type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error)
	Delete(ctx context.Context, key string) error
}

type ViewerCounter interface {
	Snapshot() map[string]int
}
