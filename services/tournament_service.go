package services

import (
	"context"

	"github.com/Dosada05/padel-live/models"
)

type TournamentService interface {
	ListTournaments(ctx context.Context, token string) ([]models.Tournament, error)
	GetTournament(ctx context.Context, tournamentID int, token string) (*models.Tournament, error)
	// GetPublicTournament fetches without credentials and hides tournaments
	// that are not marked public.
	GetPublicTournament(ctx context.Context, tournamentID int) (*models.Tournament, error)
	ListPlayerPairs(ctx context.Context, tournamentID int, token string) ([]models.PlayerPair, error)
	ListMatchFormats(ctx context.Context, token string) ([]models.MatchFormat, error)
	// GetGame returns one game with its result, for the results view.
	GetGame(ctx context.Context, gameID int, token string) (*models.Game, error)
}

type tournamentService struct {
	api BackendAPI
}

func NewTournamentService(api BackendAPI) TournamentService {
	return &tournamentService{api: api}
}

func (s *tournamentService) ListTournaments(ctx context.Context, token string) ([]models.Tournament, error) {
	tournaments, err := s.api.ListTournaments(ctx, token)
	if err != nil {
		return nil, mapBackendError(err, ErrNotFound)
	}
	if tournaments == nil {
		tournaments = []models.Tournament{}
	}
	return tournaments, nil
}

func (s *tournamentService) GetTournament(ctx context.Context, tournamentID int, token string) (*models.Tournament, error) {
	if tournamentID <= 0 {
		return nil, ErrInvalidTournament
	}
	t, err := s.api.GetTournament(ctx, tournamentID, token)
	if err != nil {
		return nil, mapBackendError(err, ErrTournamentNotFound)
	}
	return t, nil
}

func (s *tournamentService) GetPublicTournament(ctx context.Context, tournamentID int) (*models.Tournament, error) {
	t, err := s.GetTournament(ctx, tournamentID, "")
	if err != nil {
		return nil, err
	}
	if !t.IsPublic {
		return nil, ErrTournamentNotFound
	}
	return t, nil
}

func (s *tournamentService) ListPlayerPairs(ctx context.Context, tournamentID int, token string) ([]models.PlayerPair, error) {
	if tournamentID <= 0 {
		return nil, ErrInvalidTournament
	}
	pairs, err := s.api.ListPlayerPairs(ctx, tournamentID, token)
	if err != nil {
		return nil, mapBackendError(err, ErrTournamentNotFound)
	}
	if pairs == nil {
		pairs = []models.PlayerPair{}
	}
	return pairs, nil
}

func (s *tournamentService) ListMatchFormats(ctx context.Context, token string) ([]models.MatchFormat, error) {
	formats, err := s.api.ListMatchFormats(ctx, token)
	if err != nil {
		return nil, mapBackendError(err, ErrNotFound)
	}
	if formats == nil {
		formats = []models.MatchFormat{}
	}
	return formats, nil
}

func (s *tournamentService) GetGame(ctx context.Context, gameID int, token string) (*models.Game, error) {
	if gameID <= 0 {
		return nil, ErrInvalidGame
	}
	game, err := s.api.GetGame(ctx, gameID, token)
	if err != nil {
		return nil, mapBackendError(err, ErrGameNotFound)
	}
	return game, nil
}
