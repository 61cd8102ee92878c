package services

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/padel-live/brackets"
	"github.com/Dosada05/padel-live/models"
)

// TVBoard is everything a courtside screen renders for one tournament.
type TVBoard struct {
	Tournament   *models.Tournament      `json:"tournament"`
	Pairs        []models.PlayerPair     `json:"pairs"`
	Bracket      *brackets.BracketLayout `json:"bracket"`
	Display      *models.DisplaySettings `json:"display"`
	Viewers      map[string]int          `json:"viewers"`
	TotalViewers int                     `json:"total_viewers"`
	GeneratedAt  time.Time               `json:"generated_at"`
}

type TVService interface {
	Board(ctx context.Context, tournamentID int, token string) (*TVBoard, error)
}

type tvService struct {
	tournaments TournamentService
	bracket     BracketService
	display     DisplayService
	viewers     ViewerCounter
	clock       clockwork.Clock
	logger      *slog.Logger
}

func NewTVService(tournaments TournamentService, bracket BracketService, display DisplayService, viewers ViewerCounter, clock clockwork.Clock, logger *slog.Logger) TVService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &tvService{
		tournaments: tournaments,
		bracket:     bracket,
		display:     display,
		viewers:     viewers,
		clock:       clock,
		logger:      logger,
	}
}

func (s *tvService) Board(ctx context.Context, tournamentID int, token string) (*TVBoard, error) {
	if tournamentID <= 0 {
		return nil, ErrInvalidTournament
	}

	board := &TVBoard{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.tournaments.GetTournament(gctx, tournamentID, token)
		board.Tournament = t
		return err
	})
	g.Go(func() error {
		pairs, err := s.tournaments.ListPlayerPairs(gctx, tournamentID, token)
		board.Pairs = pairs
		return err
	})
	g.Go(func() error {
		// Settings are read once here and handed to the layout.
		board.Display = s.displaySettings(gctx, tournamentID)
		hideByes := board.Display.HideByes
		layout, err := s.bracket.Layout(gctx, tournamentID, token, &hideByes)
		board.Bracket = layout
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	board.Viewers = s.gameViewers(board.Bracket)
	for _, n := range board.Viewers {
		board.TotalViewers += n
	}
	board.GeneratedAt = s.clock.Now().UTC()
	return board, nil
}

func (s *tvService) displaySettings(ctx context.Context, tournamentID int) *models.DisplaySettings {
	settings, err := s.display.Get(ctx, tournamentID)
	if err != nil {
		s.logger.Warn("display settings unavailable, using defaults",
			slog.Int("tournament_id", tournamentID),
			slog.Any("error", err),
		)
		defaults := models.DefaultDisplaySettings(tournamentID)
		return &defaults
	}
	return settings
}

// gameViewers keeps the live counts of the games drawn in layout.
func (s *tvService) gameViewers(layout *brackets.BracketLayout) map[string]int {
	out := make(map[string]int)
	if layout == nil || s.viewers == nil {
		return out
	}
	all := s.viewers.Snapshot()
	for _, round := range layout.Rounds {
		for _, m := range round.Matches {
			if m.GameID == nil {
				continue
			}
			id := strconv.Itoa(*m.GameID)
			if n, ok := all[id]; ok {
				out[id] = n
			}
		}
	}
	return out
}
