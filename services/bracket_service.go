package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/padel-live/brackets"
	"github.com/Dosada05/padel-live/models"
)

type BracketService interface {
	// Layout positions the tournament's draw for rendering. hideByes, when
	// set, overrides the tournament's display settings. Before the draw is
	// published the layout is a preview built from the registered pairs.
	Layout(ctx context.Context, tournamentID int, token string, hideByes *bool) (*brackets.BracketLayout, error)
}

type bracketService struct {
	api       BackendAPI
	display   DisplayService
	generator brackets.SkeletonGenerator
	logger    *slog.Logger
}

func NewBracketService(api BackendAPI, display DisplayService, generator brackets.SkeletonGenerator, logger *slog.Logger) BracketService {
	if generator == nil {
		generator = brackets.NewSingleEliminationGenerator()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &bracketService{
		api:       api,
		display:   display,
		generator: generator,
		logger:    logger,
	}
}

func (s *bracketService) Layout(ctx context.Context, tournamentID int, token string, hideByes *bool) (*brackets.BracketLayout, error) {
	if tournamentID <= 0 {
		return nil, ErrInvalidTournament
	}

	var (
		rounds   []models.Round
		settings *models.DisplaySettings
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rounds, err = s.api.ListRounds(gctx, tournamentID, token)
		if err != nil {
			return mapBackendError(err, ErrTournamentNotFound)
		}
		return nil
	})
	if hideByes == nil {
		g.Go(func() error {
			var err error
			settings, err = s.display.Get(gctx, tournamentID)
			if err != nil {
				// Presentation preferences are optional; the bracket is not.
				s.logger.Warn("display settings unavailable, using defaults",
					slog.Int("tournament_id", tournamentID),
					slog.Any("error", err),
				)
				defaults := models.DefaultDisplaySettings(tournamentID)
				settings = &defaults
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	opts := brackets.LayoutOptions{}
	if hideByes != nil {
		opts.HideByes = *hideByes
	} else {
		opts.HideByes = settings.HideByes
	}

	if len(rounds) > 0 {
		layout := brackets.Layout(brackets.FromModelRounds(rounds), opts)
		return &layout, nil
	}

	return s.preview(ctx, tournamentID, token, opts)
}

func (s *bracketService) preview(ctx context.Context, tournamentID int, token string, opts brackets.LayoutOptions) (*brackets.BracketLayout, error) {
	pairs, err := s.api.ListPlayerPairs(ctx, tournamentID, token)
	if err != nil {
		return nil, mapBackendError(err, ErrTournamentNotFound)
	}

	skeleton, err := s.generator.Skeleton(ctx, brackets.SkeletonParams{TournamentID: tournamentID, Pairs: pairs})
	if err != nil {
		if errors.Is(err, brackets.ErrNoPairs) || errors.Is(err, brackets.ErrNotEnoughPairs) {
			layout := brackets.Layout(nil, opts)
			layout.IsPreview = true
			return &layout, nil
		}
		return nil, fmt.Errorf("failed to build %s preview for tournament %d: %w", s.generator.GetName(), tournamentID, err)
	}

	layout := brackets.Layout(skeleton, opts)
	layout.IsPreview = true
	return &layout, nil
}
