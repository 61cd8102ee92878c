package brackets

import (
	"context"

	"github.com/Dosada05/padel-live/models"
)

type SkeletonParams struct {
	TournamentID int
	Pairs        []models.PlayerPair
}

// SkeletonGenerator builds an empty bracket shape for a tournament whose
// draw has not been published by the backend yet.
type SkeletonGenerator interface {
	Skeleton(ctx context.Context, params SkeletonParams) ([]Round, error)

	GetName() string
}
