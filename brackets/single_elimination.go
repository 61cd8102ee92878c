package brackets

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"sort"

	"github.com/Dosada05/padel-live/models"
)

var (
	ErrNoPairs         = errors.New("cannot build bracket with zero pairs")
	ErrNotEnoughPairs  = errors.New("not enough pairs to build a single elimination bracket (minimum 2)")
	ErrBracketInternal = errors.New("internal bracket construction error")
)

type node struct {
	pairID         *int
	sourceMatchUID *string
	isBye          bool
}

type SingleEliminationGenerator struct{}

func NewSingleEliminationGenerator() SkeletonGenerator {
	return &SingleEliminationGenerator{}
}

func (g *SingleEliminationGenerator) GetName() string {
	return "SingleElimination"
}

// Skeleton lays pairs out in a power-of-two bracket. Seeded pairs come first
// (lowest seed first), then the rest in registration order; the first
// pairs receive the byes so that two byes never meet.
func (g *SingleEliminationGenerator) Skeleton(ctx context.Context, params SkeletonParams) ([]Round, error) {
	n := len(params.Pairs)
	if n == 0 {
		return nil, ErrNoPairs
	}
	if n < 2 {
		return nil, ErrNotEnoughPairs
	}

	pairs := orderBySeed(params.Pairs)

	numRounds := bits.Len(uint(n - 1))
	size := 1 << uint(numRounds)
	numByes := size - n

	// Slot order: each bye-receiving pair is followed by a bye placeholder.
	slots := make([]*node, 0, size)
	idx := 0
	for b := 0; b < numByes; b++ {
		pid := pairs[idx].ID
		slots = append(slots, &node{pairID: &pid}, &node{isBye: true})
		idx++
	}
	for ; idx < n; idx++ {
		pid := pairs[idx].ID
		slots = append(slots, &node{pairID: &pid})
	}

	rounds := make([]Round, 0, numRounds)
	current := slots

	for r := 1; r <= numRounds; r++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		round := Round{
			Name:    roundName(numRounds-r+1, len(current)),
			Order:   r,
			Matches: make([]Match, 0, len(current)/2),
		}
		next := make([]*node, 0, len(current)/2)

		for i := 0; i+1 < len(current); i += 2 {
			n1, n2 := current[i], current[i+1]
			uid := fmt.Sprintf("R%dM%d", r, len(round.Matches)+1)

			m := Match{UID: uid}
			if n1.pairID != nil {
				m.Pair1ID = n1.pairID
			} else if n1.sourceMatchUID != nil {
				m.SourceMatch1UID = n1.sourceMatchUID
			}
			if n2.pairID != nil {
				m.Pair2ID = n2.pairID
			} else if n2.sourceMatchUID != nil {
				m.SourceMatch2UID = n2.sourceMatchUID
			}

			switch {
			case n1.pairID != nil && n2.isBye:
				m.IsBye = true
				next = append(next, &node{pairID: n1.pairID})
			case n2.pairID != nil && n1.isBye:
				m.IsBye = true
				m.Pair1ID, m.Pair2ID = n2.pairID, nil
				next = append(next, &node{pairID: n2.pairID})
			case n1.isBye && n2.isBye:
				return nil, fmt.Errorf("%w: two byes met in match %s", ErrBracketInternal, uid)
			default:
				m.IsPlaceholder = m.Pair1ID == nil || m.Pair2ID == nil
				matchUID := uid
				next = append(next, &node{sourceMatchUID: &matchUID})
			}

			round.Matches = append(round.Matches, m)
		}

		rounds = append(rounds, round)
		current = next
	}

	if len(current) != 1 {
		return nil, fmt.Errorf("%w: expected a single final slot, got %d", ErrBracketInternal, len(current))
	}

	return rounds, nil
}

func orderBySeed(pairs []models.PlayerPair) []models.PlayerPair {
	out := make([]models.PlayerPair, len(pairs))
	copy(out, pairs)
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := out[i].Seed, out[j].Seed
		switch {
		case si != nil && sj != nil:
			return *si < *sj
		case si != nil:
			return true
		default:
			return false
		}
	})
	return out
}

// roundName names a round by how many rounds remain including itself.
func roundName(remaining, slots int) string {
	switch remaining {
	case 1:
		return "Final"
	case 2:
		return "Semifinals"
	case 3:
		return "Quarterfinals"
	default:
		return fmt.Sprintf("Round of %d", slots)
	}
}
