package brackets

import (
	"fmt"
	"sort"

	"github.com/Dosada05/padel-live/models"
)

const (
	DefaultSpacing     = 140.0
	DefaultMatchHeight = 100.0
)

// Match is one slot of a bracket column.
type Match struct {
	UID    string `json:"uid"`
	GameID *int   `json:"game_id,omitempty"`

	Pair1ID *int `json:"pair1_id,omitempty"`
	Pair2ID *int `json:"pair2_id,omitempty"`

	SourceMatch1UID *string `json:"source_match1_uid,omitempty"`
	SourceMatch2UID *string `json:"source_match2_uid,omitempty"`

	IsPlaceholder bool `json:"is_placeholder"`
	IsBye         bool `json:"is_bye"`
}

type Round struct {
	Name    string  `json:"name"`
	Order   int     `json:"order"`
	Matches []Match `json:"matches"`
}

type LayoutOptions struct {
	HideByes    bool
	Spacing     float64
	MatchHeight float64
}

func (o LayoutOptions) withDefaults() LayoutOptions {
	if o.Spacing <= 0 {
		o.Spacing = DefaultSpacing
	}
	if o.MatchHeight <= 0 {
		o.MatchHeight = DefaultMatchHeight
	}
	return o
}

// CalculateMatchPositions returns the vertical offset of every match, indexed
// like rounds. First-round matches are stacked Spacing apart (byes take no
// room when HideByes is set); every later match sits halfway between its
// parents 2i and 2i+1 of the previous round, or on the non-bye parent when
// HideByes is set and the other parent is a bye. Missing parents count as 0.
func CalculateMatchPositions(rounds []Round, opts LayoutOptions) [][]float64 {
	opts = opts.withDefaults()
	positions := make([][]float64, 0, len(rounds))
	if len(rounds) == 0 {
		return positions
	}

	first := make([]float64, len(rounds[0].Matches))
	cursor := 0.0
	for i, m := range rounds[0].Matches {
		first[i] = cursor
		if opts.HideByes && m.IsBye {
			continue
		}
		cursor += opts.Spacing
	}
	positions = append(positions, first)

	for r := 1; r < len(rounds); r++ {
		prevRound := rounds[r-1].Matches
		prev := positions[r-1]
		current := make([]float64, len(rounds[r].Matches))

		for i := range rounds[r].Matches {
			top, topBye, topOK := parentAt(prevRound, prev, 2*i)
			bottom, bottomBye, bottomOK := parentAt(prevRound, prev, 2*i+1)

			switch {
			case opts.HideByes && topOK && bottomOK && topBye && !bottomBye:
				current[i] = bottom
			case opts.HideByes && topOK && bottomOK && bottomBye && !topBye:
				current[i] = top
			default:
				current[i] = (top + bottom) / 2
			}
		}
		positions = append(positions, current)
	}

	return positions
}

func parentAt(matches []Match, positions []float64, idx int) (pos float64, isBye bool, ok bool) {
	if idx < 0 || idx >= len(positions) {
		return 0, false, false
	}
	return positions[idx], matches[idx].IsBye, true
}

type PositionedMatch struct {
	Match
	Y float64 `json:"y"`
}

type RoundLayout struct {
	Name    string            `json:"name"`
	Order   int               `json:"order"`
	Matches []PositionedMatch `json:"matches"`
}

// BracketLayout is what the bracket and TV views draw.
type BracketLayout struct {
	Rounds      []RoundLayout `json:"rounds"`
	Height      float64       `json:"height"`
	Spacing     float64       `json:"spacing"`
	MatchHeight float64       `json:"match_height"`
	HideByes    bool          `json:"hide_byes"`
	IsPreview   bool          `json:"is_preview"`
}

func Layout(rounds []Round, opts LayoutOptions) BracketLayout {
	opts = opts.withDefaults()
	positions := CalculateMatchPositions(rounds, opts)

	layout := BracketLayout{
		Rounds:      make([]RoundLayout, 0, len(rounds)),
		Spacing:     opts.Spacing,
		MatchHeight: opts.MatchHeight,
		HideByes:    opts.HideByes,
	}

	maxY := -1.0
	for r, round := range rounds {
		rl := RoundLayout{
			Name:    round.Name,
			Order:   round.Order,
			Matches: make([]PositionedMatch, 0, len(round.Matches)),
		}
		for i, m := range round.Matches {
			y := positions[r][i]
			if y > maxY {
				maxY = y
			}
			rl.Matches = append(rl.Matches, PositionedMatch{Match: m, Y: y})
		}
		layout.Rounds = append(layout.Rounds, rl)
	}
	if maxY >= 0 {
		layout.Height = maxY + opts.MatchHeight
	}

	return layout
}

// FromModelRounds converts backend rounds into layout input, sorted by round
// order and then by order in round.
func FromModelRounds(rounds []models.Round) []Round {
	sorted := make([]models.Round, len(rounds))
	copy(sorted, rounds)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	out := make([]Round, 0, len(sorted))
	for _, r := range sorted {
		games := make([]models.Game, len(r.Games))
		copy(games, r.Games)
		sort.SliceStable(games, func(i, j int) bool { return games[i].OrderInRound < games[j].OrderInRound })

		br := Round{
			Name:    r.Name,
			Order:   r.Order,
			Matches: make([]Match, 0, len(games)),
		}
		for _, g := range games {
			gameID := g.ID
			br.Matches = append(br.Matches, Match{
				UID:           fmt.Sprintf("G%d", g.ID),
				GameID:        &gameID,
				Pair1ID:       g.Pair1ID,
				Pair2ID:       g.Pair2ID,
				IsBye:         g.IsBye,
				IsPlaceholder: !g.IsBye && (g.Pair1ID == nil || g.Pair2ID == nil),
			})
		}
		out = append(out, br)
	}
	return out
}
