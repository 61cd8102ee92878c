package services

import (
	"github.com/Dosada05/padel-live/models"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }

func themePtr(v models.DisplayTheme) *models.DisplayTheme { return &v }

// byeBracket is a two-round draw: a bye for pair 1 and pair 2 against pair 3.
func byeBracket() []models.Round {
	return []models.Round{
		{
			ID:    2,
			Name:  "Final",
			Order: 2,
			Games: []models.Game{{ID: 21, OrderInRound: 1, Pair1ID: intPtr(1)}},
		},
		{
			ID:    1,
			Name:  "Semifinals",
			Order: 1,
			Games: []models.Game{
				{ID: 12, OrderInRound: 2, Pair1ID: intPtr(2), Pair2ID: intPtr(3)},
				{ID: 11, OrderInRound: 1, Pair1ID: intPtr(1), IsBye: true},
			},
		},
	}
}
