package models

import "time"

type GameStatus string

const (
	GameStatusScheduled  GameStatus = "scheduled"
	GameStatusInProgress GameStatus = "in_progress"
	GameStatusCompleted  GameStatus = "completed"
	GameStatusCanceled   GameStatus = "canceled"
)

// Game is one match between two player pairs inside a round.
type Game struct {
	ID           int        `json:"id"`
	TournamentID int        `json:"tournament_id"`
	RoundID      int        `json:"round_id"`
	OrderInRound int        `json:"order_in_round"`
	Pair1ID      *int       `json:"pair1_id,omitempty"`
	Pair2ID      *int       `json:"pair2_id,omitempty"`
	WinnerPairID *int       `json:"winner_pair_id,omitempty"`
	Score        *string    `json:"score,omitempty"`
	Court        *string    `json:"court,omitempty"`
	ScheduledAt  *time.Time `json:"scheduled_at,omitempty"`
	Status       GameStatus `json:"status"`
	IsBye        bool       `json:"is_bye"`
}

// Round is one stage of a knockout bracket.
type Round struct {
	ID           int    `json:"id"`
	TournamentID int    `json:"tournament_id"`
	Name         string `json:"name"`
	Order        int    `json:"order"`
	Games        []Game `json:"games"`
}
