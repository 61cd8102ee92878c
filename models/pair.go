package models

import "time"

// PlayerPair is a registered padel pair.
type PlayerPair struct {
	ID           int       `json:"id"`
	TournamentID int       `json:"tournament_id"`
	Player1Name  string    `json:"player1_name"`
	Player2Name  string    `json:"player2_name"`
	Seed         *int      `json:"seed,omitempty"`
	Club         *string   `json:"club,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (p PlayerPair) DisplayName() string {
	return p.Player1Name + " / " + p.Player2Name
}
