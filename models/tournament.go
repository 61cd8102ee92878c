package models

import "time"

// TournamentStatus mirrors the status values published by the backend.
type TournamentStatus string

const (
	StatusDraft        TournamentStatus = "draft"
	StatusRegistration TournamentStatus = "registration"
	StatusActive       TournamentStatus = "active"
	StatusCompleted    TournamentStatus = "completed"
	StatusCanceled     TournamentStatus = "canceled"
)

// Tournament is a padel tournament as returned by the backend API.
type Tournament struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Description   *string          `json:"description,omitempty"`
	Location      *string          `json:"location,omitempty"`
	Category      string           `json:"category"`
	StartDate     time.Time        `json:"start_date"`
	EndDate       time.Time        `json:"end_date"`
	Status        TournamentStatus `json:"status"`
	MaxPairs      int              `json:"max_pairs"`
	MatchFormatID *int             `json:"match_format_id,omitempty"`
	IsPublic      bool             `json:"is_public"`
	// CanEdit is computed by the backend for the token that made the request.
	CanEdit       bool             `json:"can_edit"`
	CreatedAt     time.Time        `json:"created_at"`

	MatchFormat *MatchFormat `json:"match_format,omitempty"`
}
