package models

import "time"

type DisplayTheme string

const (
	ThemeLight DisplayTheme = "light"
	ThemeDark  DisplayTheme = "dark"
)

const (
	DefaultTVRotationSeconds = 20
	MinTVRotationSeconds     = 5
	MaxTVRotationSeconds     = 300
)

// DisplaySettings are presentation preferences owned by this service,
// one row per tournament.
type DisplaySettings struct {
	TournamentID      int          `json:"tournament_id" db:"tournament_id"`
	HideByes          bool         `json:"hide_byes" db:"hide_byes"`
	TVRotationSeconds int          `json:"tv_rotation_seconds" db:"tv_rotation_seconds"`
	Theme             DisplayTheme `json:"theme" db:"theme"`
	UpdatedAt         time.Time    `json:"updated_at" db:"updated_at"`
}

func DefaultDisplaySettings(tournamentID int) DisplaySettings {
	return DisplaySettings{
		TournamentID:      tournamentID,
		HideByes:          false,
		TVRotationSeconds: DefaultTVRotationSeconds,
		Theme:             ThemeDark,
	}
}
