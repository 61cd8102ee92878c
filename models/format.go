package models

// MatchFormat describes how a padel match is played.
type MatchFormat struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Sets           int    `json:"sets"`
	GamesPerSet    int    `json:"games_per_set"`
	GoldenPoint    bool   `json:"golden_point"`
	SuperTiebreak  bool   `json:"super_tiebreak"`
	TiebreakPoints int    `json:"tiebreak_points,omitempty"`
}
