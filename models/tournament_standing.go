package models

// TeamStanding is one row of a league table. It is derived from the league's
// matchups and never edited by hand.
type TeamStanding struct {
	Name           string `json:"name"`
	Points         int    `json:"points"`
	GamesPlayed    int    `json:"games_played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
}
