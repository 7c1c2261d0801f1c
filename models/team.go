package models

type PlayerPosition string

const (
	PositionGoalkeeper PlayerPosition = "G"
	PositionDefender   PlayerPosition = "D"
	PositionMidfielder PlayerPosition = "M"
	PositionForward    PlayerPosition = "A"
)

type Player struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Number      int            `json:"number"`
	Position    PlayerPosition `json:"position"`
	Goals       int            `json:"goals"`
	YellowCards int            `json:"yellow_cards"`
	RedCard     bool           `json:"red_card"`
	IsStarter   bool           `json:"is_starter"`
}

// Team is a registered team that can be entered into tournaments and leagues.
type Team struct {
	Name    string   `json:"name"`
	Flag    *string  `json:"flag,omitempty"`
	Players []Player `json:"players"`
}
