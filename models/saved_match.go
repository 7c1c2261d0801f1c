package models

import "time"

type GameEventType string

const (
	EventGoal         GameEventType = "goal"
	EventYellowCard   GameEventType = "yellow_card"
	EventRedCard      GameEventType = "red_card"
	EventSubstitution GameEventType = "substitution"
)

// GameEvent is one line of the match report. Time is the clock reading in MM:SS.
type GameEvent struct {
	ID                int           `json:"id"`
	Type              GameEventType `json:"type"`
	TeamName          string        `json:"team_name"`
	PlayerName        string        `json:"player_name"`
	RelatedPlayerName string        `json:"related_player_name,omitempty"` // substitutions
	Time              string        `json:"time"`
}

// TeamSheet is a team as it stands during a match.
type TeamSheet struct {
	Name    string   `json:"name"`
	Flag    *string  `json:"flag,omitempty"`
	Players []Player `json:"players"`
	Score   int      `json:"score"`
}

type MatchState struct {
	TeamA  TeamSheet   `json:"team_a"`
	TeamB  TeamSheet   `json:"team_b"`
	Events []GameEvent `json:"events"`
}

// SavedMatch is the persisted snapshot of an officiated match, stored under its save key.
// Time and TotalTime are in seconds.
type SavedMatch struct {
	Key       string     `json:"key"`
	State     MatchState `json:"state"`
	Time      int        `json:"time"`
	TotalTime int        `json:"total_time"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// DefaultMatchLength is a regulation 90 minutes.
const DefaultMatchLength = 90 * 60

// NewSavedMatch returns an unplayed snapshot between two teams.
func NewSavedMatch(key, teamA, teamB string) *SavedMatch {
	return &SavedMatch{
		Key: key,
		State: MatchState{
			TeamA:  TeamSheet{Name: teamA, Players: []Player{}},
			TeamB:  TeamSheet{Name: teamB, Players: []Player{}},
			Events: []GameEvent{},
		},
		TotalTime: DefaultMatchLength,
	}
}

// Result extracts the score line of the snapshot.
func (s *SavedMatch) Result() MatchResult {
	return MatchResult{
		TeamAName:  s.State.TeamA.Name,
		TeamBName:  s.State.TeamB.Name,
		TeamAScore: s.State.TeamA.Score,
		TeamBScore: s.State.TeamB.Score,
	}
}
