package models

// MatchResult is the final score of a completed match.
type MatchResult struct {
	TeamAName  string `json:"team_a_name"`
	TeamBName  string `json:"team_b_name"`
	TeamAScore int    `json:"team_a_score"`
	TeamBScore int    `json:"team_b_score"`
}

// IsDraw reports whether both sides scored the same.
func (r MatchResult) IsDraw() bool {
	return r.TeamAScore == r.TeamBScore
}

// Swapped returns the same result seen from the other side.
func (r MatchResult) Swapped() MatchResult {
	return MatchResult{
		TeamAName:  r.TeamBName,
		TeamBName:  r.TeamAName,
		TeamAScore: r.TeamBScore,
		TeamBScore: r.TeamAScore,
	}
}

type SlotState string

const (
	SlotUnresolved SlotState = "unresolved"
	SlotResolved   SlotState = "resolved"
)

// Side names one of the two slots of a matchup.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

// Slot is one side of a matchup. An unresolved slot carries only a display
// Label ("Winner QF 1") until the advancing team is known.
type Slot struct {
	State SlotState `json:"state"`
	Name  string    `json:"name,omitempty"`
	Label string    `json:"label,omitempty"`
	Score *int      `json:"score"`
}

func ResolvedSlot(name string) Slot {
	return Slot{State: SlotResolved, Name: name}
}

func UnresolvedSlot(label string) Slot {
	return Slot{State: SlotUnresolved, Label: label}
}

func (s Slot) IsResolved() bool {
	return s.State == SlotResolved
}

// DisplayName returns the team name, or the placeholder label while unresolved.
func (s Slot) DisplayName() string {
	if s.IsResolved() {
		return s.Name
	}
	return s.Label
}

func (s Slot) clone() Slot {
	if s.Score != nil {
		score := *s.Score
		s.Score = &score
	}
	return s
}

// Matchup is one node of a single-elimination bracket.
type Matchup struct {
	ID    int  `json:"id"`
	TeamA Slot `json:"team_a"`
	TeamB Slot `json:"team_b"`

	NextMatchupID *int `json:"next_matchup_id,omitempty"`
	WinnerSlot    Side `json:"winner_slot,omitempty"`

	// Only set on semifinals; points at the third-place matchup.
	LoserNextMatchupID *int `json:"loser_next_matchup_id,omitempty"`
	LoserSlot          Side `json:"loser_slot,omitempty"`

	GameSaveKey *string `json:"game_save_key"`
}

// IsReady reports whether both teams are known.
func (m *Matchup) IsReady() bool {
	return m.TeamA.IsResolved() && m.TeamB.IsResolved()
}

// IsPlayed reports whether a score has been recorded for both sides.
func (m *Matchup) IsPlayed() bool {
	return m.TeamA.Score != nil && m.TeamB.Score != nil
}

// SlotFor returns a pointer to the slot on the given side.
func (m *Matchup) SlotFor(side Side) *Slot {
	if side == SideB {
		return &m.TeamB
	}
	return &m.TeamA
}

// Clone returns a deep copy.
func (m Matchup) Clone() Matchup {
	m.TeamA = m.TeamA.clone()
	m.TeamB = m.TeamB.clone()
	m.NextMatchupID = cloneInt(m.NextMatchupID)
	m.LoserNextMatchupID = cloneInt(m.LoserNextMatchupID)
	if m.GameSaveKey != nil {
		key := *m.GameSaveKey
		m.GameSaveKey = &key
	}
	return m
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
