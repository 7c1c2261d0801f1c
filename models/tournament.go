package models

import "time"

// Phase identifies a bracket round in the canonical knockout sequence.
type Phase string

const (
	PhaseRoundOf32    Phase = "R32"
	PhaseRoundOf16    Phase = "R16"
	PhaseQuarterfinal Phase = "QF"
	PhaseSemifinal    Phase = "SF"
	PhaseFinal        Phase = "F"
	PhaseThirdPlace   Phase = "3P"
)

// KnockoutPhases is the canonical round order, earliest first.
var KnockoutPhases = []Phase{
	PhaseRoundOf32,
	PhaseRoundOf16,
	PhaseQuarterfinal,
	PhaseSemifinal,
	PhaseFinal,
}

// Teams returns how many entrants a tournament starting at this phase needs.
func (p Phase) Teams() int {
	switch p {
	case PhaseRoundOf32:
		return 32
	case PhaseRoundOf16:
		return 16
	case PhaseQuarterfinal:
		return 8
	case PhaseSemifinal:
		return 4
	case PhaseFinal, PhaseThirdPlace:
		return 2
	default:
		return 0
	}
}

func (p Phase) IsValid() bool {
	return p.Teams() > 0
}

func (p Phase) DisplayName() string {
	switch p {
	case PhaseRoundOf32:
		return "Round of 32"
	case PhaseRoundOf16:
		return "Round of 16"
	case PhaseQuarterfinal:
		return "Quarterfinals"
	case PhaseSemifinal:
		return "Semifinals"
	case PhaseFinal:
		return "Final"
	case PhaseThirdPlace:
		return "Third Place"
	default:
		return string(p)
	}
}

// Round holds the matchups of one phase ordered by bracket position.
type Round struct {
	Phase    Phase     `json:"phase"`
	Matchups []Matchup `json:"matchups"`
}

// Tournament is a single-elimination bracket.
type Tournament struct {
	Name       string    `json:"name"`
	EntryPhase Phase     `json:"entry_phase"`
	Rounds     []Round   `json:"rounds"`
	ThirdPlace *Matchup  `json:"third_place,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Round returns the round for the given phase, or nil when it is not populated.
func (t *Tournament) Round(phase Phase) *Round {
	for i := range t.Rounds {
		if t.Rounds[i].Phase == phase {
			return &t.Rounds[i]
		}
	}
	return nil
}

// Matchup returns the matchup with the given id across all rounds and the
// third-place match.
func (t *Tournament) Matchup(id int) *Matchup {
	for i := range t.Rounds {
		for j := range t.Rounds[i].Matchups {
			if t.Rounds[i].Matchups[j].ID == id {
				return &t.Rounds[i].Matchups[j]
			}
		}
	}
	if t.ThirdPlace != nil && t.ThirdPlace.ID == id {
		return t.ThirdPlace
	}
	return nil
}

// MatchupByKey returns the matchup whose save key equals key exactly.
func (t *Tournament) MatchupByKey(key string) *Matchup {
	for i := range t.Rounds {
		for j := range t.Rounds[i].Matchups {
			m := &t.Rounds[i].Matchups[j]
			if m.GameSaveKey != nil && *m.GameSaveKey == key {
				return m
			}
		}
	}
	if t.ThirdPlace != nil && t.ThirdPlace.GameSaveKey != nil && *t.ThirdPlace.GameSaveKey == key {
		return t.ThirdPlace
	}
	return nil
}

// AllMatchups lists every matchup in bracket order, third place last.
func (t *Tournament) AllMatchups() []*Matchup {
	out := make([]*Matchup, 0)
	for i := range t.Rounds {
		for j := range t.Rounds[i].Matchups {
			out = append(out, &t.Rounds[i].Matchups[j])
		}
	}
	if t.ThirdPlace != nil {
		out = append(out, t.ThirdPlace)
	}
	return out
}

// Clone returns a deep copy that shares no memory with t.
func (t *Tournament) Clone() *Tournament {
	if t == nil {
		return nil
	}
	c := *t
	c.Rounds = make([]Round, len(t.Rounds))
	for i, r := range t.Rounds {
		matchups := make([]Matchup, len(r.Matchups))
		for j, m := range r.Matchups {
			matchups[j] = m.Clone()
		}
		c.Rounds[i] = Round{Phase: r.Phase, Matchups: matchups}
	}
	if t.ThirdPlace != nil {
		tp := t.ThirdPlace.Clone()
		c.ThirdPlace = &tp
	}
	return &c
}
