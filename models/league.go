package models

import (
	"sort"
	"time"
)

// LeagueMatchup is a scheduled round-robin fixture. Round is the 1-based matchday.
type LeagueMatchup struct {
	ID          int    `json:"id"`
	Round       int    `json:"round"`
	TeamA       Slot   `json:"team_a"`
	TeamB       Slot   `json:"team_b"`
	GameSaveKey string `json:"game_save_key"`
}

func (m *LeagueMatchup) IsPlayed() bool {
	return m.TeamA.Score != nil && m.TeamB.Score != nil
}

// League is a double round-robin competition with its standings table.
type League struct {
	Name      string          `json:"name"`
	Stats     []TeamStanding  `json:"stats"`
	Matchups  []LeagueMatchup `json:"matchups"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// MatchupByKey returns the matchup whose save key equals key exactly.
func (l *League) MatchupByKey(key string) *LeagueMatchup {
	for i := range l.Matchups {
		if l.Matchups[i].GameSaveKey == key {
			return &l.Matchups[i]
		}
	}
	return nil
}

func (l *League) Matchup(id int) *LeagueMatchup {
	for i := range l.Matchups {
		if l.Matchups[i].ID == id {
			return &l.Matchups[i]
		}
	}
	return nil
}

// Matchday groups the fixtures of one round.
type Matchday struct {
	Round    int             `json:"round"`
	Matchups []LeagueMatchup `json:"matchups"`
}

// Rounds groups matchups by matchday in ascending order.
func (l *League) Rounds() []Matchday {
	days := make([]Matchday, 0)
	index := make(map[int]int)
	for _, m := range l.Matchups {
		i, ok := index[m.Round]
		if !ok {
			i = len(days)
			index[m.Round] = i
			days = append(days, Matchday{Round: m.Round})
		}
		days[i].Matchups = append(days[i].Matchups, m)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Round < days[j].Round
	})
	return days
}

// Clone returns a deep copy that shares no memory with l.
func (l *League) Clone() *League {
	if l == nil {
		return nil
	}
	c := *l
	c.Stats = make([]TeamStanding, len(l.Stats))
	copy(c.Stats, l.Stats)
	c.Matchups = make([]LeagueMatchup, len(l.Matchups))
	for i, m := range l.Matchups {
		m.TeamA = m.TeamA.clone()
		m.TeamB = m.TeamB.clone()
		c.Matchups[i] = m
	}
	return &c
}
