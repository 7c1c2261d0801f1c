package brackets

import (
	"fmt"
	"sort"

	"github.com/Dosada05/arbitro/models"
)

const (
	pointsForWin  = 3
	pointsForDraw = 1
)

// UpdateLeagueStandings records a completed match on a copy of l and rebuilds
// the whole standings table from the matchup list.
//
// When key matches no matchup the returned copy is unchanged and the error
// wraps ErrMatchupNotFound.
func UpdateLeagueStandings(l *models.League, result models.MatchResult, key string) (*models.League, error) {
	if l == nil {
		return nil, fmt.Errorf("%w: league is required", ErrValidation)
	}
	if err := validateResult(result); err != nil {
		return nil, err
	}
	next := l.Clone()

	m := next.MatchupByKey(key)
	if m == nil {
		return next, fmt.Errorf("%w: %q in league %q", ErrMatchupNotFound, key, l.Name)
	}

	result = alignResult(result, m.TeamA, m.TeamB)
	scoreA, scoreB := result.TeamAScore, result.TeamBScore
	m.TeamA.Score = &scoreA
	m.TeamB.Score = &scoreB

	next.Stats = ComputeStandings(next)
	return next, nil
}

// ComputeStandings derives the sorted table from every played matchup. Teams
// already listed in l.Stats keep a row even before they have played.
func ComputeStandings(l *models.League) []models.TeamStanding {
	rows := make(map[string]*models.TeamStanding, len(l.Stats))
	order := make([]string, 0, len(l.Stats))
	row := func(name string) *models.TeamStanding {
		if s, ok := rows[name]; ok {
			return s
		}
		s := &models.TeamStanding{Name: name}
		rows[name] = s
		order = append(order, name)
		return s
	}

	for _, s := range l.Stats {
		row(s.Name)
	}

	for _, m := range l.Matchups {
		if !m.IsPlayed() {
			continue
		}
		a, b := row(m.TeamA.Name), row(m.TeamB.Name)
		goalsA, goalsB := *m.TeamA.Score, *m.TeamB.Score

		a.GoalsFor += goalsA
		a.GoalsAgainst += goalsB
		b.GoalsFor += goalsB
		b.GoalsAgainst += goalsA

		switch {
		case goalsA > goalsB:
			a.Wins++
			b.Losses++
		case goalsB > goalsA:
			b.Wins++
			a.Losses++
		default:
			a.Draws++
			b.Draws++
		}
	}

	table := make([]models.TeamStanding, 0, len(order))
	for _, name := range order {
		s := rows[name]
		s.Points = pointsForWin*s.Wins + pointsForDraw*s.Draws
		s.GamesPlayed = s.Wins + s.Draws + s.Losses
		s.GoalDifference = s.GoalsFor - s.GoalsAgainst
		table = append(table, *s)
	}
	SortStandings(table)
	return table
}

// SortStandings orders a table by points, goal difference and goals scored,
// all descending, then by name.
func SortStandings(table []models.TeamStanding) {
	sort.Slice(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.Name < b.Name
	})
}
