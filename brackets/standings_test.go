package brackets

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Dosada05/arbitro/models"
)

func playedMatchup(id int, a string, scoreA int, b string, scoreB int) models.LeagueMatchup {
	m := models.LeagueMatchup{
		ID:    id,
		Round: 1,
		TeamA: models.ResolvedSlot(a),
		TeamB: models.ResolvedSlot(b),
	}
	m.TeamA.Score = &scoreA
	m.TeamB.Score = &scoreB
	return m
}

func TestUpdateLeagueStandings(t *testing.T) {
	keys := DefaultSaveKeys()
	league, err := BuildLeagueSchedule([]string{"A", "B", "C"}, "Liga", keys)
	if err != nil {
		t.Fatalf("BuildLeagueSchedule() failed: %v", err)
	}

	league, err = UpdateLeagueStandings(league, result("A", 2, "B", 1), keys.League("Liga", "A", "B"))
	if err != nil {
		t.Fatalf("UpdateLeagueStandings() failed: %v", err)
	}
	league, err = UpdateLeagueStandings(league, result("B", 3, "C", 3), keys.League("Liga", "B", "C"))
	if err != nil {
		t.Fatalf("UpdateLeagueStandings() failed: %v", err)
	}

	want := []models.TeamStanding{
		{Name: "A", Points: 3, GamesPlayed: 1, Wins: 1, GoalsFor: 2, GoalsAgainst: 1, GoalDifference: 1},
		{Name: "C", Points: 1, GamesPlayed: 1, Draws: 1, GoalsFor: 3, GoalsAgainst: 3, GoalDifference: 0},
		{Name: "B", Points: 1, GamesPlayed: 2, Draws: 1, Losses: 1, GoalsFor: 4, GoalsAgainst: 5, GoalDifference: -1},
	}
	if !reflect.DeepEqual(league.Stats, want) {
		t.Errorf("unexpected standings:\n got %+v\nwant %+v", league.Stats, want)
	}
}

func TestUpdateLeagueStandingsInvariants(t *testing.T) {
	keys := DefaultSaveKeys()
	league, err := BuildLeagueSchedule(teamNames(5), "Liga", keys)
	if err != nil {
		t.Fatalf("BuildLeagueSchedule() failed: %v", err)
	}

	for i, m := range league.Matchups {
		r := result(m.TeamA.Name, i%4, m.TeamB.Name, (i*7)%3)
		league, err = UpdateLeagueStandings(league, r, m.GameSaveKey)
		if err != nil {
			t.Fatalf("UpdateLeagueStandings(%q) failed: %v", m.GameSaveKey, err)
		}
	}

	var goalsFor, goalsAgainst int
	for _, s := range league.Stats {
		if s.Points != 3*s.Wins+s.Draws {
			t.Errorf("%s: points %d do not match record %d-%d-%d", s.Name, s.Points, s.Wins, s.Draws, s.Losses)
		}
		if s.GamesPlayed != s.Wins+s.Draws+s.Losses || s.GamesPlayed != 8 {
			t.Errorf("%s: played %d, record %d-%d-%d", s.Name, s.GamesPlayed, s.Wins, s.Draws, s.Losses)
		}
		if s.GoalDifference != s.GoalsFor-s.GoalsAgainst {
			t.Errorf("%s: goal difference %d, goals %d-%d", s.Name, s.GoalDifference, s.GoalsFor, s.GoalsAgainst)
		}
		goalsFor += s.GoalsFor
		goalsAgainst += s.GoalsAgainst
	}
	if goalsFor != goalsAgainst {
		t.Errorf("goals for %d != goals against %d", goalsFor, goalsAgainst)
	}
	for i := 1; i < len(league.Stats); i++ {
		if league.Stats[i-1].Points < league.Stats[i].Points {
			t.Errorf("table not sorted at %d", i)
		}
	}
}

func TestUpdateLeagueStandingsOrderIndependent(t *testing.T) {
	keys := DefaultSaveKeys()
	base, err := BuildLeagueSchedule([]string{"A", "B", "C", "D"}, "Liga", keys)
	if err != nil {
		t.Fatalf("BuildLeagueSchedule() failed: %v", err)
	}

	results := []struct {
		r   models.MatchResult
		key string
	}{
		{result("A", 1, "D", 0), keys.League("Liga", "A", "D")},
		{result("B", 2, "C", 2), keys.League("Liga", "B", "C")},
		{result("D", 4, "A", 1), keys.ReturnLeg("Liga", "D", "A")},
	}

	forward := base
	for _, x := range results {
		if forward, err = UpdateLeagueStandings(forward, x.r, x.key); err != nil {
			t.Fatalf("UpdateLeagueStandings() failed: %v", err)
		}
	}
	backward := base
	for i := len(results) - 1; i >= 0; i-- {
		if backward, err = UpdateLeagueStandings(backward, results[i].r, results[i].key); err != nil {
			t.Fatalf("UpdateLeagueStandings() failed: %v", err)
		}
	}
	if !reflect.DeepEqual(forward.Stats, backward.Stats) {
		t.Errorf("standings depend on order:\n%+v\n%+v", forward.Stats, backward.Stats)
	}

	// Re-recording a corrected score replaces the old one.
	corrected, err := UpdateLeagueStandings(forward, result("A", 0, "D", 0), keys.League("Liga", "A", "D"))
	if err != nil {
		t.Fatalf("UpdateLeagueStandings() failed: %v", err)
	}
	for _, s := range corrected.Stats {
		if s.Name == "A" && (s.GamesPlayed != 2 || s.Points != 1) {
			t.Errorf("expected A to have 1 point from 2 games after correction, got %+v", s)
		}
	}
}

func TestUpdateLeagueStandingsUnknownKey(t *testing.T) {
	league, err := BuildLeagueSchedule([]string{"A", "B"}, "Liga", DefaultSaveKeys())
	if err != nil {
		t.Fatalf("BuildLeagueSchedule() failed: %v", err)
	}

	next, err := UpdateLeagueStandings(league, result("A", 1, "B", 0), "League: Other: A vs B")
	if !errors.Is(err, ErrMatchupNotFound) {
		t.Fatalf("expected ErrMatchupNotFound, got %v", err)
	}
	if !reflect.DeepEqual(next, league) {
		t.Error("expected an unchanged copy")
	}
}

func TestComputeStandingsTiebreakers(t *testing.T) {
	testCases := []struct {
		name     string
		matchups []models.LeagueMatchup
		want     []string
	}{
		{
			name: "goal difference",
			matchups: []models.LeagueMatchup{
				playedMatchup(1, "A", 1, "C", 0),
				playedMatchup(2, "B", 3, "D", 0),
			},
			want: []string{"B", "A", "C", "D"},
		},
		{
			name: "goals scored",
			matchups: []models.LeagueMatchup{
				playedMatchup(1, "A", 3, "C", 1),
				playedMatchup(2, "B", 2, "D", 0),
			},
			want: []string{"A", "B", "C", "D"},
		},
		{
			name: "name",
			matchups: []models.LeagueMatchup{
				playedMatchup(1, "B", 1, "D", 0),
				playedMatchup(2, "A", 1, "C", 0),
			},
			want: []string{"A", "B", "C", "D"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			league := &models.League{
				Name:     "Liga",
				Stats:    []models.TeamStanding{{Name: "D"}, {Name: "C"}, {Name: "B"}, {Name: "A"}},
				Matchups: tc.matchups,
			}
			table := ComputeStandings(league)
			got := make([]string, len(table))
			for i, s := range table {
				got[i] = s.Name
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("expected order %v, got %v", tc.want, got)
			}
		})
	}
}
