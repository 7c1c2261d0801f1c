package brackets

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Dosada05/arbitro/models"
)

func teamNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Team %02d", i+1)
	}
	return names
}

func TestBuildTournamentRoundSizes(t *testing.T) {
	testCases := []struct {
		entry          models.Phase
		wantPhases     []models.Phase
		wantCounts     []int
		wantThirdPlace bool
	}{
		{models.PhaseRoundOf32, []models.Phase{"R32", "R16", "QF", "SF", "F"}, []int{16, 8, 4, 2, 1}, true},
		{models.PhaseRoundOf16, []models.Phase{"R16", "QF", "SF", "F"}, []int{8, 4, 2, 1}, true},
		{models.PhaseQuarterfinal, []models.Phase{"QF", "SF", "F"}, []int{4, 2, 1}, true},
		{models.PhaseSemifinal, []models.Phase{"SF", "F"}, []int{2, 1}, true},
		{models.PhaseFinal, []models.Phase{"F"}, []int{1}, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.entry), func(t *testing.T) {
			tour, err := BuildTournament(teamNames(tc.entry.Teams()), "Cup", tc.entry, DefaultSaveKeys())
			if err != nil {
				t.Fatalf("BuildTournament() failed: %v", err)
			}
			if len(tour.Rounds) != len(tc.wantPhases) {
				t.Fatalf("expected %d rounds, got %d", len(tc.wantPhases), len(tour.Rounds))
			}
			for i, r := range tour.Rounds {
				if r.Phase != tc.wantPhases[i] {
					t.Errorf("round %d: expected phase %s, got %s", i, tc.wantPhases[i], r.Phase)
				}
				if len(r.Matchups) != tc.wantCounts[i] {
					t.Errorf("round %s: expected %d matchups, got %d", r.Phase, tc.wantCounts[i], len(r.Matchups))
				}
			}
			if (tour.ThirdPlace != nil) != tc.wantThirdPlace {
				t.Errorf("third place present = %v, want %v", tour.ThirdPlace != nil, tc.wantThirdPlace)
			}
		})
	}
}

func TestBuildTournamentThirdPlaceOnly(t *testing.T) {
	keys := DefaultSaveKeys()
	tour, err := BuildTournament([]string{"Brazil", "Sweden"}, "Bronze", models.PhaseThirdPlace, keys)
	if err != nil {
		t.Fatalf("BuildTournament() failed: %v", err)
	}
	if len(tour.Rounds) != 0 {
		t.Fatalf("expected no rounds, got %d", len(tour.Rounds))
	}
	if tour.ThirdPlace == nil {
		t.Fatal("expected a third place matchup")
	}
	if tour.ThirdPlace.TeamA.Name != "Brazil" || tour.ThirdPlace.TeamB.Name != "Sweden" {
		t.Errorf("unexpected third place teams: %+v", tour.ThirdPlace)
	}
	want := "Third Place (Bronze): Brazil vs Sweden"
	if tour.ThirdPlace.GameSaveKey == nil || *tour.ThirdPlace.GameSaveKey != want {
		t.Errorf("expected save key %q, got %v", want, tour.ThirdPlace.GameSaveKey)
	}
}

func TestBuildTournamentLinksEveryWinner(t *testing.T) {
	tour, err := BuildTournament(teamNames(32), "Cup", models.PhaseRoundOf32, DefaultSaveKeys())
	if err != nil {
		t.Fatalf("BuildTournament() failed: %v", err)
	}

	for r := 0; r < len(tour.Rounds)-1; r++ {
		current, next := tour.Rounds[r], tour.Rounds[r+1]
		fed := make(map[int]map[models.Side]int)
		for i, m := range current.Matchups {
			if m.NextMatchupID == nil {
				t.Fatalf("round %s matchup %d has no next matchup", current.Phase, i)
			}
			if *m.NextMatchupID != next.Matchups[i/2].ID {
				t.Errorf("round %s matchup %d: expected next %d, got %d", current.Phase, i, next.Matchups[i/2].ID, *m.NextMatchupID)
			}
			wantSide := models.SideA
			if i%2 == 1 {
				wantSide = models.SideB
			}
			if m.WinnerSlot != wantSide {
				t.Errorf("round %s matchup %d: expected winner slot %s, got %s", current.Phase, i, wantSide, m.WinnerSlot)
			}
			if fed[*m.NextMatchupID] == nil {
				fed[*m.NextMatchupID] = make(map[models.Side]int)
			}
			fed[*m.NextMatchupID][m.WinnerSlot]++
		}
		for _, target := range next.Matchups {
			if fed[target.ID][models.SideA] != 1 || fed[target.ID][models.SideB] != 1 {
				t.Errorf("round %s matchup %d is fed %v, want one winner per slot", next.Phase, target.ID, fed[target.ID])
			}
		}
	}

	final := tour.Round(models.PhaseFinal).Matchups[0]
	if final.NextMatchupID != nil {
		t.Errorf("final should not link anywhere, got %d", *final.NextMatchupID)
	}
}

func TestBuildTournamentUniqueIncreasingIDs(t *testing.T) {
	tour, err := BuildTournament(teamNames(16), "Cup", models.PhaseRoundOf16, DefaultSaveKeys())
	if err != nil {
		t.Fatalf("BuildTournament() failed: %v", err)
	}
	last := 0
	seen := make(map[int]bool)
	for _, m := range tour.AllMatchups() {
		if seen[m.ID] {
			t.Fatalf("duplicate matchup id %d", m.ID)
		}
		seen[m.ID] = true
		if m.ID <= last {
			t.Errorf("ids not increasing: %d after %d", m.ID, last)
		}
		last = m.ID
	}
	if len(seen) != 8+4+2+1+1 {
		t.Errorf("expected 16 matchups, got %d", len(seen))
	}
}

func TestBuildTournamentSemifinalEntry(t *testing.T) {
	tour, err := BuildTournament([]string{"A", "B", "C", "D"}, "Cup", models.PhaseSemifinal, DefaultSaveKeys())
	if err != nil {
		t.Fatalf("BuildTournament() failed: %v", err)
	}
	semis := tour.Round(models.PhaseSemifinal).Matchups

	wantKeys := []string{"Tournament (Cup): A vs B", "Tournament (Cup): C vs D"}
	for i, m := range semis {
		if m.GameSaveKey == nil || *m.GameSaveKey != wantKeys[i] {
			t.Errorf("semifinal %d: expected key %q, got %v", i, wantKeys[i], m.GameSaveKey)
		}
		if m.LoserNextMatchupID == nil || *m.LoserNextMatchupID != tour.ThirdPlace.ID {
			t.Errorf("semifinal %d: expected loser link to third place", i)
		}
	}
	if semis[0].LoserSlot != models.SideA || semis[1].LoserSlot != models.SideB {
		t.Errorf("unexpected loser slots %s/%s", semis[0].LoserSlot, semis[1].LoserSlot)
	}

	final := tour.Round(models.PhaseFinal).Matchups[0]
	if final.TeamA.IsResolved() || final.TeamB.IsResolved() {
		t.Error("final slots should be unresolved")
	}
	if final.GameSaveKey != nil {
		t.Errorf("final should have no save key yet, got %q", *final.GameSaveKey)
	}
	if final.TeamA.Label != "Winner SF 1" || final.TeamB.Label != "Winner SF 2" {
		t.Errorf("unexpected placeholder labels %q/%q", final.TeamA.Label, final.TeamB.Label)
	}
	if tour.ThirdPlace.GameSaveKey != nil || tour.ThirdPlace.TeamA.IsResolved() {
		t.Error("third place should be unresolved and unkeyed")
	}
}

func TestBuildTournamentValidation(t *testing.T) {
	keys := DefaultSaveKeys()
	testCases := []struct {
		name     string
		entrants []string
		title    string
		phase    models.Phase
	}{
		{"wrong entrant count", teamNames(6), "Cup", models.PhaseQuarterfinal},
		{"blank tournament name", teamNames(2), "   ", models.PhaseFinal},
		{"blank entrant", []string{"A", " "}, "Cup", models.PhaseFinal},
		{"duplicate entrant", []string{"A", "A"}, "Cup", models.PhaseFinal},
		{"entrant with separator", []string{"A vs B", "C"}, "Cup", models.PhaseFinal},
		{"tournament name with separator", teamNames(2), "Cup): Extra", models.PhaseFinal},
		{"unknown phase", teamNames(2), "Cup", models.Phase("R64")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildTournament(tc.entrants, tc.title, tc.phase, keys)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}
