package brackets

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Dosada05/arbitro/models"
)

func semifinalCup(t *testing.T) *models.Tournament {
	t.Helper()
	tour, err := BuildTournament([]string{"A", "B", "C", "D"}, "Cup", models.PhaseSemifinal, DefaultSaveKeys())
	if err != nil {
		t.Fatalf("BuildTournament() failed: %v", err)
	}
	return tour
}

func result(a string, scoreA int, b string, scoreB int) models.MatchResult {
	return models.MatchResult{TeamAName: a, TeamBName: b, TeamAScore: scoreA, TeamBScore: scoreB}
}

func TestAdvanceSemifinalFillsFinalAndThirdPlace(t *testing.T) {
	tour := semifinalCup(t)

	next, err := AdvanceTournament(tour, result("A", 2, "B", 1), "Tournament (Cup): A vs B")
	if err != nil {
		t.Fatalf("AdvanceTournament() failed: %v", err)
	}
	next, err = AdvanceTournament(next, result("C", 0, "D", 3), "Tournament (Cup): C vs D")
	if err != nil {
		t.Fatalf("AdvanceTournament() failed: %v", err)
	}

	final := next.Round(models.PhaseFinal).Matchups[0]
	if !final.TeamA.IsResolved() || final.TeamA.Name != "A" {
		t.Errorf("expected A in final slot A, got %+v", final.TeamA)
	}
	if !final.TeamB.IsResolved() || final.TeamB.Name != "D" {
		t.Errorf("expected D in final slot B, got %+v", final.TeamB)
	}
	if next.ThirdPlace.TeamA.Name != "B" || next.ThirdPlace.TeamB.Name != "C" {
		t.Errorf("expected B vs C for third place, got %s vs %s", next.ThirdPlace.TeamA.Name, next.ThirdPlace.TeamB.Name)
	}
	if final.GameSaveKey != nil || next.ThirdPlace.GameSaveKey != nil {
		t.Error("advancement must not assign save keys")
	}

	sf := next.Round(models.PhaseSemifinal).Matchups[0]
	if sf.TeamA.Score == nil || *sf.TeamA.Score != 2 || *sf.TeamB.Score != 1 {
		t.Errorf("semifinal scores not recorded: %+v", sf)
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	tour := semifinalCup(t)
	before := tour.Clone()

	if _, err := AdvanceTournament(tour, result("A", 2, "B", 1), "Tournament (Cup): A vs B"); err != nil {
		t.Fatalf("AdvanceTournament() failed: %v", err)
	}
	if !reflect.DeepEqual(tour, before) {
		t.Error("input tournament was modified")
	}
}

func TestAdvanceDrawBlocksProgression(t *testing.T) {
	tour := semifinalCup(t)

	next, err := AdvanceTournament(tour, result("A", 1, "B", 1), "Tournament (Cup): A vs B")
	if err != nil {
		t.Fatalf("AdvanceTournament() failed: %v", err)
	}

	if !reflect.DeepEqual(next.Round(models.PhaseFinal).Matchups[0], tour.Round(models.PhaseFinal).Matchups[0]) {
		t.Error("final changed after a draw")
	}
	if !reflect.DeepEqual(next.ThirdPlace, tour.ThirdPlace) {
		t.Error("third place changed after a draw")
	}
	sf := next.Round(models.PhaseSemifinal).Matchups[0]
	if sf.TeamA.Score == nil || *sf.TeamA.Score != 1 || *sf.TeamB.Score != 1 {
		t.Errorf("draw scores should still be recorded, got %+v", sf)
	}
}

func TestAdvanceIsIdempotent(t *testing.T) {
	tour := semifinalCup(t)
	key := "Tournament (Cup): A vs B"

	once, err := AdvanceTournament(tour, result("A", 0, "B", 2), key)
	if err != nil {
		t.Fatalf("AdvanceTournament() failed: %v", err)
	}
	twice, err := AdvanceTournament(once, result("A", 0, "B", 2), key)
	if err != nil {
		t.Fatalf("AdvanceTournament() failed: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Error("second identical advance changed the tournament")
	}
}

func TestAdvanceUnknownKeyIsSoftNoop(t *testing.T) {
	tour := semifinalCup(t)

	next, err := AdvanceTournament(tour, result("X", 1, "Y", 0), "Friendly: X vs Y")
	if !errors.Is(err, ErrMatchupNotFound) {
		t.Fatalf("expected ErrMatchupNotFound, got %v", err)
	}
	if next == nil || !reflect.DeepEqual(next, tour) {
		t.Error("expected an unchanged copy")
	}
}

func TestAdvanceAcceptsReversedResult(t *testing.T) {
	tour := semifinalCup(t)

	next, err := AdvanceTournament(tour, result("B", 3, "A", 1), "Tournament (Cup): A vs B")
	if err != nil {
		t.Fatalf("AdvanceTournament() failed: %v", err)
	}
	sf := next.Round(models.PhaseSemifinal).Matchups[0]
	if *sf.TeamA.Score != 1 || *sf.TeamB.Score != 3 {
		t.Errorf("expected A 1-3 B, got %d-%d", *sf.TeamA.Score, *sf.TeamB.Score)
	}
	if got := next.Round(models.PhaseFinal).Matchups[0].TeamA.Name; got != "B" {
		t.Errorf("expected B to advance, got %q", got)
	}
}

func TestAdvanceRejectsNegativeScore(t *testing.T) {
	tour := semifinalCup(t)
	_, err := AdvanceTournament(tour, result("A", -1, "B", 0), "Tournament (Cup): A vs B")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestAdvanceAfterDownstreamOpenedKeepsStaleKey(t *testing.T) {
	keys := DefaultSaveKeys()
	tour := semifinalCup(t)

	tour, _ = AdvanceTournament(tour, result("A", 2, "B", 0), "Tournament (Cup): A vs B")
	tour, _ = AdvanceTournament(tour, result("C", 0, "D", 1), "Tournament (Cup): C vs D")

	finalID := tour.Round(models.PhaseFinal).Matchups[0].ID
	tour, key, err := AssignGameSaveKey(tour, finalID, keys)
	if err != nil {
		t.Fatalf("AssignGameSaveKey() failed: %v", err)
	}
	if key != "Tournament (Cup): A vs D" {
		t.Fatalf("unexpected final key %q", key)
	}

	// The first semifinal is corrected after the final was opened.
	tour, err = AdvanceTournament(tour, result("A", 0, "B", 2), "Tournament (Cup): A vs B")
	if err != nil {
		t.Fatalf("AdvanceTournament() failed: %v", err)
	}

	final := tour.Round(models.PhaseFinal).Matchups[0]
	if final.TeamA.Name != "B" {
		t.Errorf("expected corrected winner B in the final, got %q", final.TeamA.Name)
	}
	if final.GameSaveKey == nil || *final.GameSaveKey != "Tournament (Cup): A vs D" {
		t.Errorf("expected the final to keep its original key, got %v", final.GameSaveKey)
	}
	if tour.ThirdPlace.TeamA.Name != "A" {
		t.Errorf("expected A in third place slot A, got %q", tour.ThirdPlace.TeamA.Name)
	}
}

func TestAssignGameSaveKey(t *testing.T) {
	keys := DefaultSaveKeys()
	tour := semifinalCup(t)

	finalID := tour.Round(models.PhaseFinal).Matchups[0].ID
	if _, _, err := AssignGameSaveKey(tour, finalID, keys); !errors.Is(err, ErrMatchupNotReady) {
		t.Fatalf("expected ErrMatchupNotReady, got %v", err)
	}
	if _, _, err := AssignGameSaveKey(tour, 999, keys); !errors.Is(err, ErrMatchupNotFound) {
		t.Fatalf("expected ErrMatchupNotFound, got %v", err)
	}

	tour, _ = AdvanceTournament(tour, result("A", 1, "B", 0), "Tournament (Cup): A vs B")
	tour, _ = AdvanceTournament(tour, result("C", 1, "D", 0), "Tournament (Cup): C vs D")

	next, key, err := AssignGameSaveKey(tour, tour.ThirdPlace.ID, keys)
	if err != nil {
		t.Fatalf("AssignGameSaveKey() failed: %v", err)
	}
	if key != "Third Place (Cup): B vs D" {
		t.Errorf("unexpected third place key %q", key)
	}
	if tour.ThirdPlace.GameSaveKey != nil {
		t.Error("input tournament was modified")
	}

	_, again, err := AssignGameSaveKey(next, next.ThirdPlace.ID, keys)
	if err != nil || again != key {
		t.Errorf("expected existing key %q, got %q (%v)", key, again, err)
	}
}

func TestQuarterfinalBracketRunsToChampion(t *testing.T) {
	keys := DefaultSaveKeys()
	tour, err := BuildTournament(teamNames(8), "Cup", models.PhaseQuarterfinal, keys)
	if err != nil {
		t.Fatalf("BuildTournament() failed: %v", err)
	}

	for _, phase := range []models.Phase{models.PhaseQuarterfinal, models.PhaseSemifinal, models.PhaseFinal} {
		for _, m := range tour.Round(phase).Matchups {
			var key string
			tour, key, err = AssignGameSaveKey(tour, m.ID, keys)
			if err != nil {
				t.Fatalf("AssignGameSaveKey(%d) failed: %v", m.ID, err)
			}
			// Slot A always wins 1-0.
			tour, err = AdvanceTournament(tour, result(m.TeamA.Name, 1, m.TeamB.Name, 0), key)
			if err != nil {
				t.Fatalf("AdvanceTournament(%q) failed: %v", key, err)
			}
		}
	}

	champion, ok := Champion(tour)
	if !ok || champion != "Team 01" {
		t.Errorf("expected Team 01 as champion, got %q (%v)", champion, ok)
	}
	if _, ok := ThirdPlaceWinner(tour); ok {
		t.Error("third place has not been played yet")
	}
	if tour.ThirdPlace.TeamA.Name != "Team 03" || tour.ThirdPlace.TeamB.Name != "Team 07" {
		t.Errorf("unexpected third place pairing %s vs %s", tour.ThirdPlace.TeamA.Name, tour.ThirdPlace.TeamB.Name)
	}
}
