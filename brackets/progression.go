package brackets

import (
	"fmt"

	"github.com/Dosada05/arbitro/models"
)

// AdvanceTournament records a completed match on a copy of t and pushes the
// winner into the next matchup. A decided semifinal also sends its loser to the
// third-place match. Draws are recorded but advance nobody.
//
// When key matches no matchup the returned copy is unchanged and the error
// wraps ErrMatchupNotFound.
func AdvanceTournament(t *models.Tournament, result models.MatchResult, key string) (*models.Tournament, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: tournament is required", ErrValidation)
	}
	if err := validateResult(result); err != nil {
		return nil, err
	}
	next := t.Clone()

	m := next.MatchupByKey(key)
	if m == nil {
		return next, fmt.Errorf("%w: %q in tournament %q", ErrMatchupNotFound, key, t.Name)
	}

	result = alignResult(result, m.TeamA, m.TeamB)
	scoreA, scoreB := result.TeamAScore, result.TeamBScore
	m.TeamA.Score = &scoreA
	m.TeamB.Score = &scoreB

	if result.IsDraw() {
		return next, nil
	}

	winner, loser := m.TeamA.Name, m.TeamB.Name
	if scoreB > scoreA {
		winner, loser = loser, winner
	}

	// Only the name is written; the target's save key is assigned when it is opened.
	if m.NextMatchupID != nil {
		if target := next.Matchup(*m.NextMatchupID); target != nil {
			resolveSlot(target.SlotFor(m.WinnerSlot), winner)
		}
	}

	if m.LoserNextMatchupID != nil && isSemifinal(next, m.ID) {
		if target := next.Matchup(*m.LoserNextMatchupID); target != nil {
			resolveSlot(target.SlotFor(m.LoserSlot), loser)
		}
	}

	return next, nil
}

func isSemifinal(t *models.Tournament, id int) bool {
	semis := t.Round(models.PhaseSemifinal)
	if semis == nil {
		return false
	}
	for _, m := range semis.Matchups {
		if m.ID == id {
			return true
		}
	}
	return false
}

// AssignGameSaveKey gives a matchup its save key the first time it is opened.
// The key is derived from the names the matchup holds at that moment and is
// never recomputed afterwards.
func AssignGameSaveKey(t *models.Tournament, matchupID int, keys SaveKeys) (*models.Tournament, string, error) {
	next := t.Clone()
	m := next.Matchup(matchupID)
	if m == nil {
		return nil, "", fmt.Errorf("%w: matchup %d in tournament %q", ErrMatchupNotFound, matchupID, t.Name)
	}
	if m.GameSaveKey != nil {
		return next, *m.GameSaveKey, nil
	}
	if !m.IsReady() {
		return nil, "", fmt.Errorf("%w: matchup %d (%s vs %s)", ErrMatchupNotReady, matchupID, m.TeamA.DisplayName(), m.TeamB.DisplayName())
	}
	key := matchupKey(next, m, keys)
	m.GameSaveKey = &key
	return next, key, nil
}

// Champion returns the winner of the final once it has been decided.
func Champion(t *models.Tournament) (string, bool) {
	final := t.Round(models.PhaseFinal)
	if final == nil || len(final.Matchups) != 1 {
		return "", false
	}
	return decidedWinner(&final.Matchups[0])
}

// ThirdPlaceWinner returns the winner of the third-place match once decided.
func ThirdPlaceWinner(t *models.Tournament) (string, bool) {
	if t.ThirdPlace == nil {
		return "", false
	}
	return decidedWinner(t.ThirdPlace)
}

func decidedWinner(m *models.Matchup) (string, bool) {
	if !m.IsReady() || !m.IsPlayed() || *m.TeamA.Score == *m.TeamB.Score {
		return "", false
	}
	if *m.TeamA.Score > *m.TeamB.Score {
		return m.TeamA.Name, true
	}
	return m.TeamB.Name, true
}
