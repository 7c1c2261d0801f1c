package brackets

import (
	"fmt"

	"github.com/Dosada05/arbitro/models"
)

// BuildTournament creates a single-elimination bracket that starts at entry.
// Entrants are paired in order: (0,1), (2,3), ... Later rounds hold unresolved
// slots that the progression engine fills in. Entering at or before the
// semifinals adds a third-place match fed by the semifinal losers.
func BuildTournament(entrants []string, name string, entry models.Phase, keys SaveKeys) (*models.Tournament, error) {
	name, err := validateOwnerName("tournament", name, tournamentNameSeparator)
	if err != nil {
		return nil, err
	}
	if !entry.IsValid() {
		return nil, fmt.Errorf("%w: unknown entry phase %q", ErrValidation, entry)
	}
	if len(entrants) != entry.Teams() {
		return nil, fmt.Errorf("%w: phase %s needs %d entrants, got %d", ErrValidation, entry, entry.Teams(), len(entrants))
	}
	names, err := normalizeEntrants(entrants)
	if err != nil {
		return nil, err
	}

	t := &models.Tournament{
		Name:       name,
		EntryPhase: entry,
		Rounds:     []models.Round{},
	}

	matchupIDCounter := 0
	newID := func() int {
		matchupIDCounter++
		return matchupIDCounter
	}

	if entry == models.PhaseThirdPlace {
		t.ThirdPlace = &models.Matchup{
			ID:    newID(),
			TeamA: models.ResolvedSlot(names[0]),
			TeamB: models.ResolvedSlot(names[1]),
		}
		assignReadyKeys(t, keys)
		return t, nil
	}

	phases := phasesFrom(entry)
	matchesInRound := len(names) / 2
	for r, phase := range phases {
		round := models.Round{Phase: phase, Matchups: make([]models.Matchup, matchesInRound)}
		for i := 0; i < matchesInRound; i++ {
			m := models.Matchup{ID: newID()}
			if r == 0 {
				m.TeamA = models.ResolvedSlot(names[2*i])
				m.TeamB = models.ResolvedSlot(names[2*i+1])
			} else {
				prev := phases[r-1]
				m.TeamA = models.UnresolvedSlot(fmt.Sprintf("Winner %s %d", prev, 2*i+1))
				m.TeamB = models.UnresolvedSlot(fmt.Sprintf("Winner %s %d", prev, 2*i+2))
			}
			round.Matchups[i] = m
		}
		t.Rounds = append(t.Rounds, round)
		matchesInRound /= 2
	}

	for r := 0; r < len(t.Rounds)-1; r++ {
		next := t.Rounds[r+1].Matchups
		for i := range t.Rounds[r].Matchups {
			m := &t.Rounds[r].Matchups[i]
			targetID := next[i/2].ID
			m.NextMatchupID = &targetID
			m.WinnerSlot = sideForIndex(i)
		}
	}

	if semis := t.Round(models.PhaseSemifinal); semis != nil {
		thirdPlace := &models.Matchup{
			ID:    newID(),
			TeamA: models.UnresolvedSlot(fmt.Sprintf("Loser %s 1", models.PhaseSemifinal)),
			TeamB: models.UnresolvedSlot(fmt.Sprintf("Loser %s 2", models.PhaseSemifinal)),
		}
		for i := range semis.Matchups {
			targetID := thirdPlace.ID
			semis.Matchups[i].LoserNextMatchupID = &targetID
			semis.Matchups[i].LoserSlot = sideForIndex(i)
		}
		t.ThirdPlace = thirdPlace
	}

	assignReadyKeys(t, keys)
	return t, nil
}

func phasesFrom(entry models.Phase) []models.Phase {
	for i, p := range models.KnockoutPhases {
		if p == entry {
			return models.KnockoutPhases[i:]
		}
	}
	return nil
}

func sideForIndex(i int) models.Side {
	if i%2 == 0 {
		return models.SideA
	}
	return models.SideB
}

func assignReadyKeys(t *models.Tournament, keys SaveKeys) {
	for _, m := range t.AllMatchups() {
		if m.GameSaveKey == nil && m.IsReady() {
			key := matchupKey(t, m, keys)
			m.GameSaveKey = &key
		}
	}
}

func matchupKey(t *models.Tournament, m *models.Matchup, keys SaveKeys) string {
	if t.ThirdPlace != nil && t.ThirdPlace.ID == m.ID {
		return keys.ThirdPlace(t.Name, m.TeamA.Name, m.TeamB.Name)
	}
	return keys.Main(t.Name, m.TeamA.Name, m.TeamB.Name)
}
