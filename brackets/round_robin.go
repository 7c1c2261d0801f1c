package brackets

import (
	"fmt"

	"github.com/Dosada05/arbitro/models"
)

// byePosition marks the padding entrant added to odd-sized leagues. It is an
// index, not a name, so no real team can be mistaken for it.
const byePosition = -1

// BuildLeagueSchedule creates a double round-robin league with the circle
// method. Every pair meets twice: once in the first leg and once, with home and
// away swapped, in the return leg.
func BuildLeagueSchedule(entrants []string, name string, keys SaveKeys) (*models.League, error) {
	name, err := validateOwnerName("league", name, leagueNameSeparator)
	if err != nil {
		return nil, err
	}
	if len(entrants) < 2 {
		return nil, fmt.Errorf("%w: a league needs at least 2 entrants, got %d", ErrValidation, len(entrants))
	}
	names, err := normalizeEntrants(entrants)
	if err != nil {
		return nil, err
	}

	positions := make([]int, len(names))
	for i := range positions {
		positions[i] = i
	}
	if len(positions)%2 == 1 {
		positions = append(positions, byePosition)
	}

	n := len(positions)
	numRounds := n - 1
	matchesPerRound := n / 2

	matchOrder := 0
	firstLeg := make([]models.LeagueMatchup, 0, numRounds*matchesPerRound)
	for round := 0; round < numRounds; round++ {
		for i := 0; i < matchesPerRound; i++ {
			home, away := positions[i], positions[n-1-i]
			if home == byePosition || away == byePosition {
				continue
			}
			matchOrder++
			firstLeg = append(firstLeg, models.LeagueMatchup{
				ID:          matchOrder,
				Round:       round + 1,
				TeamA:       models.ResolvedSlot(names[home]),
				TeamB:       models.ResolvedSlot(names[away]),
				GameSaveKey: keys.League(name, names[home], names[away]),
			})
		}
		// Index 0 stays fixed; the last entrant moves to index 1.
		last := positions[n-1]
		copy(positions[2:], positions[1:n-1])
		positions[1] = last
	}

	matchups := make([]models.LeagueMatchup, 0, 2*len(firstLeg))
	matchups = append(matchups, firstLeg...)
	for _, m := range firstLeg {
		matchOrder++
		matchups = append(matchups, models.LeagueMatchup{
			ID:          matchOrder,
			Round:       m.Round + numRounds,
			TeamA:       models.ResolvedSlot(m.TeamB.Name),
			TeamB:       models.ResolvedSlot(m.TeamA.Name),
			GameSaveKey: keys.ReturnLeg(name, m.TeamB.Name, m.TeamA.Name),
		})
	}

	stats := make([]models.TeamStanding, len(names))
	for i, team := range names {
		stats[i] = models.TeamStanding{Name: team}
	}

	return &models.League{
		Name:     name,
		Stats:    stats,
		Matchups: matchups,
	}, nil
}
