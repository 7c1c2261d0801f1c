package brackets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/arbitro/models"
)

var (
	// ErrValidation aborts an operation before anything is mutated.
	ErrValidation = errors.New("validation failed")
	// ErrMatchupNotFound is a soft failure: the save key does not belong to the
	// entity. The engines return an unchanged copy alongside it.
	ErrMatchupNotFound = errors.New("no matchup for save key")
	// ErrMatchupNotReady is returned when a save key is requested for a matchup
	// whose teams are not both decided.
	ErrMatchupNotReady = errors.New("matchup teams are not decided yet")
)

const teamSeparator = " vs "

// normalizeEntrants trims names and rejects blanks, duplicates and names that
// would make a save key ambiguous.
func normalizeEntrants(entrants []string) ([]string, error) {
	names := make([]string, len(entrants))
	seen := make(map[string]struct{}, len(entrants))
	for i, raw := range entrants {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, fmt.Errorf("%w: entrant %d has a blank name", ErrValidation, i+1)
		}
		if strings.Contains(name, teamSeparator) {
			return nil, fmt.Errorf("%w: entrant name %q must not contain %q", ErrValidation, name, strings.TrimSpace(teamSeparator))
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: entrant %q is listed twice", ErrValidation, name)
		}
		seen[name] = struct{}{}
		names[i] = name
	}
	return names, nil
}

func validateOwnerName(kind, name, separator string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: %s name is required", ErrValidation, kind)
	}
	if strings.Contains(name, separator) {
		return "", fmt.Errorf("%w: %s name %q must not contain %q", ErrValidation, kind, name, separator)
	}
	return name, nil
}

func validateResult(result models.MatchResult) error {
	if result.TeamAScore < 0 || result.TeamBScore < 0 {
		return fmt.Errorf("%w: scores must be non-negative (got %d-%d)", ErrValidation, result.TeamAScore, result.TeamBScore)
	}
	return nil
}

// alignResult orients a result so that its A side is the matchup's A side.
func alignResult(result models.MatchResult, a, b models.Slot) models.MatchResult {
	if a.Name != b.Name && result.TeamAName == b.Name && result.TeamBName == a.Name {
		return result.Swapped()
	}
	return result
}

func resolveSlot(slot *models.Slot, name string) {
	slot.State = models.SlotResolved
	slot.Name = name
}
