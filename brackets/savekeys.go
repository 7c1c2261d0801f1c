package brackets

import (
	"fmt"
	"strings"
)

const (
	tournamentNameSeparator = "): "
	leagueNameSeparator     = ": "
)

// SaveKeys holds the locale-dependent words of the save-key formats:
//
//	"<MainPrefix> (<tournament>): <A> vs <B>"
//	"<ThirdPlacePrefix> (<tournament>): <A> vs <B>"
//	"<LeaguePrefix>: <league>: <A> vs <B>"
//	"<LeaguePrefix>: <league>: <A> vs <B> <ReturnLegMarker>"
type SaveKeys struct {
	MainPrefix       string
	ThirdPlacePrefix string
	LeaguePrefix     string
	ReturnLegMarker  string
}

func DefaultSaveKeys() SaveKeys {
	return SaveKeys{
		MainPrefix:       "Tournament",
		ThirdPlacePrefix: "Third Place",
		LeaguePrefix:     "League",
		ReturnLegMarker:  "(return leg)",
	}
}

// KeyKind is the owner type a save key dispatches to.
type KeyKind int

const (
	KeyStandalone KeyKind = iota
	KeyTournament
	KeyThirdPlace
	KeyLeague
)

func (k KeyKind) String() string {
	switch k {
	case KeyTournament:
		return "tournament"
	case KeyThirdPlace:
		return "third_place"
	case KeyLeague:
		return "league"
	default:
		return "standalone"
	}
}

// IsTournament reports whether the key belongs to a bracket.
func (k KeyKind) IsTournament() bool {
	return k == KeyTournament || k == KeyThirdPlace
}

func (k SaveKeys) mainHead() string       { return k.MainPrefix + " (" }
func (k SaveKeys) thirdPlaceHead() string { return k.ThirdPlacePrefix + " (" }
func (k SaveKeys) leagueHead() string     { return k.LeaguePrefix + leagueNameSeparator }

// Validate rejects blank words and prefix sets where one dispatch prefix is a
// prefix of another.
func (k SaveKeys) Validate() error {
	words := map[string]string{
		"main prefix":        k.MainPrefix,
		"third place prefix": k.ThirdPlacePrefix,
		"league prefix":      k.LeaguePrefix,
		"return leg marker":  k.ReturnLegMarker,
	}
	for label, w := range words {
		if strings.TrimSpace(w) == "" {
			return fmt.Errorf("%w: save key %s is blank", ErrValidation, label)
		}
	}
	heads := []string{k.mainHead(), k.thirdPlaceHead(), k.leagueHead()}
	for i, a := range heads {
		for j, b := range heads {
			if i != j && strings.HasPrefix(b, a) {
				return fmt.Errorf("%w: save key prefixes %q and %q are ambiguous", ErrValidation, a, b)
			}
		}
	}
	return nil
}

func (k SaveKeys) Main(tournament, teamA, teamB string) string {
	return fmt.Sprintf("%s%s%s%s%s%s", k.mainHead(), tournament, tournamentNameSeparator, teamA, teamSeparator, teamB)
}

func (k SaveKeys) ThirdPlace(tournament, teamA, teamB string) string {
	return fmt.Sprintf("%s%s%s%s%s%s", k.thirdPlaceHead(), tournament, tournamentNameSeparator, teamA, teamSeparator, teamB)
}

func (k SaveKeys) League(league, teamA, teamB string) string {
	return fmt.Sprintf("%s%s%s%s%s%s", k.leagueHead(), league, leagueNameSeparator, teamA, teamSeparator, teamB)
}

func (k SaveKeys) ReturnLeg(league, teamA, teamB string) string {
	return k.League(league, teamA, teamB) + " " + k.ReturnLegMarker
}

// Classify tells which engine a save key belongs to and the name of the
// tournament or league that owns it. Keys that match no prefix are standalone.
func (k SaveKeys) Classify(key string) (KeyKind, string) {
	switch {
	case strings.HasPrefix(key, k.mainHead()):
		if owner, ok := ownerName(key[len(k.mainHead()):], tournamentNameSeparator); ok {
			return KeyTournament, owner
		}
	case strings.HasPrefix(key, k.thirdPlaceHead()):
		if owner, ok := ownerName(key[len(k.thirdPlaceHead()):], tournamentNameSeparator); ok {
			return KeyThirdPlace, owner
		}
	case strings.HasPrefix(key, k.leagueHead()):
		if owner, ok := ownerName(key[len(k.leagueHead()):], leagueNameSeparator); ok {
			return KeyLeague, owner
		}
	}
	return KeyStandalone, ""
}

func ownerName(rest, separator string) (string, bool) {
	i := strings.Index(rest, separator)
	if i <= 0 {
		return "", false
	}
	return rest[:i], true
}
