package brackets

import (
	"errors"
	"testing"
)

func TestSaveKeyFormats(t *testing.T) {
	keys := DefaultSaveKeys()
	testCases := []struct {
		got  string
		want string
	}{
		{keys.Main("Copa", "Brazil", "Argentina"), "Tournament (Copa): Brazil vs Argentina"},
		{keys.ThirdPlace("Copa", "Chile", "Peru"), "Third Place (Copa): Chile vs Peru"},
		{keys.League("Liga", "Ajax", "PSV"), "League: Liga: Ajax vs PSV"},
		{keys.ReturnLeg("Liga", "PSV", "Ajax"), "League: Liga: PSV vs Ajax (return leg)"},
	}
	for _, tc := range testCases {
		if tc.got != tc.want {
			t.Errorf("expected %q, got %q", tc.want, tc.got)
		}
	}
}

func TestClassify(t *testing.T) {
	keys := DefaultSaveKeys()
	testCases := []struct {
		key       string
		wantKind  KeyKind
		wantOwner string
	}{
		{"Tournament (Copa): Brazil vs Argentina", KeyTournament, "Copa"},
		{"Tournament (Copa: 2026): Brazil vs Argentina", KeyTournament, "Copa: 2026"},
		{"Third Place (Copa): Chile vs Peru", KeyThirdPlace, "Copa"},
		{"League: Liga: Ajax vs PSV", KeyLeague, "Liga"},
		{"League: Liga (Norte): PSV vs Ajax (return leg)", KeyLeague, "Liga (Norte)"},
		{"Friendly: Ajax vs PSV", KeyStandalone, ""},
		{"Tournament (broken", KeyStandalone, ""},
		{"", KeyStandalone, ""},
	}
	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			kind, owner := keys.Classify(tc.key)
			if kind != tc.wantKind || owner != tc.wantOwner {
				t.Errorf("Classify(%q) = (%s, %q), want (%s, %q)", tc.key, kind, owner, tc.wantKind, tc.wantOwner)
			}
		})
	}
}

func TestClassifyCustomPrefixes(t *testing.T) {
	keys := SaveKeys{
		MainPrefix:       "Torneio",
		ThirdPlacePrefix: "Terceiro Lugar",
		LeaguePrefix:     "Liga",
		ReturnLegMarker:  "(volta)",
	}
	if err := keys.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}

	key := keys.ReturnLeg("Brasileirão", "Santos", "Flamengo")
	if key != "Liga: Brasileirão: Santos vs Flamengo (volta)" {
		t.Errorf("unexpected key %q", key)
	}
	if kind, owner := keys.Classify(key); kind != KeyLeague || owner != "Brasileirão" {
		t.Errorf("Classify(%q) = (%s, %q)", key, kind, owner)
	}
	if kind, _ := keys.Classify(DefaultSaveKeys().Main("Copa", "A", "B")); kind != KeyStandalone {
		t.Errorf("default-prefixed key classified as %s", kind)
	}
}

func TestSaveKeysValidate(t *testing.T) {
	if err := DefaultSaveKeys().Validate(); err != nil {
		t.Fatalf("default save keys rejected: %v", err)
	}

	testCases := []struct {
		name string
		keys SaveKeys
	}{
		{"blank main prefix", SaveKeys{MainPrefix: " ", ThirdPlacePrefix: "3rd", LeaguePrefix: "League", ReturnLegMarker: "(2)"}},
		{"blank marker", SaveKeys{MainPrefix: "Cup", ThirdPlacePrefix: "3rd", LeaguePrefix: "League", ReturnLegMarker: ""}},
		{"identical prefixes", SaveKeys{MainPrefix: "Cup", ThirdPlacePrefix: "Cup", LeaguePrefix: "League", ReturnLegMarker: "(2)"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.keys.Validate(); !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestKeyKindIsTournament(t *testing.T) {
	if !KeyTournament.IsTournament() || !KeyThirdPlace.IsTournament() {
		t.Error("bracket keys should report IsTournament")
	}
	if KeyLeague.IsTournament() || KeyStandalone.IsTournament() {
		t.Error("league and standalone keys are not tournament keys")
	}
}
