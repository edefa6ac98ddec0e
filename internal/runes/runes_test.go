package runes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"riftlens/internal/apperr"
)

const table = `[
  {"id": 8100, "key": "Domination", "name": "Domination", "slots": [
    {"runes": [{"id": 8112, "key": "Electrocute", "name": "Electrocute"}]},
    {"runes": [{"id": 8126, "key": "CheapShot", "name": "Cheap Shot"}]}
  ]},
  {"id": 8000, "key": "Precision", "name": "Precision", "slots": [
    {"runes": [{"id": 8008, "key": "LethalTempo", "name": "Lethal Tempo"},
               {"id": 8010, "key": "Conqueror", "name": "Conqueror"}]}
  ]},
  {"id": 8400, "key": "Resolve", "name": "Resolve", "slots": [
    {"runes": [{"id": 8439, "key": "Aftershock", "name": "Aftershock"},
               {"id": 8437, "key": "GraspOfTheUndying", "name": "Grasp"}]}
  ]},
  {"id": 8300, "key": "Inspiration", "name": "Inspiration", "slots": [
    {"runes": [{"id": 8351, "key": "GlacialAugment", "name": "Glacial Augment"}]}
  ]},
  {"id": 8200, "key": "Sorcery", "name": "Sorcery", "slots": [
    {"runes": [{"id": 8214, "key": "SummonAery", "name": "Summon Aery"}]}
  ]}
]`

func newResolver(t *testing.T) (*Resolver, string) {
	t.Helper()
	iconDir := t.TempDir()
	for _, f := range []string{"7200_Domination.png", "7201_Precision.png", "7203_Whimsy.png", "7204_Resolve.png"} {
		if err := os.WriteFile(filepath.Join(iconDir, f), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	r, err := Parse(strings.NewReader(table), iconDir)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return r, iconDir
}

func TestParseIndexes(t *testing.T) {
	r, _ := newResolver(t)

	if r.Len() != 7 {
		t.Errorf("Expected 7 runes, got %d", r.Len())
	}
	if r.RuneName(8112) != "Electrocute" {
		t.Errorf("Unexpected rune name: %s", r.RuneName(8112))
	}
	if r.TreeName(8300) != "Inspiration" {
		t.Errorf("Unexpected tree name: %s", r.TreeName(8300))
	}
	if r.RuneName(1) != "0" || r.TreeName(1) != "0" {
		t.Error("Expected unknown ids to resolve to \"0\"")
	}
}

func TestKeystoneIconPath(t *testing.T) {
	r, dir := newResolver(t)

	tests := []struct {
		name string
		id   int
		want string
	}{
		{"plain", 8112, filepath.Join(dir, "Domination", "Electrocute", "Electrocute.png")},
		{"lethal tempo file", 8008, filepath.Join(dir, "Precision", "LethalTempo", "LethalTempoTemp.png")},
		{"aftershock alias", 8439, filepath.Join(dir, "Resolve", "VeteranAftershock", "VeteranAftershock.png")},
		{"inspiration keystone", 8351, filepath.Join(dir, "Inspiration", "GlacialAugment", "GlacialAugment.png")},
		{"unknown", 1, filepath.Join(dir, "", "0", "0.png")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.KeystoneIconPath(tt.id); got != tt.want {
				t.Errorf("KeystoneIconPath(%d) = %s, want %s", tt.id, got, tt.want)
			}
		})
	}
}

func TestAftershockMatchesVeteranAftershock(t *testing.T) {
	_, dir := newResolver(t)
	aliased := KeystonePath(dir, "Resolve", KeystoneName("Aftershock"))
	direct := KeystonePath(dir, "Resolve", KeystoneName("VeteranAftershock"))
	if aliased != direct {
		t.Errorf("Expected same path, got %s and %s", aliased, direct)
	}
}

func TestCategoryFallsBackToOwningTree(t *testing.T) {
	r, _ := newResolver(t)
	// CheapShot is not a keystone, so the fixed table does not know it
	if got := r.Category(8126); got != "Domination" {
		t.Errorf("Expected Domination, got %s", got)
	}
}

func TestSecondaryIconPath(t *testing.T) {
	r, dir := newResolver(t)

	if got := r.SecondaryIconPath(8300); got != filepath.Join(dir, "7203_Whimsy.png") {
		t.Errorf("Expected Inspiration to resolve via Whimsy, got %s", got)
	}
	if got := r.SecondaryIconPath(8100); got != filepath.Join(dir, "7200_Domination.png") {
		t.Errorf("Unexpected Domination icon: %s", got)
	}

	// No Sorcery icon in the fixture: the pattern comes back so the caller sees a missing file
	got := r.SecondaryIconPath(8200)
	if got != filepath.Join(dir, "*Sorcery.png") {
		t.Errorf("Expected glob pattern for missing icon, got %s", got)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"), "")
	if apperr.CodeOf(err) != apperr.CodeAssetNotFound {
		t.Errorf("Expected ASSET_NOT_FOUND, got %v", err)
	}

	_, err = Parse(strings.NewReader(`{"not":"a list"}`), "")
	if apperr.CodeOf(err) != apperr.CodeDecode {
		t.Errorf("Expected DECODE, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "runesReforged.json")
	if err := os.WriteFile(p, []byte(table), 0644); err != nil {
		t.Fatal(err)
	}
	r, err := Load(p, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if r.RuneName(8010) != "Conqueror" {
		t.Errorf("Unexpected rune name: %s", r.RuneName(8010))
	}
}
