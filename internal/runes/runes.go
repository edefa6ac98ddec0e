package runes

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"riftlens/internal/apperr"
)

// Tree mirrors one entry of runesReforged.json
type Tree struct {
	ID    int    `json:"id"`
	Key   string `json:"key"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Slots []struct {
		Runes []Rune `json:"runes"`
	} `json:"slots"`
}

type Rune struct {
	ID   int    `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// unknownName is used for ids missing from the table
const unknownName = "0"

// keystoneCategories maps each keystone icon name to its tree directory
var keystoneCategories = map[string]string{
	"Electrocute":  "Domination",
	"DarkHarvest":  "Domination",
	"HailOfBlades": "Domination",

	"PressTheAttack": "Precision",
	"LethalTempo":    "Precision",
	"FleetFootwork":  "Precision",
	"Conqueror":      "Precision",

	"SummonAery":  "Sorcery",
	"ArcaneComet": "Sorcery",
	"PhaseRush":   "Sorcery",

	"GraspOfTheUndying": "Resolve",
	"VeteranAftershock": "Resolve",
	"Guardian":          "Resolve",

	"GlacialAugment":    "Inspiration",
	"UnsealedSpellbook": "Inspiration",
	"FirstStrike":       "Inspiration",
}

// Resolver answers rune lookups from a table parsed once at startup
type Resolver struct {
	iconDir  string
	runeKeys map[int]string // rune ID -> key
	runeTree map[int]string // rune ID -> owning tree key
	treeKeys map[int]string // tree ID -> key
}

// Load parses the rune table at tablePath; icons are looked up under iconDir
func Load(tablePath, iconDir string) (*Resolver, error) {
	f, err := os.Open(tablePath)
	if err != nil {
		return nil, apperr.AssetNotFound(tablePath)
	}
	defer f.Close()

	return Parse(f, iconDir)
}

// Parse builds a Resolver from runesReforged.json content
func Parse(r io.Reader, iconDir string) (*Resolver, error) {
	var trees []Tree
	if err := json.NewDecoder(r).Decode(&trees); err != nil {
		return nil, apperr.Decode("rune table", err)
	}

	res := &Resolver{
		iconDir:  iconDir,
		runeKeys: make(map[int]string),
		runeTree: make(map[int]string),
		treeKeys: make(map[int]string, len(trees)),
	}
	for _, tree := range trees {
		res.treeKeys[tree.ID] = tree.Key
		for _, slot := range tree.Slots {
			for _, perk := range slot.Runes {
				res.runeKeys[perk.ID] = perk.Key
				res.runeTree[perk.ID] = tree.Key
			}
		}
	}
	return res, nil
}

// Len returns the number of runes indexed
func (r *Resolver) Len() int {
	return len(r.runeKeys)
}

// RuneName returns the key of a rune, or "0" when unknown
func (r *Resolver) RuneName(id int) string {
	if key, ok := r.runeKeys[id]; ok {
		return key
	}
	return unknownName
}

// TreeName returns the key of a rune tree, or "0" when unknown
func (r *Resolver) TreeName(id int) string {
	if key, ok := r.treeKeys[id]; ok {
		return key
	}
	return unknownName
}

// KeystoneName applies the icon-pack alias for Aftershock
func KeystoneName(name string) string {
	if name == "Aftershock" {
		return "VeteranAftershock"
	}
	return name
}

// SecondaryName applies the icon-pack alias for the Inspiration tree
func SecondaryName(name string) string {
	if name == "Inspiration" {
		return "Whimsy"
	}
	return name
}

// Category returns the tree directory holding a keystone's icon
func (r *Resolver) Category(keystoneID int) string {
	name := KeystoneName(r.RuneName(keystoneID))
	if category, ok := keystoneCategories[name]; ok {
		return category
	}
	return r.runeTree[keystoneID]
}

// KeystoneIconPath returns {Styles}/{category}/{name}/{name}.png.
// LethalTempo ships as LethalTempoTemp.png in the pack.
func (r *Resolver) KeystoneIconPath(keystoneID int) string {
	name := KeystoneName(r.RuneName(keystoneID))
	return KeystonePath(r.iconDir, r.Category(keystoneID), name)
}

// KeystonePath builds the keystone icon path for a name already aliased
func KeystonePath(iconDir, category, name string) string {
	file := name + ".png"
	if name == "LethalTempo" {
		file = name + "Temp.png"
	}
	return filepath.Join(iconDir, category, name, file)
}

// SecondaryIconPath finds the tree icon, whose filename carries a numeric
// prefix (e.g. 7203_Whimsy.png). When nothing matches, the glob pattern
// itself is returned so callers see a missing file.
func (r *Resolver) SecondaryIconPath(treeID int) string {
	return SecondaryPath(r.iconDir, SecondaryName(r.TreeName(treeID)))
}

// SecondaryPath globs {iconDir}/*{name}.png and returns the first match
func SecondaryPath(iconDir, name string) string {
	pattern := filepath.Join(iconDir, fmt.Sprintf("*%s.png", name))
	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		return pattern
	}
	sort.Strings(matches)
	return matches[0]
}
