package assets

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"riftlens/internal/apperr"

	"github.com/rs/zerolog"
)

// URLPrefix is where the desktop shell serves the asset pack to the frontend
const URLPrefix = "/dragontail/"

// Icon is a resolved image: Path on disk and URL for the frontend.
// Missing is set when Path is the placeholder standing in for a missing file.
type Icon struct {
	Path    string `json:"-"`
	URL     string `json:"url"`
	Missing bool   `json:"missing"`
}

// Layout describes where each image family lives in a dragontail pack
type Layout struct {
	Root    string
	Version string
	Locale  string
}

func (l Layout) ProfileIconDir() string {
	return filepath.Join(l.Root, l.Version, "img", "profileicon")
}

func (l Layout) ChampionIconDir() string {
	return filepath.Join(l.Root, l.Version, "img", "champion")
}

func (l Layout) ChampionSplashDir() string {
	return filepath.Join(l.Root, "img", "champion", "centered")
}

func (l Layout) ItemIconDir() string {
	return filepath.Join(l.Root, l.Version, "img", "item")
}

func (l Layout) RuneIconDir() string {
	return filepath.Join(l.Root, "img", "perk-images", "Styles")
}

func (l Layout) RuneTablePath() string {
	return filepath.Join(l.Root, l.Version, "data", l.Locale, "runesReforged.json")
}

// Placeholder is the "not found" image used for every missing asset
func (l Layout) Placeholder() string {
	return filepath.Join(l.ProfileIconDir(), "notfound.png")
}

// Resolver maps champion/item/profile identifiers to files in the asset pack.
// Every lookup falls back to the placeholder and logs a warning when the file is missing.
type Resolver struct {
	layout Layout
	logger zerolog.Logger
}

// NewResolver creates a resolver for the given pack layout
func NewResolver(layout Layout, logger zerolog.Logger) *Resolver {
	return &Resolver{layout: layout, logger: logger}
}

// Layout returns the pack layout
func (r *Resolver) Layout() Layout {
	return r.layout
}

// ProfileIcon resolves a summoner profile icon. The returned error is an
// ASSET_NOT_FOUND notice; the icon is still usable.
func (r *Resolver) ProfileIcon(id int) (Icon, error) {
	p := filepath.Join(r.layout.ProfileIconDir(), strconv.Itoa(id)+".png")
	icon, ok := r.lookup(p, "profile")
	if !ok {
		return icon, apperr.AssetNotFound(p)
	}
	return icon, nil
}

// NotFoundProfileIcon is shown when no summoner could be loaded
func (r *Resolver) NotFoundProfileIcon() Icon {
	return r.placeholder()
}

// ChampionIcon resolves the square champion portrait
func (r *Resolver) ChampionIcon(name string) Icon {
	icon, _ := r.lookup(filepath.Join(r.layout.ChampionIconDir(), name+".png"), "champion")
	return icon
}

// ChampionSplash resolves the stretched splash used in the detail rows
func (r *Resolver) ChampionSplash(name string) Icon {
	icon, _ := r.lookup(filepath.Join(r.layout.ChampionSplashDir(), name+"_0.jpg"), "splash")
	return icon
}

// ItemIcon resolves an item; id 0 is an empty inventory slot
func (r *Resolver) ItemIcon(id int) Icon {
	p := filepath.Join(r.layout.ItemIconDir(), strconv.Itoa(id)+".png")
	if id == 0 {
		if exists(p) {
			return r.icon(p, false)
		}
		return r.placeholder()
	}
	icon, _ := r.lookup(p, "item")
	return icon
}

// ItemIcons resolves the 7 inventory slots in order
func (r *Resolver) ItemIcons(items [7]int) []Icon {
	icons := make([]Icon, 0, len(items))
	for _, id := range items {
		icons = append(icons, r.ItemIcon(id))
	}
	return icons
}

// File resolves an arbitrary path inside the pack (used for rune icons)
func (r *Resolver) File(p, kind string) Icon {
	icon, _ := r.lookup(p, kind)
	return icon
}

func (r *Resolver) lookup(p, kind string) (Icon, bool) {
	if exists(p) {
		return r.icon(p, false), true
	}
	r.logger.Warn().Str("kind", kind).Str("path", p).Msg("Asset missing, using placeholder")
	return r.placeholder(), false
}

func (r *Resolver) placeholder() Icon {
	return r.icon(r.layout.Placeholder(), true)
}

func (r *Resolver) icon(p string, missing bool) Icon {
	return Icon{Path: p, URL: r.URL(p), Missing: missing}
}

// URL converts a path inside the pack root into the URL served to the frontend
func (r *Resolver) URL(p string) string {
	rel, err := filepath.Rel(r.layout.Root, p)
	if err != nil {
		return ""
	}
	return path.Join(URLPrefix, filepath.ToSlash(rel))
}

func exists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// Check verifies the pack root exists so a misconfigured ASSET_DIR is reported once at startup
func (r *Resolver) Check() error {
	info, err := os.Stat(r.layout.Root)
	if err != nil || !info.IsDir() {
		return apperr.Configuration(fmt.Sprintf("asset pack not found at %s", r.layout.Root))
	}
	return nil
}
