package main

import (
	"riftlens/internal/history"
	"riftlens/internal/riot"
)

// RecentSearch is one entry of the recent-search dropdown
type RecentSearch struct {
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
	Platform string `json:"platform"`
	Label    string `json:"label"`
}

// Platforms returns the region dropdown options in display order
func (a *App) Platforms() []string {
	out := make([]string, len(riot.Platforms))
	copy(out, riot.Platforms)
	return out
}

// RecentSearches returns the last searches, newest first
func (a *App) RecentSearches() []RecentSearch {
	if a.history == nil {
		return []RecentSearch{}
	}

	entries, err := a.history.Recent(a.ctx, history.DefaultLimit)
	if err != nil {
		a.logger.Warn().Err(err).Msg("Failed to read recent searches")
		return []RecentSearch{}
	}

	out := make([]RecentSearch, 0, len(entries))
	for _, e := range entries {
		out = append(out, RecentSearch{
			GameName: e.GameName,
			TagLine:  e.TagLine,
			Platform: e.Platform,
			Label:    e.GameName + " #" + e.TagLine + " (" + e.Platform + ")",
		})
	}
	return out
}

// ClearRecentSearches forgets every remembered search
func (a *App) ClearRecentSearches() error {
	if a.history == nil {
		return nil
	}
	return a.history.Clear(a.ctx)
}
