package main

import (
	"path/filepath"
	"testing"
	"time"

	"riftlens/internal/history"

	"github.com/rs/zerolog"
)

func TestRecentSearches(t *testing.T) {
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	a := &App{ctx: t.Context(), logger: zerolog.Nop(), history: store}
	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	for i, e := range []history.Entry{
		{GameName: "Faker", TagLine: "KR1", Platform: "KR"},
		{GameName: "Caps", TagLine: "EUW", Platform: "EUW1"},
	} {
		e.SearchedAt = base.Add(time.Duration(i) * time.Minute)
		if err := store.Record(t.Context(), e); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	got := a.RecentSearches()
	want := []RecentSearch{
		{GameName: "Caps", TagLine: "EUW", Platform: "EUW1", Label: "Caps #EUW (EUW1)"},
		{GameName: "Faker", TagLine: "KR1", Platform: "KR", Label: "Faker #KR1 (KR)"},
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entry %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}

	if err := a.ClearRecentSearches(); err != nil {
		t.Fatalf("ClearRecentSearches failed: %v", err)
	}
	if got := a.RecentSearches(); len(got) != 0 {
		t.Errorf("Expected no entries after clear, got %d", len(got))
	}
}

func TestRecentSearchesWithoutHistory(t *testing.T) {
	a := &App{ctx: t.Context(), logger: zerolog.Nop()}

	got := a.RecentSearches()
	if got == nil || len(got) != 0 {
		t.Errorf("Expected an empty non-nil list, got %#v", got)
	}
	if err := a.ClearRecentSearches(); err != nil {
		t.Errorf("ClearRecentSearches without a store: %v", err)
	}
}
