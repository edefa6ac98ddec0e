package ui

import (
	"sync"

	"riftlens/internal/apperr"
)

// ViewName identifies one of the two screens
type ViewName string

const (
	MainView        ViewName = "MainView"
	MatchDetailView ViewName = "MatchDetailView"
)

// ViewController owns which view is visible. MainView is the initial state;
// the only transitions are MainView -> MatchDetailView (Open) and back (Back/Close).
type ViewController struct {
	mu       sync.RWMutex
	current  ViewName
	detail   *DetailView
	onChange func(ViewName, *DetailView)
}

// NewViewController starts in MainView. onChange is called after every transition.
func NewViewController(onChange func(ViewName, *DetailView)) *ViewController {
	if onChange == nil {
		onChange = func(ViewName, *DetailView) {}
	}
	return &ViewController{current: MainView, onChange: onChange}
}

// Current returns the visible view
func (v *ViewController) Current() ViewName {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Detail returns the last detail model, if any
func (v *ViewController) Detail() *DetailView {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.detail
}

// Open shows the detail view for a match row
func (v *ViewController) Open(detail *DetailView) error {
	if detail == nil {
		return apperr.Validation("no match selected")
	}

	v.mu.Lock()
	if v.current != MainView {
		v.mu.Unlock()
		return apperr.Validation("match details are already open")
	}
	v.current = MatchDetailView
	v.detail = detail
	v.mu.Unlock()

	v.onChange(MatchDetailView, detail)
	return nil
}

// Back returns to the match list and keeps the detail model for reopening
func (v *ViewController) Back() error {
	return v.toMain(false)
}

// Close returns to the match list and discards the detail model
func (v *ViewController) Close() error {
	return v.toMain(true)
}

// Reset returns to MainView unconditionally (used when a new search starts)
func (v *ViewController) Reset() {
	v.mu.Lock()
	changed := v.current != MainView
	v.current = MainView
	v.detail = nil
	v.mu.Unlock()

	if changed {
		v.onChange(MainView, nil)
	}
}

func (v *ViewController) toMain(discard bool) error {
	v.mu.Lock()
	if v.current != MatchDetailView {
		v.mu.Unlock()
		return apperr.Validation("already on the match list")
	}
	v.current = MainView
	if discard {
		v.detail = nil
	}
	v.mu.Unlock()

	v.onChange(MainView, nil)
	return nil
}
