package main

import (
	"riftlens/internal/ui"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// eventPresenter forwards view updates to the frontend as Wails events
type eventPresenter struct {
	app *App
}

func (p *eventPresenter) Busy(busy bool) {
	runtime.EventsEmit(p.app.ctx, "search:busy", map[string]interface{}{
		"busy": busy,
	})
}

func (p *eventPresenter) ShowProfile(card ui.ProfileCard) {
	runtime.EventsEmit(p.app.ctx, "profile:update", card)
}

func (p *eventPresenter) AppendMatches(page ui.MatchPage) {
	runtime.EventsEmit(p.app.ctx, "matches:append", map[string]interface{}{
		"sessionId":   page.SessionID,
		"reset":       page.Reset,
		"rows":        page.Rows,
		"loaded":      page.Loaded,
		"loadedLabel": page.LoadedLabel(),
		"wins":        page.Wins,
		"losses":      page.Losses,
	})
}

func (p *eventPresenter) ShowLoadMore(visible bool) {
	runtime.EventsEmit(p.app.ctx, "loadmore:visible", map[string]interface{}{
		"visible": visible,
	})
}

func (p *eventPresenter) ShowView(view ui.ViewName, detail *ui.DetailView) {
	runtime.EventsEmit(p.app.ctx, "view:show", map[string]interface{}{
		"view":   view,
		"detail": detail,
	})
}

// ShowError is the modal for failed searches and page loads
func (p *eventPresenter) ShowError(message string) {
	runtime.EventsEmit(p.app.ctx, "message:show", map[string]interface{}{
		"title":   "Error",
		"message": message,
	})
}

func (p *eventPresenter) Notice(message string) {
	runtime.EventsEmit(p.app.ctx, "notice:show", map[string]interface{}{
		"message": message,
	})
}
