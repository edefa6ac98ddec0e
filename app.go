package main

import (
	"context"
	"strings"
	"sync"

	"riftlens/internal/assets"
	"riftlens/internal/config"
	"riftlens/internal/history"
	"riftlens/internal/riot"
	"riftlens/internal/runes"
	"riftlens/internal/ui"

	"github.com/rs/zerolog"
)

// App struct
type App struct {
	ctx     context.Context
	cfg     *config.Config
	logger  zerolog.Logger
	client  *riot.Client
	assets  *assets.Resolver
	runes   *runes.Resolver
	history *history.Store
	service *ui.Service

	statusMu  sync.RWMutex
	keyStatus KeyStatus
}

// NewApp creates a new App application struct. The asset resolver and rune
// table are ready before the window opens so the asset handler can serve them.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	layout := assets.Layout{Root: cfg.AssetDir, Version: cfg.Version, Locale: cfg.Locale}

	a := &App{
		cfg:    cfg,
		logger: logger,
		client: riot.NewClient(cfg.APIKey,
			riot.WithTimeout(cfg.HTTPTimeout),
			riot.WithLogger(logger.With().Str("component", "riot").Logger()),
		),
		assets:    assets.NewResolver(layout, logger.With().Str("component", "assets").Logger()),
		keyStatus: KeyStatus{Message: "Checking API key..."},
	}

	if err := a.assets.Check(); err != nil {
		logger.Error().Err(err).Msg("Asset pack unavailable, every icon will use the placeholder")
	}

	table, err := runes.Load(layout.RuneTablePath(), layout.RuneIconDir())
	if err != nil {
		logger.Error().Err(err).Str("path", layout.RuneTablePath()).Msg("Failed to load rune table")
		table, _ = runes.Parse(strings.NewReader("[]"), layout.RuneIconDir())
	} else {
		logger.Info().Int("runes", table.Len()).Msg("Rune table loaded")
	}
	a.runes = table

	return a
}

// startup is called when the app starts
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	opts := []ui.ServiceOption{
		ui.WithServiceLogger(a.logger.With().Str("component", "ui").Logger()),
	}

	store, err := history.Open(a.cfg.HistoryDB)
	if err != nil {
		a.logger.Warn().Err(err).Str("path", a.cfg.HistoryDB).Msg("Recent searches disabled")
	} else {
		a.history = store
		opts = append(opts, ui.WithHistory(store))
	}

	a.service = ui.NewService(a.client, a.assets, a.runes, &eventPresenter{app: a}, opts...)
	a.service.Start(ctx)

	go a.checkAPIKey()
}

// shutdown is called when the app is closing
func (a *App) shutdown(ctx context.Context) {
	if a.service != nil {
		a.service.Stop()
	}
	if a.history != nil {
		if err := a.history.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("Failed to close history database")
		}
	}
}

// Search starts a new lookup for gameName#tagLine on a platform
func (a *App) Search(gameName, tagLine, platform string) error {
	return a.service.Search(ui.SearchRequest{
		GameName: gameName,
		TagLine:  tagLine,
		Platform: platform,
	})
}

// LoadMore appends the next page of matches
func (a *App) LoadMore() error {
	return a.service.LoadMore()
}

// OnScroll is called by the match list with its visible window as fractions
func (a *App) OnScroll(top, bottom float64) {
	a.service.OnScroll(top, bottom)
}

// OpenMatch shows the detail view for a match row
func (a *App) OpenMatch(index int) error {
	return a.service.OpenMatch(index)
}

// Back returns from the detail view to the match list
func (a *App) Back() error {
	return a.service.Back()
}

// Close dismisses the detail view
func (a *App) Close() error {
	return a.service.Close()
}
