package ui

import (
	"context"
	"sync"

	"riftlens/internal/apperr"
	"riftlens/internal/assets"
	"riftlens/internal/history"
	"riftlens/internal/riot"

	"github.com/rs/zerolog"
)

const profileIconNotice = "Profile icon not found."

// MatchAPI is the part of the riot client the views need
type MatchAPI interface {
	ResolveAccount(ctx context.Context, gameName, tagLine, routingHost string) (string, error)
	GetSummoner(ctx context.Context, puuid, platformHost string) (*riot.Summoner, error)
	ListMatchIDs(ctx context.Context, puuid, routingHost string, start, count int) ([]string, error)
	GetMatchDetails(ctx context.Context, matchIDs []string, routingHost string) ([]*riot.Match, error)
}

// HistoryRecorder remembers search inputs
type HistoryRecorder interface {
	Record(ctx context.Context, e history.Entry) error
}

// ServiceOption configures a Service
type ServiceOption func(*Service)

// WithHistory records every search whose account resolves
func WithHistory(h HistoryRecorder) ServiceOption {
	return func(s *Service) {
		s.history = h
	}
}

// WithServiceLogger sets the logger
func WithServiceLogger(logger zerolog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// Service drives both views. Bound methods return immediately; network work
// runs on the serial Runner and reports back through the Presenter.
type Service struct {
	api       MatchAPI
	assets    *assets.Resolver
	runes     RuneLookup
	history   HistoryRecorder
	presenter Presenter
	views     *ViewController
	logger    zerolog.Logger

	runner *Runner

	mu            sync.Mutex
	session       *Session
	cancelSession context.CancelFunc
	matches       []*riot.Match
	loaded        int
	wins          int
	losses        int
	loadMore      bool
}

// NewService wires the views to the API client and asset resolvers
func NewService(api MatchAPI, res *assets.Resolver, runeLookup RuneLookup, presenter Presenter, opts ...ServiceOption) *Service {
	s := &Service{
		api:       api,
		assets:    res,
		runes:     runeLookup,
		presenter: presenter,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.views = NewViewController(presenter.ShowView)
	return s
}

// Start launches the job runner. Jobs get contexts derived from ctx.
func (s *Service) Start(ctx context.Context) {
	s.runner = NewRunner(ctx, s.presenter.Busy)
}

// Stop cancels in-flight work and waits for the runner to exit
func (s *Service) Stop() {
	s.mu.Lock()
	if s.cancelSession != nil {
		s.cancelSession()
	}
	s.mu.Unlock()

	if s.runner != nil {
		s.runner.Stop()
	}
}

// Wait blocks until all queued jobs have finished
func (s *Service) Wait() {
	if s.runner != nil {
		s.runner.Wait()
	}
}

// Views exposes the view controller
func (s *Service) Views() *ViewController {
	return s.views
}

// Session returns a copy of the active session, if a search has been made
func (s *Service) Session() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return Session{}, false
	}
	return s.session.Snapshot(), true
}

// Search starts a new session: the list is cleared and the profile and first
// page are fetched in the background. Validation errors are reported synchronously.
func (s *Service) Search(req SearchRequest) error {
	sess, err := NewSession(req)
	if err != nil {
		s.presenter.ShowError(apperr.UserMessage(err))
		return err
	}

	s.mu.Lock()
	if s.cancelSession != nil {
		s.cancelSession()
		s.cancelSession = nil
	}
	s.session = sess
	s.matches = nil
	s.loaded, s.wins, s.losses = 0, 0, 0
	s.loadMore = false
	s.mu.Unlock()

	s.views.Reset()
	s.presenter.ShowLoadMore(false)
	s.presenter.AppendMatches(MatchPage{SessionID: sess.ID, Reset: true, Rows: []MatchRow{}})

	s.logger.Info().
		Str("session", sess.ID).
		Str("platform", sess.Request.Platform).
		Msg("Search started")

	snapshot := sess.Snapshot()
	return s.submit(func(ctx context.Context) {
		s.runSearch(ctx, snapshot)
	})
}

// LoadMore appends the next page of the active session
func (s *Service) LoadMore() error {
	s.mu.Lock()
	if s.session == nil || s.session.PUUID == "" {
		s.mu.Unlock()
		err := apperr.Validation("Search for a summoner first.")
		s.presenter.ShowError(err.Error())
		return err
	}
	id := s.session.ID
	s.loadMore = false
	s.mu.Unlock()

	s.presenter.ShowLoadMore(false)
	return s.submit(func(ctx context.Context) {
		ctx, ok := s.bind(ctx, id)
		if !ok {
			return
		}
		s.loadPage(ctx, id)
	})
}

// OnScroll reports the list's scroll window as fractions of its height.
// The "Load More" control appears once the list is scrolled to its bottom edge.
func (s *Service) OnScroll(top, bottom float64) {
	visible := top > 0 && bottom == 1.0

	s.mu.Lock()
	if s.session == nil || s.session.PUUID == "" || visible == s.loadMore {
		s.mu.Unlock()
		return
	}
	s.loadMore = visible
	s.mu.Unlock()

	s.presenter.ShowLoadMore(visible)
}

// OpenMatch switches to the detail view for the match behind a row
func (s *Service) OpenMatch(index int) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.matches) || s.session == nil {
		s.mu.Unlock()
		return apperr.Validation("no match selected")
	}
	match := s.matches[index]
	puuid := s.session.PUUID
	gameName := s.session.Request.GameName
	s.mu.Unlock()

	detail := buildDetailView(s.assets, s.runes, match, puuid, gameName)
	return s.views.Open(detail)
}

// Back returns to the list, keeping the detail model
func (s *Service) Back() error {
	return s.views.Back()
}

// Close returns to the list and discards the detail model
func (s *Service) Close() error {
	return s.views.Close()
}

func (s *Service) submit(run func(context.Context)) error {
	if s.runner == nil {
		return apperr.Configuration("service not started")
	}
	if !s.runner.Submit(run) {
		s.logger.Warn().Msg("Job queue full, request dropped")
		return apperr.Validation("Still loading, please wait.")
	}
	return nil
}

// bind derives a context that is cancelled when a newer search starts.
// ok is false when id is no longer the active session.
func (s *Service) bind(parent context.Context, id string) (context.Context, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil || s.session.ID != id {
		return nil, false
	}
	ctx, cancel := context.WithCancel(parent)
	if s.cancelSession != nil {
		s.cancelSession()
	}
	s.cancelSession = cancel
	return ctx, true
}

func (s *Service) isCurrent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session != nil && s.session.ID == id
}

func (s *Service) runSearch(ctx context.Context, sess Session) {
	ctx, ok := s.bind(ctx, sess.ID)
	if !ok {
		return
	}
	req := sess.Request

	puuid, err := s.api.ResolveAccount(ctx, req.GameName, req.TagLine, sess.RoutingHost)
	if err != nil {
		s.fail(sess.ID, err)
		return
	}

	s.mu.Lock()
	if s.session == nil || s.session.ID != sess.ID {
		s.mu.Unlock()
		return
	}
	s.session.PUUID = puuid
	s.mu.Unlock()

	s.logger.Debug().Str("puuid", shortID(puuid)).Msg("Account resolved")
	s.recordHistory(ctx, req)

	summoner, err := s.api.GetSummoner(ctx, puuid, sess.PlatformHost)
	if err != nil {
		card, _ := buildProfileCard(s.assets, req, nil)
		card.SessionID = sess.ID
		s.showProfile(card)
		s.fail(sess.ID, err)
		return
	}

	card, iconErr := buildProfileCard(s.assets, req, summoner)
	card.SessionID = sess.ID
	if !s.showProfile(card) {
		return
	}
	if iconErr != nil {
		s.logger.Warn().Err(iconErr).Int("icon", summoner.ProfileIconID).Msg("Profile icon missing")
		s.presenter.Notice(profileIconNotice)
	}

	s.loadPage(ctx, sess.ID)
}

// showProfile emits the card unless its session has been superseded
func (s *Service) showProfile(card ProfileCard) bool {
	if !s.isCurrent(card.SessionID) {
		return false
	}
	s.presenter.ShowProfile(card)
	return true
}

// loadPage fetches one page for the session. The cursor only moves when the
// whole page succeeds.
func (s *Service) loadPage(ctx context.Context, id string) {
	s.mu.Lock()
	if s.session == nil || s.session.ID != id {
		s.mu.Unlock()
		return
	}
	sess := s.session.Snapshot()
	s.mu.Unlock()

	ids, err := s.api.ListMatchIDs(ctx, sess.PUUID, sess.RoutingHost, sess.NextStart, sess.PageSize)
	if err != nil {
		s.fail(id, err)
		return
	}

	matches, err := s.api.GetMatchDetails(ctx, ids, sess.RoutingHost)
	if err != nil {
		s.fail(id, err)
		return
	}

	s.mu.Lock()
	if s.session == nil || s.session.ID != id {
		s.mu.Unlock()
		s.logger.Debug().Str("session", id).Msg("Dropping page for superseded search")
		return
	}
	base := len(s.matches)
	s.matches = append(s.matches, matches...)
	s.session.NextStart += len(ids)
	next := s.session.NextStart
	s.mu.Unlock()

	// row shaping stats asset files, so it runs without holding s.mu
	rows := make([]MatchRow, 0, len(matches))
	wins, losses := 0, 0
	for i, m := range matches {
		row, ok := buildMatchRow(s.assets, base+i, sess.PUUID, m)
		if !ok {
			s.logger.Warn().Str("match_id", m.Metadata.MatchID).Msg("Searched player not in match, skipping row")
			continue
		}
		if row.Win {
			wins++
		} else {
			losses++
		}
		rows = append(rows, row)
	}

	s.mu.Lock()
	if s.session == nil || s.session.ID != id {
		s.mu.Unlock()
		s.logger.Debug().Str("session", id).Msg("Dropping page for superseded search")
		return
	}
	s.loaded += len(rows)
	s.wins += wins
	s.losses += losses
	page := MatchPage{
		SessionID: id,
		Rows:      rows,
		Loaded:    s.loaded,
		Wins:      s.wins,
		Losses:    s.losses,
	}
	s.mu.Unlock()

	s.logger.Info().
		Int("rows", len(rows)).
		Int("next_start", next).
		Msg("Match page loaded")
	s.presenter.AppendMatches(page)
}

func (s *Service) recordHistory(ctx context.Context, req SearchRequest) {
	if s.history == nil {
		return
	}
	err := s.history.Record(ctx, history.Entry{
		GameName: req.GameName,
		TagLine:  req.TagLine,
		Platform: req.Platform,
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to record search")
	}
}

// fail reports err to the user unless the session has been superseded
func (s *Service) fail(id string, err error) {
	if !s.isCurrent(id) {
		s.logger.Debug().Err(err).Str("session", id).Msg("Ignoring error from superseded search")
		return
	}
	s.logger.Error().
		Err(err).
		Str("code", string(apperr.CodeOf(err))).
		Msg("Request failed")
	s.presenter.ShowError(apperr.UserMessage(err))
}

func shortID(puuid string) string {
	if len(puuid) > 8 {
		return puuid[:8]
	}
	return puuid
}
