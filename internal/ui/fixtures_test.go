package ui

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"riftlens/internal/assets"
	"riftlens/internal/riot"
	"riftlens/internal/runes"

	"github.com/rs/zerolog"
)

const runeTable = `[
  {"id": 8100, "key": "Domination", "name": "Domination", "slots": [
    {"runes": [{"id": 8112, "key": "Electrocute", "name": "Electrocute"}]}
  ]},
  {"id": 8300, "key": "Inspiration", "name": "Inspiration", "slots": [
    {"runes": [{"id": 8351, "key": "GlacialAugment", "name": "Glacial Augment"}]}
  ]}
]`

func touch(t *testing.T, p string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, nil, 0644); err != nil {
		t.Fatal(err)
	}
}

// newAssetPack builds a minimal dragontail tree with icons for Ahri, items
// 0 and 3157, profile icon 4 and the Domination/Inspiration rune icons
func newAssetPack(t *testing.T) (*assets.Resolver, *runes.Resolver) {
	t.Helper()
	layout := assets.Layout{Root: t.TempDir(), Version: "14.20.1", Locale: "en_GB"}

	touch(t, layout.Placeholder())
	touch(t, filepath.Join(layout.ProfileIconDir(), "4.png"))
	touch(t, filepath.Join(layout.ChampionIconDir(), "Ahri.png"))
	touch(t, filepath.Join(layout.ChampionSplashDir(), "Ahri_0.jpg"))
	touch(t, filepath.Join(layout.ItemIconDir(), "0.png"))
	touch(t, filepath.Join(layout.ItemIconDir(), "3157.png"))
	touch(t, filepath.Join(layout.RuneIconDir(), "Domination", "Electrocute", "Electrocute.png"))
	touch(t, filepath.Join(layout.RuneIconDir(), "7203_Whimsy.png"))

	runeLookup, err := runes.Parse(strings.NewReader(runeTable), layout.RuneIconDir())
	if err != nil {
		t.Fatalf("Parse rune table: %v", err)
	}
	return assets.NewResolver(layout, zerolog.Nop()), runeLookup
}

func participant(puuid, name string, win bool, dealt, taken int) riot.Participant {
	return riot.Participant{
		PUUID:                       puuid,
		RiotIDGameName:              name,
		ChampionName:                "Ahri",
		ChampLevel:                  16,
		Win:                         win,
		Kills:                       7,
		Deaths:                      2,
		Assists:                     9,
		TotalMinionsKilled:          240,
		GoldEarned:                  12345,
		Item0:                       3157,
		TotalDamageDealtToChampions: dealt,
		TotalDamageTaken:            taken,
		Perks: riot.Perks{Styles: []riot.PerkStyle{
			{Style: 8100, Selections: []riot.PerkSelection{{Perk: 8112}}},
			{Style: 8300},
		}},
		Challenges: riot.Challenges{KDA: 8, GoldPerMinute: 411.2},
	}
}

// newMatch builds a 10-player match; the searched player is participant 0
func newMatch(id, selfPUUID string, win bool) *riot.Match {
	end := int64(1700000000000)
	m := &riot.Match{
		Metadata: riot.MatchMetadata{MatchID: id},
		Info: riot.MatchInfo{
			GameDuration:     1800,
			GameEndTimestamp: &end,
			GameMode:         "CLASSIC",
		},
	}
	m.Info.Participants = append(m.Info.Participants, participant(selfPUUID, "Faker", win, 40000, 20000))
	for i := 1; i < 10; i++ {
		m.Info.Participants = append(m.Info.Participants,
			participant(fmt.Sprintf("other-%d", i), fmt.Sprintf("Player%d", i), (i < 5) == win, 1000*i, 2000*i))
	}
	return m
}

// fakeUpstream serves the four Riot endpoints from an in-memory match list
type fakeUpstream struct {
	mu         sync.Mutex
	puuid      string
	matches    []*riot.Match
	summoner   int // HTTP status for the summoner endpoint
	failMatch  string
	idRequests []string
}

func (f *fakeUpstream) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		path := r.URL.Path
		switch {
		case strings.HasPrefix(path, "/riot/account/v1/accounts/by-riot-id/"):
			if f.puuid == "" {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"status":{"message":"Data not found","status_code":404}}`))
				return
			}
			json.NewEncoder(w).Encode(map[string]string{"puuid": f.puuid})

		case strings.HasPrefix(path, "/lol/summoner/v4/summoners/by-puuid/"):
			if f.summoner != 0 {
				w.WriteHeader(f.summoner)
				return
			}
			json.NewEncoder(w).Encode(riot.Summoner{PUUID: f.puuid, ProfileIconID: 4, SummonerLevel: 500})

		case strings.HasSuffix(path, "/ids"):
			f.idRequests = append(f.idRequests, r.URL.RawQuery)
			var start, count int
			fmt.Sscanf(r.URL.Query().Get("start"), "%d", &start)
			fmt.Sscanf(r.URL.Query().Get("count"), "%d", &count)
			ids := []string{}
			for i := start; i < start+count && i < len(f.matches); i++ {
				ids = append(ids, f.matches[i].Metadata.MatchID)
			}
			json.NewEncoder(w).Encode(ids)

		case strings.HasPrefix(path, "/lol/match/v5/matches/"):
			id := strings.TrimPrefix(path, "/lol/match/v5/matches/")
			if id == f.failMatch {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			for _, m := range f.matches {
				if m.Metadata.MatchID == id {
					json.NewEncoder(w).Encode(m)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)

		default:
			t.Errorf("Unexpected request: %s", path)
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func (f *fakeUpstream) queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.idRequests...)
}

// recorder is a Presenter that keeps every call
type recorder struct {
	mu       sync.Mutex
	busy     []bool
	profiles []ProfileCard
	pages    []MatchPage
	loadMore []bool
	views    []ViewName
	errors   []string
	notices  []string
}

func (r *recorder) Busy(b bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.busy = append(r.busy, b)
}

func (r *recorder) ShowProfile(card ProfileCard) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles = append(r.profiles, card)
}

func (r *recorder) AppendMatches(page MatchPage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pages = append(r.pages, page)
}

func (r *recorder) ShowLoadMore(visible bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loadMore = append(r.loadMore, visible)
}

func (r *recorder) ShowView(view ViewName, _ *DetailView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append(r.views, view)
}

func (r *recorder) ShowError(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, message)
}

func (r *recorder) Notice(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, message)
}

// rows flattens the pages the frontend would render: everything appended
// since the last reset that carries the reset's session ID
func (r *recorder) rows() []MatchRow {
	r.mu.Lock()
	defer r.mu.Unlock()
	var rows []MatchRow
	current := ""
	for _, p := range r.pages {
		if p.Reset {
			rows = nil
			current = p.SessionID
		}
		if p.SessionID != current {
			continue
		}
		rows = append(rows, p.Rows...)
	}
	return rows
}

// profile returns the last card tagged with the current session
func (r *recorder) profile() (ProfileCard, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current := ""
	for _, p := range r.pages {
		if p.Reset {
			current = p.SessionID
		}
	}
	for i := len(r.profiles) - 1; i >= 0; i-- {
		if r.profiles[i].SessionID == current {
			return r.profiles[i], true
		}
	}
	return ProfileCard{}, false
}

// newTestService starts a Service against a fake upstream
func newTestService(t *testing.T, up *fakeUpstream) (*Service, *recorder) {
	t.Helper()
	rec := &recorder{}
	return newTestServiceWith(t, up, rec), rec
}

// newTestServiceWith is newTestService with a caller-supplied Presenter
func newTestServiceWith(t *testing.T, up *fakeUpstream, presenter Presenter) *Service {
	t.Helper()
	server := httptest.NewServer(up.handler(t))
	t.Cleanup(server.Close)

	res, runeLookup := newAssetPack(t)
	client := riot.NewClient("RGAPI-test-key", riot.WithBaseURL(server.URL))

	svc := NewService(client, res, runeLookup, presenter)
	svc.Start(t.Context())
	t.Cleanup(svc.Stop)
	return svc
}
