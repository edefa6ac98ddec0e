package ui

import (
	"fmt"

	"riftlens/internal/assets"
	"riftlens/internal/riot"
	"riftlens/internal/stats"

	"github.com/samber/lo"
)

// Bar styles used by the frontend
const (
	BarStyleSelf  = "self"
	BarStyleDealt = "dealt"
	BarStyleTaken = "taken"
)

// RuneLookup resolves perk ids to names and icon paths
type RuneLookup interface {
	RuneName(id int) string
	TreeName(id int) string
	KeystoneIconPath(keystoneID int) string
	SecondaryIconPath(treeID int) string
}

// DetailHeader is the first row of the detail view
type DetailHeader struct {
	MatchID         string  `json:"matchId"`
	GameMode        string  `json:"gameMode"`
	DurationMinutes float64 `json:"durationMinutes"`
	DurationLabel   string  `json:"durationLabel"`
}

// BarView is a damage value with its normalized bar
type BarView struct {
	Text    string  `json:"text"`
	Percent float64 `json:"percent"`
	IsMax   bool    `json:"isMax"`
	Style   string  `json:"style"`
}

// ParticipantRow is one player's line in the detail view
type ParticipantRow struct {
	ChampLevel    int           `json:"champLevel"`
	Splash        assets.Icon   `json:"splash"`
	GameName      string        `json:"gameName"`
	ChampionName  string        `json:"championName"`
	IsSelf        bool          `json:"isSelf"`
	KeystoneName  string        `json:"keystoneName"`
	Keystone      assets.Icon   `json:"keystone"`
	SecondaryName string        `json:"secondaryName"`
	Secondary     assets.Icon   `json:"secondary"`
	Items         []assets.Icon `json:"items"`
	KDA           string        `json:"kda"`
	KDARatio      string        `json:"kdaRatio"`
	DamageDealt   BarView       `json:"damageDealt"`
	DamageTaken   BarView       `json:"damageTaken"`
	Gold          string        `json:"gold"`
	GoldPerMinute string        `json:"goldPerMinute"`
	CS            int           `json:"cs"`
	CSPerMinute   string        `json:"csPerMinute"`
}

// DetailView is everything the detail screen renders for one match
type DetailView struct {
	Header DetailHeader     `json:"header"`
	Rows   []ParticipantRow `json:"rows"`
}

// buildDetailView derives every participant row from an already-fetched match.
// Rows keep upstream participant order.
func buildDetailView(res *assets.Resolver, runeLookup RuneLookup, match *riot.Match, searchedPUUID, searchedName string) *DetailView {
	info := match.Info
	minutes := stats.GameDurationMinutes(info.GameDuration, info.GameEndTimestamp)

	dealt := stats.Normalize(lo.Map(info.Participants, func(p riot.Participant, _ int) int {
		return p.TotalDamageDealtToChampions
	}))
	taken := stats.Normalize(lo.Map(info.Participants, func(p riot.Participant, _ int) int {
		return p.TotalDamageTaken
	}))

	view := &DetailView{
		Header: DetailHeader{
			MatchID:         match.Metadata.MatchID,
			GameMode:        info.GameMode,
			DurationMinutes: minutes,
			DurationLabel:   fmt.Sprintf("%.0f min", minutes),
		},
		Rows: make([]ParticipantRow, 0, len(info.Participants)),
	}

	for i := range info.Participants {
		p := &info.Participants[i]
		self := isSearchedPlayer(p, searchedPUUID, searchedName)

		keystoneID := p.PrimaryKeystone()
		treeID := p.SecondaryStyle()

		row := ParticipantRow{
			ChampLevel:    p.ChampLevel,
			Splash:        res.ChampionSplash(p.ChampionName),
			GameName:      p.RiotIDGameName,
			ChampionName:  p.ChampionName,
			IsSelf:        self,
			KeystoneName:  runeLookup.RuneName(keystoneID),
			Keystone:      res.File(runeLookup.KeystoneIconPath(keystoneID), "keystone"),
			SecondaryName: runeLookup.TreeName(treeID),
			Secondary:     res.File(runeLookup.SecondaryIconPath(treeID), "rune tree"),
			Items:         res.ItemIcons(p.Items()),
			KDA:           stats.FormatKDA(p.Kills, p.Deaths, p.Assists),
			KDARatio:      stats.FormatRatio(p.Challenges.KDA),
			DamageDealt:   barView(dealt[i], self, BarStyleDealt),
			DamageTaken:   barView(taken[i], self, BarStyleTaken),
			Gold:          stats.Thousands(p.GoldEarned),
			GoldPerMinute: fmt.Sprintf("%s / min", stats.Thousands(stats.CeilPerMinute(p.Challenges.GoldPerMinute))),
			CS:            p.TotalMinionsKilled,
			CSPerMinute:   fmt.Sprintf("%.1f / min", stats.PerMinute(p.TotalMinionsKilled, minutes)),
		}
		view.Rows = append(view.Rows, row)
	}

	return view
}

// isSearchedPlayer matches on PUUID, falling back to the game name for
// payloads without one
func isSearchedPlayer(p *riot.Participant, puuid, gameName string) bool {
	if puuid != "" && p.PUUID != "" {
		return p.PUUID == puuid
	}
	return gameName != "" && p.RiotIDGameName == gameName
}

func barView(b stats.Bar, self bool, style string) BarView {
	if self {
		style = BarStyleSelf
	}
	return BarView{
		Text:    stats.FormatBarValue(b),
		Percent: b.Percent,
		IsMax:   b.IsMax,
		Style:   style,
	}
}
