package ui

import (
	"fmt"

	"riftlens/internal/assets"
	"riftlens/internal/riot"
	"riftlens/internal/stats"
)

// ProfileCard is the header shown above the match list.
// SessionID ties it to the search that produced it.
type ProfileCard struct {
	SessionID   string      `json:"sessionId"`
	DisplayName string      `json:"displayName"`
	Level       int         `json:"level"`
	LevelLabel  string      `json:"levelLabel"`
	Icon        assets.Icon `json:"icon"`
}

// MatchRow is one summary row in the match list
type MatchRow struct {
	Index        int           `json:"index"`
	MatchID      string        `json:"matchId"`
	ChampionName string        `json:"championName"`
	ChampionIcon assets.Icon   `json:"championIcon"`
	ChampLevel   int           `json:"champLevel"`
	Win          bool          `json:"win"`
	Result       string        `json:"result"`
	ResultColor  string        `json:"resultColor"`
	GameMode     string        `json:"gameMode"`
	Items        []assets.Icon `json:"items"`
	KDA          string        `json:"kda"`
	CS           int           `json:"cs"`
	CSLabel      string        `json:"csLabel"`
	Gold         int           `json:"gold"`
	GoldLabel    string        `json:"goldLabel"`
}

// MatchPage is one batch of rows appended to the list.
// Reset tells the frontend to clear the list first.
type MatchPage struct {
	SessionID string     `json:"sessionId"`
	Reset     bool       `json:"reset"`
	Rows      []MatchRow `json:"rows"`
	Loaded    int        `json:"loaded"`
	Wins      int        `json:"wins"`
	Losses    int        `json:"losses"`
}

// LoadedLabel renders the match counter shown beside the list
func (p MatchPage) LoadedLabel() string {
	return fmt.Sprintf("Loaded Matches: %d", p.Loaded)
}

func displayName(req SearchRequest) string {
	return fmt.Sprintf("%s #%s", req.GameName, req.TagLine)
}

// buildProfileCard returns the card and, when the icon file is missing, a notice error
func buildProfileCard(res *assets.Resolver, req SearchRequest, summoner *riot.Summoner) (ProfileCard, error) {
	card := ProfileCard{DisplayName: displayName(req)}

	if summoner == nil {
		card.Icon = res.NotFoundProfileIcon()
		card.LevelLabel = "Level: 0"
		return card, nil
	}

	icon, err := res.ProfileIcon(summoner.ProfileIconID)
	card.Icon = icon
	card.Level = summoner.SummonerLevel
	card.LevelLabel = fmt.Sprintf("Level: %d", summoner.SummonerLevel)
	return card, err
}

// buildMatchRow shapes the searched player's line of a match.
// ok is false when the player is not among the participants.
func buildMatchRow(res *assets.Resolver, index int, puuid string, match *riot.Match) (MatchRow, bool) {
	p, found := match.FindParticipant(puuid)
	if !found {
		return MatchRow{}, false
	}

	row := MatchRow{
		Index:        index,
		MatchID:      match.Metadata.MatchID,
		ChampionName: p.ChampionName,
		ChampionIcon: res.ChampionIcon(p.ChampionName),
		ChampLevel:   p.ChampLevel,
		Win:          p.Win,
		Result:       "DEFEAT",
		ResultColor:  "red",
		GameMode:     match.Info.GameMode,
		Items:        res.ItemIcons(p.Items()),
		KDA:          stats.FormatKDA(p.Kills, p.Deaths, p.Assists),
		CS:           p.TotalMinionsKilled,
		CSLabel:      fmt.Sprintf("CS: %d", p.TotalMinionsKilled),
		Gold:         p.GoldEarned,
		GoldLabel:    fmt.Sprintf("Gold: %d", p.GoldEarned),
	}
	if p.Win {
		row.Result = "VICTORY"
		row.ResultColor = "green"
	}
	return row, true
}
