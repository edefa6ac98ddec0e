package riot

// AccountResponse represents the response from /riot/account/v1/accounts/by-riot-id.
// Status is populated when the upstream answers 200 with an error body instead.
type AccountResponse struct {
	PUUID    string       `json:"puuid"`
	GameName string       `json:"gameName"`
	TagLine  string       `json:"tagLine"`
	Message  string       `json:"message"`
	Status   *StatusError `json:"status,omitempty"`
}

// StatusError is the error envelope the Riot API uses
type StatusError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// Summoner represents the response from /lol/summoner/v4/summoners/by-puuid
type Summoner struct {
	PUUID         string `json:"puuid"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
}

// Match represents the response from /lol/match/v5/matches/{matchId}
type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"` // PUUIDs
}

// MatchInfo carries GameDuration in seconds when GameEndTimestamp is present
// and in milliseconds otherwise (older match-v5 payloads).
type MatchInfo struct {
	GameCreation     int64         `json:"gameCreation"`
	GameDuration     int64         `json:"gameDuration"`
	GameEndTimestamp *int64        `json:"gameEndTimestamp,omitempty"`
	GameMode         string        `json:"gameMode"`
	QueueID          int           `json:"queueId"`
	Participants     []Participant `json:"participants"`
}

type Participant struct {
	PUUID                       string     `json:"puuid"`
	RiotIDGameName              string     `json:"riotIdGameName"`
	RiotIDTagline               string     `json:"riotIdTagline"`
	ChampionName                string     `json:"championName"`
	ChampLevel                  int        `json:"champLevel"`
	TeamID                      int        `json:"teamId"`
	Win                         bool       `json:"win"`
	Kills                       int        `json:"kills"`
	Deaths                      int        `json:"deaths"`
	Assists                     int        `json:"assists"`
	TotalMinionsKilled          int        `json:"totalMinionsKilled"`
	GoldEarned                  int        `json:"goldEarned"`
	Item0                       int        `json:"item0"`
	Item1                       int        `json:"item1"`
	Item2                       int        `json:"item2"`
	Item3                       int        `json:"item3"`
	Item4                       int        `json:"item4"`
	Item5                       int        `json:"item5"`
	Item6                       int        `json:"item6"` // Trinket
	TotalDamageDealtToChampions int        `json:"totalDamageDealtToChampions"`
	TotalDamageTaken            int        `json:"totalDamageTaken"`
	Perks                       Perks      `json:"perks"`
	Challenges                  Challenges `json:"challenges"`
}

type Perks struct {
	Styles []PerkStyle `json:"styles"`
}

type PerkStyle struct {
	Description string          `json:"description"`
	Style       int             `json:"style"`
	Selections  []PerkSelection `json:"selections"`
}

type PerkSelection struct {
	Perk int `json:"perk"`
}

// Challenges holds the upstream-computed stats we display
type Challenges struct {
	KDA           float64 `json:"kda"`
	GoldPerMinute float64 `json:"goldPerMinute"`
}

// Items returns item0..item6 in slot order
func (p *Participant) Items() [7]int {
	return [7]int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6}
}

// PrimaryKeystone returns perks.styles[0].selections[0].perk, or 0
func (p *Participant) PrimaryKeystone() int {
	if len(p.Perks.Styles) == 0 || len(p.Perks.Styles[0].Selections) == 0 {
		return 0
	}
	return p.Perks.Styles[0].Selections[0].Perk
}

// SecondaryStyle returns perks.styles[1].style, or 0
func (p *Participant) SecondaryStyle() int {
	if len(p.Perks.Styles) < 2 {
		return 0
	}
	return p.Perks.Styles[1].Style
}

// FindParticipant returns the participant with the given PUUID
func (m *Match) FindParticipant(puuid string) (*Participant, bool) {
	for i := range m.Info.Participants {
		if m.Info.Participants[i].PUUID == puuid {
			return &m.Info.Participants[i], true
		}
	}
	return nil, false
}
