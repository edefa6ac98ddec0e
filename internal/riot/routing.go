package riot

import (
	"strings"

	"riftlens/internal/apperr"
)

// Continental routing hosts used by the account and match endpoints
const (
	AmericasHost = "americas.api.riotgames.com"
	AsiaHost     = "asia.api.riotgames.com"
	EuropeHost   = "europe.api.riotgames.com"
	SeaHost      = "sea.api.riotgames.com"
)

// Platforms lists the platform codes offered in the region dropdown
var Platforms = []string{
	"BR1", "EUN1", "EUW1", "JP1", "KR", "LA1", "LA2", "NA1",
	"OC1", "TR1", "RU", "PH2", "SG2", "TH2", "TW2", "VN2",
}

var platformHosts = func() map[string]string {
	m := make(map[string]string, len(Platforms))
	for _, p := range Platforms {
		m[p] = strings.ToLower(p) + ".api.riotgames.com"
	}
	return m
}()

// IsPlatform reports whether code is one of the 16 known platforms
func IsPlatform(code string) bool {
	_, ok := platformHosts[code]
	return ok
}

// PlatformHost returns the summoner-v4 host for a platform code
func PlatformHost(platform string) (string, error) {
	host, ok := platformHosts[platform]
	if !ok {
		return "", apperr.Validation("Please select a region.")
	}
	return host, nil
}

// RoutingHost returns the continental host for a platform code
func RoutingHost(platform string) (string, error) {
	if !IsPlatform(platform) {
		return "", apperr.Validation("Please select a region.")
	}

	switch platform {
	case "NA1", "LA1", "LA2", "BR1":
		return AmericasHost, nil
	case "KR", "JP1":
		return AsiaHost, nil
	case "EUW1", "EUN1", "TR1", "RU":
		return EuropeHost, nil
	default:
		// OC1, PH2, SG2, TH2, TW2, VN2
		return SeaHost, nil
	}
}
