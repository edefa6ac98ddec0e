package stats

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
)

// MaxMarker prefixes the value of the participant holding a match maximum
const MaxMarker = "★ "

// GameDurationMinutes converts gameDuration to minutes. Payloads carrying
// gameEndTimestamp report seconds; older payloads report milliseconds.
func GameDurationMinutes(gameDuration int64, gameEndTimestamp *int64) float64 {
	if gameEndTimestamp != nil {
		return float64(gameDuration) / 60
	}
	return float64(gameDuration) / 60000
}

// Bar is one min-max normalized value
type Bar struct {
	Value   int     `json:"value"`
	Percent float64 `json:"percent"`
	IsMax   bool    `json:"isMax"`
}

// Normalize scales values against their maximum onto 0-100.
// Every value equal to the maximum is marked; a zero maximum yields zero bars.
func Normalize(values []int) []Bar {
	bars := make([]Bar, len(values))
	if len(values) == 0 {
		return bars
	}

	top := lo.Max(values)
	for i, v := range values {
		bars[i] = Bar{Value: v, IsMax: v == top}
		if top > 0 {
			bars[i].Percent = float64(v) / float64(top) * 100
		}
	}
	return bars
}

// PerMinute divides value by minutes, returning 0 for an empty duration
func PerMinute(value int, minutes float64) float64 {
	if minutes <= 0 {
		return 0
	}
	return float64(value) / minutes
}

// CeilPerMinute rounds an upstream per-minute rate up, as shown for gold/min
func CeilPerMinute(rate float64) int {
	return int(math.Ceil(rate))
}

// FormatKDA renders "K / D / A"
func FormatKDA(kills, deaths, assists int) string {
	return fmt.Sprintf("%d / %d / %d", kills, deaths, assists)
}

// FormatRatio renders the upstream kda challenge with one decimal
func FormatRatio(kda float64) string {
	return fmt.Sprintf("%.1f KDA", kda)
}

// Thousands renders n with comma separators
func Thousands(n int) string {
	return humanize.Comma(int64(n))
}

// FormatBarValue renders a bar's value, starred when it holds the maximum
func FormatBarValue(b Bar) string {
	if b.IsMax {
		return MaxMarker + Thousands(b.Value)
	}
	return Thousands(b.Value)
}
