package stats

import (
	"math"
	"testing"
)

func TestGameDurationMinutes(t *testing.T) {
	end := int64(1700000000000)

	if got := GameDurationMinutes(1800, &end); got != 30.0 {
		t.Errorf("Expected 30.0 minutes from seconds, got %v", got)
	}
	if got := GameDurationMinutes(1800000, nil); got != 30.0 {
		t.Errorf("Expected 30.0 minutes from milliseconds, got %v", got)
	}

	// The unit depends only on presence, not on the timestamp value
	zero := int64(0)
	if got := GameDurationMinutes(1800, &zero); got != 30.0 {
		t.Errorf("Expected seconds when timestamp is present but zero, got %v", got)
	}
}

func TestNormalize(t *testing.T) {
	bars := Normalize([]int{100, 200, 400})

	want := []float64{25.0, 50.0, 100.0}
	for i, b := range bars {
		if math.Abs(b.Percent-want[i]) > 1e-9 {
			t.Errorf("Bar %d: expected %v%%, got %v%%", i, want[i], b.Percent)
		}
	}
	if bars[0].IsMax || bars[1].IsMax || !bars[2].IsMax {
		t.Errorf("Expected only the 400 bar to be marked, got %+v", bars)
	}
}

func TestNormalize_Ties(t *testing.T) {
	bars := Normalize([]int{300, 300, 150})
	if !bars[0].IsMax || !bars[1].IsMax || bars[2].IsMax {
		t.Errorf("Expected both maxima marked, got %+v", bars)
	}
}

func TestNormalize_EdgeCases(t *testing.T) {
	if len(Normalize(nil)) != 0 {
		t.Error("Expected no bars for no values")
	}

	bars := Normalize([]int{0, 0})
	for _, b := range bars {
		if b.Percent != 0 {
			t.Errorf("Expected 0%% with zero maximum, got %v", b.Percent)
		}
	}
}

func TestPerMinute(t *testing.T) {
	if got := PerMinute(195, 30); math.Abs(got-6.5) > 1e-9 {
		t.Errorf("Expected 6.5, got %v", got)
	}
	if got := PerMinute(195, 0); got != 0 {
		t.Errorf("Expected 0 for empty duration, got %v", got)
	}
}

func TestFormatting(t *testing.T) {
	tests := []struct {
		name, got, want string
	}{
		{"kda", FormatKDA(10, 2, 7), "10 / 2 / 7"},
		{"ratio", FormatRatio(8.5333), "8.5 KDA"},
		{"thousands", Thousands(1234567), "1,234,567"},
		{"small", Thousands(999), "999"},
		{"starred", FormatBarValue(Bar{Value: 45210, IsMax: true}), "★ 45,210"},
		{"plain", FormatBarValue(Bar{Value: 12000}), "12,000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	if CeilPerMinute(410.2) != 411 || CeilPerMinute(410.0) != 410 {
		t.Error("Expected ceiling rounding for gold/min")
	}
}
