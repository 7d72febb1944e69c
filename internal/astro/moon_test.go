package astro

import (
	"math"
	"testing"
	"time"
)

func TestMoonPosition(t *testing.T) {
	// The Moon stays within about 5.7 degrees of the ecliptic, so its
	// declination is bounded by the obliquity plus that.
	at := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	ra, dec := MoonPosition(at)
	if ra < 0 || ra >= 360 {
		t.Errorf("RA = %f, want in [0, 360)", ra)
	}
	if math.Abs(dec) > 29.5 {
		t.Errorf("Dec = %f, want within +-29.5", dec)
	}
}

func TestMoonIllumination(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		min  float64
		max  float64
	}{
		{
			name: "full moon of january 2000",
			time: time.Date(2000, 1, 21, 4, 40, 0, 0, time.UTC),
			min:  0.97,
			max:  1.0,
		},
		{
			name: "new moon of january 2000",
			time: time.Date(2000, 1, 6, 18, 14, 0, 0, time.UTC),
			min:  0.0,
			max:  0.03,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoonIllumination(tt.time)
			if got < tt.min || got > tt.max {
				t.Errorf("MoonIllumination = %f, want in [%f, %f]", got, tt.min, tt.max)
			}
		})
	}
}

func TestMoonPhase(t *testing.T) {
	at := time.Date(2000, 1, 14, 12, 0, 0, 0, time.UTC)
	info := MoonPhase(at)

	if !info.PrevNew.Before(at) {
		t.Errorf("PrevNew %v not before %v", info.PrevNew, at)
	}
	if !info.NextNew.After(at) {
		t.Errorf("NextNew %v not after %v", info.NextNew, at)
	}
	if !info.NextFull.After(at) {
		t.Errorf("NextFull %v not after %v", info.NextFull, at)
	}
	if info.LunarDay < 0 || info.LunarDay > 30 {
		t.Errorf("LunarDay = %f, want in [0, 30]", info.LunarDay)
	}
	// Jan 14 is about a week after the Jan 6 new moon: waxing, first half.
	if !info.Waxing {
		t.Error("expected waxing moon a week after new")
	}
	if info.LunarDay < 6 || info.LunarDay > 9 {
		t.Errorf("LunarDay = %f, want roughly 7-8", info.LunarDay)
	}
	if info.Illumination < 0 || info.Illumination > 1 {
		t.Errorf("Illumination = %f, want in [0, 1]", info.Illumination)
	}
}

func TestPhaseName(t *testing.T) {
	tests := []struct {
		fraction float64
		want     string
	}{
		{0.0, "New Moon"},
		{0.99, "New Moon"},
		{0.10, "Waxing Crescent"},
		{0.25, "First Quarter"},
		{0.35, "Waxing Gibbous"},
		{0.50, "Full Moon"},
		{0.60, "Waning Gibbous"},
		{0.75, "Last Quarter"},
		{0.90, "Waning Crescent"},
	}

	for _, tt := range tests {
		if got := PhaseName(tt.fraction); got != tt.want {
			t.Errorf("PhaseName(%f) = %q, want %q", tt.fraction, got, tt.want)
		}
	}
}
