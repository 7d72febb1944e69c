package astro

import (
	"math"
	"testing"
	"time"
)

func TestSunPosition(t *testing.T) {
	tests := []struct {
		name    string
		time    time.Time
		wantDec float64
		decTol  float64
	}{
		{
			name:    "march equinox crosses the equator",
			time:    time.Date(2026, 3, 20, 14, 46, 0, 0, time.UTC),
			wantDec: 0,
			decTol:  0.3,
		},
		{
			name:    "june solstice near maximum declination",
			time:    time.Date(2026, 6, 21, 8, 25, 0, 0, time.UTC),
			wantDec: 23.44,
			decTol:  0.3,
		},
		{
			name:    "december solstice near minimum declination",
			time:    time.Date(2025, 12, 21, 15, 3, 0, 0, time.UTC),
			wantDec: -23.44,
			decTol:  0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ra, dec := SunPosition(tt.time)
			if ra < 0 || ra >= 360 {
				t.Errorf("RA = %f, want in [0, 360)", ra)
			}
			if math.Abs(dec-tt.wantDec) > tt.decTol {
				t.Errorf("Dec = %f, want %f +- %f", dec, tt.wantDec, tt.decTol)
			}
		})
	}
}

func TestSunHorizontal(t *testing.T) {
	// Local solar noon puts the sun near due south for a northern
	// mid-latitude observer.
	london := Observer{LatDeg: 51.48, LonDeg: -0.12, Name: "London"}
	noon := time.Date(2026, 6, 21, 12, 0, 0, 0, time.UTC)

	got := SunHorizontal(london, noon)
	if math.Abs(got.AzDeg-180) > 5 {
		t.Errorf("noon azimuth = %f, want near 180", got.AzDeg)
	}
	// Max solar altitude at 51.5N in June is about 62 degrees.
	if got.AltDeg < 55 || got.AltDeg > 66 {
		t.Errorf("noon altitude = %f, want roughly 62", got.AltDeg)
	}
}
