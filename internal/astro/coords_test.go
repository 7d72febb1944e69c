package astro

import (
	"math"
	"testing"
	"time"
)

func TestJulianDate(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want float64
		tol  float64
	}{
		{
			name: "J2000 epoch",
			time: time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			want: 2451545.0,
			tol:  1e-6,
		},
		{
			name: "start of 2026",
			time: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			want: 2461041.5,
			tol:  1e-6,
		},
		{
			name: "half day offset",
			time: time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC),
			want: 2451545.5,
			tol:  1e-6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := julianDate(tt.time)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("julianDate(%v) = %f, want %f", tt.time, got, tt.want)
			}
		})
	}
}

func TestGreenwichMeanSiderealTime(t *testing.T) {
	// At the J2000 epoch GMST is the formula's leading constant.
	got := greenwichMeanSiderealTime(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))
	want := 280.46061837
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("GMST at J2000 = %f, want %f", got, want)
	}
}

func TestLocalSiderealTime(t *testing.T) {
	// LST is GMST shifted by east longitude, wrapped to [0, 360).
	at := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	gmst := greenwichMeanSiderealTime(at)

	tests := []struct {
		name string
		lon  float64
		want float64
	}{
		{"greenwich", 0, gmst},
		{"east 90", 90, gmst + 90},
		{"west 90", -90, gmst - 90},
		{"wraps past 360", 100, gmst + 100 - 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := localSiderealTime(at, tt.lon)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("localSiderealTime(lon=%f) = %f, want %f", tt.lon, got, tt.want)
			}
		})
	}
}

func TestEquatorialToHorizontal(t *testing.T) {
	london := Observer{LatDeg: 51.48, LonDeg: 0, Name: "London"}
	at := time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC)

	t.Run("polaris altitude near latitude", func(t *testing.T) {
		polaris := SkyCoord{RAdeg: 37.95, DecDeg: 89.26}
		got := EquatorialToHorizontal(polaris, london, at)
		if math.Abs(got.AltDeg-london.LatDeg) > 1.0 {
			t.Errorf("Polaris altitude = %f, want within 1 deg of latitude %f",
				got.AltDeg, london.LatDeg)
		}
	})

	t.Run("star on meridian at zenith", func(t *testing.T) {
		// A star whose RA equals the LST and whose Dec equals the
		// latitude sits at the zenith.
		lst := localSiderealTime(at, london.LonDeg)
		zenith := SkyCoord{RAdeg: lst, DecDeg: london.LatDeg}
		got := EquatorialToHorizontal(zenith, london, at)
		if math.Abs(got.AltDeg-90) > 0.01 {
			t.Errorf("zenith star altitude = %f, want 90", got.AltDeg)
		}
	})

	t.Run("deep southern star below horizon", func(t *testing.T) {
		acrux := SkyCoord{RAdeg: 186.65, DecDeg: -63.1}
		got := EquatorialToHorizontal(acrux, london, at)
		if got.AltDeg >= 0 {
			t.Errorf("Acrux altitude from London = %f, want below horizon", got.AltDeg)
		}
	})

	t.Run("preserves equatorial input", func(t *testing.T) {
		in := SkyCoord{RAdeg: 123.4, DecDeg: -5.6}
		got := EquatorialToHorizontal(in, london, at)
		if got.RAdeg != in.RAdeg || got.DecDeg != in.DecDeg {
			t.Errorf("RA/Dec changed: got (%f, %f), want (%f, %f)",
				got.RAdeg, got.DecDeg, in.RAdeg, in.DecDeg)
		}
	})
}

func TestCenterAzimuth(t *testing.T) {
	tests := []struct {
		az   float64
		want float64
	}{
		{0, 0},      // north stays centered
		{90, 90},    // east on the right
		{180, -180}, // south at the left edge
		{270, -90},  // west on the left
		{359, -1},
		{360, 0},
		{-90, -90},
	}

	for _, tt := range tests {
		got := CenterAzimuth(tt.az)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("CenterAzimuth(%f) = %f, want %f", tt.az, got, tt.want)
		}
	}
}

func TestNormalizeAngle360(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{360, 0},
		{-90, 270},
		{725, 5},
		{-725, 355},
	}

	for _, tt := range tests {
		got := normalizeAngle360(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("normalizeAngle360(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
