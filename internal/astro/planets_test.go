package astro

import (
	"math"
	"testing"
	"time"
)

// angularSeparation returns the great-circle distance in degrees between
// two equatorial positions.
func angularSeparation(ra1, dec1, ra2, dec2 float64) float64 {
	a1, d1 := degToRad(ra1), degToRad(dec1)
	a2, d2 := degToRad(ra2), degToRad(dec2)
	cosSep := math.Sin(d1)*math.Sin(d2) + math.Cos(d1)*math.Cos(d2)*math.Cos(a1-a2)
	if cosSep > 1 {
		cosSep = 1
	} else if cosSep < -1 {
		cosSep = -1
	}
	return radToDeg(math.Acos(cosSep))
}

func TestPlanetsList(t *testing.T) {
	planets := Planets()
	if len(planets) != 8 {
		t.Fatalf("len(Planets()) = %d, want 8", len(planets))
	}
	if planets[0].Name != "Mercury" || planets[7].Name != "Pluto" {
		t.Errorf("unexpected ordering: first %q, last %q",
			planets[0].Name, planets[7].Name)
	}
	for _, p := range planets {
		if p.Name == "Earth" {
			t.Error("Earth must not appear in the chartable planet list")
		}
	}
}

func TestPlanetPositionRanges(t *testing.T) {
	at := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	for _, p := range Planets() {
		ra, dec := p.Position(at)
		if ra < 0 || ra >= 360 {
			t.Errorf("%s: RA = %f, want in [0, 360)", p.Name, ra)
		}
		if dec < -90 || dec > 90 {
			t.Errorf("%s: Dec = %f, want in [-90, 90]", p.Name, dec)
		}
	}
}

func TestInnerPlanetElongation(t *testing.T) {
	// Inner planets can never stray far from the sun as seen from Earth:
	// Mercury's maximum elongation is about 28 degrees, Venus' about 47.
	tests := []struct {
		name   string
		maxSep float64
	}{
		{"Mercury", 30},
		{"Venus", 50},
	}

	times := []time.Time{
		time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 4, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 11, 30, 6, 0, 0, 0, time.UTC),
	}

	byName := map[string]Planet{}
	for _, p := range Planets() {
		byName[p.Name] = p
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := byName[tt.name]
			if !ok {
				t.Fatalf("planet %s missing", tt.name)
			}
			for _, at := range times {
				sunRA, sunDec := SunPosition(at)
				ra, dec := p.Position(at)
				sep := angularSeparation(ra, dec, sunRA, sunDec)
				if sep > tt.maxSep {
					t.Errorf("%s at %v: elongation %f, want <= %f",
						tt.name, at, sep, tt.maxSep)
				}
			}
		})
	}
}

func TestSolveKepler(t *testing.T) {
	tests := []struct {
		name string
		m    float64
		e    float64
	}{
		{"circular orbit", 1.234, 0},
		{"low eccentricity", 0.5, 0.0167},
		{"mercury eccentricity", 2.0, 0.2056},
		{"pluto eccentricity", 4.5, 0.2488},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ea := solveKepler(tt.m, tt.e)
			back := ea - tt.e*math.Sin(ea)
			if math.Abs(back-tt.m) > 1e-9 {
				t.Errorf("E - e*sin(E) = %f, want M = %f", back, tt.m)
			}
		})
	}
}

func TestPlanetHorizontal(t *testing.T) {
	obs := Observer{LatDeg: 40, LonDeg: -105}
	at := time.Date(2026, 8, 25, 6, 0, 0, 0, time.UTC)

	for _, p := range Planets() {
		c := p.Horizontal(obs, at)
		if c.AzDeg < 0 || c.AzDeg >= 360 {
			t.Errorf("%s: Az = %f, want in [0, 360)", p.Name, c.AzDeg)
		}
		if c.AltDeg < -90 || c.AltDeg > 90 {
			t.Errorf("%s: Alt = %f, want in [-90, 90]", p.Name, c.AltDeg)
		}
	}
}
