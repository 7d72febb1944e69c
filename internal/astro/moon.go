package astro

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonphase"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/solar"
)

// Mean length of the synodic month in days.
const lunarMonthDays = 29.530588

// Sun-Earth distance used for the phase angle, in km. The variation over
// the year is irrelevant at chart precision.
const sunEarthKm = 149597870.7

// MoonPosition calculates the geocentric apparent equatorial coordinates
// of the Moon.
func MoonPosition(t time.Time) (raDeg, decDeg float64) {
	jd := julianDate(t)
	lon, lat, _ := moonposition.Position(jd)
	eps := nutation.MeanObliquity(jd).Rad()

	l := lon.Rad()
	b := lat.Rad()

	sinDec := math.Sin(b)*math.Cos(eps) + math.Cos(b)*math.Sin(eps)*math.Sin(l)
	dec := math.Asin(sinDec)
	ra := math.Atan2(math.Sin(l)*math.Cos(eps)-math.Tan(b)*math.Sin(eps), math.Cos(l))

	return normalizeAngle360(radToDeg(ra)), radToDeg(dec)
}

// MoonHorizontal returns the Moon's Az/Alt for the observer at time t.
func MoonHorizontal(obs Observer, t time.Time) SkyCoord {
	ra, dec := MoonPosition(t)
	return EquatorialToHorizontal(SkyCoord{RAdeg: ra, DecDeg: dec}, obs, t)
}

// MoonIllumination returns the illuminated fraction of the Moon's disk
// (0 = new, 1 = full) at time t.
func MoonIllumination(t time.Time) float64 {
	jd := julianDate(t)
	lon, lat, dist := moonposition.Position(jd)
	sunLon := solar.ApparentLongitude(base.J2000Century(jd))

	// Elongation from ecliptic coordinates, then phase angle from the
	// Sun-Earth-Moon triangle.
	cosPsi := math.Cos(lat.Rad()) * math.Cos(lon.Rad()-sunLon.Rad())
	sinPsi := math.Sqrt(1 - cosPsi*cosPsi)
	i := math.Atan2(sunEarthKm*sinPsi, dist-sunEarthKm*cosPsi)

	return (1 + math.Cos(i)) / 2
}

// MoonPhaseInfo describes the lunar phase at a point in time.
type MoonPhaseInfo struct {
	Illumination float64   // Illuminated fraction of the disk (0-1)
	Name         string    // Human-readable phase name
	LunarDay     float64   // Days since the previous new moon
	Waxing       bool      // True in the first half of the cycle
	PrevNew      time.Time // Previous new moon (UTC)
	NextNew      time.Time // Next new moon (UTC)
	NextFull     time.Time // Next full moon (UTC)
}

// MoonPhase computes phase data for time t using the phase-cycle fraction,
// the same classification the chart's info panel displays.
func MoonPhase(t time.Time) MoonPhaseInfo {
	jd := julianDate(t)

	prevNew := phaseBefore(jd, moonphase.New)
	nextNew := phaseAfter(jd, moonphase.New)
	nextFull := phaseAfter(jd, moonphase.Full)

	lunarDay := jd - prevNew
	fraction := lunarDay / lunarMonthDays
	fraction = fraction - math.Floor(fraction)

	return MoonPhaseInfo{
		Illumination: MoonIllumination(t),
		Name:         PhaseName(fraction),
		LunarDay:     lunarDay,
		Waxing:       fraction < 0.5,
		PrevNew:      julian.JDToTime(prevNew),
		NextNew:      julian.JDToTime(nextNew),
		NextFull:     julian.JDToTime(nextFull),
	}
}

// PhaseName maps a phase-cycle fraction (0 = new, 0.5 = full, 1 = next
// new) to its common name.
func PhaseName(fraction float64) string {
	switch {
	case fraction < 0.03 || fraction > 0.97:
		return "New Moon"
	case fraction < 0.22:
		return "Waxing Crescent"
	case fraction < 0.28:
		return "First Quarter"
	case fraction < 0.47:
		return "Waxing Gibbous"
	case fraction < 0.53:
		return "Full Moon"
	case fraction < 0.72:
		return "Waning Gibbous"
	case fraction < 0.78:
		return "Last Quarter"
	default:
		return "Waning Crescent"
	}
}

// phaseBefore finds the last phase event (per the given meeus phase
// function) at or before jd.
func phaseBefore(jd float64, phase func(year float64) float64) float64 {
	year := base.JDEToJulianYear(jd)
	p := phase(year)
	for p > jd {
		year -= lunarMonthDays / 365.25
		p = phase(year)
	}
	// Step forward in case we landed more than one cycle early
	for {
		next := phase(year + lunarMonthDays/365.25)
		if next > jd {
			return p
		}
		year += lunarMonthDays / 365.25
		p = next
	}
}

// phaseAfter finds the first phase event strictly after jd.
func phaseAfter(jd float64, phase func(year float64) float64) float64 {
	year := base.JDEToJulianYear(jd)
	p := phase(year)
	for p <= jd {
		year += lunarMonthDays / 365.25
		p = phase(year)
	}
	return p
}
