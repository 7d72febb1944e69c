package astro

import (
	"time"

	"github.com/soniakeys/meeus/v3/solar"
)

// SunPosition calculates the apparent equatorial coordinates of the Sun.
// Accuracy is well under a tenth of a degree, more than enough for a chart.
func SunPosition(t time.Time) (raDeg, decDeg float64) {
	ra, dec := solar.ApparentEquatorial(julianDate(t))
	raDeg = normalizeAngle360(ra.Deg())
	decDeg = dec.Deg()
	return raDeg, decDeg
}

// SunHorizontal returns the Sun's Az/Alt for the observer at time t.
func SunHorizontal(obs Observer, t time.Time) SkyCoord {
	ra, dec := SunPosition(t)
	return EquatorialToHorizontal(SkyCoord{RAdeg: ra, DecDeg: dec}, obs, t)
}
