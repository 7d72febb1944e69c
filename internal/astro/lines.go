package astro

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/nutation"
)

// EquatorPoints returns n points along the celestial equator, evenly
// spaced in right ascension.
func EquatorPoints(n int) []SkyCoord {
	pts := make([]SkyCoord, n)
	for i := range pts {
		pts[i] = SkyCoord{RAdeg: float64(i) * 360 / float64(n)}
	}
	return pts
}

// EclipticPoints returns n points along the ecliptic at time t, evenly
// spaced in ecliptic longitude and converted to equatorial coordinates
// with the mean obliquity of date.
func EclipticPoints(t time.Time, n int) []SkyCoord {
	eps := nutation.MeanObliquity(julianDate(t)).Rad()
	sinE, cosE := math.Sin(eps), math.Cos(eps)

	pts := make([]SkyCoord, n)
	for i := range pts {
		lambda := degToRad(float64(i) * 360 / float64(n))
		ra := math.Atan2(math.Sin(lambda)*cosE, math.Cos(lambda))
		dec := math.Asin(sinE * math.Sin(lambda))
		pts[i] = SkyCoord{
			RAdeg:  normalizeAngle360(radToDeg(ra)),
			DecDeg: radToDeg(dec),
		}
	}
	return pts
}
