package astro

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/nutation"
)

// Planet identifies a solar system body with chart-relevant data.
type Planet struct {
	Name string

	// Mean Keplerian elements at J2000 and their rates per Julian
	// century. Angles in degrees, semi-major axis in AU.
	a, da   float64 // semi-major axis
	e, de   float64 // eccentricity
	i, di   float64 // inclination
	l, dl   float64 // mean longitude
	lp, dlp float64 // longitude of perihelion
	n, dn   float64 // longitude of ascending node
}

// Planets returns the chartable planets, Mercury through Pluto.
// Element values are the JPL J2000 mean elements for the 1800-2050 span.
func Planets() []Planet {
	return []Planet{
		{Name: "Mercury",
			a: 0.38709843, e: 0.20563661, i: 7.00559432,
			l: 252.25166724, lp: 77.45771895, n: 48.33961819,
			da: 0, de: 0.00002123, di: -0.00590158,
			dl: 149472.67486623, dlp: 0.15940013, dn: -0.12214182},
		{Name: "Venus",
			a: 0.72333566, e: 0.00677672, i: 3.39467605,
			l: 181.97970850, lp: 131.76755713, n: 76.67984255,
			da: 0.00000390, de: -0.00004107, di: -0.00078890,
			dl: 58517.81538729, dlp: 0.05679648, dn: -0.27769418},
		{Name: "Mars",
			a: 1.52371034, e: 0.09339410, i: 1.84969142,
			l: -4.55343205, lp: -23.94362959, n: 49.55953891,
			da: 0.00001847, de: 0.00007882, di: -0.00813131,
			dl: 19140.30268499, dlp: 0.44441088, dn: -0.29257343},
		{Name: "Jupiter",
			a: 5.20288700, e: 0.04838624, i: 1.30439695,
			l: 34.39644051, lp: 14.72847983, n: 100.47390909,
			da: -0.00011607, de: -0.00013253, di: -0.00183714,
			dl: 3034.74612775, dlp: 0.21252668, dn: 0.20469106},
		{Name: "Saturn",
			a: 9.53667594, e: 0.05386179, i: 2.48599187,
			l: 49.95424423, lp: 92.59887831, n: 113.66242448,
			da: -0.00125060, de: -0.00050991, di: 0.00193609,
			dl: 1222.49362201, dlp: -0.41897216, dn: -0.28867794},
		{Name: "Uranus",
			a: 19.18916464, e: 0.04725744, i: 0.77263783,
			l: 313.23810451, lp: 170.95427630, n: 74.01692503,
			da: -0.00196176, de: -0.00004397, di: -0.00242939,
			dl: 428.48202785, dlp: 0.40805281, dn: 0.04240589},
		{Name: "Neptune",
			a: 30.06992276, e: 0.00859048, i: 1.77004347,
			l: -55.12002969, lp: 44.96476227, n: 131.78422574,
			da: 0.00026291, de: 0.00005105, di: 0.00035372,
			dl: 218.45945325, dlp: -0.32241464, dn: -0.00508664},
		{Name: "Pluto",
			a: 39.48211675, e: 0.24882730, i: 17.14001206,
			l: 238.92881780, lp: 224.06891629, n: 110.30393684,
			da: -0.00031596, de: 0.00005170, di: 0.00004818,
			dl: 145.20780515, dlp: -0.04062942, dn: -0.01183482},
	}
}

// earthElements is the Earth-Moon barycenter entry from the same table,
// needed to reduce heliocentric positions to geocentric ones.
var earthElements = Planet{Name: "Earth",
	a: 1.00000261, e: 0.01671123, i: -0.00001531,
	l: 100.46457166, lp: 102.93768193, n: 0,
	da: 0.00000562, de: -0.00004392, di: -0.01294668,
	dl: 35999.37306329, dlp: 0.32327364, dn: 0}

// Position returns the planet's geocentric apparent equatorial
// coordinates at time t. Low-precision mean-element propagation; good to
// a few arcminutes over 1800-2050, which is far below one chart pixel.
func (p Planet) Position(t time.Time) (raDeg, decDeg float64) {
	jd := julianDate(t)
	T := (jd - 2451545.0) / 36525.0

	px, py, pz := p.heliocentric(T)
	ex, ey, ez := earthElements.heliocentric(T)

	// Geocentric ecliptic vector
	gx, gy, gz := px-ex, py-ey, pz-ez

	// Rotate ecliptic -> equatorial
	eps := nutation.MeanObliquity(jd).Rad()
	xq := gx
	yq := gy*math.Cos(eps) - gz*math.Sin(eps)
	zq := gy*math.Sin(eps) + gz*math.Cos(eps)

	ra := math.Atan2(yq, xq)
	dec := math.Atan2(zq, math.Sqrt(xq*xq+yq*yq))

	return normalizeAngle360(radToDeg(ra)), radToDeg(dec)
}

// Horizontal returns the planet's Az/Alt for the observer at time t.
func (p Planet) Horizontal(obs Observer, t time.Time) SkyCoord {
	ra, dec := p.Position(t)
	return EquatorialToHorizontal(SkyCoord{RAdeg: ra, DecDeg: dec}, obs, t)
}

// heliocentric computes the body's heliocentric ecliptic rectangular
// coordinates (AU) at T Julian centuries from J2000.
func (p Planet) heliocentric(T float64) (x, y, z float64) {
	a := p.a + p.da*T
	e := p.e + p.de*T
	i := degToRad(p.i + p.di*T)
	l := p.l + p.dl*T
	lp := p.lp + p.dlp*T
	n := p.n + p.dn*T

	// Argument of perihelion and mean anomaly
	w := degToRad(lp - n)
	m := degToRad(normalizeAngle360(l - lp))
	nRad := degToRad(n)

	ea := solveKepler(m, e)

	// Position in the orbital plane
	xo := a * (math.Cos(ea) - e)
	yo := a * math.Sqrt(1-e*e) * math.Sin(ea)

	// Rotate by argument of perihelion, inclination, ascending node
	cosW, sinW := math.Cos(w), math.Sin(w)
	cosN, sinN := math.Cos(nRad), math.Sin(nRad)
	cosI, sinI := math.Cos(i), math.Sin(i)

	x = (cosW*cosN-sinW*sinN*cosI)*xo + (-sinW*cosN-cosW*sinN*cosI)*yo
	y = (cosW*sinN+sinW*cosN*cosI)*xo + (-sinW*sinN+cosW*cosN*cosI)*yo
	z = sinW*sinI*xo + cosW*sinI*yo
	return x, y, z
}

// solveKepler solves Kepler's equation M = E - e*sin(E) by Newton's
// method. Converges in a handful of iterations for planetary
// eccentricities.
func solveKepler(m, e float64) float64 {
	ea := m
	if e > 0.8 {
		ea = math.Pi
	}
	for iter := 0; iter < 30; iter++ {
		d := (ea - e*math.Sin(ea) - m) / (1 - e*math.Cos(ea))
		ea -= d
		if math.Abs(d) < 1e-12 {
			break
		}
	}
	return ea
}
