package astro

import (
	"time"
)

// PositionFunc gives a body's horizontal coordinates for an observer at
// a point in time. The sun, moon and planet position functions all
// satisfy it.
type PositionFunc func(obs Observer, t time.Time) SkyCoord

// DayEvents holds the horizon crossings of a body over one day.
type DayEvents struct {
	Rise        time.Time
	Transit     time.Time
	Set         time.Time
	MaxAltitude float64
	AlwaysUp    bool
	NeverUp     bool
}

// PathSample is one point along a body's track across the sky.
type PathSample struct {
	Time   time.Time
	AzDeg  float64
	AltDeg float64
}

const (
	scanStep  = 5 * time.Minute
	pathStep  = 20 * time.Minute
	refineTol = time.Second
	dayLength = 24 * time.Hour
)

// RiseSetTransit scans the 24 hours starting at day for the body's rise,
// transit and set. Rise is the first upward horizon crossing, set the
// first downward crossing after it (possibly past the end of the day for
// bodies up at midnight). Circumpolar bodies report AlwaysUp or NeverUp
// with zero crossing times.
func RiseSetTransit(obs Observer, day time.Time, pos PositionFunc) DayEvents {
	var ev DayEvents

	alt := func(t time.Time) float64 { return pos(obs, t).AltDeg }

	up := 0
	down := 0
	maxAlt := alt(day)
	ev.Transit = day
	prev := maxAlt
	prevT := day

	for t := day.Add(scanStep); !t.After(day.Add(dayLength)); t = t.Add(scanStep) {
		a := alt(t)
		if a > maxAlt {
			maxAlt = a
			ev.Transit = t
		}
		if prev < 0 && a >= 0 {
			if ev.Rise.IsZero() {
				ev.Rise = refineCrossing(prevT, t, alt, true)
			}
			up++
		}
		if prev >= 0 && a < 0 {
			down++
		}
		prev = a
		prevT = t
	}
	ev.MaxAltitude = maxAlt

	if up == 0 && down == 0 {
		if maxAlt >= 0 {
			ev.AlwaysUp = true
		} else {
			ev.NeverUp = true
		}
		return ev
	}

	// The set we report follows the rise, so the rise-to-set arc is
	// contiguous even when it straddles midnight.
	from := ev.Rise
	if from.IsZero() {
		// Body was already up at the start of the day; there was a set
		// but no rise within the window. Track the arc from day start.
		from = day
		ev.Rise = time.Time{}
	}
	ev.Set = nextSet(from, alt)
	return ev
}

// BodyPath samples the body's track from rise to set at 20 minute
// intervals, with the exact rise and set instants as endpoints. For a
// body that never sets the whole day is sampled; for one that never
// rises the path is empty.
func BodyPath(obs Observer, day time.Time, pos PositionFunc) []PathSample {
	ev := RiseSetTransit(obs, day, pos)
	if ev.NeverUp {
		return nil
	}

	start := ev.Rise
	end := ev.Set
	if ev.AlwaysUp {
		start = day
		end = day.Add(dayLength)
	}
	if start.IsZero() {
		start = day
	}
	if end.IsZero() {
		end = day.Add(dayLength)
	}

	var path []PathSample
	for t := start; t.Before(end); t = t.Add(pathStep) {
		c := pos(obs, t)
		path = append(path, PathSample{Time: t, AzDeg: c.AzDeg, AltDeg: c.AltDeg})
	}
	c := pos(obs, end)
	path = append(path, PathSample{Time: end, AzDeg: c.AzDeg, AltDeg: c.AltDeg})
	return path
}

// nextSet finds the first downward horizon crossing after from, looking
// ahead at most one day.
func nextSet(from time.Time, alt func(time.Time) float64) time.Time {
	prev := alt(from)
	prevT := from
	for t := from.Add(scanStep); !t.After(from.Add(dayLength)); t = t.Add(scanStep) {
		a := alt(t)
		if prev >= 0 && a < 0 {
			return refineCrossing(prevT, t, alt, false)
		}
		prev = a
		prevT = t
	}
	return time.Time{}
}

// refineCrossing bisects the interval [lo, hi] down to a second around a
// horizon crossing. rising selects which side of the crossing is above
// the horizon.
func refineCrossing(lo, hi time.Time, alt func(time.Time) float64, rising bool) time.Time {
	for hi.Sub(lo) > refineTol {
		mid := lo.Add(hi.Sub(lo) / 2)
		above := alt(mid) >= 0
		if above == rising {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi
}
