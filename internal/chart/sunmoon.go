package chart

import (
	"fmt"
	"time"

	"github.com/litescript/skywall/internal/astro"
)

var (
	sunPathStyle  = LineStyle{Color: colorGold, Width: 2}
	moonPathStyle = LineStyle{Color: colorSilver, Width: 1.5}
)

// markEvent draws a highlighted point with a bold label, appending the
// local time when one is given.
func (c *canvas) markEvent(p Point, label, color string, at time.Time, loc *time.Location, yOffset float64) {
	if !at.IsZero() && loc != nil {
		label = fmt.Sprintf("%s %s", label, at.In(loc).Format("15:04"))
	}
	edge := LineStyle{Color: colorBlack}
	c.Marker(p, 6.5, edge)
	c.Marker(p, 5, LineStyle{Color: color})
	c.Text(Point{Az: p.Az, Alt: p.Alt + yOffset}, label,
		TextStyle{Color: color, Size: 12, Bold: true, AnchorX: 0.5, AnchorY: 0.5})
}

// pathPoints converts body path samples to chart points, dropping the
// below-horizon samples (the endpoints sit exactly on the horizon).
func pathPoints(path []astro.PathSample) []Point {
	pts := make([]Point, 0, len(path))
	for _, s := range path {
		if s.AltDeg < -0.5 {
			continue
		}
		pts = append(pts, Point{Az: astro.CenterAzimuth(s.AzDeg), Alt: s.AltDeg})
	}
	return pts
}

// drawSunPath draws the sun's arc for the day with sunrise, noon and
// sunset marked in local time.
func (r *Renderer) drawSunPath(c *canvas, obs astro.Observer, day time.Time, loc *time.Location) {
	path := astro.BodyPath(obs, day, astro.SunHorizontal)
	pts := pathPoints(path)
	if len(pts) < 2 {
		return
	}
	DrawWrapped(c, pts, sunPathStyle)

	maxIdx := 0
	for i, s := range path {
		if s.AltDeg > path[maxIdx].AltDeg {
			maxIdx = i
		}
	}

	first, last := path[0], path[len(path)-1]
	c.markEvent(Point{Az: astro.CenterAzimuth(first.AzDeg), Alt: first.AltDeg},
		"Sunrise", colorOrange, first.Time, loc, -2)
	c.markEvent(Point{Az: astro.CenterAzimuth(last.AzDeg), Alt: last.AltDeg},
		"Sunset", colorOrange, last.Time, loc, -2)
	noon := path[maxIdx]
	c.markEvent(Point{Az: astro.CenterAzimuth(noon.AzDeg), Alt: noon.AltDeg},
		fmt.Sprintf("Noon %.0f°", noon.AltDeg), colorGold, noon.Time, loc, 3)
}

// drawMoonPath draws the moon's arc for the day with moonrise, the
// highest point and moonset marked in local time.
func (r *Renderer) drawMoonPath(c *canvas, obs astro.Observer, day time.Time, loc *time.Location) {
	path := astro.BodyPath(obs, day, astro.MoonHorizontal)
	pts := pathPoints(path)
	if len(pts) < 2 {
		return
	}
	DrawWrapped(c, pts, moonPathStyle)

	maxIdx := 0
	for i, s := range path {
		if s.AltDeg > path[maxIdx].AltDeg {
			maxIdx = i
		}
	}

	first, last := path[0], path[len(path)-1]
	c.markEvent(Point{Az: astro.CenterAzimuth(first.AzDeg), Alt: first.AltDeg},
		"Moonrise", colorSilver, first.Time, loc, -3)
	c.markEvent(Point{Az: astro.CenterAzimuth(last.AzDeg), Alt: last.AltDeg},
		"Moonset", colorSilver, last.Time, loc, -3)
	high := path[maxIdx]
	c.markEvent(Point{Az: astro.CenterAzimuth(high.AzDeg), Alt: high.AltDeg},
		fmt.Sprintf("High Moon %.0f°", high.AltDeg), colorSilver, high.Time, loc, 2)
}
