package chart

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/litescript/skywall/internal/astro"
	"github.com/litescript/skywall/internal/constellation"
)

// ConstellationOptions controls which figures are drawn.
type ConstellationOptions struct {
	ShowOnly []string // IAU abbreviations; empty = all
	Max      int      // 0 = no cap
}

var (
	figureStyle = LineStyle{Color: colorWhite, Alpha: 0.3, Width: 0.5}
	figureLabel = TextStyle{Color: colorWhite, Alpha: 0.5, Size: 8, AnchorX: 0.5, AnchorY: 0.5}
)

// drawConstellations renders the stick figures through the wrapped-line
// renderer and labels each figure once, at the drawn vertex nearest the
// figure's centroid.
func (r *Renderer) drawConstellations(c *canvas, obs astro.Observer, t time.Time) int {
	figs := constellation.Filter(r.opts.Figures, r.opts.Constellations.ShowOnly, r.opts.Constellations.Max)

	drawn := 0
	for _, fig := range figs {
		var figPoints []Point
		for _, line := range fig.Lines {
			pts := make([]Point, 0, len(line))
			for _, v := range line {
				pos := astro.EquatorialToHorizontal(
					astro.SkyCoord{RAdeg: v.RAdeg, DecDeg: v.DecDeg}, obs, t)
				if pos.AltDeg <= 0 {
					continue
				}
				pts = append(pts, Point{Az: astro.CenterAzimuth(pos.AzDeg), Alt: pos.AltDeg})
			}
			if len(pts) < 2 {
				continue
			}
			DrawWrapped(c, pts, figureStyle)
			figPoints = append(figPoints, pts...)
		}
		if len(figPoints) == 0 {
			continue
		}
		c.Text(labelAnchor(figPoints), fig.Name(), figureLabel)
		drawn++
	}
	return drawn
}

// labelAnchor picks the drawn point closest to the centroid of the
// figure's visible vertices, which keeps the label inside the figure
// even when part of it is below the horizon.
func labelAnchor(pts []Point) Point {
	azs := make([]float64, len(pts))
	alts := make([]float64, len(pts))
	for i, p := range pts {
		azs[i] = p.Az
		alts[i] = p.Alt
	}
	centroid := []float64{stat.Mean(azs, nil), stat.Mean(alts, nil)}

	best := pts[0]
	bestDist := floats.Distance([]float64{best.Az, best.Alt}, centroid, 2)
	for _, p := range pts[1:] {
		if d := floats.Distance([]float64{p.Az, p.Alt}, centroid, 2); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}
