package chart

import (
	"time"

	"github.com/litescript/skywall/internal/astro"
)

// LineOptions toggles the celestial reference lines.
type LineOptions struct {
	Equator  bool
	Ecliptic bool
}

const referenceLinePoints = 25

var (
	equatorStyle  = LineStyle{Color: colorCyan, Alpha: 0.7, Width: 1, Dashed: true}
	eclipticStyle = LineStyle{Color: colorYellow, Alpha: 0.7, Width: 1, Dashed: true}
)

// drawReferenceLine projects the given equatorial points for the
// observer, draws the visible part through the wrapped-line renderer and
// labels the line at its highest point.
func (c *canvas) drawReferenceLine(coords []astro.SkyCoord, obs astro.Observer, t time.Time, label string, style LineStyle) {
	pts := make([]Point, 0, len(coords))
	for _, sc := range coords {
		pos := astro.EquatorialToHorizontal(sc, obs, t)
		if pos.AltDeg <= 0 {
			continue
		}
		pts = append(pts, Point{Az: astro.CenterAzimuth(pos.AzDeg), Alt: pos.AltDeg})
	}
	if len(pts) < 2 {
		return
	}
	DrawWrapped(c, pts, style)

	high := pts[0]
	for _, p := range pts[1:] {
		if p.Alt > high.Alt {
			high = p
		}
	}
	c.Text(Point{Az: high.Az, Alt: high.Alt + 1}, label,
		TextStyle{Color: style.Color, Size: 10, AnchorX: 0.5, AnchorY: 1})
}

// drawCelestialLines draws the celestial equator and the ecliptic,
// whichever are enabled.
func (r *Renderer) drawCelestialLines(c *canvas, obs astro.Observer, t time.Time) {
	if r.opts.Lines.Equator {
		c.drawReferenceLine(astro.EquatorPoints(referenceLinePoints), obs, t, "CE", equatorStyle)
	}
	if r.opts.Lines.Ecliptic {
		c.drawReferenceLine(astro.EclipticPoints(t, referenceLinePoints), obs, t, "Ecl", eclipticStyle)
	}
}
