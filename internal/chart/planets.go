package chart

import (
	"time"

	"github.com/litescript/skywall/internal/astro"
)

// PlanetStyle is the per-planet display configuration.
type PlanetStyle struct {
	Color     string
	TextColor string
	Symbol    string
}

// PlanetOptions selects and styles the planets to draw.
type PlanetOptions struct {
	Include []string // planet names; empty = all
	Styles  map[string]PlanetStyle
}

// DefaultPlanetStyles returns the display scheme for the naked-eye
// planets plus the outer ones. The bundled Go fonts carry no glyphs for
// the planetary symbols (U+263F-2647), so no default sets one; a Symbol
// configured by the user is still prefixed to the label and renders only
// as well as the font allows.
func DefaultPlanetStyles() map[string]PlanetStyle {
	return map[string]PlanetStyle{
		"Mercury": {Color: "#1A873A", TextColor: "#1A873A"},
		"Venus":   {Color: "#FFFFE3", TextColor: "#FFFFE3"},
		"Mars":    {Color: "#700101", TextColor: "#A33030"},
		"Jupiter": {Color: "#FFDD40", TextColor: "#FFDD40"},
		"Saturn":  {Color: "#042682", TextColor: "#4A64C4"},
		"Uranus":  {Color: "#9BD4D4", TextColor: "#9BD4D4"},
		"Neptune": {Color: "#3E54E8", TextColor: "#6E7FF0"},
		"Pluto":   {Color: "#96613D", TextColor: "#96613D"},
	}
}

const planetPathStep = 30 * time.Minute

// drawPlanets traces each selected planet's above-horizon track for the
// day and marks it at its highest point with a disc and label.
func (r *Renderer) drawPlanets(c *canvas, obs astro.Observer, day time.Time, loc *time.Location) int {
	opts := r.opts.Planets
	include := opts.Include
	styles := opts.Styles
	if styles == nil {
		styles = DefaultPlanetStyles()
	}

	wanted := func(name string) bool {
		if len(include) == 0 {
			return true
		}
		for _, n := range include {
			if n == name {
				return true
			}
		}
		return false
	}

	drawn := 0
	for _, planet := range astro.Planets() {
		if !wanted(planet.Name) {
			continue
		}
		style, ok := styles[planet.Name]
		if !ok {
			style = PlanetStyle{Color: colorWhite, TextColor: colorWhite}
		}

		var pts []Point
		var times []time.Time
		for t := day; t.Before(day.Add(24 * time.Hour)); t = t.Add(planetPathStep) {
			pos := planet.Horizontal(obs, t)
			if pos.AltDeg <= 0 {
				continue
			}
			pts = append(pts, Point{Az: astro.CenterAzimuth(pos.AzDeg), Alt: pos.AltDeg})
			times = append(times, t)
		}
		if len(pts) < 2 {
			continue
		}

		DrawWrapped(c, pts, LineStyle{Color: style.Color, Width: 1})

		maxIdx := 0
		for i, p := range pts {
			if p.Alt > pts[maxIdx].Alt {
				maxIdx = i
			}
		}
		label := planet.Name
		if style.Symbol != "" {
			label = style.Symbol + " " + label
		}
		if loc != nil {
			label += " " + times[maxIdx].In(loc).Format("15:04")
		}
		high := pts[maxIdx]
		c.Marker(high, 6.5, LineStyle{Color: colorBlack})
		c.Marker(high, 5, LineStyle{Color: style.Color})
		c.Text(Point{Az: high.Az, Alt: high.Alt + 2}, label,
			TextStyle{Color: style.TextColor, Size: 12, Bold: true, AnchorX: 0.5, AnchorY: 0.5})
		drawn++
	}
	return drawn
}
