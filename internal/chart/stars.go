package chart

import (
	"fmt"
	"math"
	"time"

	"github.com/litescript/skywall/internal/astro"
)

// StarOptions controls which stars are drawn and how they are labeled.
type StarOptions struct {
	MagLimit      float64 // faintest magnitude drawn
	LabelMagLimit float64 // stars brighter than this get name labels
	MaxStars      int     // 0 = no cap
	ShowMagnitude bool    // append "m=x.xx" to labels
}

// Clamp range for the brightness scaling. Magnitudes outside it are
// treated as the boundary value so Sirius doesn't dwarf the chart.
const brightClampMag = -2.0

// starRadius converts an apparent magnitude to a dot radius in
// 1080p-reference pixels. Brightness excess over the limit scales
// quadratically, capped so the brightest stars stay reasonable.
func starRadius(mag, magLimit float64) float64 {
	clamped := math.Max(brightClampMag, math.Min(mag, magLimit))
	size := 1 + math.Pow(magLimit-clamped, 2)*10
	size = math.Min(size, 150)
	return math.Sqrt(size)
}

// starAlpha fades stars toward the magnitude limit, from 1.0 for the
// brightest down to 0.1 at the limit.
func starAlpha(mag, magLimit float64) float64 {
	clamped := math.Max(brightClampMag, math.Min(mag, magLimit))
	alpha := 0.1 + 0.9*(magLimit-clamped)/(magLimit-brightClampMag)
	return math.Max(0.1, math.Min(1, alpha))
}

// TemperatureToColor maps a stellar effective temperature to a display
// color, from red through orange and yellow to white and blue-white.
// Zero or unknown temperatures render white.
func TemperatureToColor(tempK float64) string {
	switch {
	case tempK <= 0:
		return "#FFFFFF"
	case tempK > 30000:
		return "#FFFFFF"
	case tempK > 10000:
		ratio := (tempK - 10000) / 20000
		return rgbHex(0.8+0.2*ratio, 0.8+0.2*ratio, 1.0)
	case tempK > 7500:
		return "#FFFFFF"
	case tempK > 6000:
		ratio := (tempK - 6000) / 1500
		return rgbHex(1.0, 0.9+0.1*ratio, 0.8)
	case tempK > 5000:
		ratio := (tempK - 5000) / 1000
		return rgbHex(1.0, 0.8+0.2*ratio, 0.6)
	case tempK > 3500:
		ratio := (tempK - 3500) / 1500
		return rgbHex(1.0, 0.6+0.2*ratio, 0.4)
	default:
		return "#FF4500"
	}
}

func rgbHex(r, g, b float64) string {
	clamp := func(v float64) int {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 255
		}
		return int(v*255 + 0.5)
	}
	return fmt.Sprintf("#%02X%02X%02X", clamp(r), clamp(g), clamp(b))
}

// drawStars plots the visible stars for the observer and time: dot size
// and opacity follow apparent magnitude, color follows temperature, and
// the brightest stars get name labels.
func (r *Renderer) drawStars(c *canvas, obs astro.Observer, t time.Time) int {
	opts := r.opts.Stars
	stars := r.opts.Catalog.Brightest(opts.MagLimit, opts.MaxStars)

	drawn := 0
	for _, star := range stars {
		pos := astro.EquatorialToHorizontal(
			astro.SkyCoord{RAdeg: star.RAdeg, DecDeg: star.DecDeg}, obs, t)
		if pos.AltDeg <= 0 {
			continue
		}
		p := Point{Az: astro.CenterAzimuth(pos.AzDeg), Alt: pos.AltDeg}
		color := TemperatureToColor(star.TempK)
		style := LineStyle{Color: color, Alpha: starAlpha(star.Mag, opts.MagLimit)}
		c.Marker(p, starRadius(star.Mag, opts.MagLimit), style)

		if star.Mag < opts.LabelMagLimit {
			label := star.Name
			if opts.ShowMagnitude {
				label = fmt.Sprintf("%s m=%.2f", star.Name, star.Mag)
			}
			c.Text(Point{Az: p.Az, Alt: p.Alt + 1.5}, label,
				TextStyle{Color: color, Size: 8, AnchorX: 0.5, AnchorY: 1})
		}
		drawn++
	}
	return drawn
}
