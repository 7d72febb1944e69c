package chart

import (
	"fmt"

	"github.com/gogpu/gg"
)

// drawBackground fills the frame with the night-sky gradient: black
// ground below the horizon band, then purple through navy into space
// black going up.
func (c *canvas) drawBackground() {
	grad := gg.NewLinearGradientBrush(0, c.h, 0, 0).
		AddColorStop(0, gg.RGBA{R: 0, G: 0, B: 0, A: 1}).
		AddColorStop(0.10, gg.RGBA{R: 0, G: 0, B: 0, A: 1}).
		AddColorStop(0.11, hexBrushColor("#160B21")).
		AddColorStop(0.15, hexBrushColor("#000012")).
		AddColorStop(0.40, gg.RGBA{R: 0, G: 0, B: 0, A: 1}).
		AddColorStop(1, gg.RGBA{R: 0, G: 0, B: 0, A: 1})
	c.dc.SetFillBrush(grad)
	c.dc.DrawRectangle(0, 0, c.w, c.h)
	c.dc.Fill()
	c.dc.SetFillBrush(nil)
}

func hexBrushColor(hex string) gg.RGBA {
	r, g, b := hexRGB(hex)
	return gg.RGBA{R: r, G: g, B: b, A: 1}
}

// gridLine draws one straight line in chart coordinates.
func (c *canvas) gridLine(az1, alt1, az2, alt2 float64, style LineStyle) {
	c.applyLine(style)
	c.dc.DrawLine(c.x(az1), c.y(alt1), c.x(az2), c.y(alt2))
	c.dc.Stroke()
	c.dc.ClearDash()
}

// drawGrid draws the coordinate grid: major lines every 30 degrees of
// azimuth and 20 of altitude, minor dotted lines every 10, plus the
// horizon line and the dotted north meridian.
func (c *canvas) drawGrid() {
	minor := LineStyle{Color: colorWhite, Alpha: 0.1, Width: 1, Dashed: true}
	major := LineStyle{Color: colorWhite, Alpha: 0.3, Width: 1}

	for az := azMin; az <= azMax; az += 10 {
		c.gridLine(az, 0, az, altMax, minor)
	}
	for alt := 0.0; alt <= altMax; alt += 10 {
		c.gridLine(azMin, alt, azMax, alt, minor)
	}
	for az := azMin; az <= azMax; az += 30 {
		c.gridLine(az, 0, az, altMax, major)
	}
	for alt := 0.0; alt <= altMax; alt += 20 {
		c.gridLine(azMin, alt, azMax, alt, major)
	}

	// Horizon and north meridian
	c.gridLine(azMin, 0, azMax, 0, LineStyle{Color: colorWhite, Width: 1})
	c.gridLine(0, 0, 0, altMax, LineStyle{Color: colorWhite, Width: 0.8, Dashed: true})
}

// drawCardinals labels the compass directions just above the horizon.
func (c *canvas) drawCardinals() {
	cardinals := []struct {
		label string
		az    float64
	}{
		{"N", 0}, {"NE", 45}, {"E", 90}, {"SE", 135},
		{"S", 180}, {"SW", -135}, {"W", -90}, {"NW", -45},
	}
	style := TextStyle{Color: colorWhite, Size: 14, Bold: true, AnchorX: 0.5, AnchorY: 0}
	for _, card := range cardinals {
		c.Text(Point{Az: card.az, Alt: 1}, card.label, style)
	}
}

// drawDegreeScale draws the azimuth ruler below the horizon. Labels show
// true azimuth (0-360) while positions use the centered domain.
func (c *canvas) drawDegreeScale() {
	const yPos = -5.0
	line := LineStyle{Color: colorWhite, Width: 1}
	tick := LineStyle{Color: colorWhite, Width: 1.5}
	label := TextStyle{Color: colorWhite, Size: 10, AnchorX: 0.5, AnchorY: 0}

	c.gridLine(azMin, yPos, azMax, yPos, line)
	for az := azMin; az <= azMax; az += 10 {
		if int(az)%30 == 0 {
			c.gridLine(az, yPos-0.5, az, yPos+0.5, tick)
			deg := az
			if deg < 0 {
				deg += 360
			}
			c.Text(Point{Az: az, Alt: yPos + 4}, fmt.Sprintf("%.0f°", deg), label)
		} else {
			c.gridLine(az, yPos-0.25, az, yPos+0.25, line)
		}
	}
}

// drawAltitudeScale draws the altitude ruler along the north meridian.
func (c *canvas) drawAltitudeScale() {
	const xPos = 0.0
	line := LineStyle{Color: colorWhite, Width: 1}
	tick := LineStyle{Color: colorWhite, Width: 1.5}
	label := TextStyle{Color: colorWhite, Size: 10, AnchorX: 0, AnchorY: 0.5}

	c.gridLine(xPos, 0, xPos, 90, line)
	for alt := 0.0; alt <= 90; alt += 5 {
		if int(alt)%15 == 0 {
			c.gridLine(xPos-0.5, alt, xPos+0.5, alt, tick)
			c.Text(Point{Az: xPos - 2, Alt: alt}, fmt.Sprintf("%.0f°", alt), label)
		} else {
			c.gridLine(xPos-0.25, alt, xPos+0.25, alt, line)
		}
	}
}
