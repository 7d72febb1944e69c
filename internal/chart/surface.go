package chart

import (
	"fmt"
	"strconv"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Chart coordinate domain. The extra band below the horizon leaves room
// for the azimuth degree scale.
const (
	azMin  = -180.0
	azMax  = 180.0
	altMin = -10.0
	altMax = 90.0
)

type faceKey struct {
	size float64
	bold bool
}

// canvas implements Surface on a gg drawing context, mapping chart
// coordinates (centered azimuth, altitude) to pixels. Font sizes and
// line widths are given in 1080p-reference units and scaled to the
// output resolution.
type canvas struct {
	dc      *gg.Context
	w, h    float64
	scale   float64
	regular *text.FontSource
	bold    *text.FontSource
	faces   map[faceKey]text.Face
}

func newCanvas(width, height int) (*canvas, error) {
	regular, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	return &canvas{
		dc:      gg.NewContext(width, height),
		w:       float64(width),
		h:       float64(height),
		scale:   float64(height) / 1080,
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]text.Face),
	}, nil
}

// x maps a centered azimuth to a pixel column.
func (c *canvas) x(az float64) float64 {
	return (az - azMin) / (azMax - azMin) * c.w
}

// y maps an altitude to a pixel row (screen y grows downward).
func (c *canvas) y(alt float64) float64 {
	return c.h - (alt-altMin)/(altMax-altMin)*c.h
}

func (c *canvas) face(size float64, bold bool) text.Face {
	key := faceKey{size: size, bold: bold}
	if f, ok := c.faces[key]; ok {
		return f
	}
	src := c.regular
	if bold {
		src = c.bold
	}
	f := src.Face(size * c.scale)
	c.faces[key] = f
	return f
}

// setColor sets the paint color from a "#RRGGBB" hex string with an
// explicit alpha.
func (c *canvas) setColor(hex string, alpha float64) {
	r, g, b := hexRGB(hex)
	c.dc.SetRGBA(r, g, b, alpha)
}

func (c *canvas) applyLine(style LineStyle) {
	alpha := style.Alpha
	if alpha == 0 {
		alpha = 1
	}
	width := style.Width
	if width == 0 {
		width = 1
	}
	c.setColor(style.Color, alpha)
	c.dc.SetLineWidth(width * c.scale)
	if style.Dashed {
		c.dc.SetDash(6*c.scale, 6*c.scale)
	}
}

// Polyline draws connected segments through the points in order.
func (c *canvas) Polyline(pts []Point, style LineStyle) {
	if len(pts) < 2 {
		return
	}
	c.applyLine(style)
	c.dc.MoveTo(c.x(pts[0].Az), c.y(pts[0].Alt))
	for _, p := range pts[1:] {
		c.dc.LineTo(c.x(p.Az), c.y(p.Alt))
	}
	c.dc.Stroke()
	c.dc.ClearDash()
}

// Marker draws a filled dot. The radius is in 1080p-reference pixels.
func (c *canvas) Marker(p Point, radius float64, style LineStyle) {
	alpha := style.Alpha
	if alpha == 0 {
		alpha = 1
	}
	c.setColor(style.Color, alpha)
	c.dc.DrawCircle(c.x(p.Az), c.y(p.Alt), radius*c.scale)
	c.dc.Fill()
}

// Text draws an anchored label at a chart position.
func (c *canvas) Text(p Point, s string, style TextStyle) {
	c.textPx(c.x(p.Az), c.y(p.Alt), s, style)
}

// textPx draws an anchored label at a pixel position.
func (c *canvas) textPx(x, y float64, s string, style TextStyle) {
	alpha := style.Alpha
	if alpha == 0 {
		alpha = 1
	}
	size := style.Size
	if size == 0 {
		size = 10
	}
	c.dc.SetFont(c.face(size, style.Bold))
	c.setColor(style.Color, alpha)
	c.dc.DrawStringAnchored(s, x, y, style.AnchorX, style.AnchorY)
}

// hexRGB parses "#RRGGBB" into 0-1 components. Malformed input comes
// back white rather than failing: colors are cosmetic.
func hexRGB(hex string) (r, g, b float64) {
	if len(hex) != 7 || hex[0] != '#' {
		return 1, 1, 1
	}
	rv, err1 := strconv.ParseUint(hex[1:3], 16, 8)
	gv, err2 := strconv.ParseUint(hex[3:5], 16, 8)
	bv, err3 := strconv.ParseUint(hex[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return 1, 1, 1
	}
	return float64(rv) / 255, float64(gv) / 255, float64(bv) / 255
}
