package chart

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/litescript/skywall/internal/astro"
)

// panelLine is one row of an info panel: an optional bold heading
// followed by regular text.
type panelLine struct {
	heading string
	text    string
}

const (
	panelFontSize = 11.0
	panelPad      = 10.0
	panelAlpha    = 0.5
)

// drawPanel renders a translucent black box with the given lines in a
// screen corner. x is the anchor column in pixels; right anchors the box
// to the left of x.
func (c *canvas) drawPanel(lines []panelLine, x, y float64, right bool) {
	boldFace := c.face(panelFontSize, true)
	regFace := c.face(panelFontSize, false)

	lineH := panelFontSize * 1.5 * c.scale
	maxW := 0.0
	for _, l := range lines {
		w := 0.0
		if l.heading != "" {
			c.dc.SetFont(boldFace)
			hw, _ := c.dc.MeasureString(l.heading + " ")
			w += hw
		}
		c.dc.SetFont(regFace)
		tw, _ := c.dc.MeasureString(l.text)
		w += tw
		maxW = math.Max(maxW, w)
	}

	pad := panelPad * c.scale
	boxW := maxW + 2*pad
	boxH := float64(len(lines))*lineH + 2*pad
	boxX := x
	if right {
		boxX = x - boxW
	}

	c.setColor(colorBlack, panelAlpha)
	c.dc.DrawRoundedRectangle(boxX, y, boxW, boxH, 4*c.scale)
	c.dc.Fill()

	for i, l := range lines {
		tx := boxX + pad
		ty := y + pad + (float64(i)+0.8)*lineH
		if l.heading != "" {
			c.dc.SetFont(boldFace)
			c.setColor(colorWhite, 1)
			c.dc.DrawString(l.heading+" ", tx, ty)
			hw, _ := c.dc.MeasureString(l.heading + " ")
			tx += hw
		}
		c.dc.SetFont(regFace)
		c.setColor(colorWhite, 1)
		c.dc.DrawString(l.text, tx, ty)
	}
}

// formatCoordinate renders a latitude or longitude with its hemisphere
// letter, e.g. "27.47°S".
func formatCoordinate(deg float64, isLatitude bool) string {
	dir := "N"
	if isLatitude {
		if deg < 0 {
			dir = "S"
		}
	} else {
		dir = "E"
		if deg < 0 {
			dir = "W"
		}
	}
	return fmt.Sprintf("%.2f°%s", math.Abs(deg), dir)
}

// drawLocationInfo puts the observer and local time panel in the top
// right corner.
func (r *Renderer) drawLocationInfo(c *canvas, obs astro.Observer, t time.Time, loc *time.Location) {
	name := obs.Name
	if name == "" {
		name = fmt.Sprintf("Location at %.2f°, %.2f°", obs.LatDeg, obs.LonDeg)
	}
	tzName := "UTC"
	if loc != nil {
		tzName = loc.String()
	}
	clock := strings.ToLower(strings.TrimPrefix(t.Format("3:04PM"), "0"))

	lines := []panelLine{
		{heading: "Location:", text: fmt.Sprintf("%s (%s; %s)", name,
			formatCoordinate(obs.LatDeg, true), formatCoordinate(obs.LonDeg, false))},
		{heading: "Time:", text: fmt.Sprintf("%s %s %s", t.Format("2006-01-02"), clock, tzName)},
	}
	margin := 20 * c.scale
	c.drawPanel(lines, c.w-margin, margin, true)
}

// Bengali calendar months, Boishakh first. The conversion is the rough
// wall-calendar one: whole-month offsets with the new year on April 14,
// not an almanac computation.
var bengaliMonths = [12]string{
	"Boishakh", "Jyoishtho", "Asharh", "Shrabon", "Bhadro", "Ashwin",
	"Kartik", "Ogrohayon", "Poush", "Magh", "Falgun", "Choitro",
}

// bengaliMonthIndex maps a Gregorian month (1-12) to its Bengali month
// for dates outside the Boishakh span. January and December both land in
// Poush, which straddles the Gregorian year boundary.
var bengaliMonthIndex = [13]int{0, 8, 9, 10, 11, 1, 2, 3, 4, 5, 6, 7, 8}

func bengaliDate(t time.Time) string {
	year := t.Year() - 593
	if t.Month() < time.April || (t.Month() == time.April && t.Day() < 14) {
		year = t.Year() - 594
	}
	if t.Month() == time.April && t.Day() >= 14 {
		return fmt.Sprintf("%s %d, %d", bengaliMonths[0], t.Day()-13, year)
	}
	month := bengaliMonths[bengaliMonthIndex[t.Month()]]
	return fmt.Sprintf("%s %d, %d", month, t.Day(), year)
}

// lunarDayNumber converts days-since-new-moon to the 1-30 day count a
// lunar calendar shows.
func lunarDayNumber(daysSinceNew float64) int {
	return int(daysSinceNew) + 1
}

// nextMoonEvent formats the closer of the next new and full moons, e.g.
// "Full Moon: 12 Sep 03:10 (17 days)".
func nextMoonEvent(info astro.MoonPhaseInfo, t time.Time, loc *time.Location) string {
	event, at := "New Moon", info.NextNew
	if info.NextFull.Before(info.NextNew) {
		event, at = "Full Moon", info.NextFull
	}
	if loc != nil {
		at = at.In(loc)
	}
	days := int(at.Sub(t).Hours() / 24)
	return fmt.Sprintf("%s: %s (%d days)", event, at.Format("02 Jan 15:04"), days)
}

// drawMoonPhaseInfo puts the lunar phase panel in the top left corner.
func (r *Renderer) drawMoonPhaseInfo(c *canvas, t time.Time, loc *time.Location) {
	info := astro.MoonPhase(t)

	lines := []panelLine{
		{heading: "Moon Phase:", text: info.Name},
		{heading: "Lunar Day:", text: fmt.Sprintf("%d", lunarDayNumber(info.LunarDay))},
		{heading: "Illumination:", text: fmt.Sprintf("%.0f%%", info.Illumination*100)},
		{heading: "Bengali:", text: bengaliDate(t)},
		{text: nextMoonEvent(info, t, loc)},
	}
	margin := 20 * c.scale
	c.drawPanel(lines, margin, margin, false)
}
