package chart

// LineStyle carries pass-through drawing attributes for polylines and
// markers. It has no effect on geometry.
type LineStyle struct {
	Color  string // hex color, "#RRGGBB"
	Alpha  float64
	Width  float64
	Dashed bool
}

// TextStyle carries pass-through attributes for text labels. AnchorX and
// AnchorY position the text relative to its point: 0 is left/top, 0.5 is
// centered, 1 is right/bottom.
type TextStyle struct {
	Color   string
	Alpha   float64
	Size    float64
	Bold    bool
	AnchorX float64
	AnchorY float64
}

// Palette used across the chart, taken from the wallpaper's color scheme.
const (
	colorWhite  = "#FFFFFF"
	colorGold   = "#FFD700"
	colorOrange = "#FFA500"
	colorSilver = "#C0C0C0"
	colorCyan   = "#00FFFF"
	colorYellow = "#FFFF00"
	colorBlack  = "#000000"
)
