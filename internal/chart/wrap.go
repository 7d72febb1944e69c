package chart

import "math"

// Point is a chart position: centered azimuth in [-180, 180) on x,
// altitude in degrees on y.
type Point struct {
	Az  float64
	Alt float64
}

// Crossing records that the segment between points index and index+1
// crosses the azimuth seam. Az is the exit boundary (-180 or +180) and
// Alt the interpolated altitude at the seam.
type Crossing struct {
	Index int
	Az    float64
	Alt   float64
}

// Surface receives the draw calls produced by the renderer. The gg
// canvas implements it for real output; tests substitute a recorder.
type Surface interface {
	Polyline(pts []Point, style LineStyle)
	Marker(p Point, radius float64, style LineStyle)
	Text(p Point, s string, style TextStyle)
}

// Radius of the small anchor dot drawn where a line meets the seam.
const seamMarkerRadius = 2

// DetectCrossings finds the seam crossings in a point sequence. A pair
// of consecutive points whose azimuths differ by more than 180 degrees
// is taken to cross the boundary: the assumption is that adjacent points
// are angularly close, so the only way to exceed 180 is a genuine wrap,
// not a long edge. If the first azimuth is the smaller one the line
// exits through -180 and re-enters at +180, otherwise the reverse.
//
// The crossing altitude is interpolated linearly by the fraction of the
// angular distance covered before the boundary:
//
//	f = d1 / (d1 + d2)
//
// where d1 is the distance from the first point to its boundary and d2
// the distance from the second point to the opposite boundary.
func DetectCrossings(pts []Point) []Crossing {
	var crossings []Crossing
	for i := 0; i+1 < len(pts); i++ {
		p, q := pts[i], pts[i+1]
		if math.Abs(p.Az-q.Az) <= 180 {
			continue
		}
		exit := 180.0
		if p.Az < q.Az {
			exit = -180.0
		}
		d1 := math.Abs(exit - p.Az)
		d2 := math.Abs(-exit - q.Az)
		f := 0.5
		if d1+d2 > 0 {
			f = d1 / (d1 + d2)
		}
		crossings = append(crossings, Crossing{
			Index: i,
			Az:    exit,
			Alt:   p.Alt + f*(q.Alt-p.Alt),
		})
	}
	return crossings
}

// DrawWrapped draws a polyline that may cross the azimuth seam. A
// sequence with no crossings is drawn as a single polyline. Otherwise
// the sequence is split into runs at each crossing: every run terminates
// at the seam with the interpolated boundary point, the next run starts
// from the same altitude at the opposite boundary, and a small marker
// anchors each crossing. Fewer than two points draws nothing.
//
// The function is pure geometry over its input: it never mutates pts and
// keeps no state between calls.
func DrawWrapped(s Surface, pts []Point, style LineStyle) {
	if len(pts) < 2 {
		return
	}

	crossings := DetectCrossings(pts)
	if len(crossings) == 0 {
		s.Polyline(pts, style)
		return
	}

	start := 0
	var entry Point
	haveEntry := false
	for _, c := range crossings {
		run := make([]Point, 0, c.Index-start+3)
		if haveEntry {
			run = append(run, entry)
		}
		run = append(run, pts[start:c.Index+1]...)
		run = append(run, Point{Az: c.Az, Alt: c.Alt})
		s.Polyline(run, style)
		s.Marker(Point{Az: c.Az, Alt: c.Alt}, seamMarkerRadius, style)

		entry = Point{Az: -c.Az, Alt: c.Alt}
		haveEntry = true
		start = c.Index + 1
	}

	tail := make([]Point, 0, len(pts)-start+1)
	tail = append(tail, entry)
	tail = append(tail, pts[start:]...)
	s.Polyline(tail, style)
}
