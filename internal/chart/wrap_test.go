package chart

import (
	"math"
	"reflect"
	"testing"
)

// recordingSurface captures draw calls for inspection.
type recordingSurface struct {
	polylines [][]Point
	markers   []Point
	texts     []string
}

func (r *recordingSurface) Polyline(pts []Point, _ LineStyle) {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	r.polylines = append(r.polylines, cp)
}

func (r *recordingSurface) Marker(p Point, _ float64, _ LineStyle) {
	r.markers = append(r.markers, p)
}

func (r *recordingSurface) Text(_ Point, s string, _ TextStyle) {
	r.texts = append(r.texts, s)
}

func maxSpan(pts []Point) float64 {
	max := 0.0
	for i := 1; i < len(pts); i++ {
		if d := math.Abs(pts[i].Az - pts[i-1].Az); d > max {
			max = d
		}
	}
	return max
}

func TestDrawWrappedNoCrossing(t *testing.T) {
	pts := []Point{{-170, 10}, {-100, 30}, {0, 50}, {100, 30}, {170, 10}}
	s := &recordingSurface{}

	DrawWrapped(s, pts, LineStyle{})

	if len(s.polylines) != 1 {
		t.Fatalf("polyline calls = %d, want exactly 1", len(s.polylines))
	}
	if len(s.markers) != 0 {
		t.Errorf("marker calls = %d, want 0", len(s.markers))
	}
	if !reflect.DeepEqual(s.polylines[0], pts) {
		t.Errorf("points not passed through in order: %v", s.polylines[0])
	}
}

func TestDrawWrappedSingleCrossing(t *testing.T) {
	pts := []Point{{-170, 10}, {175, 12}}
	s := &recordingSurface{}

	DrawWrapped(s, pts, LineStyle{})

	if len(s.polylines) != 2 {
		t.Fatalf("polyline calls = %d, want 2 sub-segments", len(s.polylines))
	}
	if len(s.markers) != 1 {
		t.Fatalf("marker calls = %d, want 1", len(s.markers))
	}
	for i, line := range s.polylines {
		if span := maxSpan(line); span > 180 {
			t.Errorf("segment %d spans %f degrees of azimuth, want <= 180", i, span)
		}
		for _, p := range line {
			if p.Az < -180 || p.Az > 180 {
				t.Errorf("segment %d has azimuth %f outside [-180, 180]", i, p.Az)
			}
		}
	}
	// -170 < 175, so the line exits at -180 and re-enters at +180.
	first := s.polylines[0]
	if first[len(first)-1].Az != -180 {
		t.Errorf("first segment ends at az %f, want -180", first[len(first)-1].Az)
	}
	if s.polylines[1][0].Az != 180 {
		t.Errorf("second segment starts at az %f, want 180", s.polylines[1][0].Az)
	}
}

func TestCrossingInterpolation(t *testing.T) {
	// Symmetric case: both points one degree from their boundary, so the
	// crossing sits exactly halfway up the altitude delta.
	crossings := DetectCrossings([]Point{{-179, 10}, {179, 20}})
	if len(crossings) != 1 {
		t.Fatalf("crossings = %d, want 1", len(crossings))
	}

	c := crossings[0]
	if c.Index != 0 {
		t.Errorf("Index = %d, want 0", c.Index)
	}
	if c.Az != -180 {
		t.Errorf("exit boundary = %f, want -180", c.Az)
	}
	if math.Abs(c.Alt-15) > 1e-12 {
		t.Errorf("interpolated altitude = %f, want 15", c.Alt)
	}
}

func TestCrossingInterpolationAsymmetric(t *testing.T) {
	// First point 10 degrees from -180, second 5 from +180:
	// f = 10/15, altitude = 0 + (10/15)*30 = 20.
	crossings := DetectCrossings([]Point{{-170, 0}, {175, 30}})
	if len(crossings) != 1 {
		t.Fatalf("crossings = %d, want 1", len(crossings))
	}
	if got, want := crossings[0].Alt, 20.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("interpolated altitude = %f, want %f", got, want)
	}
}

func TestDrawWrappedIdempotent(t *testing.T) {
	pts := []Point{{-170, 10}, {175, 12}, {160, 20}, {-175, 25}}

	a := &recordingSurface{}
	b := &recordingSurface{}
	DrawWrapped(a, pts, LineStyle{Color: colorWhite, Alpha: 0.3, Width: 0.5})
	DrawWrapped(b, pts, LineStyle{Color: colorWhite, Alpha: 0.3, Width: 0.5})

	if !reflect.DeepEqual(a.polylines, b.polylines) {
		t.Error("polyline calls differ between identical invocations")
	}
	if !reflect.DeepEqual(a.markers, b.markers) {
		t.Error("marker calls differ between identical invocations")
	}
}

func TestDrawWrappedDegenerate(t *testing.T) {
	for _, pts := range [][]Point{nil, {}, {{10, 20}}} {
		s := &recordingSurface{}
		DrawWrapped(s, pts, LineStyle{})
		if len(s.polylines) != 0 || len(s.markers) != 0 {
			t.Errorf("input %v: drew %d polylines and %d markers, want none",
				pts, len(s.polylines), len(s.markers))
		}
	}
}

func TestDrawWrappedTwoCrossings(t *testing.T) {
	// Crosses the seam twice: three runs, two boundary markers.
	pts := []Point{{-170, 10}, {175, 12}, {160, 20}, {-175, 25}, {-160, 30}}
	s := &recordingSurface{}

	DrawWrapped(s, pts, LineStyle{})

	if len(s.polylines) != 3 {
		t.Fatalf("polyline calls = %d, want 3", len(s.polylines))
	}
	if len(s.markers) != 2 {
		t.Fatalf("marker calls = %d, want 2", len(s.markers))
	}

	// Original points appear in order across the runs, with synthetic
	// boundary points at the run edges.
	var got []Point
	for i, line := range s.polylines {
		if span := maxSpan(line); span > 180 {
			t.Errorf("segment %d spans %f degrees, want <= 180", i, span)
		}
		for _, p := range line {
			if p.Az != -180 && p.Az != 180 {
				got = append(got, p)
			}
		}
	}
	if !reflect.DeepEqual(got, pts) {
		t.Errorf("interior points = %v, want original sequence %v", got, pts)
	}
}

func TestDetectCrossingsNone(t *testing.T) {
	pts := []Point{{-90, 10}, {0, 20}, {90, 10}}
	if got := DetectCrossings(pts); len(got) != 0 {
		t.Errorf("crossings = %v, want none", got)
	}
}
