package geom

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func approx(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestCubicPointEndpoints(t *testing.T) {
	p0 := vec.Vec2{X: 0, Y: 0}
	c1 := vec.Vec2{X: 10, Y: 20}
	c2 := vec.Vec2{X: 20, Y: -20}
	p1 := vec.Vec2{X: 30, Y: 0}
	if got := CubicPoint(p0, c1, c2, p1, 0); got != p0 {
		t.Fatalf("t=0 should yield start, got %v", got)
	}
	if got := CubicPoint(p0, c1, c2, p1, 1); got != p1 {
		t.Fatalf("t=1 should yield end, got %v", got)
	}
	mid := CubicPoint(p0, c1, c2, p1, 0.5)
	if !approx(mid.X, 15, 1e-9) {
		t.Fatalf("symmetric control xs should give mid x 15, got %v", mid.X)
	}
}

func TestCubicDerivativeStraightLine(t *testing.T) {
	// controls on the chord: derivative direction is constant
	p0 := vec.Vec2{X: 0, Y: 0}
	p1 := vec.Vec2{X: 30, Y: 30}
	c1 := vec.Vec2{X: 10, Y: 10}
	c2 := vec.Vec2{X: 20, Y: 20}
	for _, tt := range []float64{0, 0.25, 0.5, 1} {
		d := CubicDerivative(p0, c1, c2, p1, tt)
		if !approx(d.X, d.Y, 1e-9) {
			t.Fatalf("t=%v: expected 45-degree tangent, got %v", tt, d)
		}
	}
}

func TestSolveSegmentXLine(t *testing.T) {
	start := vec.Vec2{X: 10, Y: 100}
	seg := Segment{Op: OpLine, To: vec.Vec2{X: 20, Y: 0}}
	pt, ok := SolveSegmentX(start, seg, 15, 0.5)
	if !ok {
		t.Fatalf("expected hit")
	}
	if !approx(pt.Y, 50, 1e-9) {
		t.Fatalf("mid x should interpolate to mean y, got %v", pt.Y)
	}
	if _, ok := SolveSegmentX(start, seg, 30, 0.5); ok {
		t.Fatalf("x=30 is outside the segment range")
	}
}

func TestSolveSegmentXLineVertical(t *testing.T) {
	// equal x endpoints must not divide by zero
	start := vec.Vec2{X: 10, Y: 0}
	seg := Segment{Op: OpLine, To: vec.Vec2{X: 10, Y: 50}}
	pt, ok := SolveSegmentX(start, seg, 10, 0.5)
	if !ok || pt != start {
		t.Fatalf("vertical segment should resolve to its start, got %v ok=%v", pt, ok)
	}
}

func TestSolveSegmentXCubicBisection(t *testing.T) {
	start := vec.Vec2{X: 0, Y: 0}
	seg := Segment{
		Op: OpCube,
		C1: vec.Vec2{X: 10, Y: 30},
		C2: vec.Vec2{X: 20, Y: 30},
		To: vec.Vec2{X: 30, Y: 0},
	}
	for _, target := range []float64{0.5, 7, 15, 22, 29.5} {
		pt, ok := SolveSegmentX(start, seg, target, 0.25)
		if !ok {
			t.Fatalf("target %v: expected hit", target)
		}
		if !approx(pt.X, target, 0.3) {
			t.Fatalf("target %v: bisection landed at x=%v", target, pt.X)
		}
	}
}

func TestExtrapolateExit(t *testing.T) {
	start := vec.Vec2{X: 0, Y: 0}
	seg := Segment{
		Op: OpCube,
		C1: vec.Vec2{X: 10, Y: 10},
		C2: vec.Vec2{X: 20, Y: 20},
		To: vec.Vec2{X: 30, Y: 30},
	}
	// exit tangent is the 45-degree chord direction
	pt := ExtrapolateExit(start, seg, 40, 100)
	if !approx(pt.X, 40, 1e-9) || !approx(pt.Y, 40, 1e-9) {
		t.Fatalf("expected (40,40), got %v", pt)
	}
	// beyond the allowed distance: endpoint wins
	pt = ExtrapolateExit(start, seg, 200, 50)
	if pt != seg.To {
		t.Fatalf("expected clamp to endpoint, got %v", pt)
	}
}

func TestClampVec(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 50}
	cases := []struct{ in, want vec.Vec2 }{
		{vec.Vec2{X: -5, Y: 25}, vec.Vec2{X: 0, Y: 25}},
		{vec.Vec2{X: 105, Y: 60}, vec.Vec2{X: 100, Y: 50}},
		{vec.Vec2{X: 50, Y: -1}, vec.Vec2{X: 50, Y: 0}},
		{vec.Vec2{X: 50, Y: 25}, vec.Vec2{X: 50, Y: 25}},
	}
	for _, c := range cases {
		if got := ClampVec(c.in, r); got != c.want {
			t.Fatalf("clamp %v: got %v want %v", c.in, got, c.want)
		}
	}
}

func TestFlattenCounts(t *testing.T) {
	var p Path
	p.MoveTo(vec.Vec2{X: 0, Y: 0})
	p.CubeTo(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 3, Y: 3})
	p.CubeTo(vec.Vec2{X: 4, Y: 4}, vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 6, Y: 6})
	pts := Flatten(p, 8)
	// move point plus 8 samples per cubic
	if len(pts) != 1+2*8 {
		t.Fatalf("expected 17 points, got %d", len(pts))
	}
	if pts[0] != (vec.Vec2{X: 0, Y: 0}) || pts[len(pts)-1] != (vec.Vec2{X: 6, Y: 6}) {
		t.Fatalf("flatten endpoints wrong: %v .. %v", pts[0], pts[len(pts)-1])
	}
}

func TestPathEqual(t *testing.T) {
	var a, b Path
	a.MoveTo(vec.Vec2{X: 1, Y: 2})
	b.MoveTo(vec.Vec2{X: 1, Y: 2})
	if !a.Equal(b) {
		t.Fatalf("identical paths should be equal")
	}
	b.LineTo(vec.Vec2{X: 3, Y: 4})
	if a.Equal(b) {
		t.Fatalf("different lengths should not be equal")
	}
}
