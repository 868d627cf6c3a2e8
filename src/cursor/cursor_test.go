package cursor

import (
	"math"
	"testing"
	"time"

	"seehuhn.de/go/geom/vec"

	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/curve"
	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/geom"
	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/scale"
	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/series"
)

func mkSeries(vals ...float64) series.Series {
	t0 := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	s := make(series.Series, len(vals))
	for i, v := range vals {
		s[i] = series.Point{Value: v, Timestamp: t0.Add(time.Duration(i) * time.Minute)}
	}
	return s
}

// buildEngine wires mapper, curve and engine the way the chart surface does.
func buildEngine(vals []float64, bounds geom.Rect) (*Engine, scale.Mapper) {
	s := mkSeries(vals...)
	m := scale.NewMapper(vals, bounds, 0)
	var p geom.Path
	if len(vals) == 1 {
		p = curve.BuildDot(vec.Vec2{X: m.XForIndex(0), Y: m.YForValue(vals[0])}, bounds)
	} else if len(vals) >= 2 {
		pts := make([]vec.Vec2, len(vals))
		for i, v := range vals {
			pts[i] = vec.Vec2{X: m.XForIndex(i), Y: m.YForValue(v)}
		}
		p = curve.Build(pts, bounds)
	}
	e := NewEngine()
	e.SetData(p, m, s, bounds)
	return e, m
}

func TestNearestIndexExactAtMappedX(t *testing.T) {
	bounds := geom.Rect{X: 0, Y: 0, W: 300, H: 100}
	vals := []float64{10, 20, 30, 25, 15}
	_, m := buildEngine(vals, bounds)
	chartW := m.XForIndex(len(vals)-1) - m.XForIndex(0)
	for i := range vals {
		relX := m.XForIndex(i) - m.XForIndex(0)
		if got := NearestIndex(relX, chartW, len(vals)); got != i {
			t.Fatalf("at x of point %d resolved index %d", i, got)
		}
	}
}

func TestNearestIndexClamped(t *testing.T) {
	if got := NearestIndex(-50, 100, 5); got != 0 {
		t.Fatalf("negative offset should clamp to 0, got %d", got)
	}
	if got := NearestIndex(500, 100, 5); got != 4 {
		t.Fatalf("past the end should clamp to n-1, got %d", got)
	}
	if got := NearestIndex(10, 100, 1); got != 0 {
		t.Fatalf("single point always resolves to 0, got %d", got)
	}
}

func TestResolveStraightSegmentMidpoint(t *testing.T) {
	// two points make a straight cubic; halfway in x means mean y
	bounds := geom.Rect{X: 0, Y: 0, W: 300, H: 100}
	e, m := buildEngine([]float64{10, 30}, bounds)
	midX := (m.XForIndex(0) + m.XForIndex(1)) / 2
	pos, ok := e.Resolve(midX)
	if !ok {
		t.Fatalf("expected resolution at mid x")
	}
	wantY := (m.YForValue(10) + m.YForValue(30)) / 2
	if math.Abs(pos.Y-wantY) > 0.75 {
		t.Fatalf("mid x should give mean y: got %v want %v", pos.Y, wantY)
	}
}

func TestResolveAtDataPoints(t *testing.T) {
	bounds := geom.Rect{X: 0, Y: 0, W: 300, H: 100}
	vals := []float64{10, 20, 30}
	e, m := buildEngine(vals, bounds)
	for i, v := range vals {
		pos, ok := e.Resolve(m.XForIndex(i))
		if !ok {
			t.Fatalf("point %d: no resolution", i)
		}
		if math.Abs(pos.Y-m.YForValue(v)) > 0.75 {
			t.Fatalf("point %d: y=%v want %v", i, pos.Y, m.YForValue(v))
		}
	}
}

func TestResolveSingleton(t *testing.T) {
	bounds := geom.Rect{X: 0, Y: 0, W: 300, H: 100}
	e, m := buildEngine([]float64{42}, bounds)
	// any x resolves to the dot centre, no search involved
	for _, x := range []float64{0, 77, 150, 300} {
		pos, ok := e.Resolve(x)
		if !ok {
			t.Fatalf("singleton must always resolve")
		}
		if pos.X != m.XForIndex(0) || pos.Y != m.YForValue(42) {
			t.Fatalf("x=%v: got %v, want dot centre", x, pos)
		}
	}
}

func TestResolveExtrapolatesPastEnd(t *testing.T) {
	bounds := geom.Rect{X: 0, Y: 0, W: 300, H: 100}
	e, m := buildEngine([]float64{10, 30}, bounds)
	endX := m.XForIndex(1)
	pos, ok := e.Resolve(endX + 2)
	if !ok {
		t.Fatalf("expected extrapolation")
	}
	if !(pos.X > endX) {
		t.Fatalf("extrapolated point should lie past the end, got %v", pos)
	}
	// far past the bound: clamps to the endpoint
	far, _ := e.Resolve(endX + bounds.W)
	if math.Abs(far.X-endX) > 1e-6 {
		t.Fatalf("out-of-bound extrapolation should return the endpoint, got %v", far)
	}
}

func TestResolveLeftGutterPinsToStart(t *testing.T) {
	// x-padding leaves a gutter left of the first point; a pointer there
	// must pin to the curve start, never the far endpoint
	bounds := geom.Rect{X: 0, Y: 0, W: 300, H: 100}
	e, m := buildEngine([]float64{10, 30}, bounds)
	startX := m.XForIndex(0)
	startY := m.YForValue(10)
	for _, x := range []float64{0, 1, startX - 1} {
		pos, ok := e.Resolve(x)
		if !ok {
			t.Fatalf("x=%v: expected resolution", x)
		}
		if math.Abs(pos.X-startX) > solveTolerance || math.Abs(pos.Y-startY) > 0.75 {
			t.Fatalf("x=%v: got %v, want curve start (%v, %v)", x, pos, startX, startY)
		}
	}
}

func TestResolvePointNearest(t *testing.T) {
	bounds := geom.Rect{X: 0, Y: 0, W: 300, H: 100}
	vals := []float64{10, 20, 30}
	e, m := buildEngine(vals, bounds)
	pt, ok := e.ResolvePoint(m.XForIndex(1) + 5)
	if !ok {
		t.Fatalf("expected a data point")
	}
	if pt.Value != 20 {
		t.Fatalf("x near point 1 should resolve value 20, got %v", pt.Value)
	}
}

func TestStateMachineEvents(t *testing.T) {
	bounds := geom.Rect{X: 0, Y: 0, W: 300, H: 100}
	e, m := buildEngine([]float64{10, 20, 30}, bounds)

	var got []EventKind
	var moved []series.Point
	e.Subscribe(func(ev Event) {
		got = append(got, ev.Kind)
		if ev.Kind == EventMoved {
			moved = append(moved, ev.Point)
		}
	})

	// moves while idle are ignored
	if _, ok := e.Move(150); ok {
		t.Fatalf("move before begin must be a no-op")
	}
	e.Begin()
	e.Begin() // double begin collapses
	if _, ok := e.Move(m.XForIndex(2)); !ok {
		t.Fatalf("move while active must resolve")
	}
	e.End()
	e.End() // double end collapses

	want := []EventKind{EventBegan, EventMoved, EventEnded}
	if len(got) != len(want) {
		t.Fatalf("event sequence %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d: got %v want %v", i, got[i], want[i])
		}
	}
	if len(moved) != 1 || moved[0].Value != 30 {
		t.Fatalf("moved event should carry the nearest data point, got %+v", moved)
	}
}

func TestResolveEmpty(t *testing.T) {
	e := NewEngine()
	if _, ok := e.Resolve(10); ok {
		t.Fatalf("empty engine must not resolve")
	}
	if _, ok := e.ResolvePoint(10); ok {
		t.Fatalf("empty engine has no data point")
	}
}
