// Package cursor resolves a pointer x-coordinate back to a position on the
// rendered curve and to the nearest underlying data point, and fans the
// resulting events out to subscribers. The geometric marker position and
// the coarse nearest-index lookup are deliberately independent
// computations: the marker follows the curve, the tooltip follows the even
// index grid, and the two may disagree near inflection points.
package cursor

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/geom"
	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/scale"
	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/series"
)

// solveTolerance is the x tolerance for segment matching and bisection.
const solveTolerance = 0.5

// extrapolationRatio bounds exit-tangent extrapolation past the last
// segment, as a fraction of the viewport width.
const extrapolationRatio = 0.5

// EventKind tags cursor events.
type EventKind int

const (
	EventBegan EventKind = iota
	EventMoved
	EventEnded
)

// Event is delivered to subscribers on pointer interaction. Point is only
// meaningful for EventMoved.
type Event struct {
	Kind  EventKind
	Point series.Point
}

// NearestIndex maps an x offset (relative to the chart's left edge) to the
// nearest point index assuming even spacing, clamped to [0, n-1]. This is
// the tooltip's coarse lookup, kept separate from Resolve on purpose.
func NearestIndex(relX, chartW float64, n int) int {
	if n <= 1 {
		return 0
	}
	step := chartW / float64(n-1)
	if step <= 0 {
		return 0
	}
	idx := int(math.Round(relX / step))
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	return idx
}

// Engine tracks the current rendered path and transforms, and runs the
// pointer state machine. It reads the path and series, never mutates them.
type Engine struct {
	path   geom.Path
	mapper scale.Mapper
	data   series.Series
	bounds geom.Rect

	active bool
	subs   []func(Event)
}

// NewEngine returns an idle engine with no data.
func NewEngine() *Engine { return &Engine{} }

// Subscribe registers a callback for cursor events. Callbacks run
// synchronously on the event's goroutine, in subscription order.
func (e *Engine) Subscribe(fn func(Event)) {
	if fn != nil {
		e.subs = append(e.subs, fn)
	}
}

// SetData swaps in the latest rendered path, transforms and series. Called
// by the chart surface after every data or layout change.
func (e *Engine) SetData(p geom.Path, m scale.Mapper, s series.Series, bounds geom.Rect) {
	e.path = p
	e.mapper = m
	e.data = s
	e.bounds = bounds
}

// Active reports whether a pointer interaction is in progress.
func (e *Engine) Active() bool { return e.active }

// Resolve maps targetX to a point on the rendered path. Segments are
// walked in path order and the first one whose x-range contains targetX
// wins. Past the last segment the exit tangent is extended, bounded to
// half the viewport width. The second result is false when the path is
// empty.
func (e *Engine) Resolve(targetX float64) (vec.Vec2, bool) {
	if e.path.IsEmpty() {
		return vec.Vec2{}, false
	}
	if len(e.data) == 1 {
		// dot position is known exactly, no search
		return e.path.Segs[0].To, true
	}
	if start, ok := e.path.Start(); ok && targetX < start.X-solveTolerance {
		// pointer in the padding gutter left of the curve
		return start, true
	}
	var cur vec.Vec2
	var lastStart vec.Vec2
	var last geom.Segment
	haveSeg := false
	for _, seg := range e.path.Segs {
		if seg.Op == geom.OpMove {
			cur = seg.To
			continue
		}
		if pt, ok := geom.SolveSegmentX(cur, seg, targetX, solveTolerance); ok {
			return pt, true
		}
		lastStart = cur
		last = seg
		cur = seg.To
		haveSeg = true
	}
	if haveSeg {
		return geom.ExtrapolateExit(lastStart, last, targetX, e.bounds.W*extrapolationRatio), true
	}
	return cur, true
}

// ResolvePoint returns the nearest underlying data point for targetX via
// the coarse index lookup.
func (e *Engine) ResolvePoint(targetX float64) (series.Point, bool) {
	if len(e.data) == 0 {
		return series.Point{}, false
	}
	if len(e.data) == 1 {
		return e.data[0], true
	}
	relX := targetX - e.mapper.XForIndex(0)
	chartW := e.mapper.XForIndex(len(e.data)-1) - e.mapper.XForIndex(0)
	idx := NearestIndex(relX, chartW, len(e.data))
	return e.data[idx], true
}

// Begin enters the active state and emits EventBegan. A second Begin while
// active is a no-op.
func (e *Engine) Begin() {
	if e.active {
		return
	}
	e.active = true
	e.emit(Event{Kind: EventBegan})
}

// Move re-resolves the pointer position and emits EventMoved with the
// nearest data point. Ignored while idle.
func (e *Engine) Move(targetX float64) (vec.Vec2, bool) {
	if !e.active {
		return vec.Vec2{}, false
	}
	pos, ok := e.Resolve(targetX)
	if !ok {
		return vec.Vec2{}, false
	}
	if pt, ok := e.ResolvePoint(targetX); ok {
		e.emit(Event{Kind: EventMoved, Point: pt})
	}
	return pos, true
}

// End leaves the active state and emits EventEnded.
func (e *Engine) End() {
	if !e.active {
		return
	}
	e.active = false
	e.emit(Event{Kind: EventEnded})
}

func (e *Engine) emit(ev Event) {
	for _, fn := range e.subs {
		fn(ev)
	}
}
