// Package geom provides the path model shared by the curve builder, the
// renderer and the cursor engine: a flat list of drawing segments plus the
// Bézier math needed to evaluate, clamp and invert them.
package geom

import "seehuhn.de/go/geom/vec"

// Rect is an axis-aligned rectangle in local (screen) coordinates.
type Rect struct {
	X, Y, W, H float64
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge (y grows downwards).
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Inset returns r shrunk by d on every edge.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p vec.Vec2) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// ClampVec clamps p component-wise into r.
func ClampVec(p vec.Vec2, r Rect) vec.Vec2 {
	if p.X < r.X {
		p.X = r.X
	}
	if p.X > r.MaxX() {
		p.X = r.MaxX()
	}
	if p.Y < r.Y {
		p.Y = r.Y
	}
	if p.Y > r.MaxY() {
		p.Y = r.Y + r.H
	}
	return p
}

// Op identifies a segment kind.
type Op uint8

const (
	OpMove Op = iota
	OpLine
	OpCube
	// OpArc is a full circle centred on To with the given radius. It is
	// only emitted for single-point series.
	OpArc
)

// Segment is one drawing instruction. C1 and C2 are only meaningful for
// OpCube, Radius only for OpArc.
type Segment struct {
	Op     Op
	To     vec.Vec2
	C1, C2 vec.Vec2
	Radius float64
}

// Path is a flat ordered list of segments, always starting with OpMove.
type Path struct {
	Segs []Segment
}

func (p *Path) MoveTo(v vec.Vec2) {
	p.Segs = append(p.Segs, Segment{Op: OpMove, To: v})
}

func (p *Path) LineTo(v vec.Vec2) {
	p.Segs = append(p.Segs, Segment{Op: OpLine, To: v})
}

func (p *Path) CubeTo(c1, c2, v vec.Vec2) {
	p.Segs = append(p.Segs, Segment{Op: OpCube, To: v, C1: c1, C2: c2})
}

func (p *Path) Circle(center vec.Vec2, radius float64) {
	p.Segs = append(p.Segs, Segment{Op: OpArc, To: center, Radius: radius})
}

// IsEmpty reports whether the path has no segments.
func (p Path) IsEmpty() bool { return len(p.Segs) == 0 }

// Start returns the path's first point (the initial move target).
func (p Path) Start() (vec.Vec2, bool) {
	if len(p.Segs) == 0 {
		return vec.Vec2{}, false
	}
	return p.Segs[0].To, true
}

// End returns the endpoint of the last segment.
func (p Path) End() (vec.Vec2, bool) {
	if len(p.Segs) == 0 {
		return vec.Vec2{}, false
	}
	return p.Segs[len(p.Segs)-1].To, true
}

// Equal reports whether two paths contain identical segments.
func (p Path) Equal(o Path) bool {
	if len(p.Segs) != len(o.Segs) {
		return false
	}
	for i := range p.Segs {
		if p.Segs[i] != o.Segs[i] {
			return false
		}
	}
	return true
}
