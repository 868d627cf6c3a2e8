// Package curve builds the smooth rendered path for a chart: a Catmull-Rom
// spline through the mapped screen points, emitted as cubic Bézier
// segments, or a small dot for a single-point series.
package curve

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/geom"
)

// maxDotRadius caps the single-point marker size.
const maxDotRadius = 4.0

// Build interpolates the given screen points with a smooth curve. Each
// consecutive pair becomes one cubic segment whose control points follow
// the Catmull-Rom tangents (1/6 of the neighbour chord). Every anchor and
// control point is clamped into clamp independently; the curve between
// them may still leave the rectangle slightly, which is accepted.
func Build(points []vec.Vec2, clamp geom.Rect) geom.Path {
	var p geom.Path
	if len(points) < 2 {
		return p
	}
	p.MoveTo(geom.ClampVec(points[0], clamp))
	for i := 0; i < len(points)-1; i++ {
		p0 := points[maxInt(0, i-1)]
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[minInt(len(points)-1, i+2)]

		c1 := p1.Add(p2.Sub(p0).Mul(1.0 / 6.0))
		c2 := p2.Sub(p3.Sub(p1).Mul(1.0 / 6.0))

		p.CubeTo(geom.ClampVec(c1, clamp), geom.ClampVec(c2, clamp), geom.ClampVec(p2, clamp))
	}
	return p
}

// BuildDot returns the path for a single-point series: a circle centred on
// the mapped point, radius min(4, 0.4*min(w,h)).
func BuildDot(center vec.Vec2, bounds geom.Rect) geom.Path {
	r := math.Min(maxDotRadius, 0.4*math.Min(bounds.W, bounds.H))
	var p geom.Path
	p.Circle(center, r)
	return p
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
