package geom

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// CubicPoint evaluates the cubic Bézier defined by p0, c1, c2, p1 at t.
func CubicPoint(p0, c1, c2, p1 vec.Vec2, t float64) vec.Vec2 {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return p0.Mul(a).Add(c1.Mul(b)).Add(c2.Mul(c)).Add(p1.Mul(d))
}

// CubicDerivative evaluates the first derivative of the cubic at t.
func CubicDerivative(p0, c1, c2, p1 vec.Vec2, t float64) vec.Vec2 {
	u := 1 - t
	a := 3 * u * u
	b := 6 * u * t
	c := 3 * t * t
	return c1.Sub(p0).Mul(a).Add(c2.Sub(c1).Mul(b)).Add(p1.Sub(c2).Mul(c))
}

// bisectIterations bounds the x-inversion search on cubic segments. Twelve
// halvings resolve t to ~1/4096 of the segment, well under a pixel for chart
// sized curves.
const bisectIterations = 12

// SolveSegmentX finds the point on seg (entered from start) whose
// x-coordinate equals targetX, within tol. Lines are inverted directly,
// cubics by bisection on the x component. The second result is false when
// targetX lies outside the segment's x-range.
func SolveSegmentX(start vec.Vec2, seg Segment, targetX, tol float64) (vec.Vec2, bool) {
	switch seg.Op {
	case OpLine:
		lo, hi := math.Min(start.X, seg.To.X), math.Max(start.X, seg.To.X)
		if targetX < lo-tol || targetX > hi+tol {
			return vec.Vec2{}, false
		}
		dx := seg.To.X - start.X
		if math.Abs(dx) < 1e-9 {
			return start, true
		}
		t := (targetX - start.X) / dx
		return start.Add(seg.To.Sub(start).Mul(t)), true

	case OpCube:
		lo, hi := math.Min(start.X, seg.To.X), math.Max(start.X, seg.To.X)
		if targetX < lo-tol || targetX > hi+tol {
			return vec.Vec2{}, false
		}
		tLo, tHi := 0.0, 1.0
		pt := start
		for i := 0; i < bisectIterations; i++ {
			t := (tLo + tHi) / 2
			pt = CubicPoint(start, seg.C1, seg.C2, seg.To, t)
			diff := pt.X - targetX
			if math.Abs(diff) < tol {
				break
			}
			// chart curves advance monotonically in x
			if (diff < 0) == (seg.To.X >= start.X) {
				tLo = t
			} else {
				tHi = t
			}
		}
		return pt, true

	case OpArc:
		return seg.To, true
	}
	return vec.Vec2{}, false
}

// ExtrapolateExit extends the segment past its endpoint along the exit
// tangent, for targetX up to maxDist beyond the endpoint. Beyond that the
// endpoint itself is returned.
func ExtrapolateExit(start vec.Vec2, seg Segment, targetX, maxDist float64) vec.Vec2 {
	end := seg.To
	var dir vec.Vec2
	switch seg.Op {
	case OpCube:
		dir = end.Sub(seg.C2)
	default:
		dir = end.Sub(start)
	}
	over := targetX - end.X
	if over <= 0 || over > maxDist || math.Abs(dir.X) < 1e-9 {
		return end
	}
	t := over / dir.X
	return end.Add(dir.Mul(t))
}

// Flatten converts the path to a polyline, subdividing each cubic into
// steps line segments. Arc segments (the single-point dot) are skipped; the
// caller draws those as circles.
func Flatten(p Path, steps int) []vec.Vec2 {
	if steps < 1 {
		steps = 1
	}
	var out []vec.Vec2
	var cur vec.Vec2
	for _, seg := range p.Segs {
		switch seg.Op {
		case OpMove:
			cur = seg.To
			out = append(out, cur)
		case OpLine:
			out = append(out, seg.To)
			cur = seg.To
		case OpCube:
			for i := 1; i <= steps; i++ {
				t := float64(i) / float64(steps)
				out = append(out, CubicPoint(cur, seg.C1, seg.C2, seg.To, t))
			}
			cur = seg.To
		}
	}
	return out
}
