// Package scale maps data coordinates to screen pixels: point index to
// pixel x and value to pixel y, for the viewport the chart currently has.
// A Mapper is rebuilt on every data or bounds change; nothing is cached.
package scale

import (
	"math"

	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/geom"
)

const (
	// horizontal inset on each side, as a fraction of the viewport width
	xPaddingRatio = 0.01
	// headroom added above and below the value range for multi-point series
	yPaddingRatio = 0.05
	// padding ratio for a single-point series
	singlePaddingRatio = 0.2
	// substitute half-range when the value range would collapse to zero
	flatHalfRange = 1.0
)

// Mapper converts point indexes and values into pixel positions inside a
// viewport. The y axis is inverted: larger values map to smaller pixel y.
type Mapper struct {
	bounds    geom.Rect
	n         int
	minV      float64 // padded range
	maxV      float64
	xPad      float64
	step      float64
	halfLineW float64
}

// NewMapper builds the transforms for the given values and viewport.
// lineWidth insets the vertical clamp so stroke caps are not clipped.
func NewMapper(values []float64, bounds geom.Rect, lineWidth float64) Mapper {
	m := Mapper{bounds: bounds, n: len(values), halfLineW: lineWidth / 2}
	if len(values) == 0 {
		return m
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if len(values) == 1 {
		v := values[0]
		pad := math.Abs(v) * singlePaddingRatio
		if pad == 0 {
			pad = flatHalfRange
		}
		m.minV, m.maxV = v-pad, v+pad
		return m
	}
	if max == min {
		min -= flatHalfRange
		max += flatHalfRange
	}
	rng := max - min
	m.minV = min - rng*yPaddingRatio
	m.maxV = max + rng*yPaddingRatio
	m.xPad = bounds.W * xPaddingRatio
	m.step = (bounds.W - 2*m.xPad) / float64(len(values)-1)
	return m
}

// Count returns the number of values the mapper was built for.
func (m Mapper) Count() int { return m.n }

// Step returns the pixel distance between consecutive point indexes.
// Zero for fewer than two points.
func (m Mapper) Step() float64 { return m.step }

// YRange returns the padded value range backing the y transform.
func (m Mapper) YRange() (min, max float64) { return m.minV, m.maxV }

// XForIndex maps a point index to pixel x. A single-point series maps to
// the horizontal centre regardless of index.
func (m Mapper) XForIndex(i int) float64 {
	if m.n <= 1 {
		return m.bounds.X + m.bounds.W/2
	}
	return m.bounds.X + m.xPad + float64(i)*m.step
}

// YForValue maps a value to pixel y, inverted and clamped into the
// viewport inset by half the line width.
func (m Mapper) YForValue(v float64) float64 {
	rng := m.maxV - m.minV
	if rng <= 0 {
		return m.bounds.Y + m.bounds.H/2
	}
	top := m.bounds.Y + m.halfLineW
	bottom := m.bounds.MaxY() - m.halfLineW
	t := (v - m.minV) / rng
	y := bottom - t*(bottom-top)
	if y < top {
		y = top
	}
	if y > bottom {
		y = bottom
	}
	return y
}
