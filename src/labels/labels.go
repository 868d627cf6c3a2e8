// Package labels decides which axis labels a chart shows, what they say
// and where they go. X-axis labels are thinned so they never overlap; the
// y axis gets one label per configured division. On data changes the
// engine only reports whether the label set grew or shrank; the crossfade
// itself is the renderer's business.
package labels

import (
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/geom"
)

// labelSpacing is the fixed horizontal gap reserved next to each x label
// when estimating how many fit.
const labelSpacing = 8.0

// labelHeight matches the measuring face (basicfont.Face7x13).
const labelHeight = 13.0

// AxisLabel is one placed label.
type AxisLabel struct {
	Text     string
	Vertical bool
	Frame    geom.Rect
}

// Direction describes how a label set changed between two layouts.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionExpand
	DirectionShrink
)

// Transition classifies a label-count change. Equal counts need no
// transition; the old set is simply replaced in place.
func Transition(oldCount, newCount int) Direction {
	switch {
	case oldCount == 0 || oldCount == newCount:
		return DirectionNone
	case newCount > oldCount:
		return DirectionExpand
	default:
		return DirectionShrink
	}
}

// MeasureLabel estimates the rendered width of a label including its
// trailing spacing, using the same fixed face everywhere so thinning stays
// deterministic.
func MeasureLabel(text string) float64 {
	return float64(font.MeasureString(basicfont.Face7x13, text).Ceil()) + labelSpacing
}

// YValues returns divisions evenly spaced values from max down to min, so
// the first entry is the topmost label.
func YValues(min, max float64, divisions int) []float64 {
	if divisions < 1 {
		return nil
	}
	if divisions == 1 {
		return []float64{max}
	}
	out := make([]float64, divisions)
	step := (max - min) / float64(divisions-1)
	for i := range out {
		out[i] = max - float64(i)*step
	}
	return out
}

// FormatValue renders a y-axis value with one decimal place.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// ThinIndexes selects which point indexes keep an x label. If the summed
// label width fits the available width every index is kept. Otherwise
// indexes are sampled at a uniform step (at least 2) and the last index is
// always forced in so the series end stays labelled.
func ThinIndexes(n int, totalLabelW, availW float64) []int {
	if n <= 0 {
		return nil
	}
	if totalLabelW <= availW || n == 1 {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	avg := totalLabelW / float64(n)
	maxFit := int(availW / avg)
	if maxFit < 1 {
		maxFit = 1
	}
	step := int(math.Ceil(float64(n) / float64(maxFit)))
	if step < 2 {
		step = 2
	}
	var out []int
	for i := 0; i < n; i += step {
		out = append(out, i)
	}
	if out[len(out)-1] != n-1 {
		out = append(out, n-1)
	}
	return out
}

// LayoutX places the kept x labels across the available strip. Labels sit
// left-aligned at even spacing; the final label is right-aligned to the
// strip's right edge.
func LayoutX(texts []string, strip geom.Rect) []AxisLabel {
	n := len(texts)
	if n == 0 {
		return nil
	}
	spacing := strip.W / float64(n)
	out := make([]AxisLabel, n)
	for i, t := range texts {
		w := MeasureLabel(t) - labelSpacing
		x := strip.X + float64(i)*spacing
		if i == n-1 {
			x = strip.MaxX() - w
		}
		out[i] = AxisLabel{
			Text:  t,
			Frame: geom.Rect{X: x, Y: strip.Y, W: w, H: labelHeight},
		}
	}
	return out
}

// LayoutY places one label per division, each vertically centred on its
// division's pixel y.
func LayoutY(texts []string, ys []float64, left float64) []AxisLabel {
	if len(texts) != len(ys) {
		return nil
	}
	out := make([]AxisLabel, len(texts))
	for i, t := range texts {
		w := MeasureLabel(t) - labelSpacing
		out[i] = AxisLabel{
			Text:     t,
			Vertical: true,
			Frame:    geom.Rect{X: left, Y: ys[i] - labelHeight/2, W: w, H: labelHeight},
		}
	}
	return out
}
