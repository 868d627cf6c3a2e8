// Package series holds the chart's data model: timestamped scalar points
// in chronological order.
package series

import "time"

// Point is a single measurement. Points are immutable values; two points
// are equal iff both value and timestamp match.
type Point struct {
	Value     float64
	Timestamp time.Time
}

// Series is the ordered sequence of points currently shown by a chart.
// Updates replace the whole slice; a Series is never mutated in place.
type Series []Point

// IsEmpty reports whether the series has no points.
func (s Series) IsEmpty() bool { return len(s) == 0 }

// Values returns the raw values in series order.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value
	}
	return out
}

// MinMax returns the smallest and largest value in the series.
// For an empty series both results are 0.
func (s Series) MinMax() (min, max float64) {
	if len(s) == 0 {
		return 0, 0
	}
	min, max = s[0].Value, s[0].Value
	for _, p := range s[1:] {
		if p.Value < min {
			min = p.Value
		}
		if p.Value > max {
			max = p.Value
		}
	}
	return min, max
}

// Equal reports whether two series hold the same points in the same order.
func (s Series) Equal(o Series) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i].Value != o[i].Value || !s[i].Timestamp.Equal(o[i].Timestamp) {
			return false
		}
	}
	return true
}
