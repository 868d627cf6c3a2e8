// Package chart is the chart surface: a Fyne widget that owns the current
// data series and configuration, rebuilds the scale/curve/label state on
// every update or resize, and runs the pointer-driven cursor.
package chart

import (
	"fmt"
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"seehuhn.de/go/geom/vec"

	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/chartlog"
	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/cursor"
	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/curve"
	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/geom"
	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/labels"
	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/scale"
	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/series"
)

const (
	// samples used to flatten the curve for drawing and path morphing
	morphSamples = 96
	// the curve animates first; labels resync once it settles
	morphDuration     = 600 * time.Millisecond
	crossfadeDuration = 250 * time.Millisecond
	// x-axis label strip below the plot area
	xLabelGap = 4.0
	// distance labels travel during an expand/shrink crossfade
	labelSlide = 12.0
)

// LineChart renders one animated, interactive line series.
type LineChart struct {
	widget.BaseWidget

	cfg      Config
	provider func(series.Point) (string, bool)

	data   series.Series
	mapper scale.Mapper
	path   geom.Path
	engine *cursor.Engine

	xLabels, yLabels       []labels.AxisLabel
	oldXLabels, oldYLabels []labels.AxisLabel
	labelDir               labels.Direction
	labelProgress          float32

	animating    bool
	animFrom     []vec.Vec2
	animTo       []vec.Vec2
	animProgress float32
	pendingX     []labels.AxisLabel
	pendingY     []labels.AxisLabel
	pendingDir   labels.Direction
	pendingDone  func()

	cursorVisible bool
	cursorX       float32
	marker        vec.Vec2
	tipText       string
	tipVisible    bool

	lastSize fyne.Size
}

// NewLineChart builds a chart with the given configuration.
func NewLineChart(cfg Config) *LineChart {
	if cfg.YDivisions < 1 {
		cfg.YDivisions = DefaultConfig().YDivisions
	}
	if cfg.LineWidth <= 0 {
		cfg.LineWidth = DefaultConfig().LineWidth
	}
	if cfg.DateFormat == "" {
		cfg.DateFormat = DefaultConfig().DateFormat
	}
	c := &LineChart{cfg: cfg, engine: cursor.NewEngine()}
	c.ExtendBaseWidget(c)
	return c
}

// SetCursorLabelProvider installs the tooltip text builder. Returning
// false suppresses the tooltip for that point; the marker stays visible.
func (c *LineChart) SetCursorLabelProvider(fn func(series.Point) (string, bool)) {
	c.provider = fn
}

// SubscribeCursor registers a callback for cursor events.
func (c *LineChart) SubscribeCursor(fn func(cursor.Event)) {
	c.engine.Subscribe(fn)
}

// Data returns the current series.
func (c *LineChart) Data() series.Series { return c.data }

// RenderedPath returns the most recently built path. Read-only.
func (c *LineChart) RenderedPath() geom.Path { return c.path }

// XLabels and YLabels expose the current label sets. Read-only.
func (c *LineChart) XLabels() []labels.AxisLabel { return c.xLabels }
func (c *LineChart) YLabels() []labels.AxisLabel { return c.yLabels }

// UpdateChart replaces the whole series. With animated set the curve
// morphs from the previous shape and done fires once the morph settles;
// otherwise everything is applied immediately and done fires before
// returning. Label relayout always happens after the curve has settled.
func (c *LineChart) UpdateChart(points series.Series, animated bool, done func()) {
	defer chartlog.TimeTrack(time.Now(), "chart update")
	chartlog.Debugf("updateChart: %d points animated=%v", len(points), animated)

	c.data = append(series.Series(nil), points...)
	c.hideCursor()

	size := c.Size()
	if size.Width <= 0 || size.Height <= 0 {
		// not laid out yet; the first Layout pass will pick the data up
		if done != nil {
			done()
		}
		return
	}

	oldPath := c.path
	c.rebuildModel(size)
	newX, newY := c.buildLabels(size)
	dir := labels.Transition(len(c.xLabels), len(newX))

	canMorph := animated && !oldPath.IsEmpty() && len(c.data) >= 2 &&
		oldPath.Segs[0].Op == geom.OpMove
	if !canMorph {
		c.applyLabels(newX, newY, dir)
		c.Refresh()
		if done != nil {
			done()
		}
		return
	}

	c.animFrom = samplePath(oldPath, morphSamples)
	c.animTo = samplePath(c.path, morphSamples)
	if len(c.animFrom) != len(c.animTo) {
		c.applyLabels(newX, newY, dir)
		c.Refresh()
		if done != nil {
			done()
		}
		return
	}
	c.pendingX, c.pendingY, c.pendingDir = newX, newY, dir
	c.pendingDone = done
	c.animating = true
	c.animProgress = 0

	anim := fyne.NewAnimation(morphDuration, func(p float32) {
		c.animProgress = p
		if p >= 1 {
			c.finishMorph()
		}
		c.Refresh()
	})
	anim.Curve = fyne.AnimationEaseInOut
	anim.Start()
}

func (c *LineChart) finishMorph() {
	if !c.animating {
		return
	}
	c.animating = false
	c.animFrom, c.animTo = nil, nil
	c.applyLabels(c.pendingX, c.pendingY, c.pendingDir)
	c.pendingX, c.pendingY = nil, nil
	if done := c.pendingDone; done != nil {
		c.pendingDone = nil
		done()
	}
}

// applyLabels swaps in a fresh label set. Old labels are discarded as a
// whole and crossfaded out; there is no per-label matching.
func (c *LineChart) applyLabels(newX, newY []labels.AxisLabel, dir labels.Direction) {
	if dir != labels.DirectionNone {
		c.oldXLabels = c.xLabels
		c.oldYLabels = c.yLabels
		c.labelDir = dir
		c.labelProgress = 0
		anim := fyne.NewAnimation(crossfadeDuration, func(p float32) {
			c.labelProgress = p
			if p >= 1 {
				c.oldXLabels, c.oldYLabels = nil, nil
			}
			c.Refresh()
		})
		anim.Start()
	}
	c.xLabels, c.yLabels = newX, newY
}

// chartRect returns the plot area for the given widget size: the padding
// inset, minus the x-label strip at the bottom.
func (c *LineChart) chartRect(size fyne.Size) geom.Rect {
	p := c.cfg.Padding
	r := geom.Rect{
		X: float64(p.Left),
		Y: float64(p.Top),
		W: float64(size.Width - p.Left - p.Right),
		H: float64(size.Height - p.Top - p.Bottom),
	}
	if r.W < 1 {
		r.W = 1
	}
	if r.H < 1 {
		r.H = 1
	}
	return r
}

// rebuildModel recomputes mapper and path from the current series and
// size. Called on every data replacement and every resize; never cached.
func (c *LineChart) rebuildModel(size fyne.Size) {
	rect := c.chartRect(size)
	c.mapper = scale.NewMapper(c.data.Values(), rect, float64(c.cfg.LineWidth))

	switch {
	case c.data.IsEmpty():
		c.path = geom.Path{}
	case len(c.data) == 1:
		center := vec.Vec2{X: c.mapper.XForIndex(0), Y: c.mapper.YForValue(c.data[0].Value)}
		c.path = curve.BuildDot(center, rect)
	default:
		pts := make([]vec.Vec2, len(c.data))
		for i, p := range c.data {
			pts[i] = vec.Vec2{X: c.mapper.XForIndex(i), Y: c.mapper.YForValue(p.Value)}
		}
		c.path = curve.Build(pts, rect)
	}
	c.engine.SetData(c.path, c.mapper, c.data, rect)
}

// buildLabels computes both fresh label sets for the current series.
func (c *LineChart) buildLabels(size fyne.Size) (x, y []labels.AxisLabel) {
	if c.data.IsEmpty() {
		return nil, nil
	}
	rect := c.chartRect(size)

	minV, maxV := c.data.MinMax()
	if len(c.data) == 1 || minV == maxV {
		pad := 0.2 * math.Abs(minV)
		if pad == 0 {
			pad = 1
		}
		minV, maxV = minV-pad, maxV+pad
	}
	yVals := labels.YValues(minV, maxV, c.cfg.YDivisions)
	yTexts := make([]string, len(yVals))
	ys := make([]float64, len(yVals))
	for i, v := range yVals {
		yTexts[i] = labels.FormatValue(v)
		if len(yVals) > 1 {
			ys[i] = rect.Y + float64(i)*rect.H/float64(len(yVals)-1)
		} else {
			ys[i] = rect.Y + rect.H/2
		}
	}
	y = labels.LayoutY(yTexts, ys, rect.X+2)

	texts := make([]string, len(c.data))
	total := 0.0
	for i, p := range c.data {
		texts[i] = p.Timestamp.Format(c.cfg.DateFormat)
		total += labels.MeasureLabel(texts[i])
	}
	kept := labels.ThinIndexes(len(c.data), total, rect.W)
	keptTexts := make([]string, len(kept))
	for i, idx := range kept {
		keptTexts[i] = texts[idx]
	}
	strip := geom.Rect{X: rect.X, Y: rect.MaxY() + xLabelGap, W: rect.W, H: 13}
	x = labels.LayoutX(keptTexts, strip)
	return x, y
}

// curvePolyline returns the flattened points to draw, morph-interpolated
// while an animation is running.
func (c *LineChart) curvePolyline() []vec.Vec2 {
	if c.animating && len(c.animFrom) == len(c.animTo) && len(c.animTo) > 0 {
		p := float64(c.animProgress)
		out := make([]vec.Vec2, len(c.animTo))
		for i := range out {
			out[i] = c.animFrom[i].Add(c.animTo[i].Sub(c.animFrom[i]).Mul(p))
		}
		return out
	}
	return samplePath(c.path, morphSamples)
}

// samplePath evaluates the path at n evenly spaced parameters, one shared
// parameterisation per segment. Arc-only paths (single point) sample empty.
func samplePath(p geom.Path, n int) []vec.Vec2 {
	var starts []vec.Vec2
	var segs []geom.Segment
	var cur vec.Vec2
	for _, s := range p.Segs {
		switch s.Op {
		case geom.OpMove:
			cur = s.To
		case geom.OpLine, geom.OpCube:
			starts = append(starts, cur)
			segs = append(segs, s)
			cur = s.To
		}
	}
	if len(segs) == 0 || n < 2 {
		return nil
	}
	out := make([]vec.Vec2, n)
	for k := range out {
		u := float64(k) / float64(n-1) * float64(len(segs))
		i := int(u)
		if i >= len(segs) {
			i = len(segs) - 1
		}
		t := u - float64(i)
		if t > 1 {
			t = 1
		}
		s := segs[i]
		if s.Op == geom.OpCube {
			out[k] = geom.CubicPoint(starts[i], s.C1, s.C2, s.To, t)
		} else {
			out[k] = starts[i].Add(s.To.Sub(starts[i]).Mul(t))
		}
	}
	return out
}

// ---- pointer interaction ----

var _ fyne.Draggable = (*LineChart)(nil)
var _ desktop.Mouseable = (*LineChart)(nil)

// MouseDown starts a cursor interaction.
func (c *LineChart) MouseDown(ev *desktop.MouseEvent) {
	if c.data.IsEmpty() {
		return
	}
	c.engine.Begin()
	c.moveCursor(ev.Position.X)
}

// MouseUp ends the interaction and hides all cursor visuals.
func (c *LineChart) MouseUp(*desktop.MouseEvent) {
	c.endCursor()
}

// Dragged keeps the cursor tracking while the pointer is held down.
func (c *LineChart) Dragged(ev *fyne.DragEvent) {
	if c.data.IsEmpty() {
		return
	}
	if !c.engine.Active() {
		c.engine.Begin()
	}
	c.moveCursor(ev.Position.X)
}

// DragEnd ends the interaction.
func (c *LineChart) DragEnd() {
	c.endCursor()
}

func (c *LineChart) moveCursor(x float32) {
	rect := c.chartRect(c.Size())
	tx := float64(x)
	if tx < rect.X {
		tx = rect.X
	}
	if tx > rect.MaxX() {
		tx = rect.MaxX()
	}
	if len(c.data) == 1 {
		// fixed at the single point; the vertical line sits at centre
		tx = rect.X + rect.W/2
	}
	pos, ok := c.engine.Move(tx)
	if !ok {
		return
	}
	c.marker = pos
	c.cursorX = float32(tx)
	c.cursorVisible = true

	pt, havePt := c.engine.ResolvePoint(tx)
	c.tipVisible = false
	if havePt {
		if c.provider != nil {
			if text, show := c.provider(pt); show {
				c.tipText = text
				c.tipVisible = true
			}
		} else {
			c.tipText = fmt.Sprintf("%s  %.1f", pt.Timestamp.Format(c.cfg.DateFormat), pt.Value)
			c.tipVisible = true
		}
	}
	c.Refresh()
}

func (c *LineChart) endCursor() {
	c.engine.End()
	c.hideCursor()
	c.Refresh()
}

// hideCursor resets all cursor visuals; also called when a data update
// supersedes an in-flight interaction.
func (c *LineChart) hideCursor() {
	c.cursorVisible = false
	c.tipVisible = false
}
