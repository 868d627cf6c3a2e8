package chart

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/geom"
	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/labels"
)

// offscreen parks hidden canvas objects out of view.
var offscreen = fyne.NewPos(-1000, -1000)

// CreateRenderer builds the canvas object tree for the chart.
func (c *LineChart) CreateRenderer() fyne.WidgetRenderer {
	r := &lineChartRenderer{c: c}
	r.bg = canvas.NewRectangle(color.Transparent)
	r.dot = canvas.NewCircle(c.cfg.DotColor)
	r.dot.StrokeWidth = c.cfg.DotStrokeWidth
	r.dot.StrokeColor = c.cfg.LineColor
	r.cursorLine = canvas.NewLine(c.cfg.HoverLineColor)
	r.cursorLine.StrokeWidth = 1
	r.markerDot = canvas.NewCircle(c.cfg.CursorColor)
	r.tipBG = canvas.NewRectangle(c.cfg.CursorLabelBackground)
	r.tipText = canvas.NewText("", c.cfg.CursorLabelForeground)
	r.tipText.TextSize = c.cfg.CursorLabelTextSize
	return r
}

type lineChartRenderer struct {
	c *LineChart

	bg           *canvas.Rectangle
	gridH, gridV []*canvas.Line
	curveSegs    []*canvas.Line
	dot          *canvas.Circle

	xTexts, yTexts       []*canvas.Text
	oldXTexts, oldYTexts []*canvas.Text

	cursorLine *canvas.Line
	markerDot  *canvas.Circle
	tipBG      *canvas.Rectangle
	tipText    *canvas.Text
}

func (r *lineChartRenderer) Destroy() {}

func (r *lineChartRenderer) MinSize() fyne.Size { return fyne.NewSize(120, 80) }

func (r *lineChartRenderer) Objects() []fyne.CanvasObject {
	objs := []fyne.CanvasObject{r.bg}
	for _, l := range r.gridH {
		objs = append(objs, l)
	}
	for _, l := range r.gridV {
		objs = append(objs, l)
	}
	for _, l := range r.curveSegs {
		objs = append(objs, l)
	}
	objs = append(objs, r.dot)
	for _, t := range r.oldXTexts {
		objs = append(objs, t)
	}
	for _, t := range r.oldYTexts {
		objs = append(objs, t)
	}
	for _, t := range r.xTexts {
		objs = append(objs, t)
	}
	for _, t := range r.yTexts {
		objs = append(objs, t)
	}
	objs = append(objs, r.cursorLine, r.markerDot, r.tipBG, r.tipText)
	return objs
}

func (r *lineChartRenderer) Layout(size fyne.Size) {
	c := r.c
	if size != c.lastSize && size.Width > 0 && size.Height > 0 {
		c.lastSize = size
		c.rebuildModel(size)
		// a resize replaces the label sets outright, no transition
		c.xLabels, c.yLabels = c.buildLabels(size)
	}
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))

	rect := c.chartRect(size)
	r.layoutGrid(rect)
	r.layoutCurve(rect)
	r.layoutLabels()
	r.layoutCursor(rect, size)
}

func (r *lineChartRenderer) layoutGrid(rect geom.Rect) {
	c := r.c
	gridColor := color.NRGBA{R: 128, G: 128, B: 128, A: 60}

	nH := 0
	if c.cfg.ShowHorizontalGrid && c.cfg.YDivisions > 1 && !c.data.IsEmpty() {
		nH = c.cfg.YDivisions
	}
	ensureLines(&r.gridH, nH, gridColor, 1)
	for i, l := range r.gridH {
		y := float32(rect.Y + float64(i)*rect.H/float64(c.cfg.YDivisions-1))
		l.Position1 = fyne.NewPos(float32(rect.X), y)
		l.Position2 = fyne.NewPos(float32(rect.MaxX()), y)
	}

	nV := 0
	if c.cfg.ShowVerticalGrid && c.cfg.GridSpacing > 0 && !c.data.IsEmpty() {
		nV = int(float32(rect.W)/c.cfg.GridSpacing) + 1
	}
	ensureLines(&r.gridV, nV, gridColor, 1)
	for i, l := range r.gridV {
		x := float32(rect.X) + float32(i)*c.cfg.GridSpacing
		l.Position1 = fyne.NewPos(x, float32(rect.Y))
		l.Position2 = fyne.NewPos(x, float32(rect.MaxY()))
	}
}

func (r *lineChartRenderer) layoutCurve(rect geom.Rect) {
	c := r.c

	if len(c.data) == 1 && !c.path.IsEmpty() {
		seg := c.path.Segs[0]
		d := float32(seg.Radius * 2)
		r.dot.Resize(fyne.NewSize(d, d))
		r.dot.Move(fyne.NewPos(float32(seg.To.X-seg.Radius), float32(seg.To.Y-seg.Radius)))
		ensureLines(&r.curveSegs, 0, c.cfg.LineColor, c.cfg.LineWidth)
		return
	}
	r.dot.Resize(fyne.NewSize(0, 0))
	r.dot.Move(offscreen)

	poly := c.curvePolyline()
	n := 0
	if len(poly) > 1 {
		n = len(poly) - 1
	}
	ensureLines(&r.curveSegs, n, c.cfg.LineColor, c.cfg.LineWidth)
	for i, l := range r.curveSegs {
		l.Position1 = fyne.NewPos(float32(poly[i].X), float32(poly[i].Y))
		l.Position2 = fyne.NewPos(float32(poly[i+1].X), float32(poly[i+1].Y))
	}
}

func (r *lineChartRenderer) layoutLabels() {
	c := r.c
	p := c.labelProgress
	if c.oldXLabels == nil && c.oldYLabels == nil {
		p = 1
	}

	ensureTexts(&r.xTexts, len(c.xLabels), c.cfg.LabelColor)
	for i, al := range c.xLabels {
		placeLabel(r.xTexts[i], al, c.cfg.LabelColor, p, c.labelDir, false, true)
	}
	ensureTexts(&r.yTexts, len(c.yLabels), c.cfg.LabelColor)
	for i, al := range c.yLabels {
		placeLabel(r.yTexts[i], al, c.cfg.LabelColor, p, c.labelDir, false, false)
	}
	ensureTexts(&r.oldXTexts, len(c.oldXLabels), c.cfg.LabelColor)
	for i, al := range c.oldXLabels {
		placeLabel(r.oldXTexts[i], al, c.cfg.LabelColor, p, c.labelDir, true, true)
	}
	ensureTexts(&r.oldYTexts, len(c.oldYLabels), c.cfg.LabelColor)
	for i, al := range c.oldYLabels {
		placeLabel(r.oldYTexts[i], al, c.cfg.LabelColor, p, c.labelDir, true, false)
	}
}

// placeLabel positions one label during a crossfade. Fresh labels slide to
// their frame while fading in; stale labels slide away while fading out.
// Expansion slides towards the axis origin, shrinking slides the other way;
// x labels slide horizontally, y labels vertically.
func placeLabel(t *canvas.Text, al labels.AxisLabel, base color.Color, p float32, dir labels.Direction, stale, horizontal bool) {
	slide := float32(labelSlide)
	if dir == labels.DirectionShrink {
		slide = -slide
	}
	var off float32
	alpha := p
	if stale {
		off = -slide * p
		alpha = 1 - p
	} else {
		off = slide * (1 - p)
	}
	x := float32(al.Frame.X)
	y := float32(al.Frame.Y)
	if horizontal {
		x += off
	} else {
		y += off
	}
	t.Text = al.Text
	t.TextSize = 12
	t.Color = withAlpha(base, alpha)
	t.Move(fyne.NewPos(x, y))
}

func (r *lineChartRenderer) layoutCursor(rect geom.Rect, size fyne.Size) {
	c := r.c
	if !c.cursorVisible {
		r.cursorLine.Position1 = offscreen
		r.cursorLine.Position2 = offscreen
		r.markerDot.Move(offscreen)
		r.markerDot.Resize(fyne.NewSize(0, 0))
		r.tipBG.Move(offscreen)
		r.tipBG.Resize(fyne.NewSize(0, 0))
		r.tipText.Move(offscreen)
		return
	}
	r.cursorLine.Position1 = fyne.NewPos(c.cursorX, float32(rect.Y))
	r.cursorLine.Position2 = fyne.NewPos(c.cursorX, float32(rect.MaxY()))

	d := c.cfg.DotSize
	r.markerDot.Resize(fyne.NewSize(d, d))
	r.markerDot.Move(fyne.NewPos(float32(c.marker.X)-d/2, float32(c.marker.Y)-d/2))

	if !c.tipVisible {
		r.tipBG.Move(offscreen)
		r.tipBG.Resize(fyne.NewSize(0, 0))
		r.tipText.Move(offscreen)
		return
	}
	r.tipText.Text = c.tipText
	pad := float32(6)
	ts := fyne.MeasureText(c.tipText, c.cfg.CursorLabelTextSize, fyne.TextStyle{})
	bgW := ts.Width + 2*pad
	bgH := ts.Height + 2*pad
	tx := c.cursorX - bgW/2
	ty := float32(rect.Y) + 2
	// keep the tooltip horizontally inside the viewport
	if tx < 0 {
		tx = 0
	}
	if tx+bgW > size.Width {
		tx = size.Width - bgW
	}
	r.tipBG.Resize(fyne.NewSize(bgW, bgH))
	r.tipBG.Move(fyne.NewPos(tx, ty))
	r.tipText.Move(fyne.NewPos(tx+pad, ty+pad))
}

func (r *lineChartRenderer) Refresh() {
	r.Layout(r.c.Size())
	r.bg.Refresh()
	for _, l := range r.gridH {
		l.Refresh()
	}
	for _, l := range r.gridV {
		l.Refresh()
	}
	for _, l := range r.curveSegs {
		l.Refresh()
	}
	r.dot.Refresh()
	for _, t := range r.oldXTexts {
		t.Refresh()
	}
	for _, t := range r.oldYTexts {
		t.Refresh()
	}
	for _, t := range r.xTexts {
		t.Refresh()
	}
	for _, t := range r.yTexts {
		t.Refresh()
	}
	r.cursorLine.Refresh()
	r.markerDot.Refresh()
	r.tipBG.Refresh()
	r.tipText.Refresh()
}

// ensureLines grows or shrinks a line pool to n entries.
func ensureLines(pool *[]*canvas.Line, n int, col color.Color, width float32) {
	for len(*pool) < n {
		l := canvas.NewLine(col)
		l.StrokeWidth = width
		*pool = append(*pool, l)
	}
	if len(*pool) > n {
		*pool = (*pool)[:n]
	}
	for _, l := range *pool {
		l.StrokeColor = col
		l.StrokeWidth = width
	}
}

// ensureTexts grows or shrinks a text pool to n entries.
func ensureTexts(pool *[]*canvas.Text, n int, col color.Color) {
	for len(*pool) < n {
		*pool = append(*pool, canvas.NewText("", col))
	}
	if len(*pool) > n {
		*pool = (*pool)[:n]
	}
}

// withAlpha scales a colour's alpha by f.
func withAlpha(c color.Color, f float32) color.Color {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float32(n.A) * f)
	return n
}
