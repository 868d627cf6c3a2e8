// Package imagerender renders a series to a raster image, offscreen. It is
// the non-interactive rendering collaborator: the snap CLI and export
// hooks use it, while the live widget draws with Fyne canvas primitives.
package imagerender

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"time"

	chartlib "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/series"
)

// Options controls the offscreen rendering.
type Options struct {
	Width, Height int
	Title         string
	LineColor     drawing.Color
	DateFormat    string
}

// DefaultOptions matches the live widget's default look.
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     300,
		LineColor:  drawing.ColorFromHex("1f77b4"),
		DateFormat: "15:04:05",
	}
}

// PNG renders the series as a PNG byte slice.
func PNG(s series.Series, opts Options) ([]byte, error) {
	if s.IsEmpty() {
		return nil, fmt.Errorf("imagerender: empty series")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}
	format := opts.DateFormat
	if format == "" {
		format = DefaultOptions().DateFormat
	}

	xs := make([]time.Time, len(s))
	ys := make([]float64, len(s))
	for i, p := range s {
		xs[i] = p.Timestamp
		ys[i] = p.Value
	}
	if len(s) == 1 {
		// go-chart needs two x values; duplicate the point a second later
		xs = append(xs, xs[0].Add(time.Second))
		ys = append(ys, ys[0])
	}

	ch := chartlib.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chartlib.Style{Padding: chartlib.Box{Top: 14, Left: 16, Right: 12, Bottom: 24}},
		XAxis: chartlib.XAxis{
			ValueFormatter: chartlib.TimeValueFormatterWithFormat(format),
		},
		Series: []chartlib.Series{
			chartlib.TimeSeries{
				Name:    "values",
				XValues: xs,
				YValues: ys,
				Style: chartlib.Style{
					StrokeWidth: 2,
					StrokeColor: opts.LineColor,
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := ch.Render(chartlib.PNG, &buf); err != nil {
		return nil, fmt.Errorf("imagerender: render: %w", err)
	}
	return buf.Bytes(), nil
}

// Image renders the series and decodes the result into an image.Image.
func Image(s series.Series, opts Options) (image.Image, error) {
	data, err := PNG(s, opts)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imagerender: decode: %w", err)
	}
	return img, nil
}

// WritePNG renders the series and writes it to path.
func WritePNG(s series.Series, opts Options, path string) error {
	data, err := PNG(s, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("imagerender: write %s: %w", path, err)
	}
	return nil
}
