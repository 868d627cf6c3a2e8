package chart

import (
	"image/color"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Padding is the space reserved around the plot area, per edge.
type Padding struct {
	Top, Left, Bottom, Right float32
}

// Config holds the appearance settings for a LineChart. A Config is read
// once at construction; changing it afterwards has no effect on an
// existing chart.
type Config struct {
	LineWidth      float32
	LineColor      color.Color
	HoverLineColor color.Color

	Padding Padding

	// y-axis divisions (grid lines and labels)
	YDivisions int
	// desired spacing between vertical grid lines, in pixels
	GridSpacing        float32
	ShowHorizontalGrid bool
	ShowVerticalGrid   bool

	// single-point marker
	DotSize        float32
	DotColor       color.Color
	DotStrokeWidth float32

	CursorColor           color.Color
	CursorLabelTextSize   float32
	CursorLabelBackground color.Color
	CursorLabelForeground color.Color

	LabelColor color.Color

	// Go time layout used for x-axis labels and the default cursor label
	DateFormat string
}

// DefaultConfig returns the stock appearance.
func DefaultConfig() Config {
	return Config{
		LineWidth:             2,
		LineColor:             nrgba(drawing.ColorFromHex("1f77b4")),
		HoverLineColor:        nrgba(drawing.ColorFromHex("9a9a9a")),
		Padding:               Padding{Top: 16, Left: 24, Bottom: 24, Right: 16},
		YDivisions:            5,
		GridSpacing:           60,
		ShowHorizontalGrid:    true,
		ShowVerticalGrid:      false,
		DotSize:               6,
		DotColor:              nrgba(drawing.ColorFromHex("1f77b4")),
		DotStrokeWidth:        1,
		CursorColor:           nrgba(drawing.ColorFromHex("c8c8c8")),
		CursorLabelTextSize:   12,
		CursorLabelBackground: color.NRGBA{R: 0, G: 0, B: 0, A: 170},
		CursorLabelForeground: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		LabelColor:            nrgba(drawing.ColorFromHex("8c8c8c")),
		DateFormat:            "15:04:05",
	}
}

func nrgba(c drawing.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
