// charttty previews a value series in the terminal using braille cells.
// Any key exits; the terminal's resolution doubles horizontally and
// quadruples vertically through the 2x4 braille dot grid.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// braille dot bit for column x (0..1), row y (0..3)
var brailleBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// plotBraille maps values onto a cells-wide, rows-high grid of braille
// characters, linearly interpolating between samples.
func plotBraille(values []float64, cells, rows int) [][]rune {
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, cells)
		for j := range grid[i] {
			grid[i][j] = 0x2800
		}
	}
	if len(values) == 0 || cells < 1 || rows < 1 {
		return grid
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
	if max == min {
		max = min + 1
	}
	dotsW := cells * 2
	dotsH := rows * 4
	sample := func(dx int) float64 {
		pos := float64(dx) / float64(dotsW-1) * float64(len(values)-1)
		i := int(pos)
		if i >= len(values)-1 {
			return values[len(values)-1]
		}
		frac := pos - float64(i)
		return values[i]*(1-frac) + values[i+1]*frac
	}
	for dx := 0; dx < dotsW; dx++ {
		v := sample(dx)
		dy := int((max - v) / (max - min) * float64(dotsH-1))
		cellX, colX := dx/2, dx%2
		cellY, rowY := dy/4, dy%4
		grid[cellY][cellX] |= brailleBits[rowY][colX]
	}
	return grid
}

func parseValues(csv string) []float64 {
	if csv == "" {
		// demo walk
		out := make([]float64, 48)
		v := 50.0
		for i := range out {
			v += rand.Float64()*10 - 5
			out[i] = v
		}
		return out
	}
	var out []float64
	for _, p := range strings.Split(csv, ",") {
		if v, err := strconv.ParseFloat(strings.TrimSpace(p), 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}

func main() {
	var values string
	flag.StringVar(&values, "values", "", "Comma separated values (empty: random walk)")
	flag.Parse()
	vals := parseValues(values)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "error initializing screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	style := tcell.StyleDefault.Foreground(tcell.ColorTeal)
	for {
		screen.Clear()
		w, h := screen.Size()
		rows := h - 1
		if rows < 1 {
			rows = 1
		}
		grid := plotBraille(vals, w, rows)
		for y, row := range grid {
			for x, r := range row {
				screen.SetContent(x, y, r, nil, style)
			}
		}
		hint := "press any key to exit"
		for i, r := range hint {
			screen.SetContent(i, h-1, r, nil, tcell.StyleDefault)
		}
		screen.Show()

		switch screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			return
		}
	}
}
