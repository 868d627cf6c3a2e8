// chartsnap renders a value series to a PNG from the command line.
//
// Values come either from -values (comma separated) or from a file with
// one value per line; timestamps are synthesised a minute apart.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/chartlog"
	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/imagerender"
	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/series"
)

func parseValues(csv, path string) ([]float64, error) {
	if csv != "" {
		parts := strings.Split(csv, ",")
		out := make([]float64, 0, len(parts))
		for _, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("bad value %q: %w", p, err)
			}
			out = append(out, v)
		}
		return out, nil
	}
	if path == "" {
		return nil, fmt.Errorf("need -values or -file")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []float64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("bad line %q: %w", line, err)
		}
		out = append(out, v)
	}
	return out, sc.Err()
}

func main() {
	var (
		out    string
		width  int
		height int
		values string
		file   string
		title  string
	)
	flag.StringVar(&out, "out", "chart.png", "Output PNG path")
	flag.IntVar(&width, "width", 800, "Image width")
	flag.IntVar(&height, "height", 300, "Image height")
	flag.StringVar(&values, "values", "", "Comma separated values")
	flag.StringVar(&file, "file", "", "File with one value per line")
	flag.StringVar(&title, "title", "", "Chart title")
	flag.Parse()

	vals, err := parseValues(values, file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	s := make(series.Series, len(vals))
	now := time.Now()
	for i, v := range vals {
		s[i] = series.Point{Value: v, Timestamp: now.Add(time.Duration(i) * time.Minute)}
	}

	opts := imagerender.DefaultOptions()
	opts.Width, opts.Height, opts.Title = width, height, title
	if err := imagerender.WritePNG(s, opts, out); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	chartlog.Infof("wrote %s (%d points)", out, len(s))
}
