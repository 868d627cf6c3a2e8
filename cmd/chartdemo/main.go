// chartdemo shows a LineChart fed with a random walk on a timer.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/chart"
	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/chartlog"
	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/cursor"
	"github.com/CodeWithSwiftie/AnimatedChartDemo/src/series"
)

func randomSeries(n int, base float64) series.Series {
	s := make(series.Series, n)
	now := time.Now()
	v := base
	for i := 0; i < n; i++ {
		v += rand.Float64()*10 - 5
		s[i] = series.Point{Value: v, Timestamp: now.Add(time.Duration(i) * time.Minute)}
	}
	return s
}

func main() {
	var interval time.Duration
	flag.DurationVar(&interval, "interval", 3*time.Second, "Delay between random data updates")
	flag.Parse()

	a := app.NewWithID("com.codewithswiftie.chartdemo")
	w := a.NewWindow("Animated Chart Demo")
	w.Resize(fyne.NewSize(700, 420))

	animated := a.Preferences().BoolWithFallback("animated", true)
	pointCount := a.Preferences().IntWithFallback("points", 12)

	lc := chart.NewLineChart(chart.DefaultConfig())
	lc.SetCursorLabelProvider(func(p series.Point) (string, bool) {
		return fmt.Sprintf("%s — %.1f", p.Timestamp.Format("15:04"), p.Value), true
	})
	lc.SubscribeCursor(func(ev cursor.Event) {
		switch ev.Kind {
		case cursor.EventBegan:
			chartlog.Debugf("cursor began")
		case cursor.EventMoved:
			chartlog.Debugf("cursor moved: %.1f @ %s", ev.Point.Value, ev.Point.Timestamp.Format("15:04:05"))
		case cursor.EventEnded:
			chartlog.Debugf("cursor ended")
		}
	})

	animChk := widget.NewCheck("Animate", func(v bool) {
		animated = v
		a.Preferences().SetBool("animated", v)
	})
	animChk.SetChecked(animated)

	countLabel := widget.NewLabel(fmt.Sprintf("%d pts", pointCount))
	dec := widget.NewButton("-", func() {
		if pointCount > 1 {
			pointCount--
			countLabel.SetText(fmt.Sprintf("%d pts", pointCount))
			a.Preferences().SetInt("points", pointCount)
		}
	})
	inc := widget.NewButton("+", func() {
		if pointCount < 60 {
			pointCount++
			countLabel.SetText(fmt.Sprintf("%d pts", pointCount))
			a.Preferences().SetInt("points", pointCount)
		}
	})
	refresh := widget.NewButton("New data", func() {
		lc.UpdateChart(randomSeries(pointCount, 50), animated, nil)
	})

	top := container.NewHBox(animChk, dec, countLabel, inc, refresh)
	w.SetContent(container.NewBorder(top, nil, nil, nil, lc))

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			fyne.Do(func() {
				lc.UpdateChart(randomSeries(pointCount, 50), animated, func() {
					chartlog.Debugf("update settled")
				})
			})
		}
	}()

	w.ShowAndRun()
}
