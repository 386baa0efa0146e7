package chart

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wjs20/weight-tracker/internal/weight"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// matches the original 15x5 inch figure at 100 dpi
const (
	chartWidth  = 1500
	chartHeight = 500
)

// Render draws the progress chart as a PNG: the raw measurements, their
// weekly averages (dashed) and the goal progression (red dotted), all on
// one time axis. A series without a single recorded weight yields
// weight.ErrNoData.
func Render(series weight.Series) ([]byte, error) {
	xs, ys := measurementValues(series)
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: nothing to draw", weight.ErrNoData)
	}

	benchmark, err := weight.Benchmark(series)
	if err != nil {
		return nil, fmt.Errorf("benchmark progression: %w", err)
	}

	weeklyXs, weeklyYs := pointValues(weight.WeeklyAverages(series))
	benchmarkXs, benchmarkYs := pointValues(benchmark)

	graph := gochart.Chart{
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: gochart.XAxis{
			ValueFormatter: gochart.TimeDateValueFormatter,
			Range:          xRange(series),
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name:    "Weight",
				XValues: xs,
				YValues: ys,
			},
			gochart.TimeSeries{
				Name:    "Weekly average",
				XValues: weeklyXs,
				YValues: weeklyYs,
				Style: gochart.Style{
					StrokeColor:     gochart.ColorBlue,
					StrokeDashArray: []float64{5.0, 5.0},
				},
			},
			gochart.TimeSeries{
				Name:    "Goal",
				XValues: benchmarkXs,
				YValues: benchmarkYs,
				Style: gochart.Style{
					StrokeColor:     gochart.ColorRed,
					StrokeDashArray: []float64{2.0, 2.0},
				},
			},
		},
	}
	// a lone entry leaves every curve flat at the same value, pad the
	// y axis so there is a range to draw
	if len(series) == 1 {
		graph.YAxis.Range = &gochart.ContinuousRange{
			Min: benchmarkYs[0] - 1,
			Max: benchmarkYs[0] + 1,
		}
	}

	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}

	return buf.Bytes(), nil
}

// xRange clamps the x axis to the series' own date range. A single day
// cannot span an axis, so the right bound then moves a day out instead.
func xRange(series weight.Series) gochart.Range {
	first := series[0].Date
	last := series[len(series)-1].Date
	if !last.After(first) {
		last = first.AddDate(0, 0, 1)
	}
	return &gochart.ContinuousRange{
		Min: float64(first.UnixNano()),
		Max: float64(last.UnixNano()),
	}
}

// measurementValues strips gaps, only recorded weights are drawn.
func measurementValues(series weight.Series) ([]time.Time, []float64) {
	var xs []time.Time
	var ys []float64
	for _, e := range series {
		if !e.HasWeight() {
			continue
		}
		xs = append(xs, e.Date)
		ys = append(ys, *e.Weight)
	}
	return xs, ys
}

func pointValues(points []weight.Point) ([]time.Time, []float64) {
	xs := make([]time.Time, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.Date
		ys[i] = p.Value
	}
	return xs, ys
}
