// Package render draws assembled chromatograms as PNG charts.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/ukaji3/hplcgram-go/pkg/hplcgram/axis"
	"github.com/ukaji3/hplcgram-go/pkg/hplcgram/models"
	"github.com/ukaji3/hplcgram-go/pkg/hplcgram/signal"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Options controls the chart appearance.
type Options struct {
	// WidthInches and HeightInches give the figure size.
	WidthInches  float64 `yaml:"width_inches"`
	HeightInches float64 `yaml:"height_inches"`
	DPI          float64 `yaml:"dpi"`
	// LineColor is a hex colour such as "205ea6".
	LineColor string `yaml:"line_color"`
	// LineWidth is the trace width in points.
	LineWidth float64 `yaml:"line_width"`
	// FontSize is the tick label size in points.
	FontSize float64 `yaml:"font_size"`
	// BelowZero extends the intensity axis below 0 by this fraction of its upper bound.
	BelowZero float64 `yaml:"below_zero"`
	// Markers draws integration baselines under each peak.
	Markers bool `yaml:"markers"`
	// MarkerSigmas is the half-width of the integration window in sigmas.
	MarkerSigmas float64 `yaml:"marker_sigmas"`
	MarkerColor  string  `yaml:"marker_color"`
}

// DefaultOptions returns a 10x4 inch, 300 DPI figure.
func DefaultOptions() Options {
	return Options{
		WidthInches:  10,
		HeightInches: 4,
		DPI:          300,
		LineColor:    "205ea6",
		LineWidth:    0.6,
		FontSize:     8,
		BelowZero:    0.05,
		MarkerSigmas: 3,
		MarkerColor:  "555555",
	}
}

// Input is what the renderer draws.
type Input struct {
	Series *signal.Series
	// YAxis is the intensity scale; the time axis always spans [0, Series.Span].
	YAxis models.AxisScale
	XAxis models.AxisScale
}

// Chart renders in to PNG. Every call builds its own chart, so nothing
// carries over between renders.
func Chart(in Input, opts Options) (*Surface, error) {
	graph, err := newGraph(in, opts)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := graph.Render(chart.PNG, buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return &Surface{buf: buf, width: graph.Width, height: graph.Height}, nil
}

// newGraph builds the go-chart definition for in.
func newGraph(in Input, opts Options) (chart.Chart, error) {
	if in.Series == nil || len(in.Series.Grid) == 0 {
		return chart.Chart{}, errors.New("render: empty series")
	}
	if len(in.Series.Grid) != len(in.Series.Values) {
		return chart.Chart{}, fmt.Errorf("render: grid has %d samples, values %d", len(in.Series.Grid), len(in.Series.Values))
	}
	if opts.DPI <= 0 || opts.WidthInches <= 0 || opts.HeightInches <= 0 {
		return chart.Chart{}, fmt.Errorf("render: invalid figure size %vx%v in at %v dpi", opts.WidthInches, opts.HeightInches, opts.DPI)
	}

	xTicks := axis.TimeTicks(models.AxisScale{Upper: in.Series.Span, Step: in.XAxis.Step}, axis.UnitTime)
	yTicks := axis.Ticks(in.YAxis, axis.UnitIntensity)
	if len(xTicks) == 0 || len(yTicks) == 0 {
		return chart.Chart{}, fmt.Errorf("render: no ticks for axes x=%+v y=%+v", in.XAxis, in.YAxis)
	}

	// go-chart derives axis ranges from explicit ticks and ignores Range,
	// so the offset below zero needs its own unlabelled tick.
	yMin := -opts.BelowZero * in.YAxis.Upper
	if yMin < 0 {
		yTicks = append([]models.Tick{{Value: yMin}}, yTicks...)
	} else {
		yMin = 0
	}
	yMax := in.YAxis.Upper

	width := InchesToPixels(opts.WidthInches, opts.DPI)
	height := InchesToPixels(opts.HeightInches, opts.DPI)

	axisStyle := chart.Style{
		FontSize:    opts.FontSize,
		StrokeColor: drawing.ColorBlack,
		StrokeWidth: PointsToPixels(0.8, opts.DPI),
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "signal",
			YAxis:   chart.YAxisSecondary,
			XValues: in.Series.Grid,
			YValues: clamp(in.Series.Values, yMin, yMax),
			Style: chart.Style{
				StrokeColor: drawing.ColorFromHex(opts.LineColor),
				StrokeWidth: PointsToPixels(opts.LineWidth, opts.DPI),
			},
		},
	}
	if opts.Markers {
		marks := IntegrationMarks(in.Series, opts.MarkerSigmas, in.YAxis.Upper*0.02)
		series = append(series, markerSeries(marks, yMin, yMax, opts)...)
	}

	// The intensity axis is drawn as the secondary (left) axis. go-chart
	// reads the secondary range from the primary ticks, so the hidden
	// primary axis carries the same ticks.
	ticks := toChartTicks(yTicks)
	graph := chart.Chart{
		Width:  width,
		Height: height,
		DPI:    opts.DPI,
		Background: chart.Style{
			Padding: chart.Box{Top: height / 20, Left: width / 50, Right: width / 25, Bottom: height / 40},
		},
		XAxis: chart.XAxis{
			Style: axisStyle,
			Range: &chart.ContinuousRange{Min: 0, Max: in.Series.Span},
			Ticks: toChartTicks(xTicks),
		},
		YAxis: chart.YAxis{
			Style: chart.Hidden(),
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax},
			Ticks: ticks,
		},
		YAxisSecondary: chart.YAxis{
			Style: axisStyle,
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax},
			Ticks: ticks,
		},
		Series: series,
	}
	return graph, nil
}

// clamp returns a copy of values limited to [lo, hi]. go-chart does not
// clip series to the plot area.
func clamp(values []float64, lo, hi float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Min(math.Max(v, lo), hi)
	}
	return out
}

func toChartTicks(ticks []models.Tick) []chart.Tick {
	out := make([]chart.Tick, len(ticks))
	for i, t := range ticks {
		out[i] = chart.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}
