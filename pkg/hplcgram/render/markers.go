package render

import (
	"github.com/ukaji3/hplcgram-go/pkg/hplcgram/signal"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Point is a position in data coordinates.
type Point struct {
	T, Y float64
}

// Mark is the drawn integration of one peak: a baseline from Start to End.
type Mark struct {
	Start, End Point
	// TickHeight is the full length of the vertical tick at each end.
	TickHeight float64
}

// IntegrationMarks places a baseline under every peak of s, from k sigmas
// before to k sigmas after the apex, clipped to the run. The ends sit on
// the signal at the nearest samples.
func IntegrationMarks(s *signal.Series, k, tickHeight float64) []Mark {
	marks := make([]Mark, 0, len(s.Peaks))
	for _, p := range s.Peaks {
		start, end := p.Window(k)
		if start < 0 {
			start = 0
		}
		if end > s.Span {
			end = s.Span
		}
		if end <= start {
			continue
		}
		t0, y0 := s.Sample(start)
		t1, y1 := s.Sample(end)
		marks = append(marks, Mark{
			Start:      Point{T: t0, Y: y0},
			End:        Point{T: t1, Y: y1},
			TickHeight: tickHeight,
		})
	}
	return marks
}

// markerSeries turns marks into short line series on the intensity axis,
// kept inside [lo, hi].
func markerSeries(marks []Mark, lo, hi float64, opts Options) []chart.Series {
	style := chart.Style{
		StrokeColor: drawing.ColorFromHex(opts.MarkerColor),
		StrokeWidth: PointsToPixels(opts.LineWidth, opts.DPI),
	}
	segment := func(x0, y0, x1, y1 float64) chart.Series {
		return chart.ContinuousSeries{
			YAxis:   chart.YAxisSecondary,
			XValues: []float64{x0, x1},
			YValues: clamp([]float64{y0, y1}, lo, hi),
			Style:   style,
		}
	}

	out := make([]chart.Series, 0, len(marks)*3)
	for _, m := range marks {
		half := m.TickHeight / 2
		out = append(out,
			segment(m.Start.T, m.Start.Y, m.End.T, m.End.Y),
			segment(m.Start.T, m.Start.Y-half, m.Start.T, m.Start.Y+half),
			segment(m.End.T, m.End.Y-half, m.End.T, m.End.Y+half),
		)
	}
	return out
}
