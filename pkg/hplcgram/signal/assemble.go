package signal

import (
	"errors"
	"fmt"
	"math"

	"github.com/ukaji3/hplcgram-go/pkg/hplcgram/models"
	"gonum.org/v1/gonum/floats"
)

// ErrNonFinite indicates that a NaN or infinite value reached the signal.
var ErrNonFinite = errors.New("non-finite signal value")

// DefaultBaseline is the offset every sample starts from, in mAU.
const DefaultBaseline = 0.2

// Params configures signal assembly.
type Params struct {
	// Samples is the grid size.
	Samples int `yaml:"samples"`
	// Baseline is the constant offset added before peaks and noise.
	Baseline float64     `yaml:"baseline"`
	Noise    NoiseParams `yaml:"noise"`
	// Seed fixes the noise sequence. Zero draws a new one per call.
	Seed uint64 `yaml:"seed"`
}

// DefaultParams returns the standard assembly settings.
func DefaultParams() Params {
	return Params{
		Samples:  DefaultSamples,
		Baseline: DefaultBaseline,
		Noise:    DefaultNoise(),
	}
}

// Series is an assembled chromatogram.
type Series struct {
	// Span is the run duration in minutes.
	Span float64
	// Grid holds the sample times.
	Grid []float64
	// Values holds the intensity at each grid time, len(Values) == len(Grid).
	Values []float64
	// Peaks are the waveforms that were summed, in record order.
	Peaks []Peak
	// PeaksFound counts records with a positive height.
	PeaksFound int
	// MaxHeight is the tallest record height, independent of noise.
	MaxHeight float64
}

// Max returns the largest sample value.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return floats.Max(s.Values)
}

// Sample returns the grid time and value nearest to t.
func (s *Series) Sample(t float64) (float64, float64) {
	i := nearestIndex(s.Grid, t)
	if i < 0 {
		return t, 0
	}
	return s.Grid[i], s.Values[i]
}

// Assemble sums the peak waveforms and the baseline perturbation over a grid
// spanning [0, span]. Records with Height <= 0 are skipped.
func Assemble(records []models.PeakRecord, span float64, p Params) (*Series, error) {
	grid, err := NewGrid(span, p.Samples)
	if err != nil {
		return nil, err
	}

	values := make([]float64, len(grid))
	floats.AddConst(p.Baseline, values)

	s := &Series{Span: span, Grid: grid, Values: values}
	for _, r := range records {
		if !r.Valid() {
			continue
		}
		peak := NewPeak(r.RetentionTime, r.Sigma(span), r.Height, r.Symmetry)
		peak.AddTo(grid, values)
		s.Peaks = append(s.Peaks, peak)
		s.PeaksFound++
		if r.Height > s.MaxHeight {
			s.MaxHeight = r.Height
		}
	}

	floats.Add(values, NewNoise(p.Noise, p.Seed).Perturbation(grid))

	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w at t=%.4f min", ErrNonFinite, grid[i])
		}
	}
	return s, nil
}
