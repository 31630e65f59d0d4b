package signal

import "math"

const (
	// minSymmetry is the smallest usable tailing factor; below it the peak is drawn symmetric.
	minSymmetry = 0.001
	// minSigma is the smallest usable sigma; below it sigmaFloor is used.
	minSigma   = 0.00001
	sigmaFloor = 0.01
)

// Peak is a split-sigma Gaussian: the leading edge uses SigmaLeft and
// the trailing edge SigmaRight. Symmetry 1 gives a plain Gaussian and
// larger values widen the tail.
type Peak struct {
	RetentionTime float64
	Height        float64
	SigmaLeft     float64
	SigmaRight    float64
}

// NewPeak builds a peak from its apex, sigma and symmetry factor.
func NewPeak(retentionTime, sigma, height, symmetry float64) Peak {
	if symmetry <= minSymmetry {
		symmetry = 1.0
	}
	if sigma <= minSigma {
		sigma = sigmaFloor
	}
	left := 2 * sigma / (1 + symmetry)
	return Peak{
		RetentionTime: retentionTime,
		Height:        height,
		SigmaLeft:     left,
		SigmaRight:    symmetry * left,
	}
}

// At evaluates the peak at time t.
func (p Peak) At(t float64) float64 {
	sigma := p.SigmaRight
	if t <= p.RetentionTime {
		sigma = p.SigmaLeft
	}
	z := (t - p.RetentionTime) / sigma
	return p.Height * math.Exp(-0.5*z*z)
}

// AddTo adds the peak sampled on grid into dst.
func (p Peak) AddTo(grid, dst []float64) {
	for i, t := range grid {
		dst[i] += p.At(t)
	}
}

// Waveform returns the peak sampled on grid.
func (p Peak) Waveform(grid []float64) []float64 {
	out := make([]float64, len(grid))
	p.AddTo(grid, out)
	return out
}

// Window returns the time range covering k sigmas either side of the apex.
func (p Peak) Window(k float64) (start, end float64) {
	return p.RetentionTime - k*p.SigmaLeft, p.RetentionTime + k*p.SigmaRight
}
