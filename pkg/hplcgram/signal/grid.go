// Package signal synthesizes chromatogram traces from peak records.
package signal

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultSamples is the number of points in a time grid.
const DefaultSamples = 15000

// ErrInvalidSpan indicates a run duration that cannot produce a grid.
var ErrInvalidSpan = errors.New("invalid time span")

// NewGrid returns n evenly spaced times from 0 to span minutes inclusive.
func NewGrid(span float64, n int) ([]float64, error) {
	if math.IsNaN(span) || math.IsInf(span, 0) || span <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpan, span)
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidSpan, n)
	}
	grid := floats.Span(make([]float64, n), 0, span)
	grid[n-1] = span
	return grid, nil
}

// nearestIndex returns the grid index closest to t, clamped to the grid.
func nearestIndex(grid []float64, t float64) int {
	n := len(grid)
	if n == 0 {
		return -1
	}
	last := grid[n-1]
	if t <= 0 || last <= 0 {
		return 0
	}
	if t >= last {
		return n - 1
	}
	return int(math.Round(t / last * float64(n-1)))
}
