// Package models defines data structures shared by the chromatogram pipeline.
package models

// FWHMToSigma converts a full width at half maximum into a Gaussian
// standard deviation (2*sqrt(2*ln 2)).
const FWHMToSigma = 2.355

// DefaultWidthDivisor sets the fallback sigma as a fraction of the run span
// for peaks reported without a width.
const DefaultWidthDivisor = 200.0

// PeakRecord represents one row of the peak table.
type PeakRecord struct {
	// RetentionTime is the peak apex position in minutes.
	RetentionTime float64 `json:"retention_time" yaml:"retention_time"`
	// Height is the apex intensity in mAU. Zero means no peak.
	Height float64 `json:"height" yaml:"height"`
	// Width is the reported peak width in minutes. Zero selects the fallback.
	Width float64 `json:"width" yaml:"width"`
	// Symmetry is the tailing factor (1 = symmetric).
	Symmetry float64 `json:"symmetry" yaml:"symmetry"`
}

// Sigma returns the Gaussian standard deviation used to draw the peak.
// Peaks without a width get span/200 so defaults scale with the run length.
func (p PeakRecord) Sigma(span float64) float64 {
	if p.Width > 0 {
		return p.Width / FWHMToSigma
	}
	return span / DefaultWidthDivisor
}

// Valid reports whether the record contributes a peak to the signal.
func (p PeakRecord) Valid() bool {
	return p.Height > 0
}
