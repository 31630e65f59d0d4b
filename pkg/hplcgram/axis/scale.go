// Package axis computes readable axis bounds, steps and tick labels.
package axis

import (
	"errors"
	"fmt"
	"math"

	"github.com/ukaji3/hplcgram-go/pkg/hplcgram/models"
)

// ErrNonFinite indicates a NaN or infinite axis input.
var ErrNonFinite = errors.New("non-finite axis value")

// Params tunes Nice.
type Params struct {
	// Floor is the smallest data maximum considered; smaller values are raised to it.
	Floor float64 `yaml:"floor"`
	// Margin is the headroom factor applied above the data maximum.
	Margin float64 `yaml:"margin"`
	// Divisions is the approximate number of steps wanted.
	Divisions float64 `yaml:"divisions"`
	// MinUpper is the smallest acceptable upper bound. Below it the axis
	// becomes [0, MinUpper] with a step of 1. Zero disables the check.
	MinUpper float64 `yaml:"min_upper"`
}

// YParams returns the intensity axis defaults: 10% headroom, about 4.5 divisions,
// and at least 0-5 mAU.
func YParams() Params {
	return Params{Floor: 0.5, Margin: 1.1, Divisions: 4.5, MinUpper: 5}
}

// XParams returns time axis defaults for the nice mode.
func XParams() Params {
	return Params{Floor: 1, Margin: 1, Divisions: 8}
}

// Snap thresholds are the geometric means of neighbouring multipliers.
var (
	snap2  = math.Sqrt(2)
	snap5  = math.Sqrt(10)
	snap10 = math.Sqrt(50)
)

// Nice returns an upper bound and step for data reaching max.
// Steps are 1, 2 or 5 times a power of ten; the fraction of the ideal step is
// snapped to the nearest multiplier on a log scale. The upper bound is the
// smallest multiple of the step at or above max*Margin.
func Nice(max float64, p Params) (models.AxisScale, error) {
	if math.IsNaN(max) || math.IsInf(max, 0) {
		return models.AxisScale{}, fmt.Errorf("%w: %v", ErrNonFinite, max)
	}
	if p.Margin <= 0 || p.Divisions <= 0 {
		return models.AxisScale{}, fmt.Errorf("axis: margin and divisions must be positive (got %v, %v)", p.Margin, p.Divisions)
	}
	if max < p.Floor {
		max = p.Floor
	}
	if max <= 0 {
		max = 1
	}

	target := max * p.Margin
	step := niceStep(target / p.Divisions)
	upper := roundTo(math.Ceil(target/step-1e-9)*step, step)

	if p.MinUpper > 0 && upper < p.MinUpper {
		return models.AxisScale{Upper: p.MinUpper, Step: 1}, nil
	}
	return models.AxisScale{Upper: upper, Step: step}, nil
}

// niceStep snaps ideal to 1, 2, 5 or 10 times its power of ten.
func niceStep(ideal float64) float64 {
	exponent := math.Floor(math.Log10(ideal))
	fraction := ideal / math.Pow(10, exponent)

	var multiplier float64
	switch {
	case fraction < snap2:
		multiplier = 1
	case fraction < snap5:
		multiplier = 2
	case fraction < snap10:
		multiplier = 5
	default:
		multiplier = 10
	}
	return scaled(multiplier, exponent)
}

// scaled returns m*10^e, dividing for negative exponents so that
// values such as 0.2 come out as the nearest float to the decimal.
func scaled(m, e float64) float64 {
	if e < 0 {
		return m / math.Pow(10, -e)
	}
	return m * math.Pow(10, e)
}

// roundTo removes floating point residue from v, a multiple of step.
func roundTo(v, step float64) float64 {
	decimals := Decimals(step)
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}

// Decimals returns how many decimal places step needs, capped at 10.
func Decimals(step float64) int {
	for d := 0; d < 10; d++ {
		pow := math.Pow(10, float64(d))
		if math.Abs(step*pow-math.Round(step*pow)) < 1e-9*pow {
			return d
		}
	}
	return 10
}

// TimeStep returns the tick step for a run of span minutes.
func TimeStep(span float64) float64 {
	switch {
	case span <= 10:
		return 1
	case span <= 30:
		return 5
	case span <= 60:
		return 10
	}
	return 20
}

// Mode selects how the time axis step is chosen.
type Mode string

const (
	// ModeTable uses TimeStep.
	ModeTable Mode = "table"
	// ModeNice uses Nice with XParams.
	ModeNice Mode = "nice"
)

// TimeScale returns the time axis scale. The upper bound is always span;
// only the step depends on mode.
func TimeScale(span float64, mode Mode) (models.AxisScale, error) {
	if math.IsNaN(span) || math.IsInf(span, 0) {
		return models.AxisScale{}, fmt.Errorf("%w: %v", ErrNonFinite, span)
	}
	switch mode {
	case ModeNice:
		s, err := Nice(span, XParams())
		if err != nil {
			return models.AxisScale{}, err
		}
		return models.AxisScale{Upper: span, Step: s.Step}, nil
	case ModeTable, "":
		return models.AxisScale{Upper: span, Step: TimeStep(span)}, nil
	}
	return models.AxisScale{}, fmt.Errorf("axis: unknown mode %q", mode)
}
