package axis

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/hplcgram-go/pkg/hplcgram/models"
)

// Unit labels placed on the last tick of each axis.
const (
	UnitTime      = "min"
	UnitIntensity = "mAU"
)

// Ticks returns ticks at 0, step, 2*step ... up to s.Upper.
// The last tick is labelled with unit instead of its value.
func Ticks(s models.AxisScale, unit string) []models.Tick {
	if s.Step <= 0 || s.Upper <= 0 {
		return nil
	}
	decimals := Decimals(s.Step)
	n := int(math.Floor(s.Upper/s.Step + 1e-9))

	ticks := make([]models.Tick, 0, n+1)
	for i := 0; i <= n; i++ {
		v := roundTo(float64(i)*s.Step, s.Step)
		ticks = append(ticks, models.Tick{Value: v, Label: FormatTick(v, decimals)})
	}
	ticks[len(ticks)-1].Label = unit
	return ticks
}

// TimeTicks returns ticks for a time axis over [0, s.Upper]. The list always
// ends at s.Upper. When the last regular tick falls short of 90% of the span,
// the tick at the span carries the unit label; otherwise the regular tick
// keeps it and the span gets an unlabelled tick.
func TimeTicks(s models.AxisScale, unit string) []models.Tick {
	if s.Step <= 0 || s.Upper <= 0 {
		return nil
	}
	decimals := Decimals(s.Step)
	n := int(math.Floor(s.Upper/s.Step + 1e-9))

	ticks := make([]models.Tick, 0, n+2)
	for i := 0; i <= n; i++ {
		v := roundTo(float64(i)*s.Step, s.Step)
		ticks = append(ticks, models.Tick{Value: v, Label: FormatTick(v, decimals)})
	}
	last := ticks[len(ticks)-1].Value
	switch {
	case last < s.Upper*0.9:
		ticks = append(ticks, models.Tick{Value: s.Upper, Label: unit})
	case s.Upper-last > 1e-9*s.Upper:
		ticks[len(ticks)-1].Label = unit
		ticks = append(ticks, models.Tick{Value: s.Upper})
	default:
		ticks[len(ticks)-1].Value = s.Upper
		ticks[len(ticks)-1].Label = unit
	}
	return ticks
}

// FormatTick prints whole numbers without decimals and other values with at
// most the given number of decimals, trailing zeros removed.
func FormatTick(v float64, decimals int) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}
