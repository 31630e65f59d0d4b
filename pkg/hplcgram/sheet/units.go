// Package sheet provides workbook access and peak table scanning.
package sheet

import (
	"math"
	"time"
)

// Minutes converts a typed cell value into minutes.
// Numbers are taken as minutes, clock values as hours*60 + minutes + seconds/60
// and elapsed durations by their length. Anything else is reported absent.
func Minutes(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case time.Time:
		return float64(x.Hour()*60+x.Minute()) + float64(x.Second())/60, true
	case time.Duration:
		return x.Minutes(), true
	}
	return Number(v)
}

// Number converts a numeric cell value to float64.
func Number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) {
			return 0, false
		}
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	}
	return 0, false
}

// numberOr returns the numeric value of v, or def when v is not a number.
func numberOr(v any, def float64) float64 {
	if f, ok := Number(v); ok {
		return f
	}
	return def
}
