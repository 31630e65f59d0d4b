package render

import "math"

// PointsPerInch is the typographic point size used for stroke widths.
const PointsPerInch = 72.0

// InchesToPixels converts a physical size to pixels at dpi.
func InchesToPixels(inches, dpi float64) int {
	return int(math.Round(inches * dpi))
}

// PointsToPixels converts a stroke width in points to pixels at dpi.
func PointsToPixels(points, dpi float64) float64 {
	return points * dpi / PointsPerInch
}
