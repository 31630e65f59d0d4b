package sheet

import (
	"math"

	"github.com/ukaji3/hplcgram-go/pkg/hplcgram/models"
)

// DefaultTimeSpan is the run duration used when the sheet does not provide one.
const DefaultTimeSpan = 10.0

// ScanResult holds the outcome of a peak table scan.
type ScanResult struct {
	// Records are the rows with a retention time, in sheet order.
	// Rows with Height <= 0 are included; the assembler skips them.
	Records []models.PeakRecord
	// RowsVisited counts rows read, including the terminating blank row.
	RowsVisited int
	// Terminated is true when a blank retention time ended the scan
	// before MaxPeakRows was reached.
	Terminated bool
}

// ScanPeaks reads the peak table described by layout.
// The table is contiguous: the first row without a retention time ends it,
// even if later rows hold data.
func ScanPeaks(g Grid, layout Layout) ScanResult {
	var res ScanResult
	for i := 0; i < layout.MaxPeakRows; i++ {
		row := layout.PeakStartRow + i
		res.RowsVisited++

		tR, ok := Minutes(g.Cell(row, layout.RetentionCol))
		if !ok {
			res.Terminated = true
			break
		}

		res.Records = append(res.Records, models.PeakRecord{
			RetentionTime: tR,
			Height:        numberOr(g.Cell(row, layout.HeightCol), 0),
			Symmetry:      numberOr(g.Cell(row, layout.SymmetryCol), 1),
			Width:         numberOr(g.Cell(row, layout.WidthCol), 0),
		})
	}
	return res
}

// TimeSpan reads the run duration in minutes.
// It returns fallback and recovered=true when the cell is blank,
// not a number or time, or not a positive finite value.
func TimeSpan(g Grid, layout Layout, fallback float64) (span float64, recovered bool) {
	v, ok := Minutes(g.Cell(layout.TimeSpanRow, layout.TimeSpanCol))
	if !ok || v <= 0 || math.IsInf(v, 0) {
		return fallback, true
	}
	return v, false
}
