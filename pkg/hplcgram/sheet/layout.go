package sheet

import "fmt"

// Layout names the cells the scanner reads. All indices are zero-based.
type Layout struct {
	// TimeSpanRow and TimeSpanCol locate the total run duration.
	TimeSpanRow int `yaml:"time_span_row"`
	TimeSpanCol int `yaml:"time_span_col"`
	// PeakStartRow is the first row of the peak table.
	PeakStartRow int `yaml:"peak_start_row"`
	RetentionCol int `yaml:"retention_col"`
	HeightCol    int `yaml:"height_col"`
	SymmetryCol  int `yaml:"symmetry_col"`
	WidthCol     int `yaml:"width_col"`
	// MaxPeakRows caps the number of rows visited.
	MaxPeakRows int `yaml:"max_peak_rows"`
}

// DefaultLayout returns the layout of the standard assay sheet:
// run time in AU3, peaks from row 62 with retention time in B,
// height in J, symmetry in O and width in R.
func DefaultLayout() Layout {
	return Layout{
		TimeSpanRow:  2,
		TimeSpanCol:  46,
		PeakStartRow: 61,
		RetentionCol: 1,
		HeightCol:    9,
		SymmetryCol:  14,
		WidthCol:     17,
		MaxPeakRows:  50,
	}
}

// Validate checks that every index is usable.
func (l Layout) Validate() error {
	fields := []struct {
		name string
		v    int
	}{
		{"time_span_row", l.TimeSpanRow},
		{"time_span_col", l.TimeSpanCol},
		{"peak_start_row", l.PeakStartRow},
		{"retention_col", l.RetentionCol},
		{"height_col", l.HeightCol},
		{"symmetry_col", l.SymmetryCol},
		{"width_col", l.WidthCol},
	}
	for _, f := range fields {
		if f.v < 0 {
			return fmt.Errorf("layout: %s must not be negative, got %d", f.name, f.v)
		}
	}
	if l.MaxPeakRows <= 0 {
		return fmt.Errorf("layout: max_peak_rows must be positive, got %d", l.MaxPeakRows)
	}
	return nil
}
