package hplcgram

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/hplcgram-go/internal/logging"
	"github.com/ukaji3/hplcgram-go/pkg/hplcgram/axis"
	"github.com/ukaji3/hplcgram-go/pkg/hplcgram/models"
	"github.com/ukaji3/hplcgram-go/pkg/hplcgram/render"
	"github.com/ukaji3/hplcgram-go/pkg/hplcgram/sheet"
	"github.com/ukaji3/hplcgram-go/pkg/hplcgram/signal"
)

// Result is one generated chromatogram.
type Result struct {
	// Chart holds the rendered image. The caller must Close it.
	Chart *render.Surface
	// PeaksFound counts peaks with a positive height.
	PeaksFound int
	// MaxHeight is the tallest peak height in mAU.
	MaxHeight float64
	// YAxis and XAxis are the scales used for the chart.
	YAxis models.AxisScale
	XAxis models.AxisScale
	// Series is the assembled signal.
	Series *signal.Series
}

// Close releases the chart.
func (r *Result) Close() error {
	if r == nil || r.Chart == nil {
		return nil
	}
	return r.Chart.Close()
}

// Report describes what Generate read from the workbook.
type Report struct {
	// BookName is the workbook file name (no path).
	BookName string
	// Sheet is the sheet that was read.
	Sheet string
	// TimeSpan is the run duration in minutes.
	TimeSpan float64
	// TimeSpanDefaulted is true when the run time cell was unusable.
	TimeSpanDefaulted bool
	// RowsVisited is the number of peak table rows read.
	RowsVisited int
	// Records is the number of rows with a retention time.
	Records int
}

// Process builds the signal for records over span minutes, scales the axes
// and renders the chart. It either returns a complete Result or a
// *RenderError naming the failed stage.
func Process(records []models.PeakRecord, span float64, opts Options) (*Result, error) {
	log := logging.New("process")

	series, err := signal.Assemble(records, span, opts.Signal)
	if err != nil {
		return nil, NewRenderError(StageAssemble, err)
	}

	yScale, err := axis.Nice(series.Max(), opts.YAxis)
	if err != nil {
		return nil, NewRenderError(StageScale, err)
	}
	xScale, err := axis.TimeScale(span, opts.XAxis)
	if err != nil {
		return nil, NewRenderError(StageScale, err)
	}
	log.Debug("axes scaled",
		"y_upper", yScale.Upper, "y_step", yScale.Step,
		"x_upper", xScale.Upper, "x_step", xScale.Step)

	surface, err := render.Chart(render.Input{Series: series, YAxis: yScale, XAxis: xScale}, opts.Render)
	if err != nil {
		return nil, NewRenderError(StageRender, err)
	}

	return &Result{
		Chart:      surface,
		PeaksFound: series.PeaksFound,
		MaxHeight:  series.MaxHeight,
		YAxis:      yScale,
		XAxis:      xScale,
		Series:     series,
	}, nil
}

// Generate reads the workbook at path and processes its peak table.
func Generate(path string, opts Options) (*Result, *Report, error) {
	log := logging.New("generate")

	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrInvalidFormat, filepath.Base(path))
	}

	wb, err := sheet.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer wb.Close()

	sheetName, err := wb.SelectSheet(opts.Sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if opts.Sheet != "" && sheetName != opts.Sheet {
		log.Info("preferred sheet not found, using first sheet", "wanted", opts.Sheet, "sheet", sheetName)
	}

	grid, err := wb.Grid(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}

	report := &Report{BookName: filepath.Base(path), Sheet: sheetName}

	report.TimeSpan, report.TimeSpanDefaulted = sheet.TimeSpan(grid, opts.Layout, opts.DefaultTimeSpan)
	if report.TimeSpanDefaulted {
		log.Warn("run time missing, using default",
			"cell", sheet.CellName(opts.Layout.TimeSpanRow, opts.Layout.TimeSpanCol),
			"minutes", report.TimeSpan)
	}

	scan := sheet.ScanPeaks(grid, opts.Layout)
	report.RowsVisited = scan.RowsVisited
	report.Records = len(scan.Records)
	log.Debug("peak table scanned",
		"sheet", sheetName, "rows", scan.RowsVisited, "records", len(scan.Records), "terminated", scan.Terminated)

	res, err := Process(scan.Records, report.TimeSpan, opts)
	if err != nil {
		return nil, report, err
	}
	return res, report, nil
}
