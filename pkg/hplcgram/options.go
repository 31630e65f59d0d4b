// Package hplcgram turns HPLC peak tables into chromatogram images.
package hplcgram

import (
	"fmt"
	"os"

	"github.com/ukaji3/hplcgram-go/pkg/hplcgram/axis"
	"github.com/ukaji3/hplcgram-go/pkg/hplcgram/render"
	"github.com/ukaji3/hplcgram-go/pkg/hplcgram/sheet"
	"github.com/ukaji3/hplcgram-go/pkg/hplcgram/signal"
	"gopkg.in/yaml.v3"
)

// Options configures chromatogram generation.
type Options struct {
	// Sheet is the preferred sheet name. The first sheet is used when it is missing.
	Sheet string `yaml:"sheet"`
	// Layout locates the run time and peak table cells.
	Layout sheet.Layout `yaml:"layout"`
	// DefaultTimeSpan is used when the run time cell is blank or invalid.
	DefaultTimeSpan float64 `yaml:"default_time_span"`
	// Signal configures sampling, baseline and noise.
	Signal signal.Params `yaml:"signal"`
	// YAxis tunes the intensity scale.
	YAxis axis.Params `yaml:"y_axis"`
	// XAxis selects the time axis step policy.
	XAxis axis.Mode `yaml:"x_axis"`
	// Render controls the image.
	Render render.Options `yaml:"render"`
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		Sheet:           sheet.DefaultSheetName,
		Layout:          sheet.DefaultLayout(),
		DefaultTimeSpan: sheet.DefaultTimeSpan,
		Signal:          signal.DefaultParams(),
		YAxis:           axis.YParams(),
		XAxis:           axis.ModeTable,
		Render:          render.DefaultOptions(),
	}
}

// LoadOptions reads a YAML file over the defaults. Keys missing from the
// file keep their default values.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("config %s: %w", path, err)
	}
	return opts, nil
}

// Validate checks the options for values that cannot produce a chart.
func (o Options) Validate() error {
	if err := o.Layout.Validate(); err != nil {
		return err
	}
	if o.DefaultTimeSpan <= 0 {
		return fmt.Errorf("default_time_span must be positive, got %v", o.DefaultTimeSpan)
	}
	if o.Signal.Samples < 2 {
		return fmt.Errorf("signal.samples must be at least 2, got %d", o.Signal.Samples)
	}
	if o.YAxis.Margin <= 0 || o.YAxis.Divisions <= 0 {
		return fmt.Errorf("y_axis margin and divisions must be positive")
	}
	switch o.XAxis {
	case axis.ModeTable, axis.ModeNice:
	default:
		return fmt.Errorf("invalid x_axis mode: %s (must be table or nice)", o.XAxis)
	}
	return nil
}
