package hplcgram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/hplcgram-go/pkg/hplcgram/axis"
	"github.com/ukaji3/hplcgram-go/pkg/hplcgram/signal"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hplcgram.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultOptionsValid(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Errorf("DefaultOptions should be valid: %v", err)
	}
}

func TestLoadOptionsOverrides(t *testing.T) {
	path := writeConfig(t, `
sheet: Resultados
x_axis: nice
layout:
  peak_start_row: 10
  max_peak_rows: 20
signal:
  baseline: 0.5
  seed: 42
  noise:
    white_sigma: 0.05
    oscillations:
      - amplitude: 0.1
        frequency: 2
    random_walk:
      step: 0.01
      window: 25
render:
  dpi: 150
  markers: true
`)

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}

	if opts.Sheet != "Resultados" || opts.XAxis != axis.ModeNice {
		t.Errorf("Unexpected sheet/x_axis: %q / %q", opts.Sheet, opts.XAxis)
	}
	if opts.Layout.PeakStartRow != 10 || opts.Layout.MaxPeakRows != 20 {
		t.Errorf("Layout overrides not applied: %+v", opts.Layout)
	}
	// Unset keys keep their defaults
	if opts.Layout.HeightCol != 9 || opts.Signal.Samples != signal.DefaultSamples {
		t.Errorf("Defaults lost: height_col=%d samples=%d", opts.Layout.HeightCol, opts.Signal.Samples)
	}
	expectedNoise := signal.NoiseParams{
		WhiteSigma:   0.05,
		Oscillations: []signal.Sinusoid{{Amplitude: 0.1, Frequency: 2}},
		RandomWalk:   signal.RandomWalk{Step: 0.01, Window: 25},
	}
	if diff := cmp.Diff(expectedNoise, opts.Signal.Noise); diff != "" {
		t.Errorf("Noise mismatch (-want +got):\n%s", diff)
	}
	if opts.Signal.Seed != 42 || opts.Signal.Baseline != 0.5 {
		t.Errorf("Signal overrides not applied: %+v", opts.Signal)
	}
	if opts.Render.DPI != 150 || !opts.Render.Markers || opts.Render.WidthInches != 10 {
		t.Errorf("Render overrides not applied: %+v", opts.Render)
	}
}

func TestLoadOptionsErrors(t *testing.T) {
	if _, err := LoadOptions(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := LoadOptions(writeConfig(t, "layout: [1, 2")); err == nil {
		t.Error("Expected error for malformed YAML")
	}
	if _, err := LoadOptions(writeConfig(t, "x_axis: log\n")); err == nil {
		t.Error("Expected error for unknown x_axis mode")
	}
	if _, err := LoadOptions(writeConfig(t, "layout:\n  max_peak_rows: 0\n")); err == nil {
		t.Error("Expected error for zero max_peak_rows")
	}
}
