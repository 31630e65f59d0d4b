// Package main provides the CLI entry point for hplcgram-go.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/ukaji3/hplcgram-go/internal/logging"
	"github.com/ukaji3/hplcgram-go/pkg/hplcgram"
	"github.com/ukaji3/hplcgram-go/pkg/hplcgram/axis"
	"github.com/ukaji3/hplcgram-go/pkg/hplcgram/output"
)

var (
	outputPath string
	configPath string
	sheetName  string
	seed       uint64
	markers    bool
	dpi        float64
	xAxisMode  string
	noStage    bool
	logLevel   string
	logFormat  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hplcgram [input.xlsx]",
		Short: "Draw a chromatogram from an HPLC peak table",
		Long: `hplcgram-go reads the peak table (retention time, height, width,
symmetry) of an HPLC assay workbook and renders a synthetic chromatogram
as a PNG next to the workbook.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&outputPath, "output", "o", "", "Output PNG path (default: <input>_cromatograma.png)")
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.StringVar(&sheetName, "sheet", "", "Sheet to read (default: "+hplcgram.DefaultOptions().Sheet+")")
	flags.Uint64Var(&seed, "seed", 0, "Noise seed (0: random per run)")
	flags.BoolVar(&markers, "markers", false, "Draw integration baselines under peaks")
	flags.Float64Var(&dpi, "dpi", 0, "Image resolution (default 300)")
	flags.StringVar(&xAxisMode, "x-axis", "", "Time axis step policy: table or nice")
	flags.BoolVar(&noStage, "no-stage", false, "Read the workbook in place instead of a local copy")
	flags.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "text", "Log format: text or json")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logging.Init(level, logFormat, cmd.ErrOrStderr())
	log := logging.New("cli")

	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	if _, err := os.Stat(inputPath); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("file not found: %s", inputPath)
	}
	switch strings.ToLower(filepath.Ext(inputPath)) {
	case ".xlsx", ".xlsm":
	default:
		return fmt.Errorf("unsupported input %s (must be .xlsx or .xlsm)", filepath.Base(inputPath))
	}

	dest := outputPath
	if dest == "" {
		dest = output.Path(inputPath)
	}

	readPath := inputPath
	if !noStage {
		staged, cleanup, err := output.StageLocal(inputPath)
		defer cleanup()
		if err != nil {
			return fmt.Errorf("staging failed: %w", err)
		}
		log.Debug("workbook staged", "path", staged)
		readPath = staged
	}

	res, report, err := hplcgram.Generate(readPath, opts)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	defer res.Close()

	n, err := output.WriteFile(dest, res.Chart)
	if err != nil {
		return err
	}
	log.Info("chart written", "path", dest, "sheet", report.Sheet, "minutes", report.TimeSpan)

	printSummary(cmd.OutOrStdout(), res, dest, n)
	return nil
}

// loadOptions applies the config file, then any flags that were set.
func loadOptions(cmd *cobra.Command) (hplcgram.Options, error) {
	opts := hplcgram.DefaultOptions()
	if configPath != "" {
		var err error
		if opts, err = hplcgram.LoadOptions(configPath); err != nil {
			return opts, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("sheet") {
		opts.Sheet = sheetName
	}
	if flags.Changed("seed") {
		opts.Signal.Seed = seed
	}
	if flags.Changed("markers") {
		opts.Render.Markers = markers
	}
	if flags.Changed("dpi") {
		if dpi <= 0 {
			return opts, fmt.Errorf("invalid dpi: %v (must be positive)", dpi)
		}
		opts.Render.DPI = dpi
	}
	if flags.Changed("x-axis") {
		opts.XAxis = axis.Mode(xAxisMode)
	}
	return opts, opts.Validate()
}

func printSummary(w io.Writer, res *hplcgram.Result, dest string, size int64) {
	fmt.Fprintf(w, "Peaks found: %d\n", res.PeaksFound)
	fmt.Fprintf(w, "Max height:  %.1f mAU\n", res.MaxHeight)
	fmt.Fprintf(w, "Y axis:      0 - %s mAU (step %s)\n",
		axis.FormatTick(res.YAxis.Upper, axis.Decimals(res.YAxis.Step)),
		axis.FormatTick(res.YAxis.Step, axis.Decimals(res.YAxis.Step)))
	fmt.Fprintf(w, "Output:      %s (%s)\n", dest, humanize.Bytes(uint64(size)))
}
