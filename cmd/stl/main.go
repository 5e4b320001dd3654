// Command stl decomposes evenly spaced CSV series into trend, seasonal
// and remainder components.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stl"
	"github.com/katalvlaran/stl/series"
)

// defaultSeasonalWidth mirrors stl.DefaultConfig for runs that set only
// the period.
const defaultSeasonalWidth = 7

var (
	inputPath  string
	outputPath string
	configPath string

	period        int
	seasonalWidth int
	robust        bool
	periodic      bool
	inner         int
	outer         int
	workers       int

	timeColumn int
	timeLayout string
	summary    bool
)

var rootCmd = &cobra.Command{
	Use:   "stl",
	Short: "Seasonal-trend decomposition for evenly spaced series",
	Long: `stl splits an evenly spaced series into trend, seasonal and
remainder components with locally weighted regression smoothing.

Input and output are CSV; the output carries one row per point with
every component plus the robustness weight. Robust mode re-weights
points by their remainders so spikes stop distorting the fits.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var decomposeCmd = &cobra.Command{
	Use:   "decompose",
	Short: "Decompose a CSV series into trend, seasonal and remainder",
	Long: `Reads one value column from the input CSV, runs the decomposition,
and writes index,data,trend,seasonal,remainder,weight rows.

Settings come from --config (a YAML or TOML file mirroring the library
Config, detected by extension) with individual flags overriding file
values. A time column, when present, is validated for parseability and
otherwise ignored: the engine consumes positions, not timestamps.`,
	RunE: runDecompose,
}

func init() {
	flags := decomposeCmd.Flags()
	flags.StringVarP(&inputPath, "input", "i", "", "input CSV path (required)")
	flags.StringVarP(&outputPath, "output", "o", "", "output CSV path (default: stdout)")
	flags.StringVar(&configPath, "config", "", "YAML or TOML settings file")
	flags.IntVarP(&period, "period", "p", 0, "observations per seasonal cycle")
	flags.IntVar(&seasonalWidth, "seasonal-width", 0,
		fmt.Sprintf("seasonal smoothing width (default %d unless --periodic)", defaultSeasonalWidth))
	flags.BoolVar(&robust, "robust", false, "enable outlier re-weighting cycles")
	flags.BoolVar(&periodic, "periodic", false, "force an exactly periodic seasonal component")
	flags.IntVar(&inner, "inner", 0, "inner iterations (0 = preset)")
	flags.IntVar(&outer, "outer", 0, "outer iterations (0 = preset)")
	flags.IntVar(&workers, "workers", 0, "smoothing goroutines (0 = all cores)")
	flags.IntVar(&timeColumn, "time-column", -1, "zero-based time column index (negative = none)")
	flags.StringVar(&timeLayout, "time-layout", time.RFC3339, "time.Parse layout for the time column")
	flags.BoolVar(&summary, "summary", false, "print per-component statistics to stderr")
	_ = decomposeCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(decomposeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "stl:", err)
		os.Exit(1)
	}
}

func runDecompose(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	opt := series.DefaultCSVOptions()
	opt.TimeColumn = timeColumn
	opt.TimeLayout = timeLayout
	_, values, err := series.LoadCSV(inputPath, opt)
	if err != nil {
		return err
	}

	res, err := stl.Decompose(values, cfg)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}
	if err := series.WriteDecompositionCSV(out, res); err != nil {
		return err
	}

	if summary {
		return printSummary(os.Stderr, res)
	}

	return nil
}

// buildConfig layers the settings: config file first, then every flag
// the caller actually set, then the seasonal-width convenience default.
func buildConfig(cmd *cobra.Command) (stl.Config, error) {
	var cfg stl.Config
	if configPath != "" {
		loaded, err := loadConfigFile(configPath)
		if err != nil {
			return stl.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("period") {
		cfg.Periodicity = period
	}
	if flags.Changed("seasonal-width") {
		cfg.SeasonalWidth = seasonalWidth
	}
	if flags.Changed("robust") {
		cfg.Robust = robust
	}
	if flags.Changed("periodic") {
		cfg.Periodic = periodic
	}
	if flags.Changed("inner") {
		cfg.InnerIterations = inner
	}
	if flags.Changed("outer") {
		cfg.OuterIterations = outer
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}

	if cfg.SeasonalWidth == 0 && !cfg.Periodic {
		cfg.SeasonalWidth = defaultSeasonalWidth
	}

	return cfg, nil
}

// loadConfigFile parses a Config from YAML or TOML, picked by extension.
func loadConfigFile(path string) (stl.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return stl.Config{}, err
	}

	var cfg stl.Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &cfg)
	case ".toml":
		err = toml.Unmarshal(raw, &cfg)
	default:
		err = fmt.Errorf("config %s: unsupported extension (want .yaml, .yml or .toml)", path)
	}
	if err != nil {
		return stl.Config{}, err
	}

	return cfg, nil
}

// printSummary writes mean/stddev/min/max per component.
func printSummary(w io.Writer, res *stl.Result) error {
	components := []struct {
		name string
		data []float64
	}{
		{"data", res.Data},
		{"trend", res.Trend},
		{"seasonal", res.Seasonal},
		{"remainder", res.Remainder},
	}

	fmt.Fprintf(w, "%-10s %12s %12s %12s %12s\n", "component", "mean", "stddev", "min", "max")
	for _, c := range components {
		mean, err := stats.Mean(c.data)
		if err != nil {
			return err
		}
		stddev, err := stats.StandardDeviation(c.data)
		if err != nil {
			return err
		}
		low, err := stats.Min(c.data)
		if err != nil {
			return err
		}
		high, err := stats.Max(c.data)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-10s %12.4f %12.4f %12.4f %12.4f\n", c.name, mean, stddev, low, high)
	}

	return nil
}
