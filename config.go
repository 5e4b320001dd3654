package stl

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stl/loess"
)

// Degree selects the local-regression polynomial degree for one smoothing
// pass. The zero value DegreeDefault resolves to the pass's default
// (linear), so a zero-valued field asks for the standard behavior.
type Degree int

const (
	// DegreeDefault resolves to the pass's default degree (linear).
	DegreeDefault Degree = iota

	// DegreeFlat fits locally constant models (degree 0).
	DegreeFlat

	// DegreeLinear fits locally linear models (degree 1).
	DegreeLinear

	// DegreeQuadratic fits locally quadratic models (degree 2).
	DegreeQuadratic
)

// String names the degree as it appears in configuration files.
func (d Degree) String() string {
	switch d {
	case DegreeDefault:
		return "default"
	case DegreeFlat:
		return "flat"
	case DegreeLinear:
		return "linear"
	case DegreeQuadratic:
		return "quadratic"
	default:
		return "unknown"
	}
}

// MarshalText encodes the degree by name.
func (d Degree) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a degree name ("flat", "linear", "quadratic";
// empty or "default" selects the pass default).
func (d *Degree) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "default":
		*d = DegreeDefault
	case "flat":
		*d = DegreeFlat
	case "linear":
		*d = DegreeLinear
	case "quadratic":
		*d = DegreeQuadratic
	default:
		return fmt.Errorf("%w: %q", ErrDegree, string(text))
	}

	return nil
}

// UnmarshalYAML decodes a degree name from a YAML scalar.
func (d *Degree) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// loessDegree maps a configuration degree onto the loess enum, resolving
// DegreeDefault to Linear.
func (d Degree) loessDegree() (loess.Degree, error) {
	switch d {
	case DegreeDefault, DegreeLinear:
		return loess.Linear, nil
	case DegreeFlat:
		return loess.Flat, nil
	case DegreeQuadratic:
		return loess.Quadratic, nil
	default:
		return 0, ErrDegree
	}
}

// Config describes one decomposition run. Zero-valued knobs resolve to
// defaults; only Periodicity and (unless Periodic is set) SeasonalWidth
// are required.
//
// Fields:
//   - Periodicity     — observations per seasonal cycle (required, ≥ 2).
//   - SeasonalWidth   — Loess width of the cyclic sub-series pass
//     (required unless Periodic; normalized odd ≥ 3).
//   - TrendWidth      — Loess width of the trend pass; defaults to
//     1.5·p/(1−1.5/seasonalWidth), rounded and normalized odd.
//   - LowpassWidth    — Loess width of the low-pass stage; defaults to
//     the periodicity, normalized odd.
//   - *Degree         — per-pass polynomial degree; default linear.
//   - *Jump           — per-pass evaluation stride; defaults to
//     width/10 (at least 1); skipped points are interpolated.
//   - InnerIterations — seasonal/trend refinement passes per cycle
//     (default 2, or 1 when Robust).
//   - OuterIterations — robustness re-weighting cycles (default 0, or
//     15 when Robust).
//   - Robust          — enable outlier down-weighting with the robust
//     iteration defaults.
//   - Periodic        — assert an exactly repeating seasonal pattern:
//     forces a flat, effectively infinite seasonal width and replaces
//     the final seasonal component by per-phase means.
//   - FlatTrend       — force a constant trend (conflicts with explicit
//     trend width/degree and with LinearTrend).
//   - LinearTrend     — force a straight-line trend (same conflicts).
//   - Workers         — parallel evaluation goroutines per smoothing
//     pass; 0 uses all CPUs.
//
// Example:
//
//	cfg := stl.DefaultConfig(12)
//	cfg.Robust = true
//	res, err := stl.Decompose(data, cfg)
//	if err != nil {
//	  // handle ErrPeriodicity, ErrDataLength, ErrSeasonalWidth, …
//	}
//	fmt.Println("trend at t0:", res.Trend[0])
type Config struct {
	Periodicity int `yaml:"periodicity" toml:"periodicity"`

	SeasonalWidth  int    `yaml:"seasonal_width" toml:"seasonal_width"`
	SeasonalDegree Degree `yaml:"seasonal_degree" toml:"seasonal_degree"`
	SeasonalJump   int    `yaml:"seasonal_jump" toml:"seasonal_jump"`

	TrendWidth  int    `yaml:"trend_width" toml:"trend_width"`
	TrendDegree Degree `yaml:"trend_degree" toml:"trend_degree"`
	TrendJump   int    `yaml:"trend_jump" toml:"trend_jump"`

	LowpassWidth  int    `yaml:"lowpass_width" toml:"lowpass_width"`
	LowpassDegree Degree `yaml:"lowpass_degree" toml:"lowpass_degree"`
	LowpassJump   int    `yaml:"lowpass_jump" toml:"lowpass_jump"`

	InnerIterations int `yaml:"inner_iterations" toml:"inner_iterations"`
	OuterIterations int `yaml:"outer_iterations" toml:"outer_iterations"`

	Robust      bool `yaml:"robust" toml:"robust"`
	Periodic    bool `yaml:"periodic" toml:"periodic"`
	FlatTrend   bool `yaml:"flat_trend" toml:"flat_trend"`
	LinearTrend bool `yaml:"linear_trend" toml:"linear_trend"`

	Workers int `yaml:"workers" toml:"workers"`
}

// DefaultConfig returns a non-robust starting configuration for the given
// periodicity: seasonal width 7, two inner passes, no robustness cycles,
// every remaining knob on its resolved default.
func DefaultConfig(periodicity int) Config {
	return Config{Periodicity: periodicity, SeasonalWidth: 7}
}

// plan is the fully resolved schedule consumed by the engine: concrete
// loess settings per pass, iteration counts, and flags, with every
// default applied.
type plan struct {
	periodicity int
	seasonal    loess.Settings
	trend       loess.Settings
	lowpass     loess.Settings
	inner       int
	outer       int
	periodic    bool
	workers     int
}

// resolve validates cfg against the data length n and applies every
// defaulting rule, returning the concrete run plan.
//
// Stages:
//  1. Scalar sanity: periodicity ≥ 2, n > 2·periodicity, no negative knobs.
//  2. Flag contradictions: FlatTrend×LinearTrend, Periodic×explicit
//     seasonal width/degree, trend flags×explicit trend width/degree.
//  3. Per-pass width/degree/jump resolution (widths normalized odd ≥ 3,
//     jumps defaulted from the normalized width).
//  4. Iteration counts, honoring Robust unless set explicitly.
//
// Complexity: O(1); no allocation beyond the returned plan.
func resolve(cfg Config, n int) (plan, error) {
	// Stage 1: scalar sanity.
	if cfg.Periodicity < 2 {
		return plan{}, ErrPeriodicity
	}
	if n <= 2*cfg.Periodicity {
		return plan{}, ErrDataLength
	}
	if cfg.SeasonalWidth < 0 || cfg.TrendWidth < 0 || cfg.LowpassWidth < 0 ||
		cfg.SeasonalJump < 0 || cfg.TrendJump < 0 || cfg.LowpassJump < 0 ||
		cfg.InnerIterations < 0 || cfg.OuterIterations < 0 || cfg.Workers < 0 {
		return plan{}, ErrNegativeSetting
	}

	// Stage 2: flag contradictions.
	if cfg.FlatTrend && cfg.LinearTrend {
		return plan{}, ErrTrendFlags
	}
	if cfg.Periodic && (cfg.SeasonalWidth != 0 || cfg.SeasonalDegree != DegreeDefault) {
		return plan{}, ErrPeriodicConflict
	}
	if (cfg.FlatTrend || cfg.LinearTrend) && (cfg.TrendWidth != 0 || cfg.TrendDegree != DegreeDefault) {
		return plan{}, ErrTrendConflict
	}
	if !cfg.Periodic && cfg.SeasonalWidth == 0 {
		return plan{}, ErrSeasonalWidth
	}

	// Stage 3: per-pass settings.
	pl := plan{periodicity: cfg.Periodicity, periodic: cfg.Periodic, workers: cfg.Workers}

	seasonalWidth, seasonalDegree := cfg.SeasonalWidth, cfg.SeasonalDegree
	if cfg.Periodic {
		// Wide enough that one window spans any sub-series, collapsing the
		// flat fit to the sub-series mean.
		seasonalWidth = 100*n + 1
		seasonalDegree = DegreeFlat
	}
	var err error
	if pl.seasonal, err = resolvePass(seasonalWidth, seasonalDegree, cfg.SeasonalJump); err != nil {
		return plan{}, err
	}

	trendWidth, trendDegree := cfg.TrendWidth, cfg.TrendDegree
	switch {
	case cfg.FlatTrend:
		trendWidth, trendDegree = 100*n+1, DegreeFlat
	case cfg.LinearTrend:
		trendWidth, trendDegree = 100*n+1, DegreeLinear
	case trendWidth == 0:
		trendWidth = defaultTrendWidth(cfg.Periodicity, pl.seasonal.Width)
	}
	if pl.trend, err = resolvePass(trendWidth, trendDegree, cfg.TrendJump); err != nil {
		return plan{}, err
	}

	lowpassWidth := cfg.LowpassWidth
	if lowpassWidth == 0 {
		lowpassWidth = cfg.Periodicity
	}
	if pl.lowpass, err = resolvePass(lowpassWidth, cfg.LowpassDegree, cfg.LowpassJump); err != nil {
		return plan{}, err
	}

	// Stage 4: iteration counts.
	pl.inner, pl.outer = 2, 0
	if cfg.Robust {
		pl.inner, pl.outer = 1, 15
	}
	if cfg.InnerIterations > 0 {
		pl.inner = cfg.InnerIterations
	}
	if cfg.OuterIterations > 0 {
		pl.outer = cfg.OuterIterations
	}

	return pl, nil
}

// resolvePass normalizes one pass's width, maps its degree, and defaults
// its jump from the normalized width.
func resolvePass(width int, degree Degree, jump int) (loess.Settings, error) {
	deg, err := degree.loessDegree()
	if err != nil {
		return loess.Settings{}, err
	}
	set := loess.Settings{Width: width, Degree: deg}.Normalized()
	if jump > 0 {
		set.Jump = jump
	} else {
		set.Jump = loess.DefaultJump(set.Width)
	}

	return set, nil
}

// defaultTrendWidth derives the trend span from the periodicity and the
// resolved seasonal width (before odd normalization): the span grows as
// the seasonal window narrows, keeping the two passes spectrally apart.
func defaultTrendWidth(periodicity, seasonalWidth int) int {
	return int(1.5*float64(periodicity)/(1-1.5/float64(seasonalWidth)) + 0.5)
}
