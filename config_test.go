package stl

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stl/loess"
)

// TestDefaultConfig verifies the documented starting point: the caller's
// periodicity plus seasonal width 7, everything else left to resolution.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(12)
	assert.Equal(t, 12, cfg.Periodicity, "periodicity should pass through")
	assert.Equal(t, 7, cfg.SeasonalWidth, "seasonal width should default to 7")
	assert.False(t, cfg.Robust, "default config is non-robust")
}

// TestResolve_Defaults checks every derived setting of the stock monthly
// configuration: trend width from the bandwidth formula, lowpass width
// from the periodicity, jumps near width/10, and the 2/0 iteration plan.
func TestResolve_Defaults(t *testing.T) {
	pl, err := resolve(DefaultConfig(12), 144)
	require.NoError(t, err, "default config must resolve")

	assert.Equal(t, 12, pl.periodicity, "periodicity should pass through")
	assert.Equal(t, loess.Settings{Width: 7, Degree: loess.Linear, Jump: 1}, pl.seasonal,
		"seasonal pass should keep width 7 with linear degree and unit jump")
	assert.Equal(t, loess.Settings{Width: 23, Degree: loess.Linear, Jump: 3}, pl.trend,
		"trend width should follow 1.5·p/(1-1.5/seasonalWidth) rounded to 23")
	assert.Equal(t, loess.Settings{Width: 13, Degree: loess.Linear, Jump: 2}, pl.lowpass,
		"lowpass width should default to the periodicity, normalized odd")
	assert.Equal(t, 2, pl.inner, "non-robust runs default to two inner passes")
	assert.Equal(t, 0, pl.outer, "non-robust runs default to zero outer cycles")
	assert.False(t, pl.periodic, "periodic flag should stay off")
	assert.Equal(t, 0, pl.workers, "workers should pass through unresolved")
}

// TestResolve_TrendWidthFormula pins the trend-width default for a second
// parameter pair so the formula cannot silently drift.
func TestResolve_TrendWidthFormula(t *testing.T) {
	cfg := Config{Periodicity: 24, SeasonalWidth: 35}
	pl, err := resolve(cfg, 200)
	require.NoError(t, err)

	assert.Equal(t, 39, pl.trend.Width, "1.5·24/(1-1.5/35) rounds to 38, normalized odd to 39")
	assert.Equal(t, 4, pl.trend.Jump, "trend jump should default to width/10")
}

// TestResolve_Normalization confirms explicit widths are forced odd ≥ 3
// while explicit jumps pass through untouched.
func TestResolve_Normalization(t *testing.T) {
	cfg := Config{
		Periodicity:   12,
		SeasonalWidth: 8,
		SeasonalJump:  4,
		TrendWidth:    10,
		LowpassWidth:  1,
	}
	pl, err := resolve(cfg, 100)
	require.NoError(t, err)

	assert.Equal(t, 9, pl.seasonal.Width, "even seasonal width should bump to odd")
	assert.Equal(t, 4, pl.seasonal.Jump, "explicit jump should pass through")
	assert.Equal(t, 11, pl.trend.Width, "even trend width should bump to odd")
	assert.Equal(t, 3, pl.lowpass.Width, "sub-minimum lowpass width should clamp to 3")
}

// TestResolve_RobustIterations checks the robust iteration defaults and
// that explicit counts always win over them.
func TestResolve_RobustIterations(t *testing.T) {
	base := DefaultConfig(12)

	robust := base
	robust.Robust = true
	pl, err := resolve(robust, 144)
	require.NoError(t, err)
	assert.Equal(t, 1, pl.inner, "robust runs default to one inner pass")
	assert.Equal(t, 15, pl.outer, "robust runs default to fifteen outer cycles")

	tuned := robust
	tuned.InnerIterations = 3
	tuned.OuterIterations = 5
	pl, err = resolve(tuned, 144)
	require.NoError(t, err)
	assert.Equal(t, 3, pl.inner, "explicit inner count should override the robust default")
	assert.Equal(t, 5, pl.outer, "explicit outer count should override the robust default")

	manual := base
	manual.OuterIterations = 2
	pl, err = resolve(manual, 144)
	require.NoError(t, err)
	assert.Equal(t, 2, pl.inner, "inner default should stay at two")
	assert.Equal(t, 2, pl.outer, "outer cycles without the Robust flag should be honored")
}

// TestResolve_PeriodicForcesSeasonal verifies the Periodic shortcut:
// an effectively infinite flat seasonal width and the periodic flag on
// the resolved plan.
func TestResolve_PeriodicForcesSeasonal(t *testing.T) {
	cfg := Config{Periodicity: 12, Periodic: true}
	pl, err := resolve(cfg, 100)
	require.NoError(t, err)

	assert.Equal(t, 100*100+1, pl.seasonal.Width, "periodic seasonal width should be 100·n+1")
	assert.Equal(t, loess.Flat, pl.seasonal.Degree, "periodic seasonal degree should be flat")
	assert.True(t, pl.periodic, "plan should carry the periodic flag")
	assert.Equal(t, 19, pl.trend.Width, "trend default should use the forced seasonal width")
}

// TestResolve_TrendFlags verifies FlatTrend and LinearTrend force an
// effectively infinite trend window with the matching degree.
func TestResolve_TrendFlags(t *testing.T) {
	flat := Config{Periodicity: 12, SeasonalWidth: 7, FlatTrend: true}
	pl, err := resolve(flat, 50)
	require.NoError(t, err)
	assert.Equal(t, 100*50+1, pl.trend.Width, "flat trend width should be 100·n+1")
	assert.Equal(t, loess.Flat, pl.trend.Degree, "FlatTrend should force a flat fit")

	linear := Config{Periodicity: 12, SeasonalWidth: 7, LinearTrend: true}
	pl, err = resolve(linear, 50)
	require.NoError(t, err)
	assert.Equal(t, 100*50+1, pl.trend.Width, "linear trend width should be 100·n+1")
	assert.Equal(t, loess.Linear, pl.trend.Degree, "LinearTrend should force a linear fit")
}

// TestResolve_Errors walks the rejection table: scalar sanity, flag
// contradictions, and unknown degrees each surface their own sentinel.
func TestResolve_Errors(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		n    int
		want error
	}{
		{"zero periodicity", Config{SeasonalWidth: 7}, 100, ErrPeriodicity},
		{"unit periodicity", Config{Periodicity: 1, SeasonalWidth: 7}, 100, ErrPeriodicity},
		{"short series", DefaultConfig(12), 24, ErrDataLength},
		{"missing seasonal width", Config{Periodicity: 12}, 100, ErrSeasonalWidth},
		{"negative width", Config{Periodicity: 12, SeasonalWidth: -3}, 100, ErrNegativeSetting},
		{"negative iterations", Config{Periodicity: 12, SeasonalWidth: 7, InnerIterations: -1}, 100, ErrNegativeSetting},
		{"negative workers", Config{Periodicity: 12, SeasonalWidth: 7, Workers: -2}, 100, ErrNegativeSetting},
		{"both trend flags", Config{Periodicity: 12, SeasonalWidth: 7, FlatTrend: true, LinearTrend: true}, 100, ErrTrendFlags},
		{"periodic with width", Config{Periodicity: 12, SeasonalWidth: 7, Periodic: true}, 100, ErrPeriodicConflict},
		{"periodic with degree", Config{Periodicity: 12, SeasonalDegree: DegreeQuadratic, Periodic: true}, 100, ErrPeriodicConflict},
		{"flat trend with width", Config{Periodicity: 12, SeasonalWidth: 7, FlatTrend: true, TrendWidth: 11}, 100, ErrTrendConflict},
		{"linear trend with degree", Config{Periodicity: 12, SeasonalWidth: 7, LinearTrend: true, TrendDegree: DegreeLinear}, 100, ErrTrendConflict},
		{"unknown degree", Config{Periodicity: 12, SeasonalWidth: 7, SeasonalDegree: Degree(9)}, 100, ErrDegree},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := resolve(tc.cfg, tc.n)
			require.ErrorIs(t, err, tc.want, "resolve should reject with the matching sentinel")
		})
	}
}

// TestDegree_Text covers the name round trip used by configuration files
// and the rejection of unknown names.
func TestDegree_Text(t *testing.T) {
	for _, d := range []Degree{DegreeDefault, DegreeFlat, DegreeLinear, DegreeQuadratic} {
		text, err := d.MarshalText()
		require.NoError(t, err)

		var back Degree
		require.NoError(t, back.UnmarshalText(text), "own name must parse back")
		assert.Equal(t, d, back, "degree should survive the text round trip")
	}

	var d Degree
	require.NoError(t, d.UnmarshalText(nil), "empty text selects the default degree")
	assert.Equal(t, DegreeDefault, d)

	err := d.UnmarshalText([]byte("cubic"))
	require.ErrorIs(t, err, ErrDegree, "unknown degree names must be rejected")
}

// TestConfig_FileFormats decodes the same configuration from YAML and
// TOML, including named degrees, through the struct tags.
func TestConfig_FileFormats(t *testing.T) {
	const yamlSrc = `
periodicity: 24
seasonal_width: 35
seasonal_degree: quadratic
robust: true
workers: 4
`
	var fromYAML Config
	require.NoError(t, yaml.Unmarshal([]byte(yamlSrc), &fromYAML), "yaml config must decode")
	assert.Equal(t, 24, fromYAML.Periodicity)
	assert.Equal(t, 35, fromYAML.SeasonalWidth)
	assert.Equal(t, DegreeQuadratic, fromYAML.SeasonalDegree, "degree name should decode from yaml")
	assert.True(t, fromYAML.Robust)
	assert.Equal(t, 4, fromYAML.Workers)

	const tomlSrc = `
periodicity = 24
seasonal_width = 35
seasonal_degree = "quadratic"
robust = true
workers = 4
`
	var fromTOML Config
	require.NoError(t, toml.Unmarshal([]byte(tomlSrc), &fromTOML), "toml config must decode")
	assert.Equal(t, fromYAML, fromTOML, "both formats should produce the same configuration")
}
