// SPDX-License-Identifier: MIT
// Package: stl/series
//
// synth.go — deterministic seasonal fixture generator.
//
// Purpose (single responsibility):
//   • Provide a reproducible 1-D seasonal sequence for tests, demos and
//     benchmarks: sinusoid over a fixed period, optional linear trend,
//     optional Gaussian noise, optional periodic outliers.
//
// Contract:
//   • BuildSeasonal(n, period, seed, opts...) returns a slice of length n
//     (or nil on invalid input).
//   • Strict determinism per (n, period, seed, options); no panics; no
//     global state.
//   • O(n) time and O(n) memory; tiny constant factors.
//
// Determinism & testing:
//   • The phase uses i mod period, so the noise-free sequence repeats
//     bit-for-bit from period to period (golden-friendly).
//   • Noise draws rng.NormFloat64()*sigma only when sigma > 0, so clean
//     and noisy runs share every other bit.
//
// AI-Hints (practical):
//   • To stack several harmonics, sum BuildSeasonal outputs with distinct
//     periods; determinism composes as long as seeds differ.
//   • Outliers fire on exact multiples of the stride — align the stride
//     off the period to avoid aliasing them into the seasonal shape.

package series

import (
	"math"
	"math/rand"
)

// -----------------------------------------------------------------------------
// File-local defaults (no magic numbers; cohesive to the generator).
// -----------------------------------------------------------------------------

const (
	defSeasonalAmp  = 1.0 // Default sinusoid amplitude (>0).
	defTrendSlope   = 0.0 // Default linear trend increment per sample.
	defNoiseSigma   = 0.0 // Default Gaussian noise sigma (≥0); 0 disables noise.
	defOutlierEvery = 0   // Default outlier stride; 0 disables outliers.
	defOutlierMag   = 0.0 // Default outlier magnitude added on each hit.

	twoPi = 2 * math.Pi // full turn, used for the per-sample phase
)

// -----------------------------------------------------------------------------
// Options (functional, resolved once per call).
// -----------------------------------------------------------------------------

// buildConfig holds all resolved knobs for the generator.
type buildConfig struct {
	amp          float64 // sinusoid amplitude > 0
	slope        float64 // linear trend increment per sample
	sigma        float64 // Gaussian noise sigma ≥ 0
	outlierEvery int     // outlier stride ≥ 0; 0 disables
	outlierMag   float64 // additive outlier magnitude
}

// BuildOption mutates the generator configuration.
type BuildOption func(*buildConfig)

// WithAmplitude sets the sinusoid amplitude (must stay positive).
func WithAmplitude(amp float64) BuildOption {
	return func(c *buildConfig) { c.amp = amp }
}

// WithTrendSlope adds slope*i to every sample.
func WithTrendSlope(slope float64) BuildOption {
	return func(c *buildConfig) { c.slope = slope }
}

// WithNoise adds sigma*N(0,1) to every sample, deterministic per seed.
func WithNoise(sigma float64) BuildOption {
	return func(c *buildConfig) { c.sigma = sigma }
}

// WithOutliers adds magnitude to every every-th sample (index > 0).
func WithOutliers(every int, magnitude float64) BuildOption {
	return func(c *buildConfig) {
		c.outlierEvery = every
		c.outlierMag = magnitude
	}
}

// newBuildConfig resolves the defaults and applies the options in order.
func newBuildConfig(opts ...BuildOption) buildConfig {
	cfg := buildConfig{
		amp:          defSeasonalAmp,
		slope:        defTrendSlope,
		sigma:        defNoiseSigma,
		outlierEvery: defOutlierEvery,
		outlierMag:   defOutlierMag,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// -----------------------------------------------------------------------------
// Public API — deterministic seasonal generator
// -----------------------------------------------------------------------------

// BuildSeasonal returns a length-n seasonal sequence over the given period.
// Shape:
//   - Base: amp * sin(2π * (i mod period) / period), exactly periodic.
//
// Additions:
//   - Linear trend: y += slope * i.
//   - Gaussian noise: y += sigma * N(0,1) (deterministic per seed).
//   - Outliers: y += magnitude on every outlier-stride hit (index > 0).
//
// Validation:
//   - If n < 1 or period < 2 ⇒ return nil (invalid request).
//   - If parameters are invalid (amp≤0, sigma<0, stride<0) ⇒ return nil.
//
// Complexity:
//   - O(n) time, O(n) memory, constant-small overhead.
func BuildSeasonal(n, period int, seed int64, opts ...BuildOption) []float64 {
	// Early size check avoids any allocations or RNG setup on invalid input.
	if n < 1 || period < 2 {
		return nil
	}

	// Resolve deterministic generator configuration once (O(len(opts))).
	cfg := newBuildConfig(opts...)
	if cfg.amp <= 0 || cfg.sigma < 0 || cfg.outlierEvery < 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))

	// Allocate the output buffer exactly once (tight O(n) memory).
	out := make([]float64, n)

	// Predeclare loop temporaries to avoid reallocation in tight loops.
	var (
		phase  float64 // per-sample phase in [0, 2π)
		sample float64 // sample under construction
	)

	// Fill all samples in a single pass — O(n) time.
	for i := 0; i < n; i++ {
		// Integer phase keeps the noise-free wave exactly periodic.
		phase = twoPi * float64(i%period) / float64(period)
		sample = cfg.amp * math.Sin(phase)

		// Add predictable linear trend.
		sample += cfg.slope * float64(i)

		// Add Gaussian noise only if enabled (sigma>0 keeps clean paths clean).
		if cfg.sigma > 0 {
			sample += cfg.sigma * rng.NormFloat64()
		}

		// Inject an outlier on each stride hit past the origin.
		if cfg.outlierEvery > 0 && i > 0 && i%cfg.outlierEvery == 0 {
			sample += cfg.outlierMag
		}

		out[i] = sample
	}

	return out
}
