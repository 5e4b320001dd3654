package stl

import "github.com/katalvlaran/stl/loess"

// Decompose — Seasonal-Trend decomposition using Loess (STL)
//
// Description:
//
//	Decompose splits an evenly spaced, gap-free series into additive
//	trend, seasonal, and remainder components. The seasonal component
//	is estimated by Loess-smoothing each cyclic sub-series and removing
//	trend leakage with a low-pass filter; the trend is estimated by
//	Loess-smoothing the deseasonalized series. Optional outer cycles
//	re-fit with bisquare robustness weights so single outliers stop
//	distorting both components.
//
// Algorithm Outline:
//  1. Resolve cfg against len(data): apply defaults, reject
//     contradictions (see Config).
//  2. trend ← 0. Then, innerIterations times per cycle:
//     a) detrended ← data − trend;
//     b) cyclic sub-series smoothing of detrended (robustness weights
//     attached from the second cycle on) → extended array covering one
//     extra period on each side;
//     c) low-pass the extended array → deseasonalized;
//     d) seasonal[i] ← extended[p+i] − deseasonalized[i];
//     e) trend ← Loess(data − seasonal) under the trend settings.
//  3. remainder ← data − trend − seasonal.
//  4. While robustness cycles remain: weights ← bisquare(remainder),
//     back to 2.
//  5. A Periodic run finally replaces each seasonal phase by its mean
//     across periods and recomputes the remainder.
//
// Complexity:
//
//	O(innerIterations·(outerIterations+1)·n·w) for typical widths w;
//	memory O(n) beyond the returned components.
//
// Errors: configuration and shape sentinels from this package; loess
// construction errors surface unchanged.
//
// Example:
//
//	res, err := stl.Decompose(data, stl.DefaultConfig(12))
//	if err != nil {
//	  // handle ErrDataLength etc.
//	}
//	fmt.Println(res.Seasonal[0], res.Trend[0], res.Remainder[0])
func Decompose(data []float64, cfg Config) (*Result, error) {
	pl, err := resolve(cfg, len(data))
	if err != nil {
		return nil, err
	}

	return newEngine(data, pl).run()
}

// engine owns the per-run buffers and walks the inner/outer iteration of
// one decomposition. Every slice is allocated once up front; each stage
// writes only into its own destination.
type engine struct {
	data []float64
	plan plan

	trend     []float64
	seasonal  []float64
	remainder []float64
	weights   []float64

	detrended  []float64 // data − trend, input to the cyclic smoother
	trendInput []float64 // data − seasonal, input to the trend smoother
	extended   []float64 // cyclic output, n + 2·periodicity
	scratch    []float64 // |remainder| workspace for the median selection

	cyclic  *cyclicSmoother
	lowpass *lowPassFilter
}

func newEngine(data []float64, pl plan) *engine {
	n, p := len(data), pl.periodicity
	e := &engine{
		data:       data,
		plan:       pl,
		trend:      make([]float64, n),
		seasonal:   make([]float64, n),
		remainder:  make([]float64, n),
		weights:    make([]float64, n),
		detrended:  make([]float64, n),
		trendInput: make([]float64, n),
		extended:   make([]float64, n+2*p),
		scratch:    make([]float64, n),
		cyclic: &cyclicSmoother{
			periodicity: p,
			backward:    1,
			forward:     1,
			settings:    pl.seasonal,
			workers:     pl.workers,
		},
		lowpass: &lowPassFilter{
			periodicity: p,
			settings:    pl.lowpass,
			workers:     pl.workers,
		},
	}
	for i := range e.weights {
		e.weights[i] = 1
	}

	return e
}

// run executes outerIterations+1 cycles of innerIterations passes each,
// recomputing the remainder after every cycle and the robustness weights
// between cycles.
func (e *engine) run() (*Result, error) {
	for outer := 0; ; outer++ {
		weighted := outer > 0
		for inner := 0; inner < e.plan.inner; inner++ {
			if err := e.innerPass(weighted); err != nil {
				return nil, err
			}
		}
		e.updateRemainder()
		if outer >= e.plan.outer {
			break
		}
		robustnessWeights(e.remainder, e.weights, e.scratch)
	}

	if e.plan.periodic {
		e.enforcePeriodicity()
		e.updateRemainder()
	}

	return &Result{
		Data:          e.data,
		Trend:         e.trend,
		Seasonal:      e.seasonal,
		Remainder:     e.remainder,
		Weights:       e.weights,
		trendSettings: e.plan.trend,
		workers:       e.plan.workers,
	}, nil
}

// innerPass refines the seasonal and trend estimates once. weighted
// attaches the current robustness weights to the cyclic and trend fits.
func (e *engine) innerPass(weighted bool) error {
	var w []float64
	if weighted {
		w = e.weights
	}

	// 1) Detrend with the current trend estimate (all-zero on the first pass).
	for i := range e.data {
		e.detrended[i] = e.data[i] - e.trend[i]
	}

	// 2) Smooth the cyclic sub-series into the extended array.
	if err := e.cyclic.smooth(e.extended, e.detrended, w); err != nil {
		return err
	}

	// 3) Low-pass the extended array to isolate trend leakage.
	deseasonalized, err := e.lowpass.filter(e.extended)
	if err != nil {
		return err
	}

	// 4) Seasonal = extended seasonal minus its leakage; the extended
	// array leads the data by one period.
	p := e.plan.periodicity
	for i := range e.seasonal {
		e.seasonal[i] = e.extended[p+i] - deseasonalized[i]
	}

	// 5) Trend = Loess fit of the deseasonalized data.
	for i := range e.trendInput {
		e.trendInput[i] = e.data[i] - e.seasonal[i]
	}
	opts := []loess.SmootherOption{loess.WithWorkers(e.plan.workers)}
	if weighted {
		opts = append(opts, loess.WithWeights(e.weights))
	}
	sm, err := loess.NewSmoother(e.trendInput, e.plan.trend, opts...)
	if err != nil {
		return err
	}
	e.trend = sm.Smooth()

	return nil
}

// updateRemainder re-derives the remainder from the current components.
// The subtraction identity remainder = data − trend − seasonal is the
// contract callers may rely on bit-for-bit.
func (e *engine) updateRemainder() {
	for i := range e.data {
		e.remainder[i] = e.data[i] - e.trend[i] - e.seasonal[i]
	}
}

// enforcePeriodicity replaces each seasonal phase by its mean across all
// periods, making the seasonal component repeat exactly.
func (e *engine) enforcePeriodicity() {
	n, p := len(e.seasonal), e.plan.periodicity
	for q := 0; q < p; q++ {
		var (
			sum   float64
			count int
		)
		for i := q; i < n; i += p {
			sum += e.seasonal[i]
			count++
		}
		mean := sum / float64(count)
		for i := q; i < n; i += p {
			e.seasonal[i] = mean
		}
	}
}
