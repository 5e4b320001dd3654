package stl

import "github.com/katalvlaran/stl/loess"

// Result holds one finished decomposition.
//
// Data aliases the caller's input slice and is never written. The
// component slices are owned by the Result, all of the same length, and
// satisfy the subtraction identity exactly at every index:
//
//	Remainder[i] == Data[i] - Trend[i] - Seasonal[i]
//
// Weights carries the robustness weights of the final pass; without
// robustness cycles it is all ones.
type Result struct {
	Data      []float64
	Trend     []float64
	Seasonal  []float64
	Remainder []float64
	Weights   []float64

	// trendSettings and workers are retained from the run plan so
	// post-passes smooth with the same machinery.
	trendSettings loess.Settings
	workers       int
}

// SmoothTrend re-smooths the trend component with a Loess pass at 1.5×
// the trend width used during decomposition, then recomputes the
// remainder so the subtraction identity keeps holding exactly. Use it
// when the decomposed trend still shows seasonal-scale ripple.
func (r *Result) SmoothTrend() error {
	set := loess.Settings{
		Width:  3 * r.trendSettings.Width / 2,
		Degree: r.trendSettings.Degree,
	}.Normalized()
	set.Jump = loess.DefaultJump(set.Width)

	sm, err := loess.NewSmoother(r.Trend, set, loess.WithWorkers(r.workers))
	if err != nil {
		return err
	}
	r.Trend = sm.Smooth()

	for i := range r.Remainder {
		r.Remainder[i] = r.Data[i] - r.Trend[i] - r.Seasonal[i]
	}

	return nil
}
