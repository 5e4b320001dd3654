package stl

import "github.com/katalvlaran/stl/loess"

// Low-pass filtering of the extended seasonal estimate.
//
// Description:
//
//	The cyclic smoother leaks low-frequency (trend-like) power into its
//	extended seasonal output. The low-pass filter isolates that leakage
//	so it can be subtracted back out: two moving averages of window
//	p (the periodicity) null the seasonal harmonics, a third of window 3
//	removes ripple, and a final Loess pass smooths what is left.
//
// Pipeline (lengths for input n+2p):
//  1. moving average, window p  → n+p+1
//  2. moving average, window p  → n+2
//  3. moving average, window 3  → n
//  4. Loess smoothing (lowpass settings), length preserved → n
//
// Each moving average of window w erodes w-1 points, so the cascade
// consumes exactly the 2p extrapolated points and returns length n.
type lowPassFilter struct {
	periodicity int
	settings    loess.Settings
	workers     int
}

// filter runs the cascade over the extended seasonal array and returns
// the deseasonalized (trend-leakage) series of length len(extended)-2p.
func (f *lowPassFilter) filter(extended []float64) ([]float64, error) {
	pass := movingAverage(extended, f.periodicity)
	pass = movingAverage(pass, f.periodicity)
	pass = movingAverage(pass, 3)

	sm, err := loess.NewSmoother(pass, f.settings, loess.WithWorkers(f.workers))
	if err != nil {
		return nil, err
	}

	return sm.Smooth(), nil
}

// movingAverage returns the simple rolling mean of data over the given
// window, producing len(data)-window+1 values. The first window is
// accumulated as an incremental mean with a growing divisor, then each
// step rolls the mean by (entering-leaving)/window; boundary behavior
// follows this literal recurrence, not an exact sum/window at each
// position. window must be in [1, len(data)].
func movingAverage(data []float64, window int) []float64 {
	n := len(data)
	out := make([]float64, n-window+1)

	var (
		mean  float64
		count float64
	)
	for i := 0; i < window; i++ {
		count++
		mean += (data[i] - mean) / count
	}
	out[0] = mean

	w := float64(window)
	for i := window; i < n; i++ {
		mean += (data[i] - data[i-window]) / w
		out[i-window+1] = mean
	}

	return out
}
