package stl

import "github.com/katalvlaran/stl/loess"

// Cyclic sub-series smoothing.
//
// Description:
//
//	The seasonal component is estimated by smoothing each cyclic
//	sub-series independently: all points at positions ≡ q (mod p) form
//	sub-series q, which drifts slowly from one period to the next and is
//	therefore a natural Loess target. Each smoothed sub-series is
//	extrapolated a fixed number of periods beyond both ends, and the
//	results are reinterleaved into one extended array.
//
// Algorithm Outline:
//  1. Deinterleave data (and weights, if present) by position mod p; the
//     first n mod p sub-series receive one extra element. Weights are
//     floored at 0.001 during the gather.
//  2. Smooth each sub-series with a Loess smoother under the shared
//     seasonal settings.
//  3. Extrapolate sub-series q at x = -1..-backward against the leftmost
//     width-sized window and at x = len..len+forward-1 against the
//     rightmost; an undefined fit falls back to the nearest smoothed
//     boundary value.
//  4. Reinterleave: index j of the extended sub-series q lands at
//     extended position j·p+q. The extended array has length
//     n + (backward+forward)·p; its first p entries describe the period
//     before the data and its last p entries the period after.

// weightFloor keeps a zero robustness weight from locking a sub-series
// window into an all-zero, undefined neighborhood.
const weightFloor = 0.001

type cyclicSmoother struct {
	periodicity int
	backward    int // extrapolated periods before the data
	forward     int // extrapolated periods after the data
	settings    loess.Settings
	workers     int
}

// smooth fills dst with the smoothed, extrapolated reinterleave of data.
// weights may be nil for an unweighted pass.
//
// Contract:
//   - len(data) ≥ periodicity, so every sub-series is non-empty.
//   - len(dst) == len(data) + (backward+forward)·periodicity.
//   - weights, when present, has len(data) elements.
func (c *cyclicSmoother) smooth(dst, data, weights []float64) error {
	n, p := len(data), c.periodicity
	set := c.settings.Normalized()

	for q := 0; q < p; q++ {
		// 1) Gather sub-series q (and its floored weights).
		length := n / p
		if q < n%p {
			length++
		}
		sub := make([]float64, length)
		var subW []float64
		if weights != nil {
			subW = make([]float64, length)
		}
		for i, pos := 0, q; pos < n; i, pos = i+1, pos+p {
			sub[i] = data[pos]
			if subW != nil {
				w := weights[pos]
				if w < weightFloor {
					w = weightFloor
				}
				subW[i] = w
			}
		}

		// 2) Smooth the sub-series.
		opts := []loess.SmootherOption{loess.WithWorkers(c.workers)}
		if subW != nil {
			opts = append(opts, loess.WithWeights(subW))
		}
		sm, err := loess.NewSmoother(sub, set, opts...)
		if err != nil {
			return err
		}
		smoothed := sm.Smooth()

		// 3) Extrapolate. Backward points fit against the leftmost
		// width-sized window, forward points against the rightmost.
		ip := sm.Interpolator()
		right := set.Width
		if right > length {
			right = length
		}
		right--
		for k := 1; k <= c.backward; k++ {
			v, ok := ip.Smooth(float64(-k), 0, right)
			if !ok {
				v = smoothed[0]
			}
			dst[(c.backward-k)*p+q] = v
		}

		left := length - set.Width
		if left < 0 {
			left = 0
		}
		for k := 0; k < c.forward; k++ {
			v, ok := ip.Smooth(float64(length+k), left, length-1)
			if !ok {
				v = smoothed[length-1]
			}
			dst[(c.backward+length+k)*p+q] = v
		}

		// 4) Reinterleave the in-range values.
		for i := 0; i < length; i++ {
			dst[(c.backward+i)*p+q] = smoothed[i]
		}
	}

	return nil
}
