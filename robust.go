package stl

// Robustness weighting for the outer loop.
//
// Description:
//
//	After each block of inner passes the remainder is converted into
//	per-point weights that down-weight outliers in the next block. The
//	scale is h = 6×median(|remainder|); each |r| maps through the
//	bisquare kernel (1-(r/h)²)² with a flat top below 0.001·h and a
//	hard cutoff above 0.999·h.
//
// Edge case: an all-equal remainder gives h = 0. The bisquare formula
// would divide by zero, so every weight is set to 1 instead (a uniform
// remainder carries no outlier information).

// bisquareCutoffLow and bisquareCutoffHigh bound the kernel's flat top
// and hard cutoff as fractions of the scale h.
const (
	bisquareCutoffLow  = 0.001
	bisquareCutoffHigh = 0.999
)

// robustnessWeights fills dst with bisquare weights computed from remainder.
// scratch must have the same length; it receives |remainder| and is
// reordered by the median selection.
//
// Complexity: O(n) expected (quickselect median plus one linear pass).
func robustnessWeights(remainder, dst, scratch []float64) {
	// 1) Absolute residuals into scratch; median consumes it destructively.
	var r float64
	for i := range remainder {
		r = remainder[i]
		if r < 0 {
			r = -r
		}
		scratch[i] = r
	}

	// 2) Scale h = 6×median(|r|). h==0 means a uniform remainder.
	h := 6 * median(scratch)
	if h <= 0 {
		for i := range dst {
			dst[i] = 1
		}

		return
	}

	// 3) Flat top, bisquare body, hard cutoff.
	low, high := bisquareCutoffLow*h, bisquareCutoffHigh*h
	var t float64
	for i := range remainder {
		r = remainder[i]
		if r < 0 {
			r = -r
		}
		switch {
		case r <= low:
			dst[i] = 1
		case r <= high:
			t = r / h
			t = 1 - t*t
			dst[i] = t * t
		default:
			dst[i] = 0
		}
	}
}

// median returns the median of v by order-statistic selection, averaging
// the two central statistics for even lengths. v must be non-empty and
// is reordered in place.
func median(v []float64) float64 {
	n := len(v)
	mid := n / 2
	upper := selectKth(v, mid)
	if n%2 == 1 {
		return upper
	}

	// Even length: selection leaves the lower half in v[:mid], so its
	// maximum is the other central order statistic.
	lower := v[0]
	for i := 1; i < mid; i++ {
		if v[i] > lower {
			lower = v[i]
		}
	}

	return 0.5 * (lower + upper)
}

// selectKth places the k-th order statistic of v at index k and returns it,
// partially partitioning v around it (Hoare partitions, middle pivot).
//
// Complexity: O(n) expected, O(n²) adversarial worst case.
func selectKth(v []float64, k int) float64 {
	lo, hi := 0, len(v)-1
	for lo < hi {
		pivot := v[(lo+hi)/2]
		i, j := lo, hi
		for i <= j {
			for v[i] < pivot {
				i++
			}
			for v[j] > pivot {
				j--
			}
			if i <= j {
				v[i], v[j] = v[j], v[i]
				i++
				j--
			}
		}
		// Narrow to the side holding k; between j and i everything equals pivot.
		switch {
		case k <= j:
			hi = j
		case k >= i:
			lo = i
		default:
			return v[k]
		}
	}

	return v[k]
}
