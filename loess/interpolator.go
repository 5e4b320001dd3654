package loess

import "math"

// momentFloor scales the degeneracy guard for the degree corrections:
// a correction is applied only while its moment (variance for Linear,
// moment determinant for Quadratic) exceeds momentFloor·(n-1)².
const momentFloor = 1e-6

// tricube is the neighborhood kernel w(u) = (1-|u|³)³ for |u| < 1, else 0.
func tricube(u float64) float64 {
	a := math.Abs(u)
	if a >= 1 {
		return 0
	}
	t := 1 - a*a*a

	return t * t * t
}

// Interpolator — weighted local polynomial regression at a point
//
// Description:
//
//	An Interpolator is bound to one series and one configuration
//	(width, degree, optional external weights). Each Smooth call fits a
//	polynomial of the configured degree to a window [left,right] of the
//	series, weighting points by tri-cube distance from the target
//	abscissa x, and returns the fitted value at x. The target may lie
//	outside the window, which is how extrapolation beyond the series
//	edges is performed.
//
// Algorithm Outline (one Smooth call):
//  1. lambda = max(x-left, right-x); if width > n, inflate lambda by
//     (width-n)/2 so the window shape follows the configured width
//     rather than the amount of data present.
//  2. For i = left..right: delta = |x-i|;
//     weight = 1                     if delta <= 0.001·lambda
//     weight = tricube(delta/lambda) if delta <= 0.999·lambda
//     weight = 0                     otherwise,
//     multiplied by the external weight at i when present.
//  3. If the accumulated total weight is <= 0 the fit is undefined and
//     Smooth reports ok=false (callers fall back to the raw value).
//  4. Normalize the window weights to sum 1.
//  5. lambda == 0 degenerates to the pure weighted average: skip the
//     degree correction entirely.
//  6. Otherwise adjust the normalized weights for the configured degree
//     (see updateLinear / updateQuadratic); Flat applies no correction.
//  7. Return the dot product of the adjusted weights with the data.
//
// Complexity:
//
//	Time   = O(right-left+1) per call
//	Memory = O(n) once (reusable weight buffer)
type Interpolator struct {
	data     []float64
	width    int
	degree   Degree
	external []float64 // nil when no external weights apply
	weights  []float64 // scratch: one slot per data index, reused across calls

	// update applies the degree-specific weight correction; selected
	// once at construction so Smooth stays branch-free on degree.
	update func(x float64, left, right int)
}

// NewInterpolator binds a local regression interpolator to data.
//
// width must be positive (it is normalized to an odd value >= 3),
// degree must be Flat, Linear or Quadratic, and weights — the external
// robustness weights — may be nil or must match len(data).
func NewInterpolator(data []float64, width int, degree Degree, weights []float64) (*Interpolator, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}
	if width <= 0 {
		return nil, ErrWidth
	}
	if !degree.valid() {
		return nil, ErrDegree
	}
	if weights != nil && len(weights) != len(data) {
		return nil, ErrWeightsLength
	}

	norm := Settings{Width: width}.Normalized()

	return newInterpolator(data, norm.Width, degree, weights), nil
}

// newInterpolator is the validation-free constructor shared with the
// smoother's parallel workers (each worker needs a private scratch
// buffer over the same data).
func newInterpolator(data []float64, width int, degree Degree, weights []float64) *Interpolator {
	ip := &Interpolator{
		data:     data,
		width:    width,
		degree:   degree,
		external: weights,
		weights:  make([]float64, len(data)),
	}

	// 1) Select the degree strategy once; Smooth never re-dispatches.
	switch degree {
	case Linear:
		ip.update = ip.updateLinear
	case Quadratic:
		ip.update = ip.updateQuadratic
	default:
		ip.update = nil // Flat: no correction
	}

	return ip
}

// Smooth fits the configured polynomial to data[left..right] and
// returns its value at x. ok=false means the fit is undefined (the
// neighborhood carried no weight); callers are expected to fall back
// to the raw value when x is an integer index.
//
// left and right must satisfy 0 <= left <= right < len(data); x may lie
// outside [left,right] for extrapolation.
func (ip *Interpolator) Smooth(x float64, left, right int) (value float64, ok bool) {
	n := len(ip.data)

	// 1) Bandwidth: distance from x to the farthest window edge,
	//    inflated when the configured width exceeds the data length.
	lambda := math.Max(x-float64(left), float64(right)-x)
	if ip.width > n {
		lambda += float64(ip.width-n) / 2.0
	}

	// 2) Neighborhood weights with the flat-top/cutoff thresholds.
	nearCut := 0.001 * lambda
	farCut := 0.999 * lambda

	var total, w, delta float64
	for i := left; i <= right; i++ {
		delta = math.Abs(x - float64(i))
		w = 0
		if delta <= farCut {
			if delta <= nearCut {
				w = 1.0
			} else {
				w = tricube(delta / lambda)
			}
			if ip.external != nil {
				w *= ip.external[i]
			}
			total += w
		}
		ip.weights[i] = w
	}

	// 3) Nothing carried weight: undefined.
	if total <= 0 {
		return 0, false
	}

	// 4) Normalize to a unit-mass window.
	inv := 1.0 / total
	for i := left; i <= right; i++ {
		ip.weights[i] *= inv
	}

	// 5-6) Degree correction, skipped in the lambda==0 degenerate case
	//      (single-point bandwidth: pure weighted average).
	if lambda > 0 && ip.update != nil {
		ip.update(x, left, right)
	}

	// 7) Fitted value: dot product of adjusted weights with the data.
	var fit float64
	for i := left; i <= right; i++ {
		fit += ip.weights[i] * ip.data[i]
	}

	return fit, true
}

// updateLinear adjusts the normalized weights so their first moment
// matches x: with x̄ = Σwᵢ·i and S = Σwᵢ(i-x̄)², each weight is scaled
// by 1+β(i-x̄), β = (x-x̄)/S. When S is below the degeneracy floor the
// weights are left as a moving average.
func (ip *Interpolator) updateLinear(x float64, left, right int) {
	var mean float64
	for i := left; i <= right; i++ {
		mean += float64(i) * ip.weights[i]
	}

	var variance, delta float64
	for i := left; i <= right; i++ {
		delta = float64(i) - mean
		variance += ip.weights[i] * delta * delta
	}

	rng := float64(len(ip.data) - 1)
	if variance > momentFloor*rng*rng {
		beta := (x - mean) / variance
		for i := left; i <= right; i++ {
			ip.weights[i] *= 1.0 + beta*(float64(i)-mean)
		}
	}
}

// updateQuadratic adjusts the normalized weights so their first and
// second moments match x and x²: raw index moments up to order 4 feed a
// 2×2 system in the centered moments, whose solution scales each weight
// by 1+a1(i-x̄)+a2(i²-x̄₂). When the moment determinant is below the
// degeneracy floor no correction is applied.
func (ip *Interpolator) updateQuadratic(x float64, left, right int) {
	var m1, m2, m3, m4 float64
	var w, x1w, x2w, x3w, fi float64
	for i := left; i <= right; i++ {
		w = ip.weights[i]
		fi = float64(i)
		x1w = fi * w
		x2w = fi * x1w
		x3w = fi * x2w
		m1 += x1w
		m2 += x2w
		m3 += x3w
		m4 += fi * x3w
	}

	// Centered moments and their determinant.
	c2 := m2 - m1*m1
	c3 := m3 - m2*m1
	c4 := m4 - m2*m2
	det := c2*c4 - c3*c3

	rng := float64(len(ip.data) - 1)
	if det <= momentFloor*rng*rng {
		return
	}

	b2 := c4 / det
	b3 := c3 / det
	b4 := c2 / det
	d1 := x - m1
	d2 := x*x - m2
	a1 := b2*d1 - b3*d2
	a2 := b4*d2 - b3*d1
	for i := left; i <= right; i++ {
		fi = float64(i)
		ip.weights[i] *= 1.0 + a1*(fi-m1) + a2*(fi*fi-m2)
	}
}
