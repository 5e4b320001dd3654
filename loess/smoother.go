package loess

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelMinPoints is the smallest number of exact evaluations worth
// fanning out to worker goroutines; below it a single pass is faster.
const parallelMinPoints = 512

// SmootherOption customizes a Smoother beyond its Settings.
type SmootherOption func(*Smoother)

// WithWeights attaches external (robustness) weights, one per data
// point. The weights multiply the tri-cube neighborhood weights in
// every window. A nil slice means no external weighting.
func WithWeights(weights []float64) SmootherOption {
	return func(s *Smoother) { s.external = weights }
}

// WithWorkers caps the number of goroutines used for the exact
// evaluations. 0 selects GOMAXPROCS; 1 forces the sequential path.
// The result is bit-identical for every worker count.
func WithWorkers(n int) SmootherOption {
	return func(s *Smoother) { s.workers = n }
}

// Smoother — Loess smoothing of a whole series
//
// Description:
//
//	A Smoother drives an Interpolator across all of data, producing a
//	smoothed series of the same length. Exact fits are computed every
//	jump-th index; skipped indices are filled by linear interpolation
//	between neighboring exact fits.
//
// Window policy:
//   - width >= n: one global window [0,n-1] for every evaluated point.
//   - otherwise: a window of exactly width points whose left edge is
//     clamp(i-(width+1)/2+1, 0, n-width) — it sticks to the left edge
//     until i passes the half-width, slides one-for-one with i, and
//     sticks again once it abuts the right edge.
//
// Jump policy:
//   - jump == 1: every index is fitted exactly.
//   - jump > 1: indices 0, jump, 2·jump, … are fitted exactly and the
//     gaps are linearly interpolated; the final index n-1 is always
//     fitted exactly, and the trailing partial segment (when n-1 is not
//     on the jump grid) is interpolated separately.
//   - jump is clamped to n-1.
//
// Undefined fits (zero neighborhood weight, see Interpolator.Smooth)
// fall back to the raw input value at that index.
//
// Complexity:
//
//	Time   = O(width · n/jump + n)
//	Memory = O(n)
type Smoother struct {
	data     []float64
	settings Settings
	external []float64
	workers  int
	interp   *Interpolator
}

// NewSmoother validates and builds a Smoother over data.
//
// The settings width is normalized (odd, >= 3) and the jump is clamped
// to len(data)-1. Construction fails on empty data, non-positive width
// or jump, an unknown degree, or external weights of the wrong length.
func NewSmoother(data []float64, settings Settings, opts ...SmootherOption) (*Smoother, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}
	if settings.Width <= 0 {
		return nil, ErrWidth
	}
	if !settings.Degree.valid() {
		return nil, ErrDegree
	}
	if settings.Jump < 1 {
		return nil, ErrJump
	}

	s := &Smoother{data: data}
	for _, opt := range opts {
		opt(s)
	}
	if s.external != nil && len(s.external) != len(data) {
		return nil, ErrWeightsLength
	}
	if s.workers <= 0 {
		s.workers = runtime.GOMAXPROCS(0)
	}

	s.settings = settings.Normalized()
	if limit := len(data) - 1; limit >= 1 && s.settings.Jump > limit {
		s.settings.Jump = limit
	}
	s.interp = newInterpolator(data, s.settings.Width, s.settings.Degree, s.external)

	return s, nil
}

// Interpolator exposes the fitted interpolator bound to this smoother's
// data and weights; cyclic sub-series smoothing uses it to extrapolate
// beyond the series edges with the same configuration.
func (s *Smoother) Interpolator() *Interpolator {
	return s.interp
}

// Smooth returns the smoothed series, same length as the input.
// The input is never modified; repeated calls allocate fresh output.
func (s *Smoother) Smooth() []float64 {
	n := len(s.data)
	out := make([]float64, n)
	if n == 1 {
		out[0] = s.data[0]

		return out
	}

	jump := s.settings.Jump

	// 1) Exact fits on the jump grid, parallel when worthwhile.
	points := (n-1)/jump + 1
	if s.workers > 1 && points >= parallelMinPoints {
		s.evaluateParallel(out, points)
	} else {
		for i := 0; i < n; i += jump {
			s.evaluate(s.interp, out, i)
		}
	}

	if jump == 1 {
		return out
	}

	// 2) Linear interpolation between consecutive exact fits.
	var slope float64
	for i := 0; i+jump < n; i += jump {
		slope = (out[i+jump] - out[i]) / float64(jump)
		for j := i + 1; j < i+jump; j++ {
			out[j] = out[i] + slope*float64(j-i)
		}
	}

	// 3) The final index is always fitted exactly; when it is off the
	//    jump grid, interpolate the trailing partial segment too.
	last := n - 1
	anchor := (last / jump) * jump
	if anchor != last {
		s.evaluate(s.interp, out, last)
		if anchor != last-1 {
			slope = (out[last] - out[anchor]) / float64(last-anchor)
			for j := anchor + 1; j < last; j++ {
				out[j] = out[anchor] + slope*float64(j-anchor)
			}
		}
	}

	return out
}

// windowBounds returns the evaluation window for index i under the
// documented policy (global when width >= n, clamped sliding window
// otherwise).
func (s *Smoother) windowBounds(i int) (left, right int) {
	n := len(s.data)
	width := s.settings.Width
	if width >= n {
		return 0, n - 1
	}

	half := (width + 1) / 2
	left = i - half + 1
	if left < 0 {
		left = 0
	} else if left > n-width {
		left = n - width
	}

	return left, left + width - 1
}

// evaluate fits index i exactly, falling back to the raw value when the
// fit is undefined.
func (s *Smoother) evaluate(ip *Interpolator, out []float64, i int) {
	left, right := s.windowBounds(i)
	y, ok := ip.Smooth(float64(i), left, right)
	if !ok {
		y = s.data[i]
	}
	out[i] = y
}

// evaluateParallel partitions the jump grid into contiguous chunks, one
// goroutine per chunk. Each worker owns a private interpolator (the
// scratch weight buffer must not be shared) and writes only its own
// output slots, so the result matches the sequential pass bit for bit.
func (s *Smoother) evaluateParallel(out []float64, points int) {
	jump := s.settings.Jump
	chunk := (points + s.workers - 1) / s.workers

	var g errgroup.Group
	for start := 0; start < points; start += chunk {
		end := start + chunk
		if end > points {
			end = points
		}
		lo, hi := start, end
		g.Go(func() error {
			ip := newInterpolator(s.data, s.settings.Width, s.settings.Degree, s.external)
			for p := lo; p < hi; p++ {
				s.evaluate(ip, out, p*jump)
			}

			return nil
		})
	}

	// Workers are pure computations over disjoint slots; no errors arise.
	_ = g.Wait()
}
