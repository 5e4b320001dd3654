// Package loess defines smoothing settings shared by the interpolator
// and the sliding smoother.
package loess

// Degree selects the local regression polynomial.
//
//   - Flat      — degree 0: locally weighted moving average.
//     Cheapest; flattens slopes near the edges.
//   - Linear    — degree 1: locally weighted straight-line fit.
//     The usual default; exact on linear data, including extrapolation.
//   - Quadratic — degree 2: locally weighted parabola fit.
//     Tracks curvature; exact on quadratic data when the window is wide
//     enough for the moment system to stay well-conditioned.
type Degree int

const (
	// Flat fits a degree-0 polynomial (weighted average) in each window.
	Flat Degree = iota

	// Linear fits a degree-1 polynomial in each window.
	Linear

	// Quadratic fits a degree-2 polynomial in each window.
	Quadratic
)

// valid reports whether d is one of the three supported degrees.
func (d Degree) valid() bool {
	return d == Flat || d == Linear || d == Quadratic
}

// String returns the lowercase name of the degree ("flat", "linear",
// "quadratic"), or "unknown" for out-of-range values.
func (d Degree) String() string {
	switch d {
	case Flat:
		return "flat"
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	default:
		return "unknown"
	}
}

// Settings bundles the three knobs of one smoothing pass.
//
// Fields:
//   - Width  — neighborhood size in points. Forced odd and >= 3 by
//     Normalized (even widths are incremented). Width >= len(data)
//     turns the pass into one global regression.
//   - Degree — polynomial degree of the local fit (Flat/Linear/Quadratic).
//   - Jump   — stride between exactly-evaluated points; skipped points
//     are filled by linear interpolation. Jump=1 evaluates everywhere.
//
// Example:
//
//	s := loess.Settings{Width: 35, Degree: loess.Linear, Jump: 4}
//	sm, err := loess.NewSmoother(data, s)
type Settings struct {
	Width  int
	Degree Degree
	Jump   int
}

// NewSettings builds Settings with the conventional derived defaults:
// the width is normalized (odd, >= 3), the degree is Linear, and the
// jump is one tenth of the width, rounded up.
func NewSettings(width int) Settings {
	s := Settings{Width: width, Degree: Linear}
	s = s.Normalized()
	s.Jump = DefaultJump(s.Width)

	return s
}

// Normalized returns a copy with the width invariant applied: widths
// below 3 become 3, even widths are incremented to the next odd value.
// Jump and Degree are returned unchanged; NewSmoother validates them.
func (s Settings) Normalized() Settings {
	if s.Width < minWidth {
		s.Width = minWidth
	}
	if s.Width%2 == 0 {
		s.Width++
	}

	return s
}

// minWidth is the smallest legal smoothing window.
const minWidth = 3

// DefaultJump derives the conventional evaluation stride from a width:
// ceil(width/10), never below 1.
func DefaultJump(width int) int {
	j := (width + 9) / 10
	if j < 1 {
		j = 1
	}

	return j
}
