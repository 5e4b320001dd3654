// Package loess implements locally estimated scatterplot smoothing
// (Loess): weighted local polynomial regression evaluated pointwise
// across a series, with tri-cube neighborhood weighting, optional
// external robustness weights, and stride-based evaluation for speed.
//
// 🚀 What is Loess?
//
//	Loess smooths a noisy series by fitting a small polynomial
//	(degree 0, 1 or 2) inside a sliding window around every point,
//	weighting neighbors by distance.  It is the workhorse behind
//	seasonal-trend decomposition and shows up wherever a flexible,
//	assumption-free trend curve is needed:
//	  • detrending and deseasonalizing monitoring series
//	  • smoothing sensor readings before thresholding
//	  • visual trend lines over scatter data
//
// ✨ Key features:
//   - degrees Flat / Linear / Quadratic with exact reproduction of
//     constant, linear and quadratic inputs
//   - tri-cube weighting with the classic 0.001/0.999 bandwidth cutoffs
//   - jump stride: fit every k-th point exactly, interpolate the rest
//   - extrapolation beyond the series edges via Interpolator.Smooth
//   - external per-point weights (robustness iterations plug in here)
//   - parallel evaluation across cores with bit-identical results
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/stl/loess"
//
//	s := loess.Settings{Width: 35, Degree: loess.Linear, Jump: 4}
//	sm, err := loess.NewSmoother(data, s)
//	if err != nil { ... }
//	smoothed := sm.Smooth()
//
// Performance:
//
//   - Time:   O(width · n/jump + n)
//   - Memory: O(n)
//
// See examples in example_test.go and the decomposition engine in the
// parent package for how the pieces combine.
package loess
