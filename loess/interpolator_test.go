package loess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stl/loess"
)

// TestNewInterpolator_Validation checks every construction-time error.
func TestNewInterpolator_Validation(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5}

	_, err := loess.NewInterpolator(nil, 3, loess.Linear, nil)
	assert.ErrorIs(t, err, loess.ErrNoData, "empty data must error")

	_, err = loess.NewInterpolator(data, 0, loess.Linear, nil)
	assert.ErrorIs(t, err, loess.ErrWidth, "zero width must error")

	_, err = loess.NewInterpolator(data, -7, loess.Linear, nil)
	assert.ErrorIs(t, err, loess.ErrWidth, "negative width must error")

	_, err = loess.NewInterpolator(data, 3, loess.Degree(3), nil)
	assert.ErrorIs(t, err, loess.ErrDegree, "degree outside {0,1,2} must error")

	_, err = loess.NewInterpolator(data, 3, loess.Linear, []float64{1, 1})
	assert.ErrorIs(t, err, loess.ErrWeightsLength, "short weights must error")
}

// TestInterpolator_ConstantInvariance: a constant series is reproduced
// exactly by every degree, at interior and extrapolated abscissae.
func TestInterpolator_ConstantInvariance(t *testing.T) {
	const c = 42.5
	data := make([]float64, 20)
	for i := range data {
		data[i] = c
	}

	for _, degree := range []loess.Degree{loess.Flat, loess.Linear, loess.Quadratic} {
		ip, err := loess.NewInterpolator(data, 7, degree, nil)
		require.NoError(t, err, "construction must succeed for degree %v", degree)

		for _, x := range []float64{0, 3, 9.5, 19, -4, 25.25} {
			got, ok := ip.Smooth(x, 0, len(data)-1)
			require.True(t, ok, "constant fit must be defined at x=%v", x)
			assert.InDelta(t, c, got, 1e-9, "degree %v must reproduce the constant at x=%v", degree, x)
		}
	}
}

// TestInterpolator_LinearReproduction: degree >= 1 reproduces
// data[i] = a·i + b exactly at any x, including points far outside the
// series.
func TestInterpolator_LinearReproduction(t *testing.T) {
	const (
		a = 2.5
		b = -4.0
	)
	data := make([]float64, 20)
	for i := range data {
		data[i] = a*float64(i) + b
	}

	for _, degree := range []loess.Degree{loess.Linear, loess.Quadratic} {
		ip, err := loess.NewInterpolator(data, len(data), degree, nil)
		require.NoError(t, err)

		for _, x := range []float64{0, 1, 7.25, 19, -3.5, -1, 22.75, 30} {
			got, ok := ip.Smooth(x, 0, len(data)-1)
			require.True(t, ok, "fit must be defined at x=%v", x)
			assert.InDelta(t, a*x+b, got, 1e-9, "degree %v at x=%v", degree, x)
		}
	}
}

// TestInterpolator_QuadraticReproduction: degree 2 reproduces
// data[i] = a·i² + b·i + c over the whole domain and beyond it.
func TestInterpolator_QuadraticReproduction(t *testing.T) {
	const (
		a = 0.5
		b = -2.0
		c = 3.0
	)
	data := make([]float64, 15)
	for i := range data {
		fi := float64(i)
		data[i] = a*fi*fi + b*fi + c
	}

	ip, err := loess.NewInterpolator(data, len(data), loess.Quadratic, nil)
	require.NoError(t, err)

	for _, x := range []float64{0, 2, 6.5, 14, -2.5, 18.25} {
		want := a*x*x + b*x + c
		got, ok := ip.Smooth(x, 0, len(data)-1)
		require.True(t, ok, "fit must be defined at x=%v", x)
		assert.InDelta(t, want, got, 1e-7, "quadratic at x=%v", x)
	}
}

// TestInterpolator_UndefinedWhenWeightless: when external weights zero
// out the whole neighborhood the fit is undefined rather than NaN.
func TestInterpolator_UndefinedWhenWeightless(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5}
	zero := make([]float64, len(data))

	ip, err := loess.NewInterpolator(data, 5, loess.Linear, zero)
	require.NoError(t, err)

	_, ok := ip.Smooth(2, 0, len(data)-1)
	assert.False(t, ok, "all-zero weights must make the fit undefined")
}

// TestInterpolator_TricubeCutoffDropsFarEdge: the window point at
// distance lambda itself falls beyond the 0.999·lambda cutoff, so a
// neighborhood whose only weighted point is the cut edge is undefined.
func TestInterpolator_TricubeCutoffDropsFarEdge(t *testing.T) {
	data := []float64{0, 5, 10}
	ip, err := loess.NewInterpolator(data, 3, loess.Flat, []float64{1, 0, 1})
	require.NoError(t, err)

	// x=1 centers the window: both endpoints sit at delta == lambda and
	// are cut, the middle is zero-weighted externally.
	_, ok := ip.Smooth(1, 0, 2)
	assert.False(t, ok, "cut endpoints plus zeroed center must be undefined")

	// Without external weights the same evaluation is defined: only the
	// center survives the cutoff and the average equals its value.
	plain, err := loess.NewInterpolator(data, 3, loess.Flat, nil)
	require.NoError(t, err)
	got, ok := plain.Smooth(1, 0, 2)
	require.True(t, ok)
	assert.InDelta(t, 5.0, got, 1e-12, "only the center point carries weight")
}

// TestInterpolator_SinglePointBandwidth: left == right == x gives
// lambda == 0; the fit degenerates to the raw value with no degree
// correction applied.
func TestInterpolator_SinglePointBandwidth(t *testing.T) {
	data := []float64{7, 8, 9}
	ip, err := loess.NewInterpolator(data, 3, loess.Quadratic, nil)
	require.NoError(t, err)

	got, ok := ip.Smooth(1, 1, 1)
	require.True(t, ok, "single-point window must be defined")
	assert.InDelta(t, 8.0, got, 1e-12, "degenerate bandwidth returns the point value")
}

// TestInterpolator_ZeroVarianceSkipsCorrection: when external weights
// concentrate all mass on one index the weighted variance is zero and
// the linear correction must be skipped, leaving the weighted average.
func TestInterpolator_ZeroVarianceSkipsCorrection(t *testing.T) {
	data := []float64{0, 5, 10}
	ip, err := loess.NewInterpolator(data, 3, loess.Linear, []float64{0, 1, 0})
	require.NoError(t, err)

	got, ok := ip.Smooth(0.8, 0, 2)
	require.True(t, ok)
	assert.InDelta(t, 5.0, got, 1e-12, "single-mass window must return that point's value")
}

// TestInterpolator_ExternalWeightsBias: down-weighting one side of the
// neighborhood pulls the flat fit toward the remaining points.
func TestInterpolator_ExternalWeightsBias(t *testing.T) {
	data := []float64{0, 5, 10}

	plain, err := loess.NewInterpolator(data, 3, loess.Flat, nil)
	require.NoError(t, err)
	biased, err := loess.NewInterpolator(data, 3, loess.Flat, []float64{0.1, 1, 1})
	require.NoError(t, err)

	base, ok := plain.Smooth(0.8, 0, 2)
	require.True(t, ok)
	shifted, ok := biased.Smooth(0.8, 0, 2)
	require.True(t, ok)

	assert.Greater(t, shifted, base, "down-weighting the low point must raise the fit")
}
