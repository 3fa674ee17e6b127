package diff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numerix/diff"
	"github.com/katalvlaran/numerix/stencil"
)

// cube is the smooth polynomial used throughout: f(x)=x³, f'(x)=3x², f''(x)=6x.
func cube(x float64) float64 { return x * x * x }

// TestNewDerivative_UnknownStencil ensures an untabulated (method, order)
// pair fails at construction and never yields a usable operator.
func TestNewDerivative_UnknownStencil(t *testing.T) {
	opts := diff.DefaultOptions()
	opts.Method = stencil.Central
	opts.Order = 3

	d, err := diff.NewDerivative(cube, opts)
	assert.ErrorIs(t, err, stencil.ErrUnknownStencil, "central order 3 is not tabulated")
	assert.Nil(t, d, "failed construction must not return an operator")

	opts.Method = stencil.Forward
	opts.Order = 9
	_, err = diff.NewSecondDerivative(cube, opts)
	assert.ErrorIs(t, err, stencil.ErrUnknownStencil, "forward order 9 is not tabulated for f''")
}

// TestNewDerivative_BadStep covers the hardening guard on Options.Step.
func TestNewDerivative_BadStep(t *testing.T) {
	for _, h := range []float64{0, -1e-5, math.NaN(), math.Inf(1)} {
		opts := diff.DefaultOptions()
		opts.Step = h

		_, err := diff.NewDerivative(cube, opts)
		assert.ErrorIs(t, err, diff.ErrBadStep, "step %v must be rejected", h)

		_, err = diff.NewSecondDerivative(cube, opts)
		assert.ErrorIs(t, err, diff.ErrBadStep, "step %v must be rejected", h)
	}
}

// TestDerivative_CubicAllSchemes checks every tabulated first-derivative
// scheme against f'(2)=12 for the cubic.
func TestDerivative_CubicAllSchemes(t *testing.T) {
	cases := []struct {
		method stencil.Method
		order  int
	}{
		{stencil.Forward, 1}, {stencil.Forward, 2}, {stencil.Forward, 3},
		{stencil.Backward, 1}, {stencil.Backward, 2},
		{stencil.Central, 2}, {stencil.Central, 4}, {stencil.Central, 6}, {stencil.Central, 8},
	}
	for _, c := range cases {
		opts := diff.DefaultOptions()
		opts.Method = c.method
		opts.Order = c.order

		d, err := diff.NewDerivative(cube, opts)
		require.NoErrorf(t, err, "%s order %d", c.method, c.order)
		assert.InDeltaf(t, 12.0, d.Evaluate(2), 1e-3, "%s order %d at x=2", c.method, c.order)
	}
}

// TestDerivative_HigherOrderNoWorse verifies that raising the central order
// never degrades accuracy past the order-2 baseline on a smooth polynomial.
func TestDerivative_HigherOrderNoWorse(t *testing.T) {
	baselineOpts := diff.DefaultOptions() // central, order 2
	baseline, err := diff.NewDerivative(cube, baselineOpts)
	require.NoError(t, err)
	baseErr := math.Abs(baseline.Evaluate(2) - 12.0)

	for _, order := range []int{4, 6, 8} {
		opts := diff.DefaultOptions()
		opts.Order = order

		d, err := diff.NewDerivative(cube, opts)
		require.NoError(t, err)
		gotErr := math.Abs(d.Evaluate(2) - 12.0)
		assert.LessOrEqual(t, gotErr, baseErr+1e-12,
			"central order %d must not exceed the order-2 error", order)
	}
}

// TestSecondDerivative_Cubic checks f''(2)=12 for central order 2.
func TestSecondDerivative_Cubic(t *testing.T) {
	d, err := diff.NewSecondDerivative(cube, diff.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 12.0, d.Evaluate(2), 1e-2, "f''(2) of x³")
}

// TestDerivative_Sine checks a transcendental target: d/dx sin(x) = cos(x).
func TestDerivative_Sine(t *testing.T) {
	opts := diff.DefaultOptions()
	opts.Order = 4

	d, err := diff.NewDerivative(math.Sin, opts)
	require.NoError(t, err)
	assert.InDelta(t, math.Cos(1), d.Evaluate(1), 1e-6, "cos(1)")
	assert.InDelta(t, math.Cos(0), d.Evaluate(0), 1e-6, "cos(0)")
}

// TestDerivative_Idempotent verifies repeated evaluation at the same point
// is bit-identical: operators hold no hidden mutable state.
func TestDerivative_Idempotent(t *testing.T) {
	d, err := diff.NewDerivative(cube, diff.DefaultOptions())
	require.NoError(t, err)

	first := d.Evaluate(2)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, d.Evaluate(2), "evaluation %d must match the first bit-for-bit", i)
	}
}

// TestDerivative_NineSamples pins the fixed-window contract: exactly 9 calls
// to f per evaluation, even for the narrowest stencil.
func TestDerivative_NineSamples(t *testing.T) {
	calls := 0
	counted := func(x float64) float64 {
		calls++

		return cube(x)
	}

	opts := diff.DefaultOptions()
	opts.Method = stencil.Forward
	opts.Order = 1 // two nonzero weights only

	d, err := diff.NewDerivative(counted, opts)
	require.NoError(t, err)

	d.Evaluate(2)
	assert.Equal(t, 9, calls, "one evaluation samples all 9 window offsets")

	d.Evaluate(3)
	assert.Equal(t, 18, calls, "each evaluation samples the window afresh")
}
