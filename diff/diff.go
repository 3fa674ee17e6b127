package diff

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/numerix/stencil"
)

// ErrBadStep indicates Options.Step is zero, negative or NaN.
var ErrBadStep = errors.New("diff: step size must be positive and finite")

// Derivative approximates the first derivative of a scalar function:
//
//	f'(x) ≈ h⁻¹ · Σ_{i=−4}^{4} wᵢ · f(x + i·h)
//
// Construct with NewDerivative; immutable afterwards.
type Derivative struct {
	f       Func
	h       float64
	weights stencil.Weights
}

// NewDerivative builds a first-derivative operator for f with the given
// options. The stencil is resolved here, once; an untabulated
// (Method, Order) pair fails with stencil.ErrUnknownStencil before any
// evaluation can happen.
func NewDerivative(f Func, opts Options) (*Derivative, error) {
	if err := checkStep(opts.Step); err != nil {
		return nil, err
	}
	w, err := stencil.First(opts.Method, opts.Order)
	if err != nil {
		return nil, err
	}

	return &Derivative{f: f, h: opts.Step, weights: w}, nil
}

// Evaluate approximates f'(x). It always samples f at all 9 window offsets;
// offsets outside the active stencil carry zero weight and do not affect the
// sum.
func (d *Derivative) Evaluate(x float64) float64 {
	samples := sampleWindow(d.f, x, d.h)

	return floats.Dot(d.weights[:], samples[:]) / d.h
}

// SecondDerivative approximates the second derivative of a scalar function:
//
//	f''(x) ≈ h⁻² · Σ_{i=−4}^{4} wᵢ · f(x + i·h)
//
// Construct with NewSecondDerivative; immutable afterwards.
type SecondDerivative struct {
	f       Func
	h       float64
	weights stencil.Weights
}

// NewSecondDerivative builds a second-derivative operator for f with the
// given options. Same construction contract as NewDerivative, resolved
// against the second-derivative table.
func NewSecondDerivative(f Func, opts Options) (*SecondDerivative, error) {
	if err := checkStep(opts.Step); err != nil {
		return nil, err
	}
	w, err := stencil.Second(opts.Method, opts.Order)
	if err != nil {
		return nil, err
	}

	return &SecondDerivative{f: f, h: opts.Step, weights: w}, nil
}

// Evaluate approximates f''(x) over the same fixed 9-point window.
func (d *SecondDerivative) Evaluate(x float64) float64 {
	samples := sampleWindow(d.f, x, d.h)

	return floats.Dot(d.weights[:], samples[:]) / (d.h * d.h)
}

// sampleWindow evaluates f at x+i·h for i = −WindowRadius..+WindowRadius.
func sampleWindow(f Func, x, h float64) [stencil.WindowSize]float64 {
	var samples [stencil.WindowSize]float64
	for i := -stencil.WindowRadius; i <= stencil.WindowRadius; i++ {
		samples[i+stencil.WindowRadius] = f(x + float64(i)*h)
	}

	return samples
}

// checkStep rejects step sizes the downstream division cannot survive.
func checkStep(h float64) error {
	if h <= 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return fmt.Errorf("%w: got %v", ErrBadStep, h)
	}

	return nil
}
