// Package diff defines options for the finite-difference operators.
package diff

import "github.com/katalvlaran/numerix/stencil"

// Func is a scalar function of one real variable.
type Func func(float64) float64

// Options configures a Derivative or SecondDerivative.
//
// Fields:
//   - Step   — sample spacing h; must be positive and finite.
//   - Method — finite-difference family: stencil.Forward, stencil.Backward
//     or stencil.Central.
//   - Order  — truncation-error order; only tabulated (Method, Order) pairs
//     are accepted, see package stencil for the supported set.
//
// Example:
//
//	opts := diff.DefaultOptions()
//	opts.Method = stencil.Forward
//	opts.Order = 3
//
//	d, err := diff.NewDerivative(f, opts)
//	if err != nil {
//	  // stencil.ErrUnknownStencil or diff.ErrBadStep
//	}
//	slope := d.Evaluate(2.0)
type Options struct {
	Step   float64
	Method stencil.Method
	Order  int
}

// DefaultOptions returns the conventional defaults: h=1e-5, central, order 2.
func DefaultOptions() Options {
	return Options{
		Step:   1e-5,
		Method: stencil.Central,
		Order:  2,
	}
}
