// Package diff approximates first and second derivatives of a scalar
// function with pre-tabulated finite-difference stencils.
//
// What:
//
//   - Derivative approximates f'(x) as h⁻¹ · Σ wᵢ·f(x+i·h) over the fixed
//     sample window i = −4..+4.
//   - SecondDerivative approximates f''(x) the same way, scaled by h⁻².
//   - Stencil weights are resolved once, at construction, from package
//     stencil; the operator is immutable afterwards and may be evaluated at
//     any number of points, from any number of goroutines.
//
// Why:
//
//   - Smooth curves from sampled models: slopes, curvature, inflection scans.
//   - Verifying analytic gradients against a numerical baseline.
//   - Teaching: every tabulated scheme is a literal, auditable constant.
//
// Complexity:
//
//   - Evaluate: exactly 9 calls to f plus one 9-term dot product, O(1)
//     memory. The window is fixed regardless of stencil width; narrow
//     stencils spend a few wasted calls in exchange for a uniform evaluator.
//
// Options:
//
//   - Options.Step: sample spacing h (default 1e-5).
//   - Options.Method: stencil.Forward, stencil.Backward or stencil.Central.
//   - Options.Order: truncation-error order of the scheme.
//
// Errors:
//
//   - stencil.ErrUnknownStencil: the (Method, Order) pair has no tabulated
//     scheme. Surfaced at construction, never as a zero result.
//   - ErrBadStep: Step is zero, negative or NaN, rejected up front so the
//     scaling division cannot produce NaN/Inf.
//
// Errors raised by f itself (panics, NaN results) propagate to the caller of
// Evaluate untouched; the operator has no opinion on why f might fail.
package diff
