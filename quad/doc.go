// Package quad approximates definite integrals of a scalar function with
// composite weighted-sum quadrature rules.
//
// What:
//
//   - Integral captures (f, a, b, n, rule) at construction, derives the step
//     h and a length-n weight sequence analytically (no lookup table), and
//     Evaluate() returns Σ wᵢ·f(a+i·h) over the n sample points.
//   - Rules: Trapezoidal, Midpoint and Simpson.
//
// Why:
//
//   - Areas under sampled curves, expectation values, normalization
//     constants — anywhere a one-dimensional definite integral is needed at
//     a caller-chosen resolution.
//
// Complexity:
//
//   - New:      O(n) weight generation, O(n) memory.
//   - Evaluate: n calls to f plus one n-term dot product, O(n) scratch.
//
// Rule fine print:
//
//   - Midpoint derives h = (b−a)/n but samples at a, a+h, ..., a+(n−1)h —
//     NOT at the true midpoints of the subintervals its name suggests. The
//     last sample falls at b−h. Kept unchanged for compatibility with
//     historical callers; see the note on the Midpoint constant.
//   - Simpson's composite pattern is only classically meaningful when the
//     interior point count pairs up (odd n). The operator does not validate
//     n's parity; choosing a meaningful n is the caller's responsibility.
//
// Errors:
//
//   - ErrUnknownRule: the rule name is not one of the three recognized
//     rules. Surfaced at construction.
//   - ErrBadSubintervals: n < 2, rejected up front so the step derivation
//     cannot divide by zero.
package quad
