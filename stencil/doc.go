// Package stencil provides the pre-tabulated finite-difference coefficient
// tables shared by the differentiation operators in package diff.
//
// What:
//
//   - Two immutable tables keyed by (Method, order): one for first-derivative
//     stencils, one for second-derivative stencils.
//   - Every entry is a fixed 9-coefficient vector aligned to the sample
//     offsets −4..+4 around the evaluation point (WindowRadius = 4), wide
//     enough for the broadest tabulated scheme (central, order 8).
//   - First(method, order) / Second(method, order) perform an explicit
//     presence-checked lookup; a missing entry is reported as an error, never
//     as a zero vector.
//
// Why:
//
//   - The classic Taylor-elimination schemes (forward order 3, central
//     orders 6 and 8, ...) have no closed-form recursion worth deriving at
//     runtime; literal constants are exact and auditable.
//   - A fixed-width window keeps the evaluator in package diff uniform:
//     narrow stencils simply carry zeros at the unused offsets.
//
// Complexity:
//
//   - First / Second: O(1) map lookup, no allocation beyond the returned
//     value copy.
//
// Errors:
//
//   - ErrUnknownStencil: no tabulated scheme exists for the requested
//     (method, order) pair.
package stencil
