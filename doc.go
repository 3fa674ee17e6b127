// Package numerix is a small toolbox for classic numerical analysis on
// scalar functions of one real variable: finite-difference derivatives
// and composite quadrature.
//
// 🚀 What is numerix?
//
//	A compact, pure-Go numerics library that brings together:
//		• Tabulated finite-difference stencils: forward, backward & central
//		  schemes across several truncation-error orders
//		• First- and second-derivative operators driven by those tables
//		• Composite quadrature: trapezoidal, midpoint & Simpson rules
//
// ✨ Why choose numerix?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable – all configuration captured at construction, operators
//     immutable and safe to share across goroutines
//   - Honest errors – unsupported scheme/rule combinations fail loudly at
//     construction, never as a silent zero result
//
// Everything is organized under the subpackages:
//
//	stencil/ — immutable finite-difference coefficient tables + lookup
//	diff/    — Derivative and SecondDerivative operators built on stencil
//	quad/    — Integral operator with per-rule weight generation
//	shape/   — tiny geometry helpers used by the examples
//
// Quick start:
//
//	cube := func(x float64) float64 { return x * x * x }
//	d, err := diff.NewDerivative(cube, diff.DefaultOptions())
//	if err != nil {
//	  // unsupported method/order combination
//	}
//	fmt.Printf("%.5f\n", d.Evaluate(2)) // ≈ 12.00000
//
// See each subpackage's doc.go for contracts, complexity and error lists.
package numerix
