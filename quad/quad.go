package quad

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Func is a scalar function of one real variable.
type Func func(float64) float64

// Rule names a quadrature weight-generation scheme.
type Rule string

const (
	// Trapezoidal is the classic composite trapezoidal rule: end weights
	// h/2, interior weights h, samples at a, a+h, ..., b.
	Trapezoidal Rule = "trapezoidal"
	// Midpoint weights every sample h. Note: samples are placed at
	// a, a+h, ..., a+(n−1)h = b−h, not at true subinterval midpoints — a
	// historical naming/placement mismatch kept for compatibility.
	Midpoint Rule = "midpoint"
	// Simpson is the composite Simpson pattern: end weights h/3, interior
	// weights alternating 4h/3 (odd index) and 2h/3 (even index). The
	// pattern is classically valid only for odd n; the caller chooses n and
	// no parity validation is performed.
	Simpson Rule = "simpson"
)

var (
	// ErrUnknownRule indicates the requested rule is not one of
	// Trapezoidal, Midpoint or Simpson.
	ErrUnknownRule = errors.New("quad: unknown quadrature rule")
	// ErrBadSubintervals indicates the sample count n is below 2.
	ErrBadSubintervals = errors.New("quad: sample count must be at least 2")
)

// Integral approximates ∫ₐᵇ f(x)dx as Σ wᵢ·f(a+i·h). All configuration is
// captured by New; the value is immutable afterwards and Evaluate may be
// called any number of times, from any number of goroutines.
type Integral struct {
	f       Func
	a, b    float64
	n       int
	rule    Rule
	h       float64
	weights []float64
}

// New builds an Integral of f over [a, b] with n sample points under the
// given rule. The step is h = (b−a)/n for Midpoint and (b−a)/(n−1)
// otherwise. Bounds are not validated: a == b yields a zero integral and
// reversed bounds yield the signed integral, both arithmetically sound.
func New(f Func, a, b float64, n int, rule Rule) (*Integral, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSubintervals, n)
	}

	var h float64
	if rule == Midpoint {
		h = (b - a) / float64(n)
	} else {
		h = (b - a) / float64(n-1)
	}

	weights := make([]float64, n)
	switch rule {
	case Trapezoidal:
		weights[0] = h / 2
		for i := 1; i < n-1; i++ {
			weights[i] = h
		}
		weights[n-1] = h / 2
	case Midpoint:
		for i := range weights {
			weights[i] = h
		}
	case Simpson:
		weights[0] = h / 3
		for i := 1; i < n-1; i++ {
			if i%2 == 1 {
				weights[i] = 4 * h / 3
			} else {
				weights[i] = 2 * h / 3
			}
		}
		weights[n-1] = h / 3
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, rule)
	}

	return &Integral{f: f, a: a, b: b, n: n, rule: rule, h: h, weights: weights}, nil
}

// Evaluate samples f at a+i·h for i = 0..n−1 and returns the weighted sum.
// No state is retained between calls; repeated calls are bit-identical.
func (q *Integral) Evaluate() float64 {
	samples := make([]float64, q.n)
	for i := range samples {
		samples[i] = q.f(q.a + float64(i)*q.h)
	}

	return floats.Dot(q.weights, samples)
}

// Step returns the derived sample spacing h.
func (q *Integral) Step() float64 { return q.h }

// Weights returns a copy of the derived weight sequence; its length always
// equals the configured sample count n.
func (q *Integral) Weights() []float64 {
	w := make([]float64, len(q.weights))
	copy(w, q.weights)

	return w
}
