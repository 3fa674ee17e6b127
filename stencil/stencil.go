package stencil

import (
	"errors"
	"fmt"
)

// Method selects the finite-difference scheme family.
type Method string

const (
	// Forward uses samples at the evaluation point and to its right.
	Forward Method = "forward"
	// Backward uses samples at the evaluation point and to its left.
	Backward Method = "backward"
	// Central uses samples symmetric about the evaluation point.
	Central Method = "central"
)

const (
	// WindowRadius is the number of sample offsets on each side of the
	// evaluation point. Every stencil is expressed on the same −4..+4 window
	// regardless of how many of its coefficients are nonzero.
	WindowRadius = 4
	// WindowSize is the total number of samples per evaluation.
	WindowSize = 2*WindowRadius + 1
)

// Weights holds stencil coefficients positionally aligned to the offsets
// −WindowRadius..+WindowRadius; Weights[i+WindowRadius] multiplies f(x+i·h).
type Weights [WindowSize]float64

// ErrUnknownStencil indicates no tabulated scheme exists for the requested
// (method, order) pair.
var ErrUnknownStencil = errors.New("stencil: method/order combination is not tabulated")

// key identifies one tabulated scheme.
type key struct {
	method Method
	order  int
}

// firstDerivative tabulates the standard Taylor-elimination stencils for
// f'(x). Coefficients are exact rationals; divide the weighted sum by h.
var firstDerivative = map[key]Weights{
	{Forward, 1}:  {0, 0, 0, 0, -1, 1, 0, 0, 0},
	{Forward, 2}:  {0, 0, 0, 0, -3.0 / 2, 2, -1.0 / 2, 0, 0},
	{Forward, 3}:  {0, 0, 0, -2.0 / 6, -1.0 / 2, 1, -1.0 / 6, 0, 0},
	{Backward, 1}: {0, 0, 0, -1, 1, 0, 0, 0, 0},
	{Backward, 2}: {0, 0, 1.0 / 2, -2, 3.0 / 2, 0, 0, 0, 0},
	{Central, 2}:  {0, 0, 0, -1.0 / 2, 0, 1.0 / 2, 0, 0, 0},
	{Central, 4}:  {0, 0, 1.0 / 12, -2.0 / 3, 0, 2.0 / 3, -1.0 / 12, 0, 0},
	{Central, 6}:  {0, -1.0 / 60, 3.0 / 20, -3.0 / 4, 0, 3.0 / 4, -3.0 / 20, 1.0 / 60, 0},
	{Central, 8}:  {1.0 / 280, -4.0 / 105, 12.0 / 60, -4.0 / 5, 0, 4.0 / 5, -12.0 / 60, 4.0 / 105, -1.0 / 280},
}

// secondDerivative tabulates the stencils for f''(x); divide the weighted
// sum by h².
var secondDerivative = map[key]Weights{
	{Forward, 1}:  {0, 0, 0, 0, 1, -2, 1, 0, 0},
	{Forward, 2}:  {0, 0, 0, 0, 2, -5, 4, -1, 0},
	{Backward, 1}: {0, 0, 1, -2, 1, 0, 0, 0, 0},
	{Backward, 2}: {0, -1, 4, -5, 2, 0, 0, 0, 0},
	{Central, 2}:  {0, 0, 0, 1, -2, 1, 0, 0, 0},
	{Central, 4}:  {0, 0, -1.0 / 12, 4.0 / 3, -5.0 / 2, 4.0 / 3, -1.0 / 12, 0, 0},
}

// First returns the first-derivative stencil for (method, order).
// The lookup is an explicit presence check on the table: an absent entry
// yields ErrUnknownStencil, and a tabulated all-zero vector (should one ever
// exist) would be returned as-is rather than misreported as unsupported.
func First(method Method, order int) (Weights, error) {
	w, ok := firstDerivative[key{method, order}]
	if !ok {
		return Weights{}, fmt.Errorf("%w: first derivative, %s order %d", ErrUnknownStencil, method, order)
	}

	return w, nil
}

// Second returns the second-derivative stencil for (method, order).
// Same presence semantics as First.
func Second(method Method, order int) (Weights, error) {
	w, ok := secondDerivative[key{method, order}]
	if !ok {
		return Weights{}, fmt.Errorf("%w: second derivative, %s order %d", ErrUnknownStencil, method, order)
	}

	return w, nil
}
