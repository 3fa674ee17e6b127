// Package shape holds the tiny geometry helpers used by the numerix
// example programs.
package shape

import (
	"fmt"
	"math"
)

// Square is a square with the given side length.
type Square struct {
	Length float64
}

// SquareFromArea constructs the Square whose area equals area.
func SquareFromArea(area float64) Square {
	return Square{Length: math.Sqrt(area)}
}

// Area returns Length².
func (s Square) Area() float64 {
	return s.Length * s.Length
}

// String implements fmt.Stringer.
func (s Square) String() string {
	return fmt.Sprintf("Square(%g)", s.Length)
}
