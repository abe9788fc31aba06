// Package mathutil provides numerical helpers shared by the interpolation engine.
package mathutil

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// EqualWithinEpsilon reports whether |a-b| is strictly below Epsilon, the
// same bound BuildTable applies to divided-difference denominators.
// Two sample abscissae that compare equal here are treated as the same x.
func EqualWithinEpsilon(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// NegligibleCoefficient reports whether |c| is below Epsilon.
func NegligibleCoefficient(c float64) bool {
	return math.Abs(c) < Epsilon
}

// UnitMagnitude reports whether |c| is 1 within Epsilon.
func UnitMagnitude(c float64) bool {
	return floats.EqualWithinAbs(math.Abs(c), unitCoefficient, Epsilon)
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// AllFinite reports whether every element of s is finite.
func AllFinite(s []float64) bool {
	if floats.HasNaN(s) {
		return false
	}
	for _, v := range s {
		if math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
