// Package testutil provides reusable test helper functions for interpolation tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-newton-interpolator/internal/mathutil"
	"gonum.org/v1/gonum/mat"
)

// Default tolerances for various test scenarios.
const (
	// FitTolerance bounds |P(x_i) - y_i| for well-conditioned sample sets.
	FitTolerance = 1e-6
	// CoeffTolerance bounds coefficient error for small exact scenarios.
	CoeffTolerance = 1e-9
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertStrictlyIncreasing verifies that s[i-1] < s[i] for every i.
func AssertStrictlyIncreasing(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return assert.Fail(t, "not strictly increasing",
				"s[%d]=%g <= s[%d]=%g", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertAllClose verifies element-wise |expected[i] - actual[i]| <= tolerance.
// Slices of different length are reported as a single failure.
func AssertAllClose(t *testing.T, expected, actual []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tolerance,
			"index %d: expected %g, actual %g", i, expected[i], actual[i]) {
			return false
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertInterpolates verifies eval(xs[i]) ≈ ys[i] for every sample.
func AssertInterpolates(t *testing.T, eval func(float64) float64, xs, ys []float64, tolerance float64) bool {
	t.Helper()
	for i := range xs {
		got := eval(xs[i])
		if !assert.InDelta(t, ys[i], got, tolerance,
			"P(%g) = %g, want %g", xs[i], got, ys[i]) {
			return false
		}
	}
	return true
}

// SolveVandermonde solves V·c = ys for the power-basis coefficients c.
// It is an O(n³) route to the interpolating polynomial that shares nothing
// with the divided-difference construction.
func SolveVandermonde(xs, ys []float64) ([]float64, error) {
	n := len(xs)
	if n == 0 {
		return nil, nil
	}

	var c mat.VecDense
	if err := c.SolveVec(mathutil.Vandermonde(xs), mat.NewVecDense(n, append([]float64(nil), ys...))); err != nil {
		return nil, err
	}
	return c.RawVector().Data, nil
}
