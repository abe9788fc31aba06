package mathutil

import (
	"gonum.org/v1/gonum/mat"
)

// Vandermonde builds the n×n Vandermonde matrix V[i][j] = xs[i]^j.
// Solving V·c = y yields the same power-basis coefficients the Newton
// construction produces, which makes V useful for diagnostics and checks.
func Vandermonde(xs []float64) *mat.Dense {
	n := len(xs)
	if n == 0 {
		return nil
	}

	data := make([]float64, n*n)
	for i, x := range xs {
		p := 1.0
		for j := range n {
			data[i*n+j] = p
			p *= x
		}
	}
	return mat.NewDense(n, n, data)
}

// VandermondeCond estimates the 2-norm condition number of the Vandermonde
// matrix for xs.
//
// Large values mean the power-basis coefficients are sensitive to rounding:
// clustered or widely spread abscissae make the standard form lose digits even
// though the divided differences themselves are accurate.
//
// Returns 1 for fewer than two samples and +Inf for a singular matrix.
func VandermondeCond(xs []float64) float64 {
	if len(xs) < 2 {
		return wellConditioned
	}
	return mat.Cond(Vandermonde(xs), conditionNorm)
}
