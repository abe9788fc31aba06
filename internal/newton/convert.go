package newton

import (
	"github.com/tphakala/go-newton-interpolator/internal/poly"
)

// ToStandardForm folds Newton-form coefficients into power-basis form.
//
// With node factor N_0 = 1 and N_i = N_{i-1}·(x - xs[i-1]), the result is
// Σ coeffs[i]·N_i. The returned polynomial has exactly len(coeffs)
// coefficients; near-zero leading terms are kept.
//
// xs must have at least len(coeffs)-1 entries.
func ToStandardForm(xs, coeffs []float64) poly.Polynomial {
	if len(coeffs) == 0 {
		return poly.Polynomial{}
	}

	result := poly.Polynomial{coeffs[0]}
	node := poly.One()
	for i := 1; i < len(coeffs); i++ {
		node = poly.Multiply(node, poly.Linear(xs[i-1]))
		result = poly.Add(result, poly.Scale(node, coeffs[i]))
	}
	return result
}

// StandardForm converts the table's interpolant to power-basis form.
func (t *Table) StandardForm() poly.Polynomial {
	return ToStandardForm(t.xs, t.Coefficients())
}
