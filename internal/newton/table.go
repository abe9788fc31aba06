// Package newton builds divided-difference tables and folds them into
// power-basis polynomials.
package newton

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-newton-interpolator/internal/mathutil"
)

// Errors returned by BuildTable.
var (
	// ErrLengthMismatch indicates X and Y have different lengths.
	ErrLengthMismatch = errors.New("sample length mismatch")

	// ErrDegenerateSamples indicates two abscissae closer than Epsilon,
	// a non-finite sample, or a divided difference that overflowed.
	ErrDegenerateSamples = errors.New("degenerate sample set")
)

// Table is the triangular divided-difference table for a sample set.
//
// Entry (i, j) is the order-j divided difference starting at sample i and is
// defined for i <= n-1-j. Row 0 holds the Newton-form coefficients.
type Table struct {
	xs []float64
	d  [][]float64
}

// BuildTable computes the divided-difference table of (xs, ys).
//
// Column 0 is ys. Column j is filled from column j-1:
//
//	D[i][j] = (D[i+1][j-1] - D[i][j-1]) / (xs[i+j] - xs[i])
//
// xs need not be sorted, but every pair must differ by at least Epsilon.
// An empty input produces an empty table.
func BuildTable(xs, ys []float64) (*Table, error) {
	n := len(xs)
	if len(ys) != n {
		return nil, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, n, len(ys))
	}
	if !mathutil.AllFinite(xs) || !mathutil.AllFinite(ys) {
		return nil, fmt.Errorf("%w: non-finite sample", ErrDegenerateSamples)
	}

	t := &Table{
		xs: append([]float64(nil), xs...),
		d:  make([][]float64, n),
	}
	for i := range n {
		t.d[i] = make([]float64, n)
		t.d[i][0] = ys[i]
	}

	for j := 1; j < n; j++ {
		for i := 0; i < n-j; i++ {
			denom := xs[i+j] - xs[i]
			if math.Abs(denom) < mathutil.Epsilon {
				return nil, fmt.Errorf("%w: x[%d]=%g and x[%d]=%g coincide",
					ErrDegenerateSamples, i, xs[i], i+j, xs[i+j])
			}

			v := (t.d[i+1][j-1] - t.d[i][j-1]) / denom
			if !mathutil.IsFinite(v) {
				return nil, fmt.Errorf("%w: divided difference (%d, %d) is %g",
					ErrDegenerateSamples, i, j, v)
			}
			t.d[i][j] = v
		}
	}

	return t, nil
}

// Size returns the number of samples the table was built from.
func (t *Table) Size() int {
	return len(t.d)
}

// X returns the abscissa labelling row i.
func (t *Table) X(i int) float64 {
	return t.xs[i]
}

// At returns D[i][j]. Entries outside the triangle are zero.
func (t *Table) At(i, j int) float64 {
	return t.d[i][j]
}

// Row returns a copy of the valid part of row i: D[i][0 .. n-1-i].
func (t *Table) Row(i int) []float64 {
	n := len(t.d)
	return append([]float64(nil), t.d[i][:n-i]...)
}

// Coefficients returns the Newton-form coefficients, i.e. row 0.
func (t *Table) Coefficients() []float64 {
	if len(t.d) == 0 {
		return []float64{}
	}
	return t.Row(0)
}
