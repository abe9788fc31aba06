package mathutil

// Tolerance constants
const (
	// Epsilon is the absolute tolerance used for every equality and zero test
	// in the interpolation engine (duplicate x detection, term suppression).
	Epsilon = 1e-10

	// unitCoefficient is the magnitude elided when rendering non-constant terms.
	unitCoefficient = 1.0
)

// Conditioning diagnostic constants
const (
	// conditionNorm selects the 2-norm for Vandermonde condition estimates.
	conditionNorm = 2

	// wellConditioned is reported for sample sets too small to be ill-conditioned.
	wellConditioned = 1.0
)
