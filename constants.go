package interpolator

import "github.com/tphakala/go-newton-interpolator/internal/mathutil"

// Epsilon is the fixed absolute tolerance for duplicate-x detection and
// zero-term suppression.
const Epsilon = mathutil.Epsilon

// Conditioning diagnostic defaults
const (
	// DefaultConditionWarnThreshold is the Vandermonde 2-norm condition number
	// above which a warning is logged. Beyond roughly 1e12 fewer than four
	// significant digits of the standard-form coefficients can be trusted.
	DefaultConditionWarnThreshold = 1e12

	// minSamplesForCondition is the smallest sample set worth diagnosing.
	minSamplesForCondition = 2
)
