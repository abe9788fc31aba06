package poly

import (
	"math"
	"strconv"
	"strings"

	"github.com/tphakala/go-newton-interpolator/internal/mathutil"
)

// Render formats p highest degree first, e.g. "2*x^3 - x + 0.5".
//
// Terms with |c| < Epsilon are omitted. The first printed term carries a bare
// "-" when negative; later terms are joined with " + " or " - ". A unit
// magnitude is elided for non-constant terms. If nothing survives, "0" is
// returned.
func Render(p Polynomial) string {
	var sb strings.Builder
	first := true

	for i := len(p) - 1; i >= 0; i-- {
		c := p[i]
		if mathutil.NegligibleCoefficient(c) {
			continue
		}

		switch {
		case first && c < 0:
			sb.WriteString("-")
		case !first && c < 0:
			sb.WriteString(" - ")
		case !first:
			sb.WriteString(" + ")
		}
		first = false

		writeTerm(&sb, math.Abs(c), i)
	}

	if first {
		return zeroPolynomial
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (p Polynomial) String() string {
	return Render(p)
}

// writeTerm writes a single non-negative term of the given degree.
func writeTerm(sb *strings.Builder, magnitude float64, degree int) {
	if degree == 0 {
		sb.WriteString(FormatNumber(magnitude))
		return
	}

	if !mathutil.UnitMagnitude(magnitude) {
		sb.WriteString(FormatNumber(magnitude))
		sb.WriteString("*")
	}
	sb.WriteString("x")
	if degree > 1 {
		sb.WriteString("^")
		sb.WriteString(strconv.Itoa(degree))
	}
}

// FormatNumber prints v with six significant digits, switching to
// exponent notation for very large or small magnitudes.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', coefficientPrecision, 64)
}
