package poly

// Evaluate computes p(x) with Horner's method, from the highest degree down.
// The empty polynomial evaluates to 0.
func Evaluate(p Polynomial, x float64) float64 {
	var result float64
	for i := len(p) - 1; i >= 0; i-- {
		result = result*x + p[i]
	}
	return result
}

// Evaluate is shorthand for Evaluate(p, x).
func (p Polynomial) Evaluate(x float64) float64 {
	return Evaluate(p, x)
}
