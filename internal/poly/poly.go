// Package poly implements dense real polynomials in ascending-degree
// coefficient form: p[0] + p[1]·x + … + p[d]·x^d.
//
// All functions are pure. They never modify their arguments and always
// return freshly allocated coefficient slices.
package poly

import (
	"github.com/tphakala/simd/f64"
)

// Polynomial holds coefficients in ascending-degree order.
// The nil or empty Polynomial is the zero polynomial.
type Polynomial []float64

// One returns the multiplicative identity {1}.
func One() Polynomial {
	return Polynomial{1}
}

// Linear returns the monic linear factor (x - root), stored as {-root, 1}.
func Linear(root float64) Polynomial {
	return Polynomial{-root, 1}
}

// Degree returns len(p)-1, or -1 for the empty polynomial.
// Leading near-zero coefficients are counted; storage is never trimmed.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// Clone returns an independent copy of p.
func (p Polynomial) Clone() Polynomial {
	if p == nil {
		return nil
	}
	out := make(Polynomial, len(p))
	copy(out, p)
	return out
}

// Add returns the element-wise sum of p1 and p2, padding the shorter
// operand with zeros.
func Add(p1, p2 Polynomial) Polynomial {
	result := make(Polynomial, max(len(p1), len(p2)))
	for i, c := range p1 {
		result[i] += c
	}
	for i, c := range p2 {
		result[i] += c
	}
	return result
}

// Multiply returns the product of p1 and p2, a sequence of length
// len(p1)+len(p2)-1 with result[k] = Σ p1[i]·p2[k-i].
// The product with an empty polynomial is empty.
//
// Multiply is a general-purpose primitive. Standard-form conversion only ever
// multiplies by a linear factor and stays on the direct path; operands of at
// least minLengthForFFT coefficients each go through the frequency domain.
func Multiply(p1, p2 Polynomial) Polynomial {
	if len(p1) == 0 || len(p2) == 0 {
		return Polynomial{}
	}
	if min(len(p1), len(p2)) >= minLengthForFFT {
		return multiplyFFT(p1, p2)
	}
	return multiplyDirect(p1, p2)
}

// multiplyDirect is the O(a·b) convolution.
func multiplyDirect(p1, p2 Polynomial) Polynomial {
	result := make(Polynomial, len(p1)+len(p2)-1)
	for i, a := range p1 {
		for j, b := range p2 {
			result[i+j] += a * b
		}
	}
	return result
}

// Scale returns s·p.
func Scale(p Polynomial, s float64) Polynomial {
	if len(p) == 0 {
		return Polynomial{}
	}
	result := make(Polynomial, len(p))
	f64.Scale(result, p, s)
	return result
}
