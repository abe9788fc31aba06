package poly

import (
	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

// multiplyFFT computes the full linear convolution of p1 and p2 through the
// frequency domain. Both operands are zero-padded to a power of two no shorter
// than the product, so the circular convolution does not wrap.
//
// Results agree with multiplyDirect up to rounding of order
// ε_machine·log2(N)·max|coefficient|.
func multiplyFFT(p1, p2 Polynomial) Polynomial {
	outLen := len(p1) + len(p2) - 1

	fftSize := 1
	for fftSize < outLen {
		fftSize <<= 1
	}
	fft := fourier.NewFFT(fftSize)

	padded := make([]float64, fftSize)
	copy(padded, p1)
	spec1 := fft.Coefficients(nil, padded)

	clear(padded)
	copy(padded, p2)
	spec2 := fft.Coefficients(nil, padded)

	product := make([]complex128, fftSize/fftHermitianDivisor+1)
	c128.Mul(product, spec1, spec2)

	seq := fft.Sequence(nil, product)

	// gonum's inverse transform is unnormalized
	result := make(Polynomial, outLen)
	f64.Scale(result, seq[:outLen], 1.0/float64(fftSize))
	return result
}
