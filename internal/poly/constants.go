package poly

// FFT multiplication constants.
const (
	// minLengthForFFT is the shorter-operand length at which Multiply switches
	// from direct convolution to FFT convolution. Below it the O(a·b) loop wins.
	minLengthForFFT = 64

	// fftHermitianDivisor gives the unique bins of a real FFT: N/2 + 1.
	fftHermitianDivisor = 2
)

// Rendering constants.
const (
	// coefficientPrecision is the number of significant digits printed per
	// coefficient, matching default iostream formatting.
	coefficientPrecision = 6

	// zeroPolynomial is printed when every term is suppressed.
	zeroPolynomial = "0"
)
