package pmf

import "gonum.org/v1/gonum/dsp/fourier"

// Convolve returns the PMF of X+Y given the PMFs of independent X and Y.
// Both inputs are zero-padded to the next power of two holding the full
// support, multiplied in the frequency domain, and transformed back.
// Negative values left by floating-point noise are clamped to zero and the
// output is truncated to the true support size len(a)+len(b)-1.
func Convolve(a, b []float64) []float64 {
	size := len(a) + len(b)
	n := 1
	for n < size {
		n <<= 1
	}

	padded := make([]float64, 2*n)
	copy(padded[:n], a)
	copy(padded[n:], b)

	fft := fourier.NewFFT(n)
	ca := fft.Coefficients(nil, padded[:n])
	cb := fft.Coefficients(nil, padded[n:])
	for i := range ca {
		ca[i] *= cb[i]
	}

	// The round trip through Coefficients and Sequence scales by n.
	out := fft.Sequence(nil, ca)[:size-1]
	inv := 1 / float64(n)
	for i, v := range out {
		v *= inv
		if v < 0 {
			v = 0
		}
		out[i] = v
	}
	return out
}
