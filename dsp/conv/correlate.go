package conv

import "math/cmplx"

// Correlate computes the full cross-correlation of a and b.
// The result has length len(a) + len(b) - 1.
// Output index k corresponds to lag k - (len(b) - 1).
//
// Cross-correlation is convolution with the time-reversed second signal.
func Correlate(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	bReversed := make([]float64, len(b))
	for i := range b {
		bReversed[i] = b[len(b)-1-i]
	}

	return Convolve(a, bReversed)
}

// CorrelateComplex computes the full cross-correlation of complex sequences,
// sum over n of a[n+k] * conj(b[n]).
func CorrelateComplex(a, b []complex128) ([]complex128, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	bReversed := make([]complex128, len(b))
	for i := range b {
		bReversed[i] = cmplx.Conj(b[len(b)-1-i])
	}

	return ConvolveComplex(a, bReversed)
}

// FindPeak finds the index and value of the maximum in a correlation result.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	index = 0
	value = corr[0]

	for i, v := range corr {
		if v > value {
			index = i
			value = v
		}
	}

	return index, value
}

// LagFromIndex converts a correlation result index to a lag value.
// For a correlation of signals with lengths lenA and lenB,
// the lag at index i is i - (lenB - 1).
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}
