package conv

import (
	"errors"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput  = errors.New("conv: empty input")
	ErrEmptyKernel = errors.New("conv: empty kernel")
)

// directThreshold is the shorter-operand length up to which direct
// convolution beats the FFT path.
const directThreshold = 64

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated destination.
// dst must have length len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) {
	clear(dst)

	m := len(b)
	temp := make([]float64, m)
	for i, v := range a {
		vecmath.ScaleBlock(temp, b, v)
		vecmath.AddBlockInPlace(dst[i:i+m], temp)
	}
}

// Convolve performs linear convolution with automatic algorithm selection.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	if min(len(a), len(b)) <= directThreshold {
		return Direct(a, b)
	}

	return FFTConvolve(a, b)
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
