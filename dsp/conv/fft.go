package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// FFTConvolve computes the full linear convolution of a and b through a
// zero-padded power-of-two FFT.
func FFTConvolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	ac := make([]complex128, len(a))
	for i, v := range a {
		ac[i] = complex(v, 0)
	}
	bc := make([]complex128, len(b))
	for i, v := range b {
		bc[i] = complex(v, 0)
	}

	full, err := fftConvolveComplex(ac, bc)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(full))
	for i, v := range full {
		out[i] = real(v)
	}
	return out, nil
}

// ConvolveComplex performs linear convolution of complex sequences with
// automatic algorithm selection.
func ConvolveComplex(a, b []complex128) ([]complex128, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	if min(len(a), len(b)) <= directThreshold {
		return directComplex(a, b), nil
	}

	return fftConvolveComplex(a, b)
}

func directComplex(a, b []complex128) []complex128 {
	out := make([]complex128, len(a)+len(b)-1)
	for i, av := range a {
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}
	return out
}

func fftConvolveComplex(a, b []complex128) ([]complex128, error) {
	outLen := len(a) + len(b) - 1
	fftSize := nextPowerOf2(outLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	aFreq := make([]complex128, fftSize)
	bFreq := make([]complex128, fftSize)
	copy(aFreq, a)
	copy(bFreq, b)

	if err := plan.Forward(aFreq, aFreq); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := plan.Forward(bFreq, bFreq); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range aFreq {
		aFreq[i] *= bFreq[i]
	}

	if err := plan.Inverse(aFreq, aFreq); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	return aFreq[:outLen:outLen], nil
}
