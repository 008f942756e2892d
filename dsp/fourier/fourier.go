// Package fourier computes real-input discrete Fourier transforms of any
// length.
//
// Bins follow the usual half-spectrum layout: a sequence of n samples maps to
// n/2+1 complex bins from DC up to the Nyquist frequency. The inverse is
// normalized, so Inverse(Forward(x), len(x)) reproduces x.
package fourier

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrLength is returned for sequences too short to transform.
var ErrLength = errors.New("fourier: invalid length")

// Real is a reusable real transform of a fixed length.
type Real struct {
	fft *fourier.FFT
	n   int
}

// NewReal returns a transform for sequences of n >= 2 samples.
func NewReal(n int) (*Real, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: %d samples", ErrLength, n)
	}
	return &Real{fft: fourier.NewFFT(n), n: n}, nil
}

// Len returns the sequence length.
func (r *Real) Len() int { return r.n }

// Bins returns the number of half-spectrum bins, n/2+1.
func (r *Real) Bins() int { return r.n/2 + 1 }

// Forward writes the half spectrum of x into dst, allocating when dst is nil.
// len(x) must equal Len.
func (r *Real) Forward(dst []complex128, x []float64) ([]complex128, error) {
	if len(x) != r.n {
		return nil, fmt.Errorf("%w: got %d samples, plan has %d", ErrLength, len(x), r.n)
	}
	if dst != nil && len(dst) != r.Bins() {
		return nil, fmt.Errorf("%w: destination has %d bins, want %d", ErrLength, len(dst), r.Bins())
	}
	return r.fft.Coefficients(dst, x), nil
}

// Inverse writes the n-sample sequence of the half spectrum coeff into dst,
// allocating when dst is nil.
func (r *Real) Inverse(dst []float64, coeff []complex128) ([]float64, error) {
	if len(coeff) != r.Bins() {
		return nil, fmt.Errorf("%w: got %d bins, want %d", ErrLength, len(coeff), r.Bins())
	}
	if dst != nil && len(dst) != r.n {
		return nil, fmt.Errorf("%w: destination has %d samples, want %d", ErrLength, len(dst), r.n)
	}

	out := r.fft.Sequence(dst, coeff)
	scale := 1 / float64(r.n)
	for i := range out {
		out[i] *= scale
	}
	return out, nil
}

// Forward returns the half spectrum of x.
func Forward(x []float64) ([]complex128, error) {
	r, err := NewReal(len(x))
	if err != nil {
		return nil, err
	}
	return r.Forward(nil, x)
}

// Inverse returns the n real samples whose half spectrum is coeff.
// len(coeff) must be n/2+1.
func Inverse(coeff []complex128, n int) ([]float64, error) {
	r, err := NewReal(n)
	if err != nil {
		return nil, err
	}
	return r.Inverse(nil, coeff)
}

// FreqStep returns the bin spacing in hertz of an n-point transform of
// samples taken every d seconds.
func FreqStep(n int, d float64) float64 {
	return 1 / (float64(n) * d)
}
