package sweep

import (
	"fmt"

	"github.com/cwbudde/algo-sweep/dsp/axis"
	"github.com/cwbudde/algo-sweep/dsp/relation"
)

// Deconvolve recovers the impulse response h of a system that answered the
// excitation sw with response, so that response is approximately sw * h.
//
// Both signals are equalized and zero padded to twice their common length
// before the response spectrum is multiplied by the regularized inverse of
// the sweep spectrum (see [relation.Spectrum.ReverseFilter]). The result
// holds the causal lags 0 .. (n-1)*sample.
func Deconvolve(sw, response relation.Sampled[float64], eps float64) (*relation.Signal, error) {
	a, err := relation.SignalOf(sw)
	if err != nil {
		return nil, fmt.Errorf("sweep: deconvolve: %w", err)
	}
	b, err := relation.SignalOf(response)
	if err != nil {
		return nil, fmt.Errorf("sweep: deconvolve: %w", err)
	}
	if a, b, err = a.Equalize(b); err != nil {
		return nil, fmt.Errorf("sweep: deconvolve: %w", err)
	}

	n := a.Size()
	dt := a.Sample()
	padded, err := axis.New(0, float64(2*n-1)*dt, dt)
	if err != nil {
		return nil, fmt.Errorf("sweep: deconvolve: %w", err)
	}

	spectra := make([]*relation.Spectrum, 2)
	for i, s := range []*relation.Signal{a, b} {
		p, err := s.Shift(-a.Start()).InterpolateExtrapolate(padded)
		if err != nil {
			return nil, fmt.Errorf("sweep: deconvolve: %w", err)
		}
		if spectra[i], err = p.Spectrum(relation.AssumeStartZero()); err != nil {
			return nil, fmt.Errorf("sweep: deconvolve: %w", err)
		}
	}

	inv, err := spectra[0].ReverseFilter(eps)
	if err != nil {
		return nil, fmt.Errorf("sweep: deconvolve: %w", err)
	}
	h, err := spectra[1].Mul(inv)
	if err != nil {
		return nil, fmt.Errorf("sweep: deconvolve: %w", err)
	}
	ir, err := h.Signal()
	if err != nil {
		return nil, fmt.Errorf("sweep: deconvolve: %w", err)
	}
	return ir.SelectData(0, float64(n-1)*dt)
}
