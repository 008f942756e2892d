package relation

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-sweep/dsp/axis"
	"github.com/cwbudde/algo-sweep/dsp/core"
	"github.com/cwbudde/algo-sweep/dsp/spectrum"
)

// Spectrum is a complex relation over frequency in hertz.
type Spectrum struct {
	Relation[complex128]
}

// NewSpectrum returns a spectrum over a copy of x holding a copy of y.
func NewSpectrum(x *axis.Axis, y []complex128) (*Spectrum, error) {
	r, err := New(x, y)
	if err != nil {
		return nil, err
	}
	return &Spectrum{Relation: *r}, nil
}

// Base returns the embedded relation, or nil for a nil spectrum.
func (s *Spectrum) Base() *Relation[complex128] {
	if s == nil {
		return nil
	}
	return &s.Relation
}

func asSpectrum(r *Relation[complex128], err error) (*Spectrum, error) {
	if err != nil {
		return nil, err
	}
	return &Spectrum{Relation: *r}, nil
}

// SpectrumFromAmpPhase combines amplitude and phase relations into a
// spectrum. Differing axes are equalized first.
func SpectrumFromAmpPhase(amp, phase Sampled[float64]) (*Spectrum, error) {
	a, err := base(amp)
	if err != nil {
		return nil, err
	}
	p, err := base(phase)
	if err != nil {
		return nil, err
	}
	if a, p, err = a.Equalize(p); err != nil {
		return nil, err
	}

	y, err := spectrum.Polar(a.y, p.y)
	if err != nil {
		return nil, fmt.Errorf("relation: %w", err)
	}
	return &Spectrum{Relation: *build(a.x, y)}, nil
}

// AmpSpectrum returns |S| on the frequency axis.
func (sp *Spectrum) AmpSpectrum() (*Relation[float64], error) {
	if err := sp.check(); err != nil {
		return nil, err
	}
	return build(sp.x.Copy(), spectrum.Magnitude(sp.y)), nil
}

// AmpSpectrumDB returns 20*log10(|S|/max|S|), floored at floorDB.
func (sp *Spectrum) AmpSpectrumDB(floorDB float64) (*Relation[float64], error) {
	amp, err := sp.AmpSpectrum()
	if err != nil {
		return nil, err
	}

	peak := floats.Max(amp.y)
	for i, v := range amp.y {
		db := floorDB
		if peak > 0 && v > 0 {
			db = math.Max(core.LinearToDB(v/peak), floorDB)
		}
		amp.y[i] = db
	}
	return amp, nil
}

// PhaseSpectrum returns the wrapped phase of S in radians.
func (sp *Spectrum) PhaseSpectrum() (*Relation[float64], error) {
	if err := sp.check(); err != nil {
		return nil, err
	}
	return build(sp.x.Copy(), spectrum.Phase(sp.y)), nil
}

// GroupDelay returns -dphi/domega in seconds from the unwrapped phase.
func (sp *Spectrum) GroupDelay() (*Relation[float64], error) {
	if err := sp.check(); err != nil {
		return nil, err
	}
	gd, err := spectrum.GroupDelay(spectrum.UnwrapPhase(spectrum.Phase(sp.y)), sp.Sample())
	if err != nil {
		return nil, fmt.Errorf("relation: group delay: %w", err)
	}
	return build(sp.x.Copy(), gd), nil
}

// AddPhase returns the spectrum with phase added to its own phase.
func (sp *Spectrum) AddPhase(phase any) (*Spectrum, error) {
	return sp.shiftPhase(OpAdd, phase)
}

// SubPhase returns the spectrum with phase subtracted from its own phase.
func (sp *Spectrum) SubPhase(phase any) (*Spectrum, error) {
	return sp.shiftPhase(OpSub, phase)
}

func (sp *Spectrum) shiftPhase(op Op, phase any) (*Spectrum, error) {
	amp, err := sp.AmpSpectrum()
	if err != nil {
		return nil, err
	}
	ph, err := sp.PhaseSpectrum()
	if err != nil {
		return nil, err
	}
	if ph, err = ph.Apply(op, phase); err != nil {
		return nil, err
	}
	return SpectrumFromAmpPhase(amp, ph)
}

// ReverseFilter returns the regularized inverse conj(S)/(|S|^2 + eps*max|S|^2).
// Bins with a zero denominator become zero.
func (sp *Spectrum) ReverseFilter(eps float64) (*Spectrum, error) {
	if err := sp.check(); err != nil {
		return nil, err
	}
	if eps < 0 || math.IsNaN(eps) {
		return nil, fmt.Errorf("relation: reverse filter epsilon %g: %w", eps, ErrBadInput)
	}

	pow := spectrum.Power(sp.y)
	reg := eps * floats.Max(pow)
	out := make([]complex128, len(sp.y))
	for i, v := range sp.y {
		if d := pow[i] + reg; d > 0 {
			out[i] = cmplx.Conj(v) / complex(d, 0)
		}
	}
	return &Spectrum{Relation: *build(sp.x.Copy(), out)}, nil
}

func (sp *Spectrum) String() string {
	return fmt.Sprintf("Spectrum%v(%d bins)", sp.x, len(sp.y))
}

// Copy returns an independent copy.
func (sp *Spectrum) Copy() *Spectrum { return &Spectrum{Relation: *sp.Relation.Copy()} }

// Apply returns sp op rhs as a Spectrum. See [Relation.Apply].
func (sp *Spectrum) Apply(op Op, rhs any) (*Spectrum, error) {
	return asSpectrum(sp.Relation.Apply(op, rhs))
}

// ApplyFrom returns lhs op sp as a Spectrum.
func (sp *Spectrum) ApplyFrom(op Op, lhs any) (*Spectrum, error) {
	return asSpectrum(sp.Relation.ApplyFrom(op, lhs))
}

// Add returns sp + rhs.
func (sp *Spectrum) Add(rhs any) (*Spectrum, error) { return asSpectrum(sp.Relation.Add(rhs)) }

// Sub returns sp - rhs.
func (sp *Spectrum) Sub(rhs any) (*Spectrum, error) { return asSpectrum(sp.Relation.Sub(rhs)) }

// Mul returns sp * rhs.
func (sp *Spectrum) Mul(rhs any) (*Spectrum, error) { return asSpectrum(sp.Relation.Mul(rhs)) }

// Div returns sp / rhs.
func (sp *Spectrum) Div(rhs any) (*Spectrum, error) { return asSpectrum(sp.Relation.Div(rhs)) }

// Pow raises every bin to rhs keeping its phase.
func (sp *Spectrum) Pow(rhs any) (*Spectrum, error) { return asSpectrum(sp.Relation.Pow(rhs)) }

// Slice returns the bins with lo <= f < hi.
func (sp *Spectrum) Slice(lo, hi float64) (*Spectrum, error) {
	return asSpectrum(sp.Relation.Slice(lo, hi))
}

// SelectData returns the bins with lo <= f <= hi.
func (sp *Spectrum) SelectData(lo, hi float64) (*Spectrum, error) {
	return asSpectrum(sp.Relation.SelectData(lo, hi))
}

// Shift returns a copy moved by delta hertz.
func (sp *Spectrum) Shift(delta float64) *Spectrum {
	return &Spectrum{Relation: *sp.Relation.Shift(delta)}
}

// InterpolateExtrapolate resamples sp onto x.
func (sp *Spectrum) InterpolateExtrapolate(x *axis.Axis) (*Spectrum, error) {
	return asSpectrum(sp.Relation.InterpolateExtrapolate(x))
}

// Diff returns the derivative over frequency.
func (sp *Spectrum) Diff() (*Spectrum, error) { return asSpectrum(sp.Relation.Diff()) }

// Integrate returns the running integral over frequency.
func (sp *Spectrum) Integrate() (*Spectrum, error) { return asSpectrum(sp.Relation.Integrate()) }

// Exp returns e raised to every bin.
func (sp *Spectrum) Exp() (*Spectrum, error) { return asSpectrum(sp.Relation.Exp()) }

// Equalize resamples sp and other onto their common axis.
func (sp *Spectrum) Equalize(other Sampled[complex128]) (*Spectrum, *Spectrum, error) {
	a, b, err := sp.Relation.Equalize(other)
	if err != nil {
		return nil, nil, err
	}
	return &Spectrum{Relation: *a}, &Spectrum{Relation: *b}, nil
}

// Correlate returns the cross-correlation of sp with other.
func (sp *Spectrum) Correlate(other Sampled[complex128]) (*Spectrum, error) {
	return asSpectrum(sp.Relation.Correlate(other))
}

// Convolve returns the convolution of sp with other.
func (sp *Spectrum) Convolve(other Sampled[complex128]) (*Spectrum, error) {
	return asSpectrum(sp.Relation.Convolve(other))
}
