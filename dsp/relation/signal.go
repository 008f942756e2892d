package relation

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-sweep/dsp/axis"
)

// Signal is a real-valued relation over time in seconds.
type Signal struct {
	Relation[float64]
}

// NewSignal returns a signal over a copy of x holding a copy of y.
func NewSignal(x *axis.Axis, y []float64) (*Signal, error) {
	r, err := New(x, y)
	if err != nil {
		return nil, err
	}
	return &Signal{Relation: *r}, nil
}

// SignalOf copies the axis and values of any real relation into a Signal.
func SignalOf(s Sampled[float64]) (*Signal, error) {
	b, err := base(s)
	if err != nil {
		return nil, err
	}
	return &Signal{Relation: *b.Copy()}, nil
}

// Base returns the embedded relation, or nil for a nil signal.
func (s *Signal) Base() *Relation[float64] {
	if s == nil {
		return nil
	}
	return &s.Relation
}

func asSignal(r *Relation[float64], err error) (*Signal, error) {
	if err != nil {
		return nil, err
	}
	return &Signal{Relation: *r}, nil
}

// ReverseSignal returns the signal time-reversed on the same axis.
func (s *Signal) ReverseSignal() (*Signal, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	y := slices.Clone(s.y)
	floats.Reverse(y)
	return &Signal{Relation: *build(s.x.Copy(), y)}, nil
}

// AmpSpectrum returns the amplitude of the signal's spectrum.
func (s *Signal) AmpSpectrum(opts ...TransformOption) (*Relation[float64], error) {
	sp, err := s.Spectrum(opts...)
	if err != nil {
		return nil, err
	}
	return sp.AmpSpectrum()
}

// PhaseSpectrum returns the wrapped phase of the signal's spectrum.
func (s *Signal) PhaseSpectrum(opts ...TransformOption) (*Relation[float64], error) {
	sp, err := s.Spectrum(opts...)
	if err != nil {
		return nil, err
	}
	return sp.PhaseSpectrum()
}

func (s *Signal) String() string {
	return fmt.Sprintf("Signal%v(%d samples)", s.x, len(s.y))
}

// Copy returns an independent copy.
func (s *Signal) Copy() *Signal { return &Signal{Relation: *s.Relation.Copy()} }

// Apply returns s op rhs as a Signal. See [Relation.Apply].
func (s *Signal) Apply(op Op, rhs any) (*Signal, error) { return asSignal(s.Relation.Apply(op, rhs)) }

// ApplyFrom returns lhs op s as a Signal.
func (s *Signal) ApplyFrom(op Op, lhs any) (*Signal, error) {
	return asSignal(s.Relation.ApplyFrom(op, lhs))
}

// Add returns s + rhs.
func (s *Signal) Add(rhs any) (*Signal, error) { return asSignal(s.Relation.Add(rhs)) }

// Sub returns s - rhs.
func (s *Signal) Sub(rhs any) (*Signal, error) { return asSignal(s.Relation.Sub(rhs)) }

// Mul returns s * rhs.
func (s *Signal) Mul(rhs any) (*Signal, error) { return asSignal(s.Relation.Mul(rhs)) }

// Div returns s / rhs.
func (s *Signal) Div(rhs any) (*Signal, error) { return asSignal(s.Relation.Div(rhs)) }

// Pow returns sign(s)*|s|^rhs.
func (s *Signal) Pow(rhs any) (*Signal, error) { return asSignal(s.Relation.Pow(rhs)) }

// Slice returns the samples with lo <= t < hi.
func (s *Signal) Slice(lo, hi float64) (*Signal, error) { return asSignal(s.Relation.Slice(lo, hi)) }

// SelectData returns the samples with lo <= t <= hi.
func (s *Signal) SelectData(lo, hi float64) (*Signal, error) {
	return asSignal(s.Relation.SelectData(lo, hi))
}

// Shift returns a copy delayed by delta seconds.
func (s *Signal) Shift(delta float64) *Signal { return &Signal{Relation: *s.Relation.Shift(delta)} }

// InterpolateExtrapolate resamples s onto x.
func (s *Signal) InterpolateExtrapolate(x *axis.Axis) (*Signal, error) {
	return asSignal(s.Relation.InterpolateExtrapolate(x))
}

// Diff returns the time derivative.
func (s *Signal) Diff() (*Signal, error) { return asSignal(s.Relation.Diff()) }

// Integrate returns the running time integral.
func (s *Signal) Integrate() (*Signal, error) { return asSignal(s.Relation.Integrate()) }

// Exp returns e raised to every sample.
func (s *Signal) Exp() (*Signal, error) { return asSignal(s.Relation.Exp()) }

// Equalize resamples s and other onto their common axis.
func (s *Signal) Equalize(other Sampled[float64]) (*Signal, *Signal, error) {
	a, b, err := s.Relation.Equalize(other)
	if err != nil {
		return nil, nil, err
	}
	return &Signal{Relation: *a}, &Signal{Relation: *b}, nil
}

// Correlate returns the cross-correlation of s with other.
func (s *Signal) Correlate(other Sampled[float64]) (*Signal, error) {
	return asSignal(s.Relation.Correlate(other))
}

// Convolve returns the convolution of s with other.
func (s *Signal) Convolve(other Sampled[float64]) (*Signal, error) {
	return asSignal(s.Relation.Convolve(other))
}
