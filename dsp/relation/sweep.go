package relation

import (
	"fmt"

	"github.com/cwbudde/algo-sweep/dsp/axis"
)

// Sweep is a designed excitation signal. It behaves as a Signal and keeps
// its kind through every operation.
type Sweep struct {
	Signal
}

// NewSweep returns a sweep over a copy of x holding a copy of y.
func NewSweep(x *axis.Axis, y []float64) (*Sweep, error) {
	s, err := NewSignal(x, y)
	if err != nil {
		return nil, err
	}
	return &Sweep{Signal: *s}, nil
}

// SweepOf copies the axis and values of any real relation into a Sweep.
func SweepOf(s Sampled[float64]) (*Sweep, error) {
	sig, err := SignalOf(s)
	if err != nil {
		return nil, err
	}
	return &Sweep{Signal: *sig}, nil
}

// Base returns the embedded relation, or nil for a nil sweep.
func (s *Sweep) Base() *Relation[float64] {
	if s == nil {
		return nil
	}
	return &s.Relation
}

func asSweep(s *Signal, err error) (*Sweep, error) {
	if err != nil {
		return nil, err
	}
	return &Sweep{Signal: *s}, nil
}

func (s *Sweep) String() string {
	return fmt.Sprintf("Sweep%v(%d samples)", s.x, len(s.y))
}

// Copy returns an independent copy.
func (s *Sweep) Copy() *Sweep { return &Sweep{Signal: *s.Signal.Copy()} }

// ReverseSignal returns the sweep time-reversed on the same axis.
func (s *Sweep) ReverseSignal() (*Sweep, error) { return asSweep(s.Signal.ReverseSignal()) }

// Apply returns s op rhs as a Sweep. See [Relation.Apply].
func (s *Sweep) Apply(op Op, rhs any) (*Sweep, error) { return asSweep(s.Signal.Apply(op, rhs)) }

// ApplyFrom returns lhs op s as a Sweep.
func (s *Sweep) ApplyFrom(op Op, lhs any) (*Sweep, error) {
	return asSweep(s.Signal.ApplyFrom(op, lhs))
}

// Add returns s + rhs.
func (s *Sweep) Add(rhs any) (*Sweep, error) { return asSweep(s.Signal.Add(rhs)) }

// Sub returns s - rhs.
func (s *Sweep) Sub(rhs any) (*Sweep, error) { return asSweep(s.Signal.Sub(rhs)) }

// Mul returns s * rhs.
func (s *Sweep) Mul(rhs any) (*Sweep, error) { return asSweep(s.Signal.Mul(rhs)) }

// Div returns s / rhs.
func (s *Sweep) Div(rhs any) (*Sweep, error) { return asSweep(s.Signal.Div(rhs)) }

// Pow returns sign(s)*|s|^rhs.
func (s *Sweep) Pow(rhs any) (*Sweep, error) { return asSweep(s.Signal.Pow(rhs)) }

// Slice returns the samples with lo <= t < hi.
func (s *Sweep) Slice(lo, hi float64) (*Sweep, error) { return asSweep(s.Signal.Slice(lo, hi)) }

// SelectData returns the samples with lo <= t <= hi.
func (s *Sweep) SelectData(lo, hi float64) (*Sweep, error) {
	return asSweep(s.Signal.SelectData(lo, hi))
}

// Shift returns a copy delayed by delta seconds.
func (s *Sweep) Shift(delta float64) *Sweep { return &Sweep{Signal: *s.Signal.Shift(delta)} }

// InterpolateExtrapolate resamples s onto x.
func (s *Sweep) InterpolateExtrapolate(x *axis.Axis) (*Sweep, error) {
	return asSweep(s.Signal.InterpolateExtrapolate(x))
}

// Diff returns the time derivative.
func (s *Sweep) Diff() (*Sweep, error) { return asSweep(s.Signal.Diff()) }

// Integrate returns the running time integral.
func (s *Sweep) Integrate() (*Sweep, error) { return asSweep(s.Signal.Integrate()) }

// Exp returns e raised to every sample.
func (s *Sweep) Exp() (*Sweep, error) { return asSweep(s.Signal.Exp()) }

// Equalize resamples s and other onto their common axis.
func (s *Sweep) Equalize(other Sampled[float64]) (*Sweep, *Sweep, error) {
	a, b, err := s.Signal.Equalize(other)
	if err != nil {
		return nil, nil, err
	}
	return &Sweep{Signal: *a}, &Sweep{Signal: *b}, nil
}

// Correlate returns the cross-correlation of s with other.
func (s *Sweep) Correlate(other Sampled[float64]) (*Sweep, error) {
	return asSweep(s.Signal.Correlate(other))
}

// Convolve returns the convolution of s with other.
func (s *Sweep) Convolve(other Sampled[float64]) (*Sweep, error) {
	return asSweep(s.Signal.Convolve(other))
}
