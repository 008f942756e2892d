package sweep

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/cwbudde/algo-sweep/dsp/axis"
	"github.com/cwbudde/algo-sweep/dsp/core"
	"github.com/cwbudde/algo-sweep/dsp/relation"
)

// quadraturePoints is the Gauss-Legendre order used per grid interval when
// integrating a Func frequency law.
const quadraturePoints = 8

// Uncalculated holds the laws of a sweep that has not been sampled yet.
type Uncalculated struct {
	axis      *axis.Axis
	frequency Law
	amplitude Law
}

// New returns a deferred sweep. defaultAxis may be nil, in which case every
// Materialize call must supply an axis.
func New(defaultAxis *axis.Axis, frequency, amplitude Law) (*Uncalculated, error) {
	if frequency == nil || amplitude == nil {
		return nil, fmt.Errorf("sweep: frequency and amplitude laws are required: %w", core.ErrBadInput)
	}
	u := &Uncalculated{frequency: frequency, amplitude: amplitude}
	if defaultAxis != nil {
		if err := defaultAxis.Validate(); err != nil {
			return nil, fmt.Errorf("sweep: default axis: %w", err)
		}
		u.axis = defaultAxis.Copy()
	}
	return u, nil
}

// DefaultAxis returns a copy of the stored axis, or nil.
func (u *Uncalculated) DefaultAxis() *axis.Axis {
	if u.axis == nil {
		return nil
	}
	return u.axis.Copy()
}

// Materialize samples the sweep on x, or on the default axis when x is nil.
// u is not modified, so repeated calls give independent sweeps.
func (u *Uncalculated) Materialize(x *axis.Axis) (*relation.Sweep, error) {
	if x == nil {
		x = u.axis
	}
	if x == nil {
		return nil, fmt.Errorf("sweep: no time axis given and none stored: %w", core.ErrBadInput)
	}
	if err := x.Validate(); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}

	phase, err := Phase(u.frequency, x)
	if err != nil {
		return nil, fmt.Errorf("sweep: frequency law: %w", err)
	}
	amp, err := Evaluate(u.amplitude, x)
	if err != nil {
		return nil, fmt.Errorf("sweep: amplitude law: %w", err)
	}

	y := make([]float64, len(phase))
	for i, p := range phase {
		y[i] = amp[i] * math.Sin(2*math.Pi*p)
	}
	return relation.NewSweep(x, y)
}

// Phase returns the running integral of the frequency law f over x in
// cycles, zero at the first sample.
func Phase(f Law, x *axis.Axis) ([]float64, error) {
	fn, ok := f.(Func)
	if !ok || fn == nil {
		freq, err := Evaluate(f, x)
		if err != nil {
			return nil, err
		}
		return cumulativeTrapezoid(x.Array(), freq), nil
	}

	if err := x.Validate(); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}
	ts := x.Array()
	out := make([]float64, len(ts))
	for i := 1; i < len(ts); i++ {
		out[i] = out[i-1] + quad.Fixed(fn, ts[i-1], ts[i], quadraturePoints, quad.Legendre{}, 0)
	}
	return out, nil
}

func cumulativeTrapezoid(ts, ys []float64) []float64 {
	out := make([]float64, len(ys))
	for i := 1; i < len(ys); i++ {
		out[i] = out[i-1] + (ys[i-1]+ys[i])/2*(ts[i]-ts[i-1])
	}
	return out
}
