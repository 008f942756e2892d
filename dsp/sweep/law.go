package sweep

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/interp"

	"github.com/cwbudde/algo-sweep/dsp/axis"
	"github.com/cwbudde/algo-sweep/dsp/core"
	"github.com/cwbudde/algo-sweep/dsp/relation"
)

// Law is a function of time sampled on demand. The variants are Array,
// Func, Interpolated and the relation law returned by FromRelation.
type Law interface {
	resolve(x *axis.Axis) ([]float64, error)
}

// Evaluate samples l on every coordinate of x.
func Evaluate(l Law, x *axis.Axis) ([]float64, error) {
	if l == nil {
		return nil, fmt.Errorf("sweep: nil law: %w", core.ErrBadInput)
	}
	if x == nil {
		return nil, fmt.Errorf("sweep: nil axis: %w", core.ErrBadInput)
	}
	if err := x.Validate(); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}
	return l.resolve(x)
}

// Array is a law given as one value per time sample. Its length must equal
// the size of the axis it is resolved on.
type Array []float64

func (a Array) resolve(x *axis.Axis) ([]float64, error) {
	if len(a) != x.Size() {
		return nil, fmt.Errorf("sweep: array law has %d values for axis %v of size %d: %w", len(a), x, x.Size(), core.ErrBadInput)
	}
	return slices.Clone(a), nil
}

// Func is a law given as a function of time in seconds.
type Func func(t float64) float64

func (f Func) resolve(x *axis.Axis) ([]float64, error) {
	if f == nil {
		return nil, fmt.Errorf("sweep: nil function law: %w", core.ErrBadInput)
	}
	ts := x.Array()
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = f(t)
	}
	return out, nil
}

type relationLaw struct {
	r *relation.Relation[float64]
}

// FromRelation returns a law that resamples r onto the requested axis:
// linear inside r's domain and zero outside it.
func FromRelation(r relation.Sampled[float64]) (Law, error) {
	if r == nil {
		return nil, fmt.Errorf("sweep: nil relation law: %w", core.ErrBadInput)
	}
	if _, _, err := r.Base().Data(); err != nil {
		return nil, fmt.Errorf("sweep: relation law: %w", err)
	}
	return relationLaw{r: r.Base().Copy()}, nil
}

func (l relationLaw) resolve(x *axis.Axis) ([]float64, error) {
	out, err := l.r.InterpolateExtrapolate(x)
	if err != nil {
		return nil, fmt.Errorf("sweep: relation law: %w", err)
	}
	return out.Y(), nil
}

// Interpolated is a law through the points (Times[i], Values[i]). It is
// piecewise linear between them and holds the end values outside.
type Interpolated struct {
	Times  []float64
	Values []float64
}

// InterpolateRelation returns the Interpolated law through the samples of r.
func InterpolateRelation(r relation.Sampled[float64]) (Interpolated, error) {
	if r == nil {
		return Interpolated{}, fmt.Errorf("sweep: nil relation law: %w", core.ErrBadInput)
	}
	ts, ys, err := r.Base().Data()
	if err != nil {
		return Interpolated{}, fmt.Errorf("sweep: relation law: %w", err)
	}
	return Interpolated{Times: ts, Values: ys}, nil
}

func (l Interpolated) resolve(x *axis.Axis) ([]float64, error) {
	if len(l.Times) != len(l.Values) {
		return nil, fmt.Errorf("sweep: interpolated law has %d times and %d values: %w", len(l.Times), len(l.Values), core.ErrLengthMismatch)
	}

	ts := x.Array()
	out := make([]float64, len(ts))
	switch len(l.Times) {
	case 0:
		return nil, fmt.Errorf("sweep: empty interpolated law: %w", core.ErrBadInput)
	case 1:
		for i := range out {
			out[i] = l.Values[0]
		}
		return out, nil
	}
	for i := 1; i < len(l.Times); i++ {
		if !(l.Times[i] > l.Times[i-1]) {
			return nil, fmt.Errorf("sweep: interpolated law times not increasing at %d: %w", i, core.ErrBadInput)
		}
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(l.Times, l.Values); err != nil {
		return nil, fmt.Errorf("sweep: interpolated law: %w", err)
	}
	for i, t := range ts {
		out[i] = pl.Predict(t)
	}
	return out, nil
}
