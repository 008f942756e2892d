package relation

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sweep/dsp/axis"
	"github.com/cwbudde/algo-sweep/dsp/conv"
	"github.com/cwbudde/algo-sweep/dsp/core"
)

// CommonAxis returns the grid covering both a and b at the finer step: the
// smaller start and the smaller sample. The end is the larger end when the
// span is a whole number of steps, otherwise the last step below it, so the
// grid never reaches past either input.
func CommonAxis(a, b *axis.Axis) (*axis.Axis, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("relation: nil axis: %w", ErrBadInput)
	}
	lo := math.Min(a.Start(), b.Start())
	hi := math.Max(a.End(), b.End())
	step := math.Min(a.Sample(), b.Sample())

	end := hi
	if step > 0 {
		n := math.Floor((hi-lo)/step + axis.SpacingTolerance)
		if reach := lo + n*step; math.Abs(reach-hi) > axis.SpacingTolerance*step {
			end = reach
		}
	}

	ax, err := axis.New(lo, end, step)
	if err != nil {
		return nil, fmt.Errorf("relation: common axis: %w", err)
	}
	return ax, nil
}

// Equalize resamples r and other onto their common axis. Points outside a
// relation's own domain become zero.
func (r *Relation[T]) Equalize(other Sampled[T]) (*Relation[T], *Relation[T], error) {
	if err := r.check(); err != nil {
		return nil, nil, err
	}
	o, err := base(other)
	if err != nil {
		return nil, nil, err
	}
	return equalize(r, o)
}

func equalize[T core.Number](a, b *Relation[T]) (*Relation[T], *Relation[T], error) {
	if a.x.Equal(b.x) {
		return a.Copy(), build(a.x.Copy(), append([]T(nil), b.y...)), nil
	}

	ax, err := CommonAxis(a.x, b.x)
	if err != nil {
		return nil, nil, err
	}
	return a.resample(ax), b.resample(ax.Copy()), nil
}

// Correlate returns the cross-correlation of r with other. Both are moved to
// start at zero and equalized first. The lag axis runs from -end to end at
// the common step, where end is that of the equalized r.
func (r *Relation[T]) Correlate(other Sampled[T]) (*Relation[T], error) {
	return r.lagOp(other, "correlate", conv.Correlate, conv.CorrelateComplex)
}

// Convolve returns the linear convolution of r with other on the same lag
// axis as Correlate.
func (r *Relation[T]) Convolve(other Sampled[T]) (*Relation[T], error) {
	return r.lagOp(other, "convolve", conv.Convolve, conv.ConvolveComplex)
}

func (r *Relation[T]) lagOp(
	other Sampled[T],
	name string,
	floatOp func(a, b []float64) ([]float64, error),
	complexOp func(a, b []complex128) ([]complex128, error),
) (*Relation[T], error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	o, err := base(other)
	if err != nil {
		return nil, err
	}

	a, b, err := equalize(r.Shift(-r.Start()), o.Shift(-o.Start()))
	if err != nil {
		return nil, err
	}

	x, err := axis.New(-a.End(), a.End(), a.Sample())
	if err != nil {
		return nil, fmt.Errorf("relation: %s: %w", name, err)
	}

	var out []T
	switch ay := any(a.y).(type) {
	case []float64:
		res, err := floatOp(ay, any(b.y).([]float64))
		if err != nil {
			return nil, fmt.Errorf("relation: %s: %w", name, err)
		}
		out = any(res).([]T)
	case []complex128:
		res, err := complexOp(ay, any(b.y).([]complex128))
		if err != nil {
			return nil, fmt.Errorf("relation: %s: %w", name, err)
		}
		out = any(res).([]T)
	}

	if len(out) != x.Size() {
		return nil, fmt.Errorf("relation: %s produced %d values for axis of size %d: %w", name, len(out), x.Size(), ErrLengthMismatch)
	}
	return build(x, out), nil
}
