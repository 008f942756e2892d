package relation

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-sweep/dsp/axis"
	"github.com/cwbudde/algo-sweep/dsp/interp"
)

// At returns the sample nearest to x. It fails with ErrBadInput when no
// grid point lies within half a step of x.
func (r *Relation[T]) At(x float64) (float64, T, error) {
	var zero T
	if err := r.check(); err != nil {
		return 0, zero, err
	}

	idx, ok := r.x.Nearest(x)
	if !ok {
		return 0, zero, fmt.Errorf("relation: no sample within half a step of %g on %v: %w", x, r.x, ErrBadInput)
	}
	return r.x.Array()[idx], r.y[idx], nil
}

// Slice returns the samples with lo <= x < hi.
func (r *Relation[T]) Slice(lo, hi float64) (*Relation[T], error) {
	return r.sub(lo, hi, false)
}

// SelectData returns the samples with lo <= x <= hi.
func (r *Relation[T]) SelectData(lo, hi float64) (*Relation[T], error) {
	return r.sub(lo, hi, true)
}

func (r *Relation[T]) sub(lo, hi float64, closed bool) (*Relation[T], error) {
	if err := r.check(); err != nil {
		return nil, err
	}

	i0, i1 := r.x.IndexRange(lo, hi, closed)
	x, err := r.x.Sub(i0, i1)
	if err != nil {
		return nil, fmt.Errorf("relation: no samples in [%g, %g]: %w", lo, hi, err)
	}
	return build(x, slices.Clone(r.y[i0:i1])), nil
}

// Shift returns a copy positioned delta further along the axis. The values
// are not resampled.
func (r *Relation[T]) Shift(delta float64) *Relation[T] {
	return build(r.x.Shift(delta), slices.Clone(r.y))
}

// InterpolateExtrapolate resamples r onto x: linear inside r's domain and
// zero outside it.
func (r *Relation[T]) InterpolateExtrapolate(x *axis.Axis) (*Relation[T], error) {
	if x == nil {
		return nil, fmt.Errorf("relation: nil target axis: %w", ErrBadInput)
	}
	if err := x.Validate(); err != nil {
		return nil, fmt.Errorf("relation: %w", err)
	}
	if err := r.check(); err != nil {
		return nil, err
	}
	return r.resample(x.Copy()), nil
}

// resample evaluates r on x, which the result takes ownership of.
func (r *Relation[T]) resample(x *axis.Axis) *Relation[T] {
	var zero T
	ys := interp.Regular(r.y, r.x.Start(), r.x.ActualSample(), x.Array(), zero)
	return build(x, ys)
}

// Diff returns the forward difference divided by the step, placed on the
// half-step-shifted grid [start+sample/2, end-sample/2].
func (r *Relation[T]) Diff() (*Relation[T], error) {
	if err := r.needTwo("diff"); err != nil {
		return nil, err
	}

	s := r.x.Sample()
	x, err := axis.New(r.x.Start()+s/2, r.x.End()-s/2, s)
	if err != nil {
		return nil, fmt.Errorf("relation: diff: %w", err)
	}

	dx := fromFloat[T](s)
	out := make([]T, len(r.y)-1)
	for i := range out {
		out[i] = (r.y[i+1] - r.y[i]) / dx
	}
	return build(x, out), nil
}

// Integrate returns the cumulative trapezoidal integral on the grid
// [start+sample, end]. The zero first point is dropped.
func (r *Relation[T]) Integrate() (*Relation[T], error) {
	if err := r.needTwo("integrate"); err != nil {
		return nil, err
	}

	s := r.x.Sample()
	x, err := axis.New(r.x.Start()+s, r.x.End(), s)
	if err != nil {
		return nil, fmt.Errorf("relation: integrate: %w", err)
	}

	n := len(r.y)
	out := make([]T, n-1)
	if yf, ok := any(r.y).([]float64); ok {
		of := any(out).([]float64)
		vecmath.AddMulBlock(of, yf[:n-1], yf[1:], s/2)
		floats.CumSum(of, of)
		return build(x, out), nil
	}

	half := fromFloat[T](s / 2)
	var acc T
	for i := range out {
		acc += (r.y[i] + r.y[i+1]) * half
		out[i] = acc
	}
	return build(x, out), nil
}

// OneIntegrate returns the trapezoidal integral of y over the whole axis.
func (r *Relation[T]) OneIntegrate() (T, error) {
	var sum T
	if err := r.needTwo("integrate"); err != nil {
		return sum, err
	}

	if yf, ok := any(r.y).([]float64); ok {
		return any(integrate.Trapezoidal(r.x.Array(), yf)).(T), nil
	}

	xs := r.x.Array()
	for i := 1; i < len(r.y); i++ {
		sum += (r.y[i-1] + r.y[i]) * fromFloat[T]((xs[i]-xs[i-1])/2)
	}
	return sum, nil
}

func (r *Relation[T]) needTwo(what string) error {
	if err := r.check(); err != nil {
		return err
	}
	if len(r.y) < 2 {
		return fmt.Errorf("relation: %s needs at least 2 samples, got %d: %w", what, len(r.y), ErrBadInput)
	}
	return nil
}

// Exp returns e raised to every sample.
func (r *Relation[T]) Exp() (*Relation[T], error) {
	if err := r.check(); err != nil {
		return nil, err
	}

	out := make([]T, len(r.y))
	switch y := any(r.y).(type) {
	case []float64:
		o := any(out).([]float64)
		for i, v := range y {
			o[i] = math.Exp(v)
		}
	case []complex128:
		o := any(out).([]complex128)
		for i, v := range y {
			o[i] = cmplx.Exp(v)
		}
	}
	return build(r.x.Copy(), out), nil
}

// Max returns the largest sample. Complex samples are ordered by real part,
// then imaginary part.
func (r *Relation[T]) Max() (T, error) {
	return r.extreme(1)
}

// Min returns the smallest sample, ordered as in Max.
func (r *Relation[T]) Min() (T, error) {
	return r.extreme(-1)
}

func (r *Relation[T]) extreme(sign int) (T, error) {
	var zero T
	if err := r.check(); err != nil {
		return zero, err
	}

	switch y := any(r.y).(type) {
	case []float64:
		if sign > 0 {
			return any(floats.Max(y)).(T), nil
		}
		return any(floats.Min(y)).(T), nil
	case []complex128:
		best := y[0]
		for _, v := range y[1:] {
			if compareComplex(v, best) == sign {
				best = v
			}
		}
		return any(best).(T), nil
	}
	return zero, nil
}

func compareComplex(a, b complex128) int {
	switch {
	case real(a) > real(b), real(a) == real(b) && imag(a) > imag(b):
		return 1
	case a == b:
		return 0
	default:
		return -1
	}
}

// Norm returns the Euclidean norm of the samples, sqrt(sum |y|^2).
func (r *Relation[T]) Norm() (float64, error) {
	if err := r.check(); err != nil {
		return 0, err
	}

	switch y := any(r.y).(type) {
	case []float64:
		return math.Sqrt(vecmath.DotProduct(y, y)), nil
	case []complex128:
		sum := 0.0
		for _, v := range y {
			sum += real(v)*real(v) + imag(v)*imag(v)
		}
		return math.Sqrt(sum), nil
	}
	return 0, nil
}

// edgeTolerance mirrors the grid-noise tolerance used by package axis.
const edgeTolerance = 1e-9

// countNegative returns how many coordinates lie clearly below zero.
func countNegative(x *axis.Axis) int {
	limit := -edgeTolerance * x.Sample()
	k := 0
	for _, t := range x.Array() {
		if t < limit {
			k++
		}
	}
	return k
}
