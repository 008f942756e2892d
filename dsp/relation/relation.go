package relation

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-sweep/dsp/axis"
	"github.com/cwbudde/algo-sweep/dsp/core"
)

// Relation pairs a regular axis with a dependent array of the same length.
type Relation[T core.Number] struct {
	x *axis.Axis
	y []T
}

// Sampled is implemented by Relation and every type embedding it.
type Sampled[T core.Number] interface {
	Base() *Relation[T]
}

// New returns a relation over a copy of x holding a copy of y.
func New[T core.Number](x *axis.Axis, y []T) (*Relation[T], error) {
	if x == nil {
		return nil, fmt.Errorf("relation: nil axis: %w", ErrBadInput)
	}
	if err := x.Validate(); err != nil {
		return nil, fmt.Errorf("relation: %w", err)
	}
	if len(y) != x.Size() {
		return nil, fmt.Errorf("relation: %d values for axis of size %d: %w", len(y), x.Size(), ErrLengthMismatch)
	}

	return &Relation[T]{x: x.Copy(), y: slices.Clone(y)}, nil
}

// FromArrays infers the axis from the coordinates xs, see [axis.FromArray].
func FromArrays[T core.Number](xs []float64, y []T) (*Relation[T], error) {
	x, err := axis.FromArray(xs)
	if err != nil {
		return nil, fmt.Errorf("relation: %w", err)
	}
	return New(x, y)
}

// From builds a relation from an axis-like and an array-like value.
//
// x may be an *axis.Axis, a coordinate slice or any relation (its axis is
// copied). y may be a []T, a []float64 or []int promoted to T, or a
// relation of the same kind (its values are copied). Other kinds fail with
// ErrBadInput.
func From[T core.Number](x, y any) (*Relation[T], error) {
	var ax *axis.Axis
	switch v := x.(type) {
	case *axis.Axis:
		ax = v
	case []float64:
		a, err := axis.FromArray(v)
		if err != nil {
			return nil, fmt.Errorf("relation: %w", err)
		}
		ax = a
	case interface{ Axis() *axis.Axis }:
		ax = v.Axis()
	default:
		return nil, fmt.Errorf("relation: %T is not axis-like: %w", x, ErrBadInput)
	}

	var ys []T
	switch v := y.(type) {
	case []T:
		ys = v
	case []float64:
		ys = promote[T](v)
	case []int:
		f := make([]float64, len(v))
		for i, n := range v {
			f[i] = float64(n)
		}
		ys = promote[T](f)
	case Sampled[T]:
		b, err := base(v)
		if err != nil {
			return nil, err
		}
		ys = b.y
	default:
		return nil, fmt.Errorf("relation: %T is not array-like: %w", y, ErrBadInput)
	}

	return New(ax, ys)
}

// build wraps x and y without copying. Callers hand over ownership.
func build[T core.Number](x *axis.Axis, y []T) *Relation[T] {
	return &Relation[T]{x: x, y: y}
}

// Base returns r itself.
func (r *Relation[T]) Base() *Relation[T] { return r }

// Axis returns the owned axis. Mutating it moves the grid under y without
// resampling.
func (r *Relation[T]) Axis() *axis.Axis { return r.x }

// Y returns the owned dependent array.
func (r *Relation[T]) Y() []T { return r.y }

// SetY replaces the dependent array with a copy of y.
func (r *Relation[T]) SetY(y []T) error {
	if len(y) != r.x.Size() {
		return fmt.Errorf("relation: %d values for axis of size %d: %w", len(y), r.x.Size(), ErrLengthMismatch)
	}
	r.y = slices.Clone(y)
	return nil
}

// Start returns the first coordinate.
func (r *Relation[T]) Start() float64 { return r.x.Start() }

// End returns the last coordinate.
func (r *Relation[T]) End() float64 { return r.x.End() }

// Sample returns the axis step.
func (r *Relation[T]) Sample() float64 { return r.x.Sample() }

// Size returns the number of samples of the axis.
func (r *Relation[T]) Size() int { return r.x.Size() }

// SetStart moves the first coordinate of the owned axis.
func (r *Relation[T]) SetStart(v float64) { r.x.SetStart(v) }

// SetEnd moves the last coordinate of the owned axis.
func (r *Relation[T]) SetEnd(v float64) { r.x.SetEnd(v) }

// SetSample changes the step of the owned axis.
func (r *Relation[T]) SetSample(v float64) { r.x.SetSample(v) }

// Array returns a copy of the axis coordinates.
func (r *Relation[T]) Array() []float64 {
	return slices.Clone(r.x.Array())
}

// Data returns copies of the coordinates and values. It fails with
// ErrLengthMismatch when the axis was changed without updating y.
func (r *Relation[T]) Data() ([]float64, []T, error) {
	if err := r.check(); err != nil {
		return nil, nil, err
	}
	return slices.Clone(r.x.Array()), slices.Clone(r.y), nil
}

// Copy returns an independent copy.
func (r *Relation[T]) Copy() *Relation[T] {
	return build(r.x.Copy(), slices.Clone(r.y))
}

func (r *Relation[T]) String() string {
	return fmt.Sprintf("Relation%v(%d samples)", r.x, len(r.y))
}

func (r *Relation[T]) check() error {
	if r == nil || r.x == nil {
		return fmt.Errorf("relation: nil relation: %w", ErrBadInput)
	}
	if n := r.x.Size(); n != len(r.y) {
		return fmt.Errorf("relation: %d values for axis %v of size %d: %w", len(r.y), r.x, n, ErrLengthMismatch)
	}
	if err := r.x.Validate(); err != nil {
		return fmt.Errorf("relation: %w", err)
	}
	return nil
}

// base unwraps s, rejecting nil relations.
func base[T core.Number](s Sampled[T]) (*Relation[T], error) {
	if s == nil {
		return nil, fmt.Errorf("relation: nil operand: %w", ErrBadInput)
	}
	b := s.Base()
	if err := b.check(); err != nil {
		return nil, err
	}
	return b, nil
}

func fromFloat[T core.Number](f float64) T {
	var zero T
	switch any(zero).(type) {
	case complex128:
		return any(complex(f, 0)).(T)
	default:
		return any(f).(T)
	}
}

func promote[T core.Number](xs []float64) []T {
	out := make([]T, len(xs))
	for i, v := range xs {
		out[i] = fromFloat[T](v)
	}
	return out
}
