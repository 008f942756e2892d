package relation

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sweep/dsp/core"
)

// Op is a binary elementwise operation.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	// OpPow raises with the sign of the base kept: sign(a)*|a|^b.
	OpPow
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpPow:
		return "pow"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Apply returns r op rhs. rhs may be a scalar (T, float64 or int), a []T of
// r's length ([]float64 is promoted for complex relations) or any relation
// of the same sample kind. Anything else fails with ErrType.
func (r *Relation[T]) Apply(op Op, rhs any) (*Relation[T], error) {
	return r.apply(op, rhs, false)
}

// ApplyFrom returns lhs op r, accepting the same operand kinds as Apply.
func (r *Relation[T]) ApplyFrom(op Op, lhs any) (*Relation[T], error) {
	return r.apply(op, lhs, true)
}

// Add returns r + rhs.
func (r *Relation[T]) Add(rhs any) (*Relation[T], error) { return r.apply(OpAdd, rhs, false) }

// Sub returns r - rhs.
func (r *Relation[T]) Sub(rhs any) (*Relation[T], error) { return r.apply(OpSub, rhs, false) }

// Mul returns r * rhs.
func (r *Relation[T]) Mul(rhs any) (*Relation[T], error) { return r.apply(OpMul, rhs, false) }

// Div returns r / rhs.
func (r *Relation[T]) Div(rhs any) (*Relation[T], error) { return r.apply(OpDiv, rhs, false) }

// Pow returns sign(r)*|r|^rhs.
func (r *Relation[T]) Pow(rhs any) (*Relation[T], error) { return r.apply(OpPow, rhs, false) }

func (r *Relation[T]) apply(op Op, other any, reversed bool) (*Relation[T], error) {
	if op < OpAdd || op > OpPow {
		return nil, fmt.Errorf("relation: unknown operation %v: %w", op, ErrType)
	}
	if err := r.check(); err != nil {
		return nil, err
	}

	switch v := other.(type) {
	case Sampled[T]:
		o, err := base(v)
		if err != nil {
			return nil, err
		}
		a, b := r, o
		if !r.x.Equal(o.x) {
			if a, b, err = equalize(r, o); err != nil {
				return nil, err
			}
		}
		return build(a.x.Copy(), elementwise(op, a.y, b.y, reversed)), nil
	case []T:
		return r.applyArray(op, v, reversed)
	case []float64:
		return r.applyArray(op, promote[T](v), reversed)
	}

	s, ok := scalarOf[T](other)
	if !ok {
		return nil, fmt.Errorf("relation: cannot %v %T: %w", op, other, ErrType)
	}

	out := make([]T, len(r.y))
	if op == OpMul {
		if yf, ok := any(r.y).([]float64); ok {
			vecmath.ScaleBlock(any(out).([]float64), yf, any(s).(float64))
			return build(r.x.Copy(), out), nil
		}
	}
	for i, v := range r.y {
		out[i] = evalOp(op, v, s, reversed)
	}
	return build(r.x.Copy(), out), nil
}

func (r *Relation[T]) applyArray(op Op, ys []T, reversed bool) (*Relation[T], error) {
	if len(ys) != len(r.y) {
		return nil, fmt.Errorf("relation: operand has %d values, want %d: %w", len(ys), len(r.y), ErrLengthMismatch)
	}
	return build(r.x.Copy(), elementwise(op, r.y, ys, reversed)), nil
}

func scalarOf[T core.Number](v any) (T, bool) {
	switch s := v.(type) {
	case T:
		return s, true
	case float64:
		return fromFloat[T](s), true
	case int:
		return fromFloat[T](float64(s)), true
	}
	var zero T
	return zero, false
}

// elementwise returns a op b (b op a when reversed) into a fresh slice.
func elementwise[T core.Number](op Op, a, b []T, reversed bool) []T {
	out := make([]T, len(a))

	if af, ok := any(a).([]float64); ok {
		bf, of := any(b).([]float64), any(out).([]float64)
		switch op {
		case OpAdd:
			vecmath.AddBlock(of, af, bf)
			return out
		case OpMul:
			vecmath.MulBlock(of, af, bf)
			return out
		}
	}

	for i := range out {
		out[i] = evalOp(op, a[i], b[i], reversed)
	}
	return out
}

func evalOp[T core.Number](op Op, a, b T, reversed bool) T {
	if reversed {
		a, b = b, a
	}

	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	default:
		return signedPow(a, b)
	}
}

func signedPow[T core.Number](a, b T) T {
	switch av := any(a).(type) {
	case float64:
		return any(core.SignedPow(av, any(b).(float64))).(T)
	case complex128:
		return any(core.SignedPowComplex(av, any(b).(complex128))).(T)
	}
	var zero T
	return zero
}
