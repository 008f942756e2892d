package relation

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-sweep/internal/testutil"
)

func TestApplyScalar(t *testing.T) {
	r := mustRelation(t, mustAxis(t, 0, 0.2, 0.1), []float64{1, 2, 4})

	tests := []struct {
		name string
		op   Op
		rhs  any
		rev  bool
		want []float64
	}{
		{name: "add", op: OpAdd, rhs: 1.0, want: []float64{2, 3, 5}},
		{name: "sub int", op: OpSub, rhs: 1, want: []float64{0, 1, 3}},
		{name: "mul", op: OpMul, rhs: 0.5, want: []float64{0.5, 1, 2}},
		{name: "div", op: OpDiv, rhs: 2.0, want: []float64{0.5, 1, 2}},
		{name: "pow", op: OpPow, rhs: 2.0, want: []float64{1, 4, 16}},
		{name: "rsub", op: OpSub, rhs: 10.0, rev: true, want: []float64{9, 8, 6}},
		{name: "rdiv", op: OpDiv, rhs: 8, rev: true, want: []float64{8, 4, 2}},
		{name: "rpow", op: OpPow, rhs: 2.0, rev: true, want: []float64{2, 4, 16}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got *Relation[float64]
				err error
			)
			if tt.rev {
				got, err = r.ApplyFrom(tt.op, tt.rhs)
			} else {
				got, err = r.Apply(tt.op, tt.rhs)
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, got.Y(), tt.want, 1e-12)
			if !got.Axis().Equal(r.Axis()) {
				t.Errorf("axis changed to %v", got.Axis())
			}
		})
	}

	testutil.RequireSliceNearlyEqual(t, r.Y(), []float64{1, 2, 4}, 0)
}

func TestPowKeepsSign(t *testing.T) {
	r := mustRelation(t, mustAxis(t, 0, 0.3, 0.1), []float64{-4, 4, -9, 0})

	got, err := r.Pow(0.5)
	if err != nil {
		t.Fatalf("Pow: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got.Y(), []float64{-2, 2, -3, 0}, 1e-12)
	testutil.RequireFinite(t, got.Y())
}

func TestPowComplexKeepsPhase(t *testing.T) {
	c, err := New(mustAxis(t, 0, 0.1, 0.1), []complex128{-4, 3i})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := c.Pow(0.5)
	if err != nil {
		t.Fatalf("Pow: %v", err)
	}
	testutil.RequireComplexSliceNearlyEqual(t, got.Y(), []complex128{-2, complex(0, math.Sqrt(3))}, 1e-12)
}

func TestApplyArray(t *testing.T) {
	r := mustRelation(t, mustAxis(t, 0, 0.2, 0.1), []float64{1, 2, 3})

	got, err := r.Mul([]float64{2, 3, 4})
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got.Y(), []float64{2, 6, 12}, 0)

	if _, err := r.Add([]float64{1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("short array: expected ErrLengthMismatch, got %v", err)
	}
}

func TestApplyRejectsUnknownOperands(t *testing.T) {
	r := tens(t)

	for _, rhs := range []any{"str", nil, []string{"a"}, struct{}{}, float32(1)} {
		if _, err := r.Add(rhs); !errors.Is(err, ErrType) {
			t.Errorf("Add(%T): expected ErrType, got %v", rhs, err)
		}
	}
	if _, err := r.Apply(Op(42), 1.0); !errors.Is(err, ErrType) {
		t.Errorf("unknown op: expected ErrType, got %v", err)
	}

	c, err := From[complex128](r, r.Y())
	if err != nil {
		t.Fatalf("From: %v", err)
	}
	if _, err := r.Add(c); !errors.Is(err, ErrType) {
		t.Errorf("real + complex relation: expected ErrType, got %v", err)
	}
}

func TestApplyRelationsOnSameAxis(t *testing.T) {
	a := mustRelation(t, mustAxis(t, 0, 0.2, 0.1), []float64{1, 2, 3})
	b := mustRelation(t, mustAxis(t, 0, 0.2, 0.1), []float64{4, 5, 6})

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, sum.Y(), []float64{5, 7, 9}, 0)

	diff, err := a.ApplyFrom(OpSub, b)
	if err != nil {
		t.Fatalf("ApplyFrom: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, diff.Y(), []float64{3, 3, 3}, 0)
}

func TestApplyEqualizesDifferentAxes(t *testing.T) {
	a := mustRelation(t, mustAxis(t, 0, 1, 0.5), []float64{1, 1, 1})
	b := mustRelation(t, mustAxis(t, 0.5, 1.5, 0.25), []float64{2, 2, 2, 2, 2})

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sum.Start() != 0 || sum.End() != 1.5 || sum.Sample() != 0.25 {
		t.Fatalf("sum axis = %v, want [0, 1.5; 0.25]", sum.Axis())
	}
	want := []float64{1, 1, 3, 3, 3, 2, 2}
	testutil.RequireSliceNearlyEqual(t, sum.Y(), want, 1e-12)
}

func TestEqualize(t *testing.T) {
	a := mustRelation(t, mustAxis(t, 0, 1, 0.1), testutil.Ones(11))
	b := mustRelation(t, mustAxis(t, 0.5, 2, 0.05), testutil.Ones(31))

	ea, eb, err := a.Equalize(b)
	if err != nil {
		t.Fatalf("Equalize: %v", err)
	}
	if !ea.Axis().Equal(eb.Axis()) {
		t.Fatalf("axes differ: %v vs %v", ea.Axis(), eb.Axis())
	}
	if ea.Start() != 0 || ea.End() != 2 || ea.Sample() != 0.05 || ea.Size() != 41 {
		t.Fatalf("common axis = %v size %d", ea.Axis(), ea.Size())
	}

	for i, x := range ea.Array() {
		inA := x <= 1+1e-9
		inB := x >= 0.5-1e-9
		if (ea.Y()[i] == 1) != inA {
			t.Errorf("a(%g) = %g, inside=%v", x, ea.Y()[i], inA)
		}
		if (eb.Y()[i] == 1) != inB {
			t.Errorf("b(%g) = %g, inside=%v", x, eb.Y()[i], inB)
		}
	}
}

func TestEqualizeSameAxisCopies(t *testing.T) {
	a := tens(t)
	b := tens(t)

	ea, eb, err := a.Equalize(b)
	if err != nil {
		t.Fatalf("Equalize: %v", err)
	}
	ea.Y()[0] = -1
	eb.Y()[0] = -1
	if a.Y()[0] != 10 || b.Y()[0] != 10 {
		t.Error("Equalize returned aliases of its inputs")
	}
}

func TestCommonAxis(t *testing.T) {
	a := mustAxis(t, -1, 1, 0.5)
	b := mustAxis(t, 0, 3, 0.25)

	c, err := CommonAxis(a, b)
	if err != nil {
		t.Fatalf("CommonAxis: %v", err)
	}
	if c.Start() != -1 || c.End() != 3 || c.Sample() != 0.25 {
		t.Errorf("CommonAxis = %v", c)
	}
	if _, err := CommonAxis(a, nil); !errors.Is(err, ErrBadInput) {
		t.Errorf("nil axis: expected ErrBadInput, got %v", err)
	}
}

func TestEqualizeIncommensurateSteps(t *testing.T) {
	a := mustRelation(t, mustAxis(t, 0.1, 1.1, 0.5), testutil.Ones(3))
	b := mustRelation(t, mustAxis(t, 0, 0.9, 0.3), testutil.Ones(4))

	ea, eb, err := a.Equalize(b)
	if err != nil {
		t.Fatalf("Equalize: %v", err)
	}
	if !ea.Axis().Equal(eb.Axis()) || ea.Size() != eb.Size() {
		t.Fatalf("axes differ: %v vs %v", ea.Axis(), eb.Axis())
	}
	x := ea.Axis()
	if x.Start() != 0 || x.Sample() != 0.3 {
		t.Fatalf("common axis = %v, want start 0 step 0.3", x)
	}
	if x.End() > 1.1 || math.Abs(x.End()-0.9) > 1e-12 || x.Size() != 4 {
		t.Fatalf("common axis = %v, want end 0.9 with 4 points", x)
	}
	if last := x.Array()[x.Size()-1]; last > 1.1 {
		t.Fatalf("last grid point %g past both inputs", last)
	}
}

func TestOpString(t *testing.T) {
	if OpPow.String() != "pow" || Op(9).String() != "Op(9)" {
		t.Errorf("unexpected names %q %q", OpPow, Op(9))
	}
}
