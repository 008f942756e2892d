package interp

import (
	"testing"

	"github.com/cwbudde/algo-sweep/internal/testutil"
)

func TestLinear2(t *testing.T) {
	if got := Linear2(0.25, 2, 4); got != 2.5 {
		t.Fatalf("Linear2 = %v, want 2.5", got)
	}
	if got := Linear2Complex(0.5, 0, 2+4i); got != 1+2i {
		t.Fatalf("Linear2Complex = %v, want 1+2i", got)
	}
}

func TestRegularInsideAndFill(t *testing.T) {
	ys := []float64{0, 10, 20, 30}
	queries := []float64{-1, 0, 0.5, 1.25, 3, 3.5}
	got := Regular(ys, 0, 1, queries, -7)
	want := []float64{-7, 0, 5, 12.5, 30, -7}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestRegularToleratesGridNoise(t *testing.T) {
	ys := []float64{1, 2, 3, 4, 5, 6}
	queries := []float64{-1e-17, 0.30000000000000004, 0.5 + 1e-16}
	got := Regular(ys, 0, 0.1, queries, 0)
	want := []float64{1, 4, 6}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
}

func TestRegularComplex(t *testing.T) {
	ys := []complex128{0, 2i, 2 + 2i}
	got := Regular(ys, 10, 2, []float64{11, 13, 15}, 0)
	want := []complex128{1i, 1 + 2i, 0}
	testutil.RequireComplexSliceNearlyEqual(t, got, want, 1e-12)
}

func TestRegularSinglePoint(t *testing.T) {
	got := Regular([]float64{9}, 1, 0.5, []float64{1, 1.2}, 0)
	testutil.RequireSliceNearlyEqual(t, got, []float64{9, 0}, 0)
}
