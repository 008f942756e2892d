package spectrum

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-sweep/internal/testutil"
)

func TestMagnitudePhasePower(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	if len(mag) != len(bins) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(bins))
	}

	if math.Abs(mag[0]-5) > 1e-12 {
		t.Fatalf("Magnitude[0]=%f want=5", mag[0])
	}

	pow := Power(bins)
	if math.Abs(pow[0]-25) > 1e-12 {
		t.Fatalf("Power[0]=%f want=25", pow[0])
	}

	phase := Phase(bins)
	if math.Abs(phase[0]-math.Atan2(4, 3)) > 1e-12 {
		t.Fatalf("Phase[0]=%f mismatch", phase[0])
	}

	if Magnitude(nil) != nil || Power(nil) != nil || Phase(nil) != nil {
		t.Fatal("empty input must yield nil")
	}
}

func TestPolarInvertsMagnitudePhase(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 2i, -7}

	got, err := Polar(Magnitude(bins), Phase(bins))
	if err != nil {
		t.Fatalf("Polar error: %v", err)
	}
	testutil.RequireComplexSliceNearlyEqual(t, got, bins, 1e-12)

	if _, err := Polar([]float64{1}, nil); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestUnwrapPhase(t *testing.T) {
	in := []float64{2.8, -2.7, -2.6}

	out := UnwrapPhase(in)
	if len(out) != len(in) {
		t.Fatalf("unwrap length mismatch")
	}

	if math.Abs((out[1]-out[0])-(2*math.Pi-5.5)) > 1e-12 {
		t.Fatalf("unexpected unwrap delta: %f", out[1]-out[0])
	}
}

func TestGroupDelayConstantDelay(t *testing.T) {
	const (
		df    = 2.5
		delay = 0.125
	)

	phase := make([]float64, 64)
	bins := make([]complex128, len(phase))
	for k := range phase {
		f := df * float64(k)
		bins[k] = cmplx.Rect(1, -2*math.Pi*f*delay)
	}
	copy(phase, UnwrapPhase(Phase(bins)))

	gd, err := GroupDelay(phase, df)
	if err != nil {
		t.Fatalf("GroupDelay error: %v", err)
	}

	for i, v := range gd {
		if math.Abs(v-delay) > 1e-9 {
			t.Fatalf("gd[%d]=%f want=%f", i, v, delay)
		}
	}
}

func TestGroupDelayErrors(t *testing.T) {
	if _, err := GroupDelay([]float64{1}, 1); err == nil {
		t.Fatalf("expected error for short phase")
	}
	if _, err := GroupDelay([]float64{1, 2}, 0); err == nil {
		t.Fatalf("expected error for invalid frequency step")
	}
}
