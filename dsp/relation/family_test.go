package relation

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-sweep/dsp/window"
	"github.com/cwbudde/algo-sweep/internal/testutil"
)

func TestCorrelateWithImpulse(t *testing.T) {
	x := mustAxis(t, 0, 0.9, 0.1)
	y := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	sig, err := NewSweep(x, y)
	if err != nil {
		t.Fatalf("NewSweep: %v", err)
	}
	imp, err := NewSignal(x, testutil.Impulse(10, 0))
	if err != nil {
		t.Fatalf("NewSignal: %v", err)
	}

	corr, err := sig.Correlate(imp)
	if err != nil {
		t.Fatalf("Correlate: %v", err)
	}
	if corr.Size() != 19 || len(corr.Y()) != 19 {
		t.Fatalf("correlation has %d samples, want 19", corr.Size())
	}
	if math.Abs(corr.Start()+0.9) > 1e-12 || math.Abs(corr.End()-0.9) > 1e-12 {
		t.Errorf("lag axis = %v, want [-0.9, 0.9]", corr.Axis())
	}
	testutil.RequireSliceNearlyEqual(t, corr.Y()[:9], make([]float64, 9), 1e-12)
	testutil.RequireSliceNearlyEqual(t, corr.Y()[9:], y, 1e-12)

	lag0, v, err := corr.At(0)
	if err != nil || math.Abs(lag0) > 1e-12 || v != 1 {
		t.Errorf("At(0) = (%g, %g, %v), want (0, 1)", lag0, v, err)
	}
}

func TestCorrelateIgnoresStart(t *testing.T) {
	a, err := NewSignal(mustAxis(t, 0, 0.4, 0.1), []float64{0, 1, 0, 0, 0})
	if err != nil {
		t.Fatalf("NewSignal: %v", err)
	}
	b := a.Shift(10)

	corr, err := a.Correlate(b)
	if err != nil {
		t.Fatalf("Correlate: %v", err)
	}
	idx, peak := 0, corr.Y()[0]
	for i, v := range corr.Y() {
		if v > peak {
			idx, peak = i, v
		}
	}
	if idx != 4 || peak != 1 {
		t.Errorf("peak at %d = %g, want index 4 (zero lag)", idx, peak)
	}
}

func TestConvolveSweep(t *testing.T) {
	x := mustAxis(t, 0, 0.2, 0.1)
	a, err := NewSweep(x, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("NewSweep: %v", err)
	}
	b, err := NewSignal(x, []float64{1, 1, 1})
	if err != nil {
		t.Fatalf("NewSignal: %v", err)
	}

	c, err := a.Convolve(b)
	if err != nil {
		t.Fatalf("Convolve: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, c.Y(), []float64{1, 3, 6, 5, 3}, 1e-12)
}

func TestCorrelateComplex(t *testing.T) {
	x := mustAxis(t, 0, 2, 1)
	sp, err := NewSpectrum(x, []complex128{1i, 0, 0})
	if err != nil {
		t.Fatalf("NewSpectrum: %v", err)
	}
	c, err := sp.Correlate(sp)
	if err != nil {
		t.Fatalf("Correlate: %v", err)
	}
	testutil.RequireComplexSliceNearlyEqual(t, c.Y(), []complex128{0, 0, 1, 0, 0}, 1e-12)
}

func TestSweepKeepsKind(t *testing.T) {
	sw, err := NewSweep(mustAxis(t, 0, 0.5, 0.1), []float64{10, 20, 30, 40, 50, 60})
	if err != nil {
		t.Fatalf("NewSweep: %v", err)
	}
	sig, err := NewSignal(mustAxis(t, 0, 0.5, 0.1), testutil.Ones(6))
	if err != nil {
		t.Fatalf("NewSignal: %v", err)
	}

	var out *Sweep
	if out, err = sw.Add(sig); err != nil {
		t.Fatalf("Add: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out.Y(), []float64{11, 21, 31, 41, 51, 61}, 0)

	if out, err = sw.ApplyFrom(OpSub, 100.0); err != nil {
		t.Fatalf("ApplyFrom: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out.Y(), []float64{90, 80, 70, 60, 50, 40}, 0)

	if out, err = sw.Slice(0.1, 0.3); err != nil {
		t.Fatalf("Slice: %v", err)
	}
	if out.Size() != 2 {
		t.Errorf("Slice size = %d", out.Size())
	}

	if out, err = sw.Integrate(); err != nil {
		t.Fatalf("Integrate: %v", err)
	}
	if out, err = out.Diff(); err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if out.Shift(0).Size() != 4 {
		t.Errorf("Integrate/Diff size = %d", out.Size())
	}

	if _, err := sw.Mul("x"); !errors.Is(err, ErrType) {
		t.Errorf("Mul(string): expected ErrType, got %v", err)
	}
}

func TestSignalOf(t *testing.T) {
	r := tens(t)
	sig, err := SignalOf(r)
	if err != nil {
		t.Fatalf("SignalOf: %v", err)
	}
	sig.Y()[0] = -1
	if r.Y()[0] != 10 {
		t.Error("SignalOf aliases its input")
	}

	sw, err := SweepOf(sig)
	if err != nil {
		t.Fatalf("SweepOf: %v", err)
	}
	if sw.Y()[0] != -1 {
		t.Errorf("SweepOf value = %g", sw.Y()[0])
	}
	if _, err := SignalOf(nil); !errors.Is(err, ErrBadInput) {
		t.Errorf("nil: expected ErrBadInput, got %v", err)
	}
}

func TestNilFamilyOperands(t *testing.T) {
	x := mustAxis(t, 0, 0.2, 0.1)
	sig, err := NewSignal(x, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("NewSignal: %v", err)
	}
	spec, err := NewSpectrum(x, []complex128{1, 2, 3})
	if err != nil {
		t.Fatalf("NewSpectrum: %v", err)
	}

	var (
		nilSignal   *Signal
		nilSweep    *Sweep
		nilSpectrum *Spectrum
	)
	if _, err := sig.Add(nilSignal); !errors.Is(err, ErrBadInput) {
		t.Errorf("Add(nil *Signal): expected ErrBadInput, got %v", err)
	}
	if _, err := sig.Mul(nilSweep); !errors.Is(err, ErrBadInput) {
		t.Errorf("Mul(nil *Sweep): expected ErrBadInput, got %v", err)
	}
	if _, err := spec.Sub(nilSpectrum); !errors.Is(err, ErrBadInput) {
		t.Errorf("Sub(nil *Spectrum): expected ErrBadInput, got %v", err)
	}
	if _, _, err := sig.Equalize(nilSweep); !errors.Is(err, ErrBadInput) {
		t.Errorf("Equalize(nil *Sweep): expected ErrBadInput, got %v", err)
	}
	if _, err := sig.Correlate(nilSignal); !errors.Is(err, ErrBadInput) {
		t.Errorf("Correlate(nil *Signal): expected ErrBadInput, got %v", err)
	}
	if _, err := SignalOf(nilSweep); !errors.Is(err, ErrBadInput) {
		t.Errorf("SignalOf(nil *Sweep): expected ErrBadInput, got %v", err)
	}
	if _, err := From[float64](x, nilSignal); !errors.Is(err, ErrBadInput) {
		t.Errorf("From(nil *Signal): expected ErrBadInput, got %v", err)
	}
}

func TestSTFTLocatesTone(t *testing.T) {
	const fs = 1000.0
	y := testutil.DeterministicSine(125, fs, 1, 2048)
	sig, err := NewSignal(mustAxis(t, 0, 2.047, 1/fs), y)
	if err != nil {
		t.Fatalf("NewSignal: %v", err)
	}

	spg, err := STFT(sig, WithSegment(256), WithOverlap(128))
	if err != nil {
		t.Fatalf("STFT: %v", err)
	}
	if err := spg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if spg.Time.Size() != 15 || spg.Frequency.Size() != 129 {
		t.Fatalf("spectrogram is %d x %d", spg.Frequency.Size(), spg.Time.Size())
	}
	if math.Abs(spg.Frequency.Sample()-fs/256) > 1e-9 {
		t.Errorf("frequency step = %g", spg.Frequency.Sample())
	}

	for f := range spg.Time.Size() {
		best := 0
		for k := range spg.Matrix {
			if spg.Matrix[k][f] > spg.Matrix[best][f] {
				best = k
			}
		}
		if best != 32 {
			t.Fatalf("frame %d peaks at bin %d, want 32", f, best)
		}
		if v := spg.Matrix[32][f]; math.Abs(v-0.5) > 0.05 {
			t.Errorf("frame %d amplitude = %g, want ~0.5", f, v)
		}
	}
}

func TestSTFTOptions(t *testing.T) {
	sig, err := NewSignal(mustAxis(t, 0, 0.99, 0.01), testutil.Ones(100))
	if err != nil {
		t.Fatalf("NewSignal: %v", err)
	}

	spg, err := STFT(sig, WithWindow(window.TypeHann))
	if err != nil {
		t.Fatalf("STFT: %v", err)
	}
	if spg.Time.Size() != 1 || spg.Frequency.Size() != 51 {
		t.Errorf("spectrogram is %d x %d, want 51 x 1", spg.Frequency.Size(), spg.Time.Size())
	}
	if math.Abs(spg.Matrix[0][0]-1) > 1e-9 {
		t.Errorf("DC magnitude = %g, want 1", spg.Matrix[0][0])
	}

	if _, err := STFT(sig, WithSegment(10), WithOverlap(10)); !errors.Is(err, ErrBadInput) {
		t.Errorf("overlap >= segment: expected ErrBadInput, got %v", err)
	}
	if _, err := STFT(sig, WithSegment(1)); !errors.Is(err, ErrBadInput) {
		t.Errorf("segment 1: expected ErrBadInput, got %v", err)
	}
}

func TestSpectrogramValidate(t *testing.T) {
	spg := &Spectrogram{
		Time:      mustAxis(t, 0, 1, 0.5),
		Frequency: mustAxis(t, 0, 10, 10),
		Matrix:    [][]float64{{1, 2, 3}, {4, 5}},
	}
	if err := spg.Validate(); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}
