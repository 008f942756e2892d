package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"
	"sync"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// split copies the real and imaginary parts of in into pooled scratch.
func split(in []complex128) (re, im []float64, buf *scratchBuf) {
	re, im, buf = getScratch(len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im, buf
}

// Magnitude returns |X[k]| for each complex bin.
// Scratch buffers are pooled, so in steady state this allocates only the
// output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := split(in)
	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each complex bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := split(in)
	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// Phase returns arg(X[k]) for each complex bin in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// Polar builds amp[k]*exp(i*phase[k]). Both slices must have equal length.
func Polar(amp, phase []float64) ([]complex128, error) {
	if len(amp) != len(phase) {
		return nil, fmt.Errorf("polar amp/phase length mismatch: %d != %d", len(amp), len(phase))
	}
	out := make([]complex128, len(amp))
	for i := range out {
		out[i] = cmplx.Rect(amp[i], phase[i])
	}
	return out, nil
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}

// GroupDelay computes group delay in seconds, -dphi/domega, from unwrapped
// phase sampled every df hertz. A centered difference is used for interior
// bins, with one-sided differences at the endpoints.
func GroupDelay(unwrapped []float64, df float64) ([]float64, error) {
	if len(unwrapped) < 2 {
		return nil, fmt.Errorf("group delay requires at least 2 phase points: %d", len(unwrapped))
	}
	if !(df > 0) || math.IsInf(df, 0) {
		return nil, fmt.Errorf("group delay frequency step must be > 0: %g", df)
	}

	dw := 2 * math.Pi * df
	out := make([]float64, len(unwrapped))
	for i := range unwrapped {
		var dphi float64
		switch i {
		case 0:
			dphi = unwrapped[1] - unwrapped[0]
		case len(unwrapped) - 1:
			dphi = unwrapped[i] - unwrapped[i-1]
		default:
			dphi = (unwrapped[i+1] - unwrapped[i-1]) / 2
		}
		out[i] = -dphi / dw
	}
	return out, nil
}
