package interp

import (
	"math"

	"github.com/cwbudde/algo-sweep/dsp/core"
)

// edgeTolerance is the fraction of a step by which a query may overshoot the
// grid and still be clamped onto its boundary sample.
const edgeTolerance = 1e-9

// Linear2 interpolates between x0 and x1 at frac in [0,1].
func Linear2(frac, x0, x1 float64) float64 {
	return x0 + frac*(x1-x0)
}

// Linear2Complex is Linear2 for complex samples.
func Linear2Complex(frac float64, x0, x1 complex128) complex128 {
	return x0 + complex(frac, 0)*(x1-x0)
}

// Regular evaluates ys, sampled at start + i*step, at every query
// coordinate. Queries outside the grid get fill.
// step must be positive; an empty ys yields fill everywhere.
func Regular[T core.Number](ys []T, start, step float64, queries []float64, fill T) []T {
	out := make([]T, len(queries))

	switch y := any(ys).(type) {
	case []float64:
		o, f := any(out).([]float64), any(fill).(float64)
		for k, q := range queries {
			i, frac, ok := locate(len(y), start, step, q)
			switch {
			case !ok:
				o[k] = f
			case frac == 0:
				o[k] = y[i]
			default:
				o[k] = Linear2(frac, y[i], y[i+1])
			}
		}
	case []complex128:
		o, f := any(out).([]complex128), any(fill).(complex128)
		for k, q := range queries {
			i, frac, ok := locate(len(y), start, step, q)
			switch {
			case !ok:
				o[k] = f
			case frac == 0:
				o[k] = y[i]
			default:
				o[k] = Linear2Complex(frac, y[i], y[i+1])
			}
		}
	}

	return out
}

// locate maps q onto a grid of n points. It returns the left neighbour
// index and the fractional offset towards the right one. frac is zero on
// the last point.
func locate(n int, start, step, q float64) (i int, frac float64, ok bool) {
	if n == 0 || !(step > 0) || math.IsNaN(q) {
		return 0, 0, false
	}

	pos := (q - start) / step
	last := float64(n - 1)
	if pos < -edgeTolerance || pos > last+edgeTolerance {
		return 0, 0, false
	}

	pos = core.Clamp(pos, 0, last)
	base := math.Floor(pos)
	if base >= last {
		return n - 1, 0, true
	}

	return int(base), pos - base, true
}
