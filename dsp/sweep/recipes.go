package sweep

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sweep/dsp/axis"
	"github.com/cwbudde/algo-sweep/dsp/core"
	"github.com/cwbudde/algo-sweep/dsp/window"
)

// Constant returns the law that is v everywhere.
func Constant(v float64) Func {
	return func(float64) float64 { return v }
}

// LinearFrequency returns the frequency law on the line through (t0, f0)
// and (t1, f1).
func LinearFrequency(t0, t1, f0, f1 float64) (Func, error) {
	if t1 == t0 || math.IsNaN(t0) || math.IsNaN(t1) {
		return nil, fmt.Errorf("sweep: linear law needs two distinct times, got %g and %g: %w", t0, t1, core.ErrBadInput)
	}
	slope := (f1 - f0) / (t1 - t0)
	return func(t float64) float64 { return f0 + slope*(t-t0) }, nil
}

// LogFrequency returns the exponential frequency law rising from f0 at t = 0
// to f1 at t = duration, so every octave takes equal time:
//
//	f(t) = f0 * exp(t/duration * ln(f1/f0))
func LogFrequency(f0, f1, duration float64) (Func, error) {
	switch {
	case !(f0 > 0) || !(f1 > 0):
		return nil, fmt.Errorf("sweep: log law frequencies must be positive: %g, %g: %w", f0, f1, core.ErrBadInput)
	case !(duration > 0):
		return nil, fmt.Errorf("sweep: log law duration must be positive: %g: %w", duration, core.ErrBadInput)
	}
	rate := math.Log(f1/f0) / duration
	return func(t float64) float64 { return f0 * math.Exp(rate*t) }, nil
}

// Location selects which ends of an envelope are tapered.
type Location int

const (
	Both Location = iota
	Left
	Right
)

func (l Location) String() string {
	switch l {
	case Both:
		return "both"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Location(%d)", int(l))
	}
}

// ParseLocation maps "both", "left" or "right" to a Location.
func ParseLocation(s string) (Location, error) {
	for _, l := range []Location{Both, Left, Right} {
		if l.String() == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("sweep: unknown taper location %q: %w", s, core.ErrBadInput)
}

type tukeyEnvelope struct {
	taper    float64
	location Location
}

// TukeyEnvelope returns an amplitude law that rises from zero to one over
// the first taper seconds of the axis and falls back over the last taper
// seconds, on the ends selected by location. Durations count from the axis
// start, so shifting the axis leaves the envelope unchanged. A taper longer
// than half the axis gives a full Hann shape.
func TukeyEnvelope(taper float64, location Location) Law {
	return tukeyEnvelope{taper: taper, location: location}
}

func (e tukeyEnvelope) resolve(x *axis.Axis) ([]float64, error) {
	if e.taper < 0 || math.IsNaN(e.taper) {
		return nil, fmt.Errorf("sweep: taper must be >= 0: %g: %w", e.taper, core.ErrBadInput)
	}
	if e.location < Both || e.location > Right {
		return nil, fmt.Errorf("sweep: taper location %v: %w", e.location, core.ErrBadInput)
	}

	ts := x.Array()
	n := len(ts)
	if n < 2 {
		return ones(n), nil
	}

	// Taper lengths are measured from the axis start.
	limit := e.taper + axis.SpacingTolerance*x.Sample()
	alpha := 1.0
	if limit <= ts[n/2]-ts[0] {
		count := 0
		for _, t := range ts {
			if t-ts[0] <= limit {
				count++
			}
		}
		alpha = math.Min(float64(count)*2/float64(n), 1)
	}

	w, err := window.Tukey(n, alpha)
	if err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}
	if e.location == Both {
		return w, nil
	}

	copy(w[n/2:], ones(n-n/2))
	if e.location == Right {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			w[i], w[j] = w[j], w[i]
		}
	}
	return w, nil
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
