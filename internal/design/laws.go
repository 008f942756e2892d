package design

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/cwbudde/algo-sweep/dsp/sweep"
)

// Law kind names accepted in design files.
const (
	KindLinear   = "linear"
	KindLog      = "log"
	KindConstant = "constant"
	KindTukey    = "tukey"
	KindPoints   = "points"
	KindSamples  = "samples"
)

// Role says which side of a sweep a law kind may describe.
type Role int

const (
	RoleFrequency Role = 1 << iota
	RoleAmplitude
)

func (r Role) String() string {
	var parts []string
	if r&RoleFrequency != 0 {
		parts = append(parts, "frequency")
	}
	if r&RoleAmplitude != 0 {
		parts = append(parts, "amplitude")
	}
	return strings.Join(parts, ",")
}

// Kind documents one law kind.
type Kind struct {
	Name        string
	Roles       Role
	Params      string
	Description string
}

// Kinds lists every law kind in display order.
var Kinds = []Kind{
	{KindLinear, RoleFrequency | RoleAmplitude, "start, end", "straight line from start at the first sample to end at the last"},
	{KindLog, RoleFrequency, "start, end", "exponential rise, equal time per octave"},
	{KindConstant, RoleFrequency | RoleAmplitude, "value", "the same value everywhere"},
	{KindTukey, RoleAmplitude, "taper, location", "cosine tapers of taper seconds on both, left or right end"},
	{KindPoints, RoleFrequency | RoleAmplitude, "times, values", "piecewise linear through the points, end values held outside"},
	{KindSamples, RoleFrequency | RoleAmplitude, "values", "one value per time sample"},
}

// LookupKind returns the kind called name.
func LookupKind(name string) (Kind, bool) {
	i := slices.IndexFunc(Kinds, func(k Kind) bool { return k.Name == name })
	if i < 0 {
		return Kind{}, false
	}
	return Kinds[i], true
}

func (s LawSpec) law(role Role, t Time) (sweep.Law, error) {
	kind, ok := LookupKind(strings.ToLower(strings.TrimSpace(s.Law)))
	if !ok {
		return nil, fmt.Errorf("unknown law %q", s.Law)
	}
	if kind.Roles&role == 0 {
		return nil, fmt.Errorf("law %q cannot describe %v", kind.Name, role)
	}

	switch kind.Name {
	case KindLinear:
		return sweep.LinearFrequency(t.Start, t.End, s.Start, s.End)
	case KindLog:
		f, err := sweep.LogFrequency(s.Start, s.End, t.End-t.Start)
		if err != nil {
			return nil, err
		}
		t0 := t.Start
		return sweep.Func(func(x float64) float64 { return f(x - t0) }), nil
	case KindConstant:
		return sweep.Constant(s.Value), nil
	case KindTukey:
		loc := sweep.Both
		if s.Location != "" {
			var err error
			if loc, err = sweep.ParseLocation(s.Location); err != nil {
				return nil, err
			}
		}
		if s.Taper < 0 {
			return nil, fmt.Errorf("taper must be >= 0: %g", s.Taper)
		}
		return sweep.TukeyEnvelope(s.Taper, loc), nil
	case KindPoints:
		if len(s.Times) == 0 || len(s.Times) != len(s.Values) {
			return nil, fmt.Errorf("points law needs matching times and values, got %d and %d", len(s.Times), len(s.Values))
		}
		for i := 1; i < len(s.Times); i++ {
			if !(s.Times[i] > s.Times[i-1]) {
				return nil, fmt.Errorf("points law times must increase, %g follows %g", s.Times[i], s.Times[i-1])
			}
		}
		return sweep.Interpolated{Times: slices.Clone(s.Times), Values: slices.Clone(s.Values)}, nil
	default:
		if len(s.Values) == 0 {
			return nil, errors.New("samples law needs values")
		}
		return sweep.Array(slices.Clone(s.Values)), nil
	}
}
