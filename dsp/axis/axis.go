package axis

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-sweep/dsp/core"
)

// SpacingTolerance is the relative difference below which two steps are
// considered equal.
const SpacingTolerance = 1e-6

// sampleDigits is the number of significant digits kept for inferred steps.
const sampleDigits = 12

// edgeTolerance widens range lookups by this fraction of a step so grid
// points carrying rounding noise still match their nominal coordinate.
const edgeTolerance = 1e-9

// Axis is a regular sampling grid from start to end with a fixed step.
// The zero value is not usable; create axes with New or FromArray.
type Axis struct {
	start  float64
	end    float64
	sample float64

	array []float64
}

// New returns the grid [start, end] with step sample.
// When end is not reachable from start by a whole number of steps it is
// moved to the nearest reachable point.
func New(start, end, sample float64) (*Axis, error) {
	a := &Axis{start: start, end: end, sample: sample}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	reach := a.ActualEnd()
	if math.Abs(reach-end) > SpacingTolerance*sample {
		a.end = reach
	}

	return a, nil
}

// FromArray infers a grid from increasing coordinates. start is the first
// element and the step is the modal spacing rounded to twelve significant
// digits. end is start+(len(xs)-1)*step, so the grid keeps one point per
// coordinate even when the spacing is uneven.
func FromArray(xs []float64) (*Axis, error) {
	if len(xs) < 2 {
		return nil, fmt.Errorf("axis: need at least 2 coordinates, got %d: %w", len(xs), core.ErrBadInput)
	}

	steps := make([]float64, len(xs)-1)
	for i := range steps {
		d := xs[i+1] - xs[i]
		if !(d > 0) || math.IsInf(d, 0) {
			return nil, fmt.Errorf("axis: coordinates must be strictly increasing at index %d: %w", i+1, core.ErrBadInput)
		}
		steps[i] = d
	}

	a := &Axis{
		start:  xs[0],
		end:    xs[len(xs)-1],
		sample: core.RoundSignificant(modalStep(steps), sampleDigits),
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	reach := a.start + float64(len(xs)-1)*a.sample
	if math.Abs(reach-a.end) > SpacingTolerance*a.sample {
		a.end = reach
	}

	return a, nil
}

// modalStep groups steps within SpacingTolerance of each other and returns
// the mean of the largest group. Ties go to the smaller step.
func modalStep(steps []float64) float64 {
	sorted := append([]float64(nil), steps...)
	sort.Float64s(sorted)

	bestSum, bestCount := 0.0, 0
	ref, sum, count := sorted[0], 0.0, 0
	for _, d := range sorted {
		if d-ref > SpacingTolerance*ref {
			if count > bestCount {
				bestSum, bestCount = sum, count
			}
			ref, sum, count = d, 0, 0
		}
		sum += d
		count++
	}
	if count > bestCount {
		bestSum, bestCount = sum, count
	}

	return bestSum / float64(bestCount)
}

// Validate reports whether the grid is usable: finite bounds, a positive
// finite step and end not before start.
func (a *Axis) Validate() error {
	switch {
	case math.IsNaN(a.start) || math.IsInf(a.start, 0) || math.IsNaN(a.end) || math.IsInf(a.end, 0):
		return fmt.Errorf("axis: bounds must be finite: [%g, %g]: %w", a.start, a.end, core.ErrBadInput)
	case !(a.sample > 0) || math.IsInf(a.sample, 0):
		return fmt.Errorf("axis: sample must be > 0 and finite: %g: %w", a.sample, core.ErrBadInput)
	case a.end < a.start:
		return fmt.Errorf("axis: end %g before start %g: %w", a.end, a.start, core.ErrBadInput)
	}
	return nil
}

// Start returns the first coordinate.
func (a *Axis) Start() float64 { return a.start }

// End returns the nominal last coordinate.
func (a *Axis) End() float64 { return a.end }

// Sample returns the nominal step.
func (a *Axis) Sample() float64 { return a.sample }

// Size returns the number of grid points. It is 0 while the axis is invalid,
// for example between two setter calls that temporarily invert the bounds.
func (a *Axis) Size() int {
	if !(a.sample > 0) {
		return 0
	}
	q := math.Round((a.end - a.start) / a.sample)
	if math.IsNaN(q) || math.IsInf(q, 0) || q < 0 {
		return 0
	}
	return int(q) + 1
}

// ActualSample returns the spacing of the materialized coordinates, which
// differs from Sample when end is not a whole number of steps from start.
func (a *Axis) ActualSample() float64 {
	n := a.Size()
	if n < 2 {
		return a.sample
	}
	return (a.end - a.start) / float64(n-1)
}

// ActualEnd returns the last point reachable from start by whole steps.
func (a *Axis) ActualEnd() float64 {
	n := a.Size()
	if n == 0 {
		return a.start
	}
	return a.start + float64(n-1)*a.sample
}

// Array returns the grid coordinates, Size values from Start to End
// inclusive. The slice is cached and shared; callers must not modify it.
func (a *Axis) Array() []float64 {
	n := a.Size()
	if a.array != nil && len(a.array) == n {
		return a.array
	}

	arr := make([]float64, n)
	switch n {
	case 0:
	case 1:
		arr[0] = a.start
	default:
		floats.Span(arr, a.start, a.end)
		arr[n-1] = a.end
	}
	a.array = arr

	return arr
}

// SetStart moves the first coordinate. The cached coordinates are dropped.
func (a *Axis) SetStart(v float64) {
	a.start = v
	a.array = nil
}

// SetEnd moves the last coordinate. The cached coordinates are dropped.
func (a *Axis) SetEnd(v float64) {
	a.end = v
	a.array = nil
}

// SetSample changes the step. The cached coordinates are dropped.
func (a *Axis) SetSample(v float64) {
	a.sample = v
	a.array = nil
}

// Copy returns an independent axis with the same bounds.
func (a *Axis) Copy() *Axis {
	return &Axis{start: a.start, end: a.end, sample: a.sample}
}

// Shift returns a copy moved by delta.
func (a *Axis) Shift(delta float64) *Axis {
	return &Axis{start: a.start + delta, end: a.end + delta, sample: a.sample}
}

// Equal reports whether both axes describe the same grid. Bounds are
// compared within SpacingTolerance of the finer step, steps within
// SpacingTolerance relative.
func (a *Axis) Equal(b *Axis) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !core.NearlyEqual(a.sample, b.sample, SpacingTolerance) {
		return false
	}

	tol := SpacingTolerance * math.Min(a.sample, b.sample)
	return math.Abs(a.start-b.start) <= tol && math.Abs(a.end-b.end) <= tol
}

// Nearest returns the index of the grid point closest to x. ok is false when
// that point is more than half a step away. Ties resolve to the lower index.
func (a *Axis) Nearest(x float64) (idx int, ok bool) {
	arr := a.Array()
	if len(arr) == 0 {
		return -1, false
	}

	idx = floats.NearestIdx(arr, x)
	limit := a.sample / 2 * (1 + edgeTolerance)
	return idx, math.Abs(arr[idx]-x) <= limit
}

// IndexRange returns the half-open index range [i0, i1) of grid points with
// lo <= x < hi, or lo <= x <= hi when closed is set.
func (a *Axis) IndexRange(lo, hi float64, closed bool) (i0, i1 int) {
	arr := a.Array()
	eps := edgeTolerance * a.sample

	i0 = sort.SearchFloat64s(arr, lo-eps)
	if closed {
		i1 = sort.Search(len(arr), func(i int) bool { return arr[i] > hi+eps })
	} else {
		i1 = sort.SearchFloat64s(arr, hi-eps)
	}
	if i1 < i0 {
		i1 = i0
	}

	return i0, i1
}

// Sub returns the grid made of points [i0, i1) of a.
func (a *Axis) Sub(i0, i1 int) (*Axis, error) {
	n := a.Size()
	if i0 < 0 || i1 > n || i1 <= i0 {
		return nil, fmt.Errorf("axis: empty index range [%d, %d) of %d points: %w", i0, i1, n, core.ErrBadInput)
	}

	arr := a.Array()
	return &Axis{start: arr[i0], end: arr[i1-1], sample: a.sample}, nil
}

// String formats the axis as [start, end; sample].
func (a *Axis) String() string {
	return fmt.Sprintf("[%g, %g; %g]", a.start, a.end, a.sample)
}
