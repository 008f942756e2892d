// Package time computes level statistics of sampled time-domain signals.
//
// Positions are reported on the signal's own time axis, so a sweep that
// starts at t = -0.5 s reports its peak at a physical time, not an index.
package time

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-sweep/dsp/core"
	"github.com/cwbudde/algo-sweep/dsp/relation"
)

// Stats holds time-domain signal statistics.
//
//nolint:revive
type Stats struct {
	Length         int
	Duration       float64 // last time - first time
	DC             float64 // mean
	RMS            float64
	RMS_dB         float64
	Max            float64
	MaxTime        float64
	Min            float64
	MinTime        float64
	Peak           float64 // max(|max|, |min|)
	Peak_dB        float64
	PeakTime       float64
	CrestFactor    float64 // peak / RMS (linear)
	CrestFactor_dB float64
	Energy         float64 // trapezoid integral of y^2 over time
	ZeroCrossings  int
	Variance       float64 // population variance
	Skewness       float64 // sample skewness, NaN below 3 samples
	Kurtosis       float64 // sample excess kurtosis, NaN below 4 samples
}

func emptyStats() Stats {
	inf := math.Inf(-1)
	return Stats{
		RMS_dB:         inf,
		Peak_dB:        inf,
		CrestFactor_dB: inf,
		Skewness:       math.NaN(),
		Kurtosis:       math.NaN(),
	}
}

// Calculate computes the statistics of s. An empty relation yields zero
// levels with -Inf decibel fields.
func Calculate(s relation.Sampled[float64]) (Stats, error) {
	ts, ys, err := s.Base().Data()
	if err != nil {
		return Stats{}, err
	}
	n := len(ys)
	if n == 0 {
		return emptyStats(), nil
	}

	st := emptyStats()
	st.Length = n
	st.Duration = ts[n-1] - ts[0]

	st.DC, st.Variance = stat.PopMeanVariance(ys, nil)
	if n >= 3 {
		st.Skewness = stat.Skew(ys, nil)
	}
	if n >= 4 {
		st.Kurtosis = stat.ExKurtosis(ys, nil)
	}

	hi, lo := floats.MaxIdx(ys), floats.MinIdx(ys)
	st.Max, st.MaxTime = ys[hi], ts[hi]
	st.Min, st.MinTime = ys[lo], ts[lo]
	st.Peak, st.PeakTime = st.Max, st.MaxTime
	if -st.Min > st.Max {
		st.Peak, st.PeakTime = -st.Min, st.MinTime
	}

	st.RMS = RMS(ys)
	st.RMS_dB = core.LinearToDB(st.RMS)
	st.Peak_dB = core.LinearToDB(st.Peak)
	if st.RMS > 0 {
		st.CrestFactor = st.Peak / st.RMS
		st.CrestFactor_dB = core.LinearToDB(st.CrestFactor)
	}

	if n >= 2 {
		sq := make([]float64, n)
		floats.MulTo(sq, ys, ys)
		st.Energy = integrate.Trapezoidal(ts, sq)
	}
	st.ZeroCrossings = ZeroCrossings(ys)

	return st, nil
}

// RMS returns the root mean square of the samples.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	return floats.Norm(samples, 2) / math.Sqrt(float64(len(samples)))
}

// ZeroCrossings counts strict sign changes between neighbouring samples.
// Exact zeros do not count as a crossing on either side.
func ZeroCrossings(samples []float64) int {
	count := 0
	for i := 1; i < len(samples); i++ {
		if samples[i-1]*samples[i] < 0 {
			count++
		}
	}
	return count
}
