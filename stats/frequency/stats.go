// Package frequency computes shape statistics of amplitude spectra.
//
// Frequencies are read from the spectrum's own axis, so a band selected
// with [relation.Spectrum.SelectData] reports Hz values inside that band.
package frequency

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-sweep/dsp/relation"
)

// DefaultRolloff is the energy fraction used by [Calculate] for Rolloff.
const DefaultRolloff = 0.85

// Stats holds frequency-domain statistics computed from an amplitude
// spectrum.
type Stats struct {
	BinCount int
	Max      float64
	PeakFreq float64
	Energy   float64 // sum of squared amplitudes
	// Spectral shape descriptors
	Centroid  float64 // amplitude-weighted mean frequency (Hz)
	Spread    float64 // amplitude-weighted deviation around the centroid (Hz)
	Flatness  float64 // geometric over arithmetic mean, 0..1
	Rolloff   float64 // frequency below which 85% of the energy lies (Hz)
	Bandwidth float64 // 3 dB bandwidth around the peak (Hz)
	LowEdge   float64 // lower 3 dB point (Hz)
	HighEdge  float64 // upper 3 dB point (Hz)
}

// FromSpectrum computes the statistics of the amplitude of sp.
func FromSpectrum(sp *relation.Spectrum) (Stats, error) {
	amp, err := sp.AmpSpectrum()
	if err != nil {
		return Stats{}, err
	}
	return Calculate(amp)
}

// Calculate computes the statistics of an amplitude spectrum. Fewer than two
// bins yield zero shape descriptors.
func Calculate(amp relation.Sampled[float64]) (Stats, error) {
	freqs, mag, err := amp.Base().Data()
	if err != nil {
		return Stats{}, err
	}
	st := Stats{BinCount: len(mag)}
	if len(mag) < 2 {
		return st, nil
	}

	peak := floats.MaxIdx(mag)
	st.Max, st.PeakFreq = mag[peak], freqs[peak]
	st.Energy = floats.Dot(mag, mag)

	sum := floats.Sum(mag)
	if sum == 0 {
		return st, nil
	}
	st.Centroid = floats.Dot(freqs, mag) / sum
	st.Spread = spread(freqs, mag, st.Centroid, sum)
	st.Flatness = flatness(freqs, mag)
	st.Rolloff = rolloff(freqs, mag, DefaultRolloff, st.Energy)
	st.LowEdge, st.HighEdge = edges(freqs, mag, peak, st.Max/math.Sqrt2)
	st.Bandwidth = st.HighEdge - st.LowEdge

	return st, nil
}

// Rolloff returns the frequency below which the fraction percent (0..1) of
// the spectral energy lies.
func Rolloff(amp relation.Sampled[float64], percent float64) (float64, error) {
	freqs, mag, err := amp.Base().Data()
	if err != nil {
		return 0, err
	}
	if len(mag) < 2 {
		return 0, nil
	}
	return rolloff(freqs, mag, percent, floats.Dot(mag, mag)), nil
}

func spread(freqs, mag []float64, cent, sum float64) float64 {
	acc := 0.0
	for i, v := range mag {
		d := freqs[i] - cent
		acc += d * d * v
	}
	return math.Sqrt(acc / sum)
}

// flatness skips the DC bin. Any zero amplitude makes the geometric mean
// and therefore the flatness zero.
func flatness(freqs, mag []float64) float64 {
	if freqs[0] == 0 {
		mag = mag[1:]
	}
	mean := stat.Mean(mag, nil)
	if mean == 0 {
		return 0
	}
	for _, v := range mag {
		if v <= 0 {
			return 0
		}
	}
	return stat.GeometricMean(mag, nil) / mean
}

func rolloff(freqs, mag []float64, percent, total float64) float64 {
	if total == 0 {
		return 0
	}
	sq := make([]float64, len(mag))
	floats.MulTo(sq, mag, mag)
	floats.CumSum(sq, sq)

	threshold := percent * total
	for i, e := range sq {
		if e >= threshold {
			return freqs[i]
		}
	}
	return freqs[len(freqs)-1]
}

// edges walks outwards from the peak to the first bins at or below
// threshold and interpolates the crossing. A side that never drops stops at
// the outermost bin.
func edges(freqs, mag []float64, peak int, threshold float64) (lo, hi float64) {
	n := len(mag)
	lo, hi = freqs[0], freqs[n-1]
	for i := peak; i >= 1; i-- {
		if mag[i-1] <= threshold {
			lo = crossing(freqs[i-1], freqs[i], mag[i-1], mag[i], threshold)
			break
		}
	}
	for i := peak; i < n-1; i++ {
		if mag[i+1] <= threshold {
			hi = crossing(freqs[i], freqs[i+1], mag[i], mag[i+1], threshold)
			break
		}
	}
	return lo, hi
}

func crossing(f0, f1, m0, m1, threshold float64) float64 {
	d := m1 - m0
	if d == 0 {
		return (f0 + f1) / 2
	}
	return f0 + (threshold-m0)/d*(f1-f0)
}
