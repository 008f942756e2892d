// Package window generates the tapering windows used by the sweep envelopes
// and the short-time Fourier transform.
//
// Windows are evaluated on the normalized position x = n/(N-1), or n/N for
// the periodic form used when framing FFT blocks.
//
// # Usage
//
//	w := window.Generate(window.TypeHann, 512, window.WithPeriodic())
//	taper, err := window.Tukey(1000, 0.1)
//	window.Apply(window.TypeBlackman, frame)
package window
