// Package conv provides linear convolution and cross-correlation of real and
// complex sequences.
//
// Short inputs are convolved directly in the time domain; longer ones go
// through a zero-padded power-of-two FFT.
//
// # Usage
//
//	full, err := conv.Convolve(signal, kernel)        // len(a)+len(b)-1 samples
//	corr, err := conv.Correlate(a, b)                 // lag k-(len(b)-1) at index k
//	zc, err := conv.ConvolveComplex(spectrumA, spectrumB)
//
// # Correlation
//
// Correlate returns every overlap ("full" mode): index k of the result holds
// lag k-(len(b)-1). For complex input the second operand is conjugated:
//
//	corr, err := conv.Correlate(signal, template)
//	peakIdx, peakVal := conv.FindPeak(corr)
//	lag := conv.LagFromIndex(peakIdx, len(template))
package conv
