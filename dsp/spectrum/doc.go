// Package spectrum provides helpers for complex frequency bins: magnitude,
// power, phase, polar reconstruction, phase unwrapping and group delay.
//
// The package does not transform anything itself; it works on bins produced
// by package fourier or any other FFT backend.
package spectrum
