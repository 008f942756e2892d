// Package sweep builds excitation sweeps from a frequency law and an
// amplitude law.
//
// An [Uncalculated] sweep stores both laws and an optional default time axis.
// Nothing is sampled until [Uncalculated.Materialize] is called with a
// concrete axis; each call resolves the laws on that axis and returns an
// independent [relation.Sweep]:
//
//	u, _ := sweep.New(nil,
//	    sweep.LinearFrequency(0, 10, 1, 100),
//	    sweep.TukeyEnvelope(0.5, sweep.Both),
//	)
//	x, _ := axis.New(0, 10, 0.002)
//	sw, _ := u.Materialize(x)
//
// The waveform is a(t)*sin(2*pi*phi(t)) with phi the running integral of
// the frequency law from the first time sample. Function laws are
// integrated with Gauss-Legendre quadrature between grid points; sampled
// laws use the trapezoidal rule.
//
// [Deconvolve] recovers an impulse response from a recorded sweep response
// with a regularized inverse of the sweep spectrum.
package sweep
