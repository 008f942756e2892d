// Package core holds the numeric helpers and error kinds shared by the
// sampled-function packages of algo-sweep.
//
// The four error kinds are sentinel values. Packages wrap them with
// context, so callers classify failures with [errors.Is]:
//
//	if errors.Is(err, core.ErrLengthMismatch) {
//		// y no longer matches the axis
//	}
package core
