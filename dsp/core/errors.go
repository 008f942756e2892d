package core

import "errors"

// Error kinds shared by axis, relation and sweep packages.
var (
	// ErrLengthMismatch reports a dependent array whose length differs from
	// the size of its axis.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrBadInput reports a missing or degenerate argument: no axis, a
	// non-positive step, inverted bounds or a law of the wrong length.
	ErrBadInput = errors.New("bad input")

	// ErrType reports an operand of a kind that cannot be combined.
	ErrType = errors.New("unsupported operand type")

	// ErrConverting reports a failed domain conversion such as a transform
	// requested on malformed data.
	ErrConverting = errors.New("conversion failed")
)
