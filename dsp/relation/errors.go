package relation

import "github.com/cwbudde/algo-sweep/dsp/core"

// Error kinds returned by this package. They are the shared kinds of
// package core, so errors.Is works against either name.
var (
	ErrLengthMismatch = core.ErrLengthMismatch
	ErrBadInput       = core.ErrBadInput
	ErrType           = core.ErrType
	ErrConverting     = core.ErrConverting
)
