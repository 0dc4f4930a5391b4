package codegen

import "errors"

// ErrIOFailure is returned when writing the emitted module fails.
var ErrIOFailure = errors.New("codegen: writing emitted module failed")
