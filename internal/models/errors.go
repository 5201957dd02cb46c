package models

import "errors"

// ErrPotNotFound is the request-level failure for an unknown pot id. It is
// distinct from the protocol status codes: an unknown pot is an error, a
// teapot refusing coffee is not.
var ErrPotNotFound = errors.New("pot not found")
