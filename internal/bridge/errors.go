package bridge

import "errors"

// Sentinel errors for the poll loop.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrInvalidOptions is returned by New when a required collaborator
	// or bound is missing.
	ErrInvalidOptions = errors.New("bridge: invalid options")

	// ErrTooManyErrors is returned by Run when the consecutive
	// fetch/decode failure ceiling has been reached. The process should
	// exit with a non-zero status.
	ErrTooManyErrors = errors.New("bridge: too many consecutive errors")
)
