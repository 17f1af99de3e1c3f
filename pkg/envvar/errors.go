package envvar

import "errors"

var (
	// ErrNotSet is the panic value cause of MustGet for an unbound key.
	ErrNotSet = errors.New("environment variable is not set")

	// ErrInvalidEncoding is the panic value cause of MustGet when the bound
	// value is not valid UTF-8.
	ErrInvalidEncoding = errors.New("environment variable is not valid UTF-8")

	// ErrInvalidVariable is returned by MapSource for names or values the
	// platform would reject.
	ErrInvalidVariable = errors.New("invalid environment variable name or value")

	// ErrSet is joined with the source error when binding a key fails.
	ErrSet = errors.New("failed to set environment variable")

	// ErrUnset is joined with the source error when unbinding a key fails.
	ErrUnset = errors.New("failed to unset environment variable")
)
