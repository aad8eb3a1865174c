package wasmhost

import "errors"

var (
	// ErrMissingExport is returned when the module does not export a required function.
	ErrMissingExport = errors.New("wasmhost: missing export")

	// ErrSignatureMismatch is returned when an export has unexpected parameter or result types.
	ErrSignatureMismatch = errors.New("wasmhost: export signature mismatch")

	// ErrClosed is returned when calling into a closed Module.
	ErrClosed = errors.New("wasmhost: module closed")
)
