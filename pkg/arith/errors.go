package arith

import "errors"

var (
	// ErrOverflow is returned by AddChecked when the sum does not fit in an int32.
	ErrOverflow = errors.New("arith: integer overflow")

	// ErrUnknownOverflowMode is returned when an overflow mode name is not recognised.
	ErrUnknownOverflowMode = errors.New("arith: unknown overflow mode")
)
