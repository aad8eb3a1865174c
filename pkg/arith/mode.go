package arith

import (
	"fmt"
	"strings"
)

// OverflowMode selects how AddWithMode treats a sum outside the int32 range.
type OverflowMode string

const (
	// OverflowWrap wraps using two's-complement arithmetic (the default).
	OverflowWrap OverflowMode = "wrap"

	// OverflowChecked reports ErrOverflow.
	OverflowChecked OverflowMode = "checked"

	// OverflowSaturate clamps to the nearest representable value.
	OverflowSaturate OverflowMode = "saturate"
)

// String returns the mode name.
func (m OverflowMode) String() string {
	return string(m)
}

// ParseOverflowMode parses a mode name, case-insensitively.
// The empty string selects OverflowWrap.
func ParseOverflowMode(s string) (OverflowMode, error) {
	switch OverflowMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", OverflowWrap:
		return OverflowWrap, nil
	case OverflowChecked:
		return OverflowChecked, nil
	case OverflowSaturate:
		return OverflowSaturate, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOverflowMode, s)
	}
}

// AddWithMode adds a and b using the given overflow mode.
func AddWithMode(mode OverflowMode, a, b int32) (int32, error) {
	switch mode {
	case OverflowWrap, "":
		return Add(a, b), nil
	case OverflowChecked:
		return AddChecked(a, b)
	case OverflowSaturate:
		return AddSaturating(a, b), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOverflowMode, string(mode))
	}
}
