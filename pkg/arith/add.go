package arith

import (
	"fmt"
	"math"
)

// Add returns a + b, wrapping around on overflow.
func Add(a, b int32) int32 {
	return a + b
}

// AddChecked returns a + b, or ErrOverflow if the sum is outside the int32 range.
func AddChecked(a, b int32) (int32, error) {
	sum := int64(a) + int64(b)
	if sum > math.MaxInt32 || sum < math.MinInt32 {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return int32(sum), nil
}

// AddSaturating returns a + b clamped to [math.MinInt32, math.MaxInt32].
func AddSaturating(a, b int32) int32 {
	sum := int64(a) + int64(b)
	switch {
	case sum > math.MaxInt32:
		return math.MaxInt32
	case sum < math.MinInt32:
		return math.MinInt32
	}
	return int32(sum)
}
