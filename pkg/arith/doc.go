// Package arith provides 32-bit integer addition with an explicit choice of
// overflow behaviour.
//
// [Add] is the function behind the exported "add" symbol and wraps on
// overflow using two's-complement arithmetic, so it never fails:
//
//	arith.Add(math.MaxInt32, 1) == math.MinInt32
//
// Callers that want overflow surfaced can use [AddChecked], which returns
// [ErrOverflow], or [AddSaturating], which clamps to the int32 range.
// [AddWithMode] selects one of the three by [OverflowMode].
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package arith
