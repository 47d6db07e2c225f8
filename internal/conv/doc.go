// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow
// when converting between Go's int (platform-dependent) and the fixed-width
// unsigned types an arena may choose for its indices.
//
// Use cases:
//   - Turning a slot count into the next index of an arena
//   - Turning an index back into a slice offset
//
// For conversions that are provably safe by domain constraints (e.g. an index
// already checked against a table length), use direct type casts instead to
// avoid overhead.
package conv
