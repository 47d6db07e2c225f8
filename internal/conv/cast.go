package conv

import (
	"fmt"
	"math"
)

// Unsigned is the set of integer widths usable as slot indices.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// MaxOf returns the largest value representable by U.
func MaxOf[U Unsigned]() U {
	return ^U(0)
}

// IntToUnsigned converts a non-negative int to U safely.
func IntToUnsigned[U Unsigned](v int) (U, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to %T (negative)", v, U(0))
	}
	u := U(v)
	if uint64(u) != uint64(v) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to %T (too large)", v, U(0))
	}
	return u, nil
}

// Uint64ToUnsigned converts uint64 to U safely.
func Uint64ToUnsigned[U Unsigned](v uint64) (U, error) {
	u := U(v)
	if uint64(u) != v {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to %T (too large)", v, U(0))
	}
	return u, nil
}

// UnsignedToInt converts U to int safely.
func UnsignedToInt[U Unsigned](v U) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}
