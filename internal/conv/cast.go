package conv

import (
	"fmt"
	"math"
)

// IntToUint64 converts int to uint64 safely.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint64 (negative)", v)
	}
	return uint64(v), nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// Bytes returns n*size as an int64 byte count.
// It fails if n is negative or the product overflows int64.
func Bytes(n int, size uintptr) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("integer overflow: negative element count %d", n)
	}
	if n == 0 || size == 0 {
		return 0, nil
	}
	if uint64(size) > math.MaxInt64/uint64(n) {
		return 0, fmt.Errorf("integer overflow: %d elements of %d bytes exceed int64", n, size)
	}
	return int64(n) * int64(size), nil
}
