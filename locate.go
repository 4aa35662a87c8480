package segvec

import "github.com/hupe1980/segvec/internal/log2"

// locate maps virtual index i to its segment and the offset within it.
//
// Indices below 2^bitness live in segment 0. Segment k >= 1 covers
// [2^(bitness+k-1), 2^(bitness+k)), so the highest set bit m of i picks the
// segment directly and i - 2^m is the offset.
func locate(bitness int, i uint64) (int, int) {
	if i < 1<<bitness {
		return 0, int(i)
	}
	m := log2.Floor(i)
	return m - (bitness - 1), int(i - 1<<m)
}

// segmentCapacity returns the capacity of segment k.
func segmentCapacity(bitness, k int) int {
	if k == 0 {
		return 1 << bitness
	}
	return 1 << (bitness + k - 1)
}
