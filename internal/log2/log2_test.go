package log2

import (
	"math"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloor_Zero(t *testing.T) {
	assert.Equal(t, Undefined, Floor(0))
}

func TestFloor_Boundaries(t *testing.T) {
	tests := []struct {
		x    uint64
		want int
	}{
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 2},
		{7, 2},
		{8, 3},
		{255, 7},
		{256, 8},
		{65535, 15},
		{65536, 16},
		{1<<24 - 1, 23},
		{1 << 24, 24},
		{1<<32 - 1, 31},
		{1 << 32, 32},
		{1<<40 + 12345, 40},
		{math.MaxUint64, 63},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Floor(tt.x), "x=%d", tt.x)
	}
}

func TestFloor_PowersOfTwo(t *testing.T) {
	for k := 0; k < 64; k++ {
		p := uint64(1) << k
		require.Equal(t, k, Floor(p), "2^%d", k)
		if k > 0 {
			require.Equal(t, k-1, Floor(p-1), "2^%d-1", k)
		}
	}
}

func TestFloor_Exhaustive16Bit(t *testing.T) {
	for x := uint64(1); x <= 1<<16; x++ {
		want := bits.Len64(x) - 1
		if got := Floor(x); got != want {
			t.Fatalf("Floor(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestFloor_MatchesMathLog2(t *testing.T) {
	// float64 is exact for integers below 2^53.
	for x := uint64(1); x < 1<<20; x = x*3 + 1 {
		assert.Equal(t, int(math.Floor(math.Log2(float64(x)))), Floor(x), "x=%d", x)
	}
}

func BenchmarkFloor(b *testing.B) {
	var sink int
	for i := 0; i < b.N; i++ {
		sink += Floor(uint64(i) | 1)
	}
	_ = sink
}
