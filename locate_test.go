package segvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// locateByScan walks segment capacities to find the slot of i.
func locateByScan(bitness, i int) (int, int) {
	for k := 0; ; k++ {
		c := segmentCapacity(bitness, k)
		if i < c {
			return k, i
		}
		i -= c
	}
}

func TestLocate_MatchesScan(t *testing.T) {
	for bitness := 1; bitness <= 8; bitness++ {
		for i := 0; i < 1<<16; i++ {
			wantSeg, wantOff := locateByScan(bitness, i)
			seg, off := locate(bitness, uint64(i))
			if seg != wantSeg || off != wantOff {
				t.Fatalf("bitness=%d i=%d: got (%d,%d), want (%d,%d)", bitness, i, seg, off, wantSeg, wantOff)
			}
		}
	}
}

func TestLocate_Boundaries(t *testing.T) {
	tests := []struct {
		bitness int
		i       uint64
		seg     int
		off     int
	}{
		{1, 0, 0, 0},
		{1, 1, 0, 1},
		{1, 2, 1, 0},
		{1, 3, 1, 1},
		{1, 4, 2, 0},
		{1, 7, 2, 3},
		{1, 8, 3, 0},
		{4, 15, 0, 15},
		{4, 16, 1, 0},
		{4, 31, 1, 15},
		{4, 32, 2, 0},
		{4, 1024, 7, 0},
		{30, 1<<30 - 1, 0, 1<<30 - 1},
		{30, 1 << 30, 1, 0},
		{1, 1 << 62, 62, 0},
	}

	for _, tt := range tests {
		seg, off := locate(tt.bitness, tt.i)
		assert.Equal(t, tt.seg, seg, "bitness=%d i=%d", tt.bitness, tt.i)
		assert.Equal(t, tt.off, off, "bitness=%d i=%d", tt.bitness, tt.i)
	}
}

func TestSegmentCapacity_Schedule(t *testing.T) {
	for bitness := 1; bitness <= 10; bitness++ {
		require.Equal(t, 1<<bitness, segmentCapacity(bitness, 0))
		require.Equal(t, 1<<bitness, segmentCapacity(bitness, 1))

		// Segment k >= 1 starts at 2^(bitness+k-1).
		start := segmentCapacity(bitness, 0)
		for k := 1; k < 12; k++ {
			require.Equal(t, 1<<(bitness+k-1), start, "bitness=%d k=%d", bitness, k)
			if k > 1 {
				require.Equal(t, 2*segmentCapacity(bitness, k-1), segmentCapacity(bitness, k))
			}
			start += segmentCapacity(bitness, k)
		}
	}
}

func BenchmarkLocate(b *testing.B) {
	var sink int
	for i := 0; i < b.N; i++ {
		seg, off := locate(4, uint64(i))
		sink += seg + off
	}
	_ = sink
}
