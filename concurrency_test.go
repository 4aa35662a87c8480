package segvec

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestConcurrent_WritersAndReaders(t *testing.T) {
	const perWriter = 20000

	v, err := New[int](1)
	require.NoError(t, err)

	var writersDone atomic.Bool
	writers, _ := errgroup.WithContext(context.Background())
	readers, _ := errgroup.WithContext(context.Background())

	// Writer A appends positive values, writer B negative ones; 0 is never
	// appended, so reading 0 means a slot was observed before it was written.
	writers.Go(func() error {
		for i := 1; i <= perWriter; i++ {
			if err := v.Append(i); err != nil {
				return err
			}
		}
		return nil
	})
	writers.Go(func() error {
		for i := 1; i <= perWriter; i++ {
			if err := v.Append(-i); err != nil {
				return err
			}
		}
		return nil
	})

	for r := 0; r < 4; r++ {
		readers.Go(func() error {
			for !writersDone.Load() {
				n := v.Len()
				if n == 0 {
					continue
				}
				x, err := v.Get(n - 1)
				if err != nil {
					return err
				}
				if x == 0 {
					t.Errorf("torn read at index %d", n-1)
				}
			}
			return nil
		})
	}

	require.NoError(t, writers.Wait())
	writersDone.Store(true)
	require.NoError(t, readers.Wait())

	require.Equal(t, 2*perWriter, v.Len())

	// Each writer's values appear in the order it appended them.
	nextPos, nextNeg := 1, -1
	for x := range v.Values() {
		switch {
		case x > 0:
			require.Equal(t, nextPos, x)
			nextPos++
		case x < 0:
			require.Equal(t, nextNeg, x)
			nextNeg--
		default:
			t.Fatal("unexpected zero value")
		}
	}
	assert.Equal(t, perWriter+1, nextPos)
	assert.Equal(t, -perWriter-1, nextNeg)
}

func TestConcurrent_BatchesNeverInterleave(t *testing.T) {
	const (
		writers   = 4
		batches   = 200
		batchSize = 16
	)

	v, err := New[int](2)
	require.NoError(t, err)

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < writers; w++ {
		g.Go(func() error {
			batch := make([]int, batchSize)
			for b := 0; b < batches; b++ {
				for i := range batch {
					batch[i] = w*1_000_000 + b*batchSize + i
				}
				if err := v.AppendSlice(batch...); err != nil {
					return err
				}
			}
			return nil
		})
	}

	// Iterators running alongside the writers only ever see a growing prefix.
	g.Go(func() error {
		last := 0
		for last < writers*batches*batchSize {
			s := v.Snapshot()
			assert.GreaterOrEqual(t, s.Len(), last)
			count := 0
			for range s.Values() {
				count++
			}
			assert.Equal(t, s.Len(), count)
			last = s.Len()
		}
		return nil
	})

	require.NoError(t, g.Wait())
	require.Equal(t, writers*batches*batchSize, v.Len())

	snap := v.Clone()
	for start := 0; start < len(snap); start += batchSize {
		first := snap[start]
		require.Zero(t, first%batchSize, "batch must start aligned")
		for i := 1; i < batchSize; i++ {
			require.Equal(t, first+i, snap[start+i], "batch starting at %d was interleaved", start)
		}
	}
}

func TestConcurrent_SnapshotsWhileGrowing(t *testing.T) {
	v, err := New[int](1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		for i := 0; i < 50000; i++ {
			if err := v.Append(i); err != nil {
				return err
			}
		}
		return nil
	})

	for r := 0; r < 2; r++ {
		g.Go(func() error {
			for ctx.Err() == nil {
				want := 0
				for i, x := range v.All() {
					if i != want || x != want {
						t.Errorf("got (%d,%d), want (%d,%d)", i, x, want, want)
						return nil
					}
					want++
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, 50000, v.Len())
}
