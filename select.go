package segvec

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Select returns the indices of the snapshot's elements for which pred
// returns true.
func (s Snapshot[T]) Select(pred func(T) bool) *roaring64.Bitmap {
	bm := roaring64.New()
	for i, value := range s.All() {
		if pred(value) {
			bm.Add(uint64(i))
		}
	}
	bm.RunOptimize()
	return bm
}

// Gather returns an iterator over the elements at the indices in bm, in
// ascending index order. Indices at or beyond the snapshot's length are
// skipped.
func (s Snapshot[T]) Gather(bm *roaring64.Bitmap) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if bm == nil {
			return
		}
		it := bm.Iterator()
		for it.HasNext() {
			idx := it.Next()
			if idx >= uint64(s.n) {
				return
			}
			seg, off := locate(s.v.bitness, idx)
			if !yield(int(idx), s.v.store.read(seg, off)) {
				return
			}
		}
	}
}
