package segvec

import (
	"iter"
	"slices"
)

// Snapshot is a point-in-time prefix of a Vector.
//
// It pins the length observed when it was taken and never reflects later
// appends. Taking and reading a snapshot is lock-free.
type Snapshot[T any] struct {
	v *Vector[T]
	n int
}

// Snapshot returns the prefix of v that is visible right now.
func (v *Vector[T]) Snapshot() Snapshot[T] {
	return Snapshot[T]{v: v, n: v.Len()}
}

// Len returns the pinned length.
func (s Snapshot[T]) Len() int {
	return s.n
}

// Get returns the element at index i of the snapshot.
func (s Snapshot[T]) Get(i int) (T, error) {
	if i < 0 || i >= s.n {
		var zero T
		return zero, &ErrIndexOutOfRange{Index: i, Len: s.n}
	}
	seg, off := locate(s.v.bitness, uint64(i))
	return s.v.store.read(seg, off), nil
}

// All returns an iterator over index-value pairs of the snapshot, in order.
func (s Snapshot[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if s.v == nil {
			return
		}
		s.v.store.walk(s.n, yield)
	}
}

// Values returns an iterator over the values of the snapshot, in order.
func (s Snapshot[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.v == nil {
			return
		}
		s.v.store.walk(s.n, func(_ int, value T) bool {
			return yield(value)
		})
	}
}

// Backward returns an iterator over index-value pairs of the snapshot,
// from the last element to the first.
func (s Snapshot[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if s.v == nil {
			return
		}
		s.v.store.walkBackward(s.v.bitness, s.n, yield)
	}
}

// AppendTo appends the snapshot's elements to dst and returns the extended slice.
func (s Snapshot[T]) AppendTo(dst []T) []T {
	dst = slices.Grow(dst, s.n)
	for value := range s.Values() {
		dst = append(dst, value)
	}
	return dst
}
