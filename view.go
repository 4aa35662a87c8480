package segvec

import "iter"

// View is a read-only handle on a Vector.
//
// It exposes the lock-free read path only, so it can be handed to consumers
// that must not append. A View tracks its vector: Len grows as the owner
// appends.
type View[T any] struct {
	v *Vector[T]
}

// NewView returns a read-only view of v.
// It returns ErrNilVector if v is nil.
func NewView[T any](v *Vector[T]) (View[T], error) {
	if v == nil {
		return View[T]{}, ErrNilVector
	}
	return View[T]{v: v}, nil
}

// View returns a read-only view of v.
func (v *Vector[T]) View() View[T] {
	return View[T]{v: v}
}

// Len returns the number of elements that are safe to read.
func (w View[T]) Len() int {
	return w.v.Len()
}

// Get returns the element at index i.
func (w View[T]) Get(i int) (T, error) {
	return w.v.Get(i)
}

// All returns an iterator over index-value pairs, in order.
func (w View[T]) All() iter.Seq2[int, T] {
	return w.v.All()
}

// Values returns an iterator over the values, in order.
func (w View[T]) Values() iter.Seq[T] {
	return w.v.Values()
}

// Snapshot returns the prefix that is visible right now.
func (w View[T]) Snapshot() Snapshot[T] {
	return w.v.Snapshot()
}
