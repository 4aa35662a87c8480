package segvec

import "iter"

// All returns an iterator over index-value pairs, in order.
//
// Each range loop over the returned sequence snapshots Len when it starts and
// stops there; elements appended during the loop are not visited. Use
// Snapshot to pin one length across several loops.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		v.Snapshot().All()(yield)
	}
}

// Values returns an iterator over the values, in order.
// It follows the same snapshot rule as All.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		v.Snapshot().Values()(yield)
	}
}

// Backward returns an iterator over index-value pairs from the last visible
// element to the first. It follows the same snapshot rule as All.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		v.Snapshot().Backward()(yield)
	}
}

// Clone returns a copy of the visible elements as a plain slice.
func (v *Vector[T]) Clone() []T {
	return v.Snapshot().AppendTo(nil)
}
