package segvec

import "context"

// Close stops the vector from accepting appends and returns the segment
// memory reserved from the resource controller.
//
// Elements already appended stay readable; Get, Len and iteration keep
// working after Close. Appends return ErrClosed. Close is idempotent.
func (v *Vector[T]) Close() error {
	if v == nil {
		return nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return nil
	}
	v.closed = true

	released := v.store.reserved
	v.opts.resourceController.ReleaseMemory(released)
	v.store.reserved = 0

	v.opts.logger.LogClose(context.Background(), v.Len(), released)
	return nil
}
