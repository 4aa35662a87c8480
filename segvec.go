package segvec

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sys/cpu"
)

// MaxBitness is the largest accepted initial capacity exponent.
// Segment 0 is allocated eagerly with 2^bitness slots.
const MaxBitness = 30

// Vector is a growable sequence with lock-free reads.
//
// Writers are serialized by a single mutex. Readers never lock: they load the
// published length and index straight into the segments, which are never
// resized or moved once allocated and whose slots are never overwritten.
//
// Thread safety: all methods are safe for concurrent use.
type Vector[T any] struct {
	bitness int
	opts    options

	mu     sync.Mutex
	store  *store[T]
	closed bool

	_ cpu.CacheLinePad
	// length is the visible length. It is stored only after the slot it
	// certifies has been written; readers must load it before touching any
	// segment.
	length atomic.Int64
	_      cpu.CacheLinePad
}

// New creates an empty Vector whose first segment holds 2^bitness elements.
func New[T any](bitness int, optFns ...Option) (*Vector[T], error) {
	if bitness < 1 || bitness > MaxBitness {
		return nil, &ErrInvalidBitness{Bitness: bitness}
	}

	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	s, err := newStore[T](bitness, o.resourceController)
	if err != nil {
		return nil, fmt.Errorf("allocate first segment: %w", err)
	}

	return &Vector[T]{
		bitness: bitness,
		opts:    o,
		store:   s,
	}, nil
}

// FromSlice creates a Vector holding a copy of values.
func FromSlice[T any](bitness int, values []T, optFns ...Option) (*Vector[T], error) {
	v, err := New[T](bitness, optFns...)
	if err != nil {
		return nil, err
	}
	if err := v.AppendSlice(values...); err != nil {
		return nil, err
	}
	return v, nil
}

// FromSeq creates a Vector holding the values produced by seq.
func FromSeq[T any](bitness int, seq iter.Seq[T], optFns ...Option) (*Vector[T], error) {
	return FromSlice(bitness, slices.Collect(seq), optFns...)
}

// Bitness returns the configured initial capacity exponent.
func (v *Vector[T]) Bitness() int {
	return v.bitness
}

// Len returns the number of elements that are safe to read.
func (v *Vector[T]) Len() int {
	return int(v.length.Load())
}

// Get returns the element at index i.
// It returns an *ErrIndexOutOfRange if i is not below Len at the time of the call.
func (v *Vector[T]) Get(i int) (T, error) {
	n := v.length.Load()
	if i < 0 || int64(i) >= n {
		var zero T
		return zero, &ErrIndexOutOfRange{Index: i, Len: int(n)}
	}
	seg, off := locate(v.bitness, uint64(i))
	return v.store.read(seg, off), nil
}

// Append adds value to the end of the vector.
func (v *Vector[T]) Append(value T) error {
	return v.AppendContext(context.Background(), value)
}

// AppendContext adds value to the end of the vector.
//
// ctx only bounds the wait for the append rate limit; once the element is
// being placed the call runs to completion.
func (v *Vector[T]) AppendContext(ctx context.Context, value T) error {
	if err := v.opts.resourceController.AcquireAppends(ctx, 1); err != nil {
		return err
	}

	start := time.Now()

	v.mu.Lock()
	err := v.appendLocked(ctx, value)
	v.mu.Unlock()

	v.opts.metricsCollector.RecordAppend(time.Since(start), err)
	return err
}

// AppendSlice adds values to the end of the vector, in order.
//
// The batch is atomic with respect to other writers but not to readers,
// which may observe any prefix of it while it is in progress. If an error
// stops the batch, the elements placed before it remain visible.
func (v *Vector[T]) AppendSlice(values ...T) error {
	return v.AppendSliceContext(context.Background(), values)
}

// AppendSliceContext is AppendSlice with a context bounding the rate limit wait.
func (v *Vector[T]) AppendSliceContext(ctx context.Context, values []T) error {
	if len(values) == 0 {
		return nil
	}
	if err := v.opts.resourceController.AcquireAppends(ctx, len(values)); err != nil {
		return err
	}

	start := time.Now()
	appended := 0

	v.mu.Lock()
	var err error
	for _, value := range values {
		if err = v.appendLocked(ctx, value); err != nil {
			break
		}
		appended++
	}
	v.mu.Unlock()

	v.opts.metricsCollector.RecordBatchAppend(len(values), appended, time.Since(start))
	v.opts.logger.LogBatchAppend(ctx, len(values), appended, err)
	return err
}

// AppendSeq adds the values produced by seq.
//
// seq is drained before the writer lock is taken, so it may read from v.
func (v *Vector[T]) AppendSeq(seq iter.Seq[T]) error {
	return v.AppendSliceContext(context.Background(), slices.Collect(seq))
}

func (v *Vector[T]) appendLocked(ctx context.Context, value T) error {
	if v.closed {
		return ErrClosed
	}

	grew, err := v.store.ensureCapacityForWrite()
	if err != nil {
		v.opts.logger.LogGrow(ctx, v.store.count, 1<<v.store.nextBitness, err)
		return fmt.Errorf("grow segment %d: %w", v.store.count, err)
	}

	seg, off := v.store.tail()
	if grew {
		v.opts.logger.LogGrow(ctx, seg, len(v.store.segments[seg]), nil)
		v.opts.metricsCollector.RecordGrow(seg, len(v.store.segments[seg]))
	}

	v.store.place(seg, off, value)

	// Publish only after the slot is written.
	v.length.Add(1)
	return nil
}

// Stats describes the layout of a Vector.
type Stats struct {
	Len      int // visible length
	Segments int // allocated segments
	Capacity int // total slots across all segments
	Bitness  int
}

// Stats returns the current layout.
func (v *Vector[T]) Stats() Stats {
	v.mu.Lock()
	defer v.mu.Unlock()

	capacity := 0
	for _, c := range v.store.capacities() {
		capacity += c
	}
	return Stats{
		Len:      v.Len(),
		Segments: v.store.count,
		Capacity: capacity,
		Bitness:  v.bitness,
	}
}

// SegmentCapacities returns the capacity of every allocated segment, in order.
func (v *Vector[T]) SegmentCapacities() []int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.store.capacities()
}
