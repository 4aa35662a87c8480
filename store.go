package segvec

import (
	"errors"
	"unsafe"

	"github.com/hupe1980/segvec/internal/conv"
	"github.com/hupe1980/segvec/resource"
)

// maxSegments bounds the segment table. Virtual indices fit in 63 bits and
// segment k >= 1 starts at 2^(bitness+k-1), so no index maps past 63.
const maxSegments = 64

var errSegmentTableFull = errors.New("segment table full")

// store owns the segments of a Vector.
//
// Segments are allocated once with a power-of-two capacity and never
// resized, moved or removed. Segment 0 and segment 1 both hold 2^bitness
// slots; from segment 1 on capacity doubles:
//
//	seg:   0        1        2          3
//	cap:   2^b      2^b      2^(b+1)    2^(b+2)
//	first: 0        2^b      2^(b+1)    2^(b+2)
//
// All fields except the segment contents are writer-only and guarded by the
// owning Vector's mutex. Readers only touch segments[k][off] for slots the
// visible length has already certified.
type store[T any] struct {
	segments    [maxSegments][]T
	count       int // allocated segments
	filled      int // used slots in segments[count-1]
	nextBitness int
	elemSize    uintptr
	reserved    int64 // bytes held from rc
	rc          *resource.Controller
}

func newStore[T any](bitness int, rc *resource.Controller) (*store[T], error) {
	var zero T
	s := &store[T]{
		nextBitness: bitness,
		elemSize:    unsafe.Sizeof(zero),
		rc:          rc,
	}
	if err := s.grow(1 << bitness); err != nil {
		return nil, err
	}
	return s, nil
}

// ensureCapacityForWrite appends a new segment when the current one is full.
// It reports whether a segment was added.
func (s *store[T]) ensureCapacityForWrite() (bool, error) {
	if s.filled < len(s.segments[s.count-1]) {
		return false, nil
	}
	if err := s.grow(1 << s.nextBitness); err != nil {
		return false, err
	}
	s.nextBitness++
	return true, nil
}

func (s *store[T]) grow(capacity int) error {
	if s.count == maxSegments {
		return errSegmentTableFull
	}

	bytes, err := conv.Bytes(capacity, s.elemSize)
	if err != nil {
		return err
	}
	if err := s.rc.TryAcquireMemory(bytes); err != nil {
		return err
	}
	s.reserved += bytes

	s.segments[s.count] = make([]T, capacity)
	s.count++
	s.filled = 0
	return nil
}

// tail returns the next unused slot. The caller must have called
// ensureCapacityForWrite first.
func (s *store[T]) tail() (int, int) {
	return s.count - 1, s.filled
}

func (s *store[T]) place(seg, off int, value T) {
	s.segments[seg][off] = value
	if seg == s.count-1 {
		s.filled = off + 1
	}
}

func (s *store[T]) read(seg, off int) T {
	return s.segments[seg][off]
}

// capacities returns the capacity of every allocated segment.
func (s *store[T]) capacities() []int {
	caps := make([]int, s.count)
	for k := range caps {
		caps[k] = len(s.segments[k])
	}
	return caps
}

// walk yields the first n elements in order, segment by segment.
func (s *store[T]) walk(n int, yield func(int, T) bool) {
	i := 0
	for k := 0; i < n; k++ {
		seg := s.segments[k]
		m := min(len(seg), n-i)
		for _, value := range seg[:m] {
			if !yield(i, value) {
				return
			}
			i++
		}
	}
}

// walkBackward yields the first n elements in reverse order.
func (s *store[T]) walkBackward(bitness, n int, yield func(int, T) bool) {
	if n == 0 {
		return
	}
	last, end := locate(bitness, uint64(n-1))
	i := n - 1
	for k := last; k >= 0; k-- {
		seg := s.segments[k]
		if k != last {
			end = len(seg) - 1
		}
		for off := end; off >= 0; off-- {
			if !yield(i, seg[off]) {
				return
			}
			i--
		}
	}
}
