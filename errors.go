package segvec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/segvec/resource"
)

var (
	// ErrInvalidConfig is matched by every construction-time configuration error.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrOutOfRange is matched by every out-of-bounds read.
	ErrOutOfRange = errors.New("index out of range")

	// ErrClosed is returned when appending to a closed vector.
	ErrClosed = errors.New("vector is closed")

	// ErrNilVector is returned when a view is created without a backing vector.
	ErrNilVector = errors.New("nil vector")

	// ErrMemoryLimitExceeded is returned when the resource controller refuses
	// the memory for a new segment.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded
)

// ErrInvalidBitness indicates an initial capacity exponent outside [1, MaxBitness].
//
// It matches ErrInvalidConfig via errors.Is.
type ErrInvalidBitness struct {
	Bitness int
}

func (e *ErrInvalidBitness) Error() string {
	return fmt.Sprintf("invalid bitness: %d (must be between 1 and %d)", e.Bitness, MaxBitness)
}

func (e *ErrInvalidBitness) Unwrap() error { return ErrInvalidConfig }

// ErrIndexOutOfRange indicates a read at or beyond the visible length.
//
// A larger index may become valid moments later if a writer appends
// concurrently; callers that want to wait for growth re-check Len and retry.
// It matches ErrOutOfRange via errors.Is.
type ErrIndexOutOfRange struct {
	Index int
	Len   int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d with length %d", e.Index, e.Len)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return ErrOutOfRange }
