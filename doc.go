// Package segvec provides a growable, append-only vector with lock-free reads.
//
// A Vector stores its elements in segments: fixed-size blocks that are
// allocated once and never resized, moved or removed. Growing the vector
// appends a new segment instead of copying the old ones, so any element a
// reader can see stays where it is forever.
//
// # Quick Start
//
//	v, _ := segvec.New[string](4) // first segment holds 2^4 elements
//	_ = v.Append("a")
//	_ = v.AppendSlice("b", "c")
//
//	s, _ := v.Get(1) // "b"
//	for i, s := range v.All() {
//	    fmt.Println(i, s)
//	}
//
// # Layout
//
// The first two segments hold 2^bitness elements each, and each later
// segment doubles:
//
//	segment   0      1      2        3        ...
//	capacity  2^b    2^b    2^(b+1)  2^(b+2)
//
// With this schedule the segment of index i >= 2^b is the position of its
// highest set bit minus (b-1), so Get is O(1) without searching segments.
//
// # Concurrency Model
//
// Writers (Append, AppendSlice, AppendSeq and their Context variants) are
// serialized by a single mutex. A batch is never interleaved with another
// writer's elements, but readers may see a prefix of it while it runs.
//
// Readers (Len, Get, All, Values, Backward, Snapshot) never lock and never
// block. Every element is written before the visible length that covers it
// is published with an atomic store, and readers load the length atomically
// before touching a segment.
//
// Iteration is a point-in-time prefix: a range loop snapshots Len when it
// starts and does not see later appends.
//
// # Resource Limits
//
// WithResourceController reserves the memory of every segment from a shared
// budget and can throttle append throughput. See package resource.
package segvec
