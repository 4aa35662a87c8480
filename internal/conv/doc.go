// Package conv provides checked integer conversions.
//
// These helpers guard the few places where sizes cross between Go's
// platform-dependent int, unsigned widths and the int64 byte counts used by
// the memory budget.
//
// For conversions that are provably safe by construction (loop indices,
// offsets already bounded by the visible length), use direct casts instead.
package conv
