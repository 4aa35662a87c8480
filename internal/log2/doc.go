// Package log2 computes the floor of the base-2 logarithm of unsigned integers.
//
// Floor resolves a value with a 256-entry byte table instead of a general
// logarithm: it finds the highest non-zero byte, most significant first, and
// adds that byte's bit offset to the table entry for it.
//
//	log2.Floor(1)    // 0
//	log2.Floor(7)    // 2
//	log2.Floor(8)    // 3
//	log2.Floor(0)    // log2.Undefined
package log2
