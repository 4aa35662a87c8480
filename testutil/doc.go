// Package testutil provides testing utilities for segvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG and helpers for generating
// input sequences.
//
//	rng := testutil.NewRNG(seed)
//	values := rng.Ints(1000, 1<<20) // 1000 values in [0, 2^20)
//	perm := rng.Perm(64)
//	n := rng.Intn(100)
package testutil
