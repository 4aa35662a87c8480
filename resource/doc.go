// Package resource implements shared limits for segment memory and write throughput.
//
//	┌───────────────────────────────────────────────┐
//	│                  Controller                   │
//	├───────────────────────┬───────────────────────┤
//	│  Memory Limit         │  Append Rate Limiter  │
//	│  (weighted semaphore) │  (token bucket)       │
//	├───────────────────────┼───────────────────────┤
//	│  AcquireMemory        │  AcquireAppends       │
//	│  TryAcquireMemory     │                       │
//	│  ReleaseMemory        │                       │
//	│  MemoryUsage          │                       │
//	└───────────────────────┴───────────────────────┘
//
// A vector reserves the bytes of every new segment before allocating it and
// gives them back on Close:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20, // 64MB across all vectors sharing rc
//	    AppendsPerSec:    100_000,
//	})
//
//	v, _ := segvec.New[int](10, segvec.WithResourceController(rc))
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource
