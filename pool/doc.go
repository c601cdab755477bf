// Package pool
// Author: momentics <momentics@gmail.com>
//
// Generational tuple pool: a bounded arena of fixed-shape records with an
// intrusive LIFO free list, explicit Free, and compaction-free Grow.
// Designed for workloads that churn large numbers of small homogeneous
// records and want them off the garbage collector's books.
//
// Three implementations of api.Pool compose as decorators:
//
//   - Pool: the unchecked core. Validates only what protects its own
//     structure (range and liveness); it does not detect stale generations.
//   - Checked: validates every handle in full and classifies misuse
//     (null, stale, out-of-range) into deterministic errors.
//   - Debug: invariant passes around mutating calls plus a bounded call
//     trace, both toggleable at runtime through a control.DebugOptions
//     handle the caller owns.
//
// Production code runs the bare core (or its Unsafe accessors) for speed
// and is expected to be exercised under Checked/Debug during development.
// No pool is goroutine-safe; callers serialize access.
package pool
