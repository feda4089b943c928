// Package arena implements a fixed-capacity bump allocator (memory arena) for Go.
//
// # Overview
//
// An arena reserves one buffer up front and satisfies each request by
// moving a cursor through it. Allocation is a bounds check and an add;
// nothing is ever freed individually. Two variants are provided:
//
//   - Arena starts at the low end of its buffer and grows upward
//   - BackwardArena starts at the high end and grows downward
//
// Both implement Allocator and accept the same request sequences: a
// sequence that fits in one fits in the other.
//
// # Basic Usage
//
//	a := arena.NewArena(4096)
//
//	// Allocate typed values (contents are not initialized)
//	n := arena.Alloc[int64](a)
//	if n == nil {
//		// arena is full
//	}
//	*n = 42
//
//	// Allocate several values at once
//	xs := arena.AllocSlice[float64](a, 16)
//
//	// Raw bytes
//	buf := a.AllocBytes(128)
//
// # Release
//
// Release takes no argument. It decrements a live-allocation counter, and
// only when the counter reaches zero does the cursor return to its origin.
// Releasing in any order before the last one has no physical effect: the
// memory stays readable and writable. Once the counter hits zero every
// pointer handed out earlier is invalid at the same moment. The arena does
// not detect double release or use after reset.
//
// # Capacity
//
// The capacity is fixed at construction. When a request (plus any
// alignment padding) does not fit, typed helpers return nil and TryAlloc
// returns ErrNoSpace. A failed request never changes the arena.
//
// # Important Notes
//
//   - Not goroutine-safe; serialize access externally
//   - Values must not contain Go pointers, the collector does not scan arena memory
//   - Memory is not zeroed unless using AllocZeroed or AllocSliceZeroed
//   - Every allocation is aligned for its element type
//
// # Metrics
//
//	s := a.Stats()
//	fmt.Printf("Utilization: %.2f%%\n", s.Utilization*100)
//	fmt.Printf("Peak: %d bytes\n", s.Peak)
package arena
