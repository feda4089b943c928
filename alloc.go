package arena

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"
)

// ErrNoSpace is returned when an allocation does not fit in the space left
// in an arena.
var ErrNoSpace = errors.New("arena: no space left")

// Allocator is the behaviour shared by Arena and BackwardArena.
type Allocator interface {
	Allocate(size, align uintptr) unsafe.Pointer
	AllocBytes(n int) []byte
	Release()
	Capacity() int
	Allocations() int
	Used() int
	Remaining() int
	Peak() int
	Direction() Direction
}

var (
	_ Allocator = (*Arena)(nil)
	_ Allocator = (*BackwardArena)(nil)
)

// Alloc returns a pointer to an uninitialized T inside the arena, or nil if
// there is no room. T must not contain Go pointers: the garbage collector
// does not scan arena memory.
func Alloc[T any](a Allocator) *T {
	return AllocN[T](a, 1)
}

// AllocN reserves n contiguous values of T and returns a pointer to the
// first one. It returns nil if n < 1 or the arena has no room.
func AllocN[T any](a Allocator, n int) *T {
	if n < 1 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	if size != 0 && uintptr(n) > ^uintptr(0)/size {
		return nil
	}
	return (*T)(a.Allocate(size*uintptr(n), unsafe.Alignof(zero)))
}

// AllocZeroed is like Alloc but clears the memory first.
func AllocZeroed[T any](a Allocator) *T {
	p := Alloc[T](a)
	if p != nil {
		var zero T
		*p = zero
	}
	return p
}

// AllocSlice allocates a slice of n elements of type T inside the arena.
// The elements are not initialized. Returns nil if n <= 0 or there is no room.
func AllocSlice[T any](a Allocator, n int) []T {
	p := AllocN[T](a, n)
	if p == nil {
		return nil
	}
	return unsafe.Slice(p, n)
}

// AllocSliceZeroed allocates a slice of n elements of type T with zeroed memory.
func AllocSliceZeroed[T any](a Allocator, n int) []T {
	s := AllocSlice[T](a, n)
	clear(s)
	return s
}

// TryAlloc is Alloc with an explicit error: it returns ErrNoSpace when the
// value does not fit.
func TryAlloc[T any](a Allocator) (*T, error) {
	p := Alloc[T](a)
	if p == nil {
		var zero T
		return nil, fmt.Errorf("%w: need %d bytes, %d remaining",
			ErrNoSpace, unsafe.Sizeof(zero), a.Remaining())
	}
	return p, nil
}

// PtrAndKeepAlive returns t and calls runtime.KeepAlive on the arena.
// This keeps the backing buffer reachable while t is used from unsafe code.
func PtrAndKeepAlive[T any](a Allocator, t *T) *T {
	runtime.KeepAlive(a)
	return t
}
