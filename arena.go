// Package arena implements a fixed-capacity bump allocator (memory arena).
// Allocations advance a cursor through one pre-reserved buffer; memory is
// reclaimed only in aggregate, when the last live allocation is released.
package arena

import "unsafe"

// DefaultCapacity is the capacity used when NewArena is given a
// non-positive size (1 MiB).
const DefaultCapacity = 1 << 20

// maxAlign is the strictest alignment any Go scalar type requires.
const maxAlign = 8

// Direction is the way an arena's cursor moves on allocation.
type Direction int

const (
	// Forward arenas start at the low end and grow toward higher addresses.
	Forward Direction = iota
	// Backward arenas start at the high end and grow toward lower addresses.
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "unknown"
	}
}

// region is the state both arena variants share: the backing buffer, the
// live allocation count and the high-water mark.
type region struct {
	buf  []byte
	live int
	peak int
}

// newRegion reserves capacity bytes. When alignEnd is false the first byte
// is maxAlign-aligned, otherwise the byte just past the end is. Either way
// offsets measured from the origin map to equally aligned addresses.
func newRegion(capacity int, alignEnd bool) region {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	words := make([]uint64, (capacity+maxAlign-1)/maxAlign)
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), len(words)*maxAlign)
	if alignEnd {
		return region{buf: raw[len(raw)-capacity:]}
	}
	return region{buf: raw[:capacity:capacity]}
}

// release drops one live allocation and reports whether that was the last.
func (r *region) release() bool {
	if r.live == 0 {
		return false
	}
	r.live--
	return r.live == 0
}

func (r *region) track(used int) {
	r.live++
	if used > r.peak {
		r.peak = used
	}
}

// Arena is a forward-growing, fixed-capacity bump allocator.
// Not goroutine-safe; callers must serialize access.
type Arena struct {
	region
	offset uintptr // next free byte, measured from buf[0]
}

// NewArena creates a forward Arena holding capacity bytes.
// If capacity <= 0, DefaultCapacity is used.
func NewArena(capacity int) *Arena {
	return &Arena{region: newRegion(capacity, false)}
}

// Allocate reserves size bytes aligned to align and returns a pointer to the
// first of them, or nil if the remaining space (after alignment padding) is
// too small. The memory is not initialized.
//
// align must be a power of two no larger than 8; size is rounded up to a
// multiple of align. A zero size always succeeds and returns a shared
// sentinel address outside the buffer that must not be written through.
func (a *Arena) Allocate(size, align uintptr) unsafe.Pointer {
	checkAlign(align)
	if size == 0 {
		a.track(a.Used())
		return unsafe.Pointer(&zerobase)
	}
	if size > uintptr(len(a.buf)) {
		return nil
	}
	size = alignUp(size, align)
	off := alignUp(a.offset, align)
	if off > uintptr(len(a.buf)) || size > uintptr(len(a.buf))-off {
		return nil
	}
	a.offset = off + size
	a.track(a.Used())
	return unsafe.Pointer(&a.buf[off])
}

// AllocBytes returns n bytes carved from the arena, or nil if n <= 0 or the
// arena has no room left.
func (a *Arena) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	p := a.Allocate(uintptr(n), 1)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

// Release marks one allocation as no longer in use. Nothing is reclaimed
// until the live count reaches zero; at that point the cursor returns to
// the start of the buffer and every outstanding allocation is invalid.
// Calling Release with no live allocations does nothing.
func (a *Arena) Release() {
	if a.release() {
		a.offset = 0
	}
}

// Capacity returns the size of the backing buffer in bytes.
func (a *Arena) Capacity() int { return len(a.buf) }

// Allocations returns the number of allocations not yet released.
func (a *Arena) Allocations() int { return a.live }

// Used returns the number of bytes between the origin and the cursor,
// alignment padding included.
func (a *Arena) Used() int { return int(a.offset) }

// Remaining returns the number of bytes between the cursor and the end.
func (a *Arena) Remaining() int { return len(a.buf) - int(a.offset) }

// Peak returns the largest Used value observed since construction.
func (a *Arena) Peak() int { return a.peak }

// Direction reports Forward.
func (a *Arena) Direction() Direction { return Forward }

// zerobase is handed out for zero-size requests so they never point past
// the end of the buffer.
var zerobase uint64

// checkAlign panics unless align is a power of two the buffer can honour.
// Offsets are aligned relative to a maxAlign-aligned origin, so anything
// wider would not hold for the absolute address.
func checkAlign(align uintptr) {
	if align == 0 || align&(align-1) != 0 {
		panic("arena: alignment must be a power of two")
	}
	if align > maxAlign {
		panic("arena: alignment must not exceed 8")
	}
}

// alignUp rounds off up to the next multiple of align.
func alignUp(off, align uintptr) uintptr {
	mask := align - 1
	return (off + mask) & ^mask
}
