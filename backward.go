package arena

import "unsafe"

// BackwardArena is a fixed-capacity bump allocator whose cursor starts at
// the end of the buffer and moves toward the start. Apart from direction it
// behaves exactly like Arena. Not goroutine-safe.
type BackwardArena struct {
	region
	offset uintptr // first allocated byte, measured from buf[0]
}

// NewBackwardArena creates a BackwardArena holding capacity bytes.
// If capacity <= 0, DefaultCapacity is used.
func NewBackwardArena(capacity int) *BackwardArena {
	r := newRegion(capacity, true)
	return &BackwardArena{region: r, offset: uintptr(len(r.buf))}
}

// Allocate moves the cursor down by size bytes, rounds it down to align and
// returns the new cursor, or nil if that would pass the start of the buffer.
// Alignment limits, size rounding and zero-size handling match Arena.Allocate.
func (a *BackwardArena) Allocate(size, align uintptr) unsafe.Pointer {
	checkAlign(align)
	if size == 0 {
		a.track(a.Used())
		return unsafe.Pointer(&zerobase)
	}
	if size > a.offset {
		return nil
	}
	size = alignUp(size, align)
	// The buffer end is maxAlign-aligned, so align relative to it.
	end := uintptr(len(a.buf))
	off := end - alignUp(end-a.offset+size, align)
	if off > a.offset {
		return nil
	}
	a.offset = off
	a.track(a.Used())
	return unsafe.Pointer(&a.buf[off])
}

// AllocBytes returns n bytes carved from the arena, or nil if n <= 0 or the
// arena has no room left.
func (a *BackwardArena) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	p := a.Allocate(uintptr(n), 1)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

// Release marks one allocation as no longer in use; when the live count
// reaches zero the cursor returns to the end of the buffer.
func (a *BackwardArena) Release() {
	if a.release() {
		a.offset = uintptr(len(a.buf))
	}
}

// Capacity returns the size of the backing buffer in bytes.
func (a *BackwardArena) Capacity() int { return len(a.buf) }

// Allocations returns the number of allocations not yet released.
func (a *BackwardArena) Allocations() int { return a.live }

// Used returns the number of bytes between the cursor and the end of the
// buffer, alignment padding included.
func (a *BackwardArena) Used() int { return len(a.buf) - int(a.offset) }

// Remaining returns the distance from the start of the buffer to the cursor.
func (a *BackwardArena) Remaining() int { return int(a.offset) }

// Peak returns the largest Used value observed since construction.
func (a *BackwardArena) Peak() int { return a.peak }

// Direction reports Backward.
func (a *BackwardArena) Direction() Direction { return Backward }
