package arena

import (
	"fmt"
	"math/rand"
	"testing"
	"unsafe"
)

func TestNewBackwardArena(t *testing.T) {
	for _, capacity := range []int{0, 4, 13, 4096} {
		a := NewBackwardArena(capacity)
		want := capacity
		if want <= 0 {
			want = DefaultCapacity
		}
		if a.Capacity() != want || a.Remaining() != want {
			t.Errorf("NewBackwardArena(%d): capacity=%d remaining=%d, want %d", capacity, a.Capacity(), a.Remaining(), want)
		}
		end := uintptr(unsafe.Pointer(&a.buf[0])) + uintptr(len(a.buf))
		if end%maxAlign != 0 {
			t.Errorf("NewBackwardArena(%d) buffer end not aligned", capacity)
		}
	}
}

func TestBackwardArenaGrowsDown(t *testing.T) {
	a := NewBackwardArena(64)

	x := Alloc[int64](a)
	y := Alloc[int64](a)
	if x == nil || y == nil {
		t.Fatal("int64 allocations failed")
	}
	if x != (*int64)(unsafe.Pointer(&a.buf[56])) {
		t.Errorf("first allocation not at the top of the buffer")
	}
	if uintptr(unsafe.Pointer(y)) >= uintptr(unsafe.Pointer(x)) {
		t.Errorf("second allocation %p not below first %p", y, x)
	}
	if a.Remaining() != 48 {
		t.Errorf("Remaining = %d, want 48", a.Remaining())
	}
}

func TestBackwardArenaReleaseResets(t *testing.T) {
	a := NewBackwardArena(16)

	x := Alloc[int32](a)
	Alloc[int32](a)
	if a.Allocations() != 2 || a.Remaining() != 8 {
		t.Fatalf("after two allocs: allocations=%d remaining=%d, want 2 and 8", a.Allocations(), a.Remaining())
	}

	a.Release()
	if a.Allocations() != 1 || a.Remaining() != 8 {
		t.Errorf("after one release: allocations=%d remaining=%d, want 1 and 8", a.Allocations(), a.Remaining())
	}

	a.Release()
	if a.Allocations() != 0 || a.Remaining() != 16 {
		t.Errorf("after two releases: allocations=%d remaining=%d, want 0 and 16", a.Allocations(), a.Remaining())
	}

	if z := Alloc[int32](a); z != x {
		t.Errorf("allocation after reset at %p, want %p", z, x)
	}
}

func TestBackwardArenaExhaustion(t *testing.T) {
	a := NewBackwardArena(4)

	if Alloc[int32](a) == nil {
		t.Fatal("should be able to allocate 4 bytes")
	}
	if Alloc[int32](a) != nil {
		t.Error("should fail to allocate beyond capacity")
	}
	if a.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", a.Remaining())
	}
}

func TestBackwardArenaAlignment(t *testing.T) {
	a := NewBackwardArena(61)

	Alloc[byte](a)
	p := Alloc[int64](a)
	if p == nil {
		t.Fatal("int64 allocation failed")
	}
	if uintptr(unsafe.Pointer(p))%unsafe.Alignof(int64(0)) != 0 {
		t.Errorf("int64 at %p not aligned", p)
	}
	if a.Used() != 16 {
		t.Errorf("Used = %d, want 16", a.Used())
	}
}

// Forward and backward arenas of equal capacity must accept and reject
// exactly the same requests.
func TestDirectionParity(t *testing.T) {
	type request struct {
		size, align uintptr
	}
	kinds := []request{{1, 1}, {2, 2}, {4, 4}, {8, 8}, {12, 4}, {24, 8}, {3, 1}, {3, 4}, {5, 8}, {6, 4}}

	for _, capacity := range []int{1, 7, 16, 61, 100, 256} {
		fwd := NewArena(capacity)
		bwd := NewBackwardArena(capacity)
		rng := rand.New(rand.NewSource(int64(capacity)))

		for i := 0; i < 500; i++ {
			if rng.Intn(4) == 0 {
				fwd.Release()
				bwd.Release()
			} else {
				r := kinds[rng.Intn(len(kinds))]
				pf := fwd.Allocate(r.size, r.align)
				pb := bwd.Allocate(r.size, r.align)
				if (pf == nil) != (pb == nil) {
					t.Fatalf("cap %d step %d: forward ok=%v, backward ok=%v for %+v", capacity, i, pf != nil, pb != nil, r)
				}
			}
			if fwd.Used() != bwd.Used() || fwd.Allocations() != bwd.Allocations() {
				t.Fatalf("cap %d step %d: forward used=%d live=%d, backward used=%d live=%d",
					capacity, i, fwd.Used(), fwd.Allocations(), bwd.Used(), bwd.Allocations())
			}
		}
	}
}

// A size that is not a multiple of its alignment is rounded up, so the
// padding lands the same way in both directions.
func TestUnevenSizeParity(t *testing.T) {
	fwd, bwd := NewArena(4), NewBackwardArena(4)

	if fwd.Allocate(3, 4) == nil || bwd.Allocate(3, 4) == nil {
		t.Fatal("Allocate(3, 4) failed on a 4-byte arena")
	}
	if fwd.Used() != 4 || bwd.Used() != 4 {
		t.Errorf("Used = %d/%d, want 4/4", fwd.Used(), bwd.Used())
	}
	if p := fwd.Allocate(1, 1); p != nil {
		t.Error("forward Allocate(1, 1) succeeded on a full arena")
	}
	if p := bwd.Allocate(1, 1); p != nil {
		t.Error("backward Allocate(1, 1) succeeded on a full arena")
	}

	fwd, bwd = NewArena(16), NewBackwardArena(16)
	for _, a := range []Allocator{fwd, bwd} {
		a.Allocate(1, 1)
		if a.Allocate(5, 8) == nil {
			t.Fatalf("%s: Allocate(5, 8) failed", a.Direction())
		}
		if a.Used() != 16 {
			t.Errorf("%s: Used = %d, want 16", a.Direction(), a.Used())
		}
	}
}

func TestAllocateAlignment(t *testing.T) {
	for _, a := range []Allocator{NewArena(200), NewBackwardArena(200)} {
		for _, align := range []uintptr{1, 2, 4, 8} {
			for i := 0; i < 5; i++ {
				p := a.Allocate(align+1, align)
				if p == nil {
					t.Fatalf("%s: Allocate(%d, %d) failed", a.Direction(), align+1, align)
				}
				if uintptr(p)%align != 0 {
					t.Errorf("%s: %p not aligned to %d", a.Direction(), p, align)
				}
			}
		}
	}
}

func TestAllocateAlignmentAboveMaxPanics(t *testing.T) {
	for _, a := range []Allocator{NewArena(200), NewBackwardArena(200)} {
		for _, align := range []uintptr{16, 64} {
			t.Run(fmt.Sprintf("%s/align=%d", a.Direction(), align), func(t *testing.T) {
				defer func() {
					if r := recover(); r != "arena: alignment must not exceed 8" {
						t.Errorf("recover() = %v", r)
					}
				}()
				a.Allocate(16, align)
			})
		}
	}
}
