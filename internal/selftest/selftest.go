// Package selftest holds the arena scenarios run by the check command.
package selftest

import (
	"fmt"
	"unsafe"

	arena "github.com/pavanmanishd/bumparena"
	"github.com/pavanmanishd/bumparena/internal/check"
)

// Suites returns every self-check suite in run order.
func Suites() []check.Suite {
	return []check.Suite{
		{
			Name: "BumpAllocator",
			Cases: []check.Case{
				basicAllocation(newForward),
				allocationFailure(newForward),
				multipleAllocations(newForward),
				deallocationReset(newForward),
				remainingSpace(newForward),
			},
		},
		{
			Name: "BackwardBumpAllocator",
			Cases: []check.Case{
				basicAllocation(newBackward),
				allocationFailure(newBackward),
				multipleAllocations(newBackward),
				deallocationReset(newBackward),
				remainingSpace(newBackward),
			},
		},
		{
			Name:  "DirectionParity",
			Cases: []check.Case{directionParity},
		},
	}
}

type factory func(capacity int) arena.Allocator

func newForward(capacity int) arena.Allocator  { return arena.NewArena(capacity) }
func newBackward(capacity int) arena.Allocator { return arena.NewBackwardArena(capacity) }

func basicAllocation(newArena factory) check.Case {
	return func(g *check.Group) {
		a := newArena(1024)

		x := arena.Alloc[int32](a)
		g.Message(x != nil, "Basic int allocation should succeed")
		if x != nil {
			*x = 42
			check.Equal(g, *x, 42, "Allocated memory should store and retrieve values correctly")
		}
		check.Equal(g, a.Allocations(), 1, "Allocation counter should be 1")
	}
}

func allocationFailure(newArena factory) check.Case {
	return func(g *check.Group) {
		a := newArena(4)

		x := arena.Alloc[int32](a)
		g.Message(x != nil, "Should be able to allocate 4 bytes")

		y := arena.Alloc[int32](a)
		g.Message(y == nil, "Should fail to allocate beyond capacity")

		check.Equal(g, a.Remaining(), 0, "Should have no remaining space")
	}
}

func multipleAllocations(newArena factory) check.Case {
	return func(g *check.Group) {
		a := newArena(100)

		x := arena.Alloc[int32](a)
		d := arena.Alloc[float64](a)
		c := arena.AllocSlice[byte](a, 10)

		g.Message(x != nil, "Int allocation should succeed")
		g.Message(d != nil, "Double allocation should succeed")
		g.Message(c != nil, "Char array allocation should succeed")

		if x != nil && d != nil && c != nil {
			*x = 42
			*d = 3.14
			c[0] = 'A'

			check.Equal(g, *x, 42, "Int value should be stored correctly")
			check.Equal(g, *d, 3.14, "Double value should be stored correctly")
			check.Equal(g, c[0], 'A', "Char value should be stored correctly")
		}

		check.Equal(g, a.Allocations(), 3, "Should have 3 allocations")
	}
}

func deallocationReset(newArena factory) check.Case {
	return func(g *check.Group) {
		a := newArena(64)
		initial := a.Remaining()

		first := arena.Alloc[int32](a)
		arena.Alloc[int32](a)
		check.Equal(g, a.Allocations(), 2, "Should have 2 allocations initially")

		a.Release()
		check.Equal(g, a.Allocations(), 1, "Should have 1 allocation after first release")
		check.Equal(g, a.Remaining(), initial-8, "Partial release should not reclaim space")

		a.Release()
		check.Equal(g, a.Allocations(), 0, "Should have 0 allocations after second release")
		check.Equal(g, a.Remaining(), initial, "Last release should reset the arena")

		z := arena.Alloc[int32](a)
		g.Message(z != nil, "Should be able to allocate after reset")
		if z != nil {
			*z = 100
			check.Equal(g, *z, 100, "New allocation should work correctly after reset")
		}
		g.Message(z == first, "Allocation after reset should reuse the first address")

		check.Equal(g, a.Remaining(), initial-int(unsafe.Sizeof(int32(0))),
			"Should have correct remaining space after reset and new allocation")
	}
}

func remainingSpace(newArena factory) check.Case {
	return func(g *check.Group) {
		a := newArena(100)
		initial := a.Remaining()
		check.Equal(g, initial, 100, "Initial space should be 100 bytes")

		arena.Alloc[int32](a)
		check.Equal(g, a.Remaining(), initial-4, "Remaining space should decrease by the size of int32")

		arena.Alloc[float64](a)
		check.Equal(g, a.Remaining(), initial-16,
			"Remaining space should decrease by the size of float64 plus alignment padding")
		check.Equal(g, a.Capacity(), a.Used()+a.Remaining(), "Capacity should equal used plus remaining")
	}
}

func directionParity(g *check.Group) {
	fwd := arena.NewArena(24)
	bwd := arena.NewBackwardArena(24)

	steps := []func(a arena.Allocator) bool{
		func(a arena.Allocator) bool { return arena.Alloc[byte](a) != nil },
		func(a arena.Allocator) bool { return arena.Alloc[int64](a) != nil },
		func(a arena.Allocator) bool { return arena.Alloc[int32](a) != nil },
		func(a arena.Allocator) bool { return arena.Alloc[int64](a) != nil },
		func(a arena.Allocator) bool { return arena.Alloc[int16](a) != nil },
	}
	for i, step := range steps {
		okF, okB := step(fwd), step(bwd)
		g.Message(okF == okB, fmt.Sprintf("Forward and backward arenas should agree on step %d", i+1))
	}
	check.Equal(g, fwd.Remaining(), bwd.Remaining(), "Both directions should leave the same space")
}
