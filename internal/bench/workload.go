package bench

import (
	"errors"
	"fmt"

	arena "github.com/pavanmanishd/bumparena"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("bench: invalid config")

// Config sizes the benchmark workloads.
type Config struct {
	HeapSize   int `mapstructure:"heap_size"`   // capacity of each arena, bytes
	Iterations int `mapstructure:"iterations"`  // runs averaged per result
	SmallCount int `mapstructure:"small_count"` // single-byte allocations
	LargeCount int `mapstructure:"large_count"` // LargeSize-byte allocations
	LargeSize  int `mapstructure:"large_size"`
	MixedCount int `mapstructure:"mixed_count"` // alternating byte / int32 allocations
}

// DefaultConfig returns the standard workload sizes.
func DefaultConfig() Config {
	return Config{
		HeapSize:   1024 * 1024,
		Iterations: 10,
		SmallCount: 10000,
		LargeCount: 100,
		LargeSize:  1024,
		MixedCount: 1000,
	}
}

// Validate checks that every size is usable.
func (c Config) Validate() error {
	switch {
	case c.HeapSize <= 0:
		return fmt.Errorf("%w: heap size must be positive, got %d", ErrInvalidConfig, c.HeapSize)
	case c.Iterations <= 0:
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidConfig, c.Iterations)
	case c.SmallCount < 0 || c.LargeCount < 0 || c.MixedCount < 0:
		return fmt.Errorf("%w: allocation counts must not be negative", ErrInvalidConfig)
	case c.LargeSize <= 0:
		return fmt.Errorf("%w: large allocation size must be positive, got %d", ErrInvalidConfig, c.LargeSize)
	}
	return nil
}

// Workload is an allocation pattern applied to a fresh arena.
type Workload struct {
	Name  string // e.g. "Small Allocations"
	Title string // section heading in the report
	Op    func(a arena.Allocator) error
}

// Workloads returns the small, large and mixed patterns sized by c.
func (c Config) Workloads() []Workload {
	return []Workload{
		{
			Name:  "Small Allocations",
			Title: fmt.Sprintf("Small Allocations Test (%d allocations)", c.SmallCount),
			Op:    smallAllocations(c.SmallCount),
		},
		{
			Name:  "Large Allocations",
			Title: fmt.Sprintf("Large Allocations Test (%d allocations)", c.LargeCount),
			Op:    largeAllocations(c.LargeCount, c.LargeSize),
		},
		{
			Name:  "Mixed Allocations",
			Title: "Mixed Allocations Test",
			Op:    mixedAllocations(c.MixedCount),
		},
	}
}

func smallAllocations(count int) func(arena.Allocator) error {
	return func(a arena.Allocator) error {
		for i := 0; i < count; i++ {
			p := arena.Alloc[byte](a)
			if p == nil {
				return exhausted(a, i)
			}
			*p = 'a'
		}
		return nil
	}
}

func largeAllocations(count, size int) func(arena.Allocator) error {
	return func(a arena.Allocator) error {
		for i := 0; i < count; i++ {
			buf := arena.AllocSlice[byte](a, size)
			if buf == nil {
				return exhausted(a, i)
			}
			buf[0] = 'a'
		}
		return nil
	}
}

func mixedAllocations(count int) func(arena.Allocator) error {
	return func(a arena.Allocator) error {
		for i := 0; i < count; i++ {
			if i%2 == 0 {
				p := arena.Alloc[byte](a)
				if p == nil {
					return exhausted(a, i)
				}
				*p = 'a'
			} else {
				p := arena.Alloc[int32](a)
				if p == nil {
					return exhausted(a, i)
				}
				*p = 42
			}
		}
		return nil
	}
}

func exhausted(a arena.Allocator, i int) error {
	return fmt.Errorf("%s arena, allocation %d, %d bytes remaining: %w",
		a.Direction(), i, a.Remaining(), arena.ErrNoSpace)
}
