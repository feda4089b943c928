package arena

import (
	"testing"
)

func TestArenaStats(t *testing.T) {
	a := NewArena(1024)

	s := a.Stats()
	if s.Used != 0 || s.Allocations != 0 || s.Peak != 0 {
		t.Errorf("Initial Stats = %+v, want zero usage", s)
	}
	if s.Capacity != 1024 || s.Remaining != 1024 {
		t.Errorf("Initial Capacity/Remaining = %d/%d, want 1024/1024", s.Capacity, s.Remaining)
	}
	if s.Utilization != 0 {
		t.Errorf("Initial Utilization = %f, want 0", s.Utilization)
	}
	if s.Direction != Forward {
		t.Errorf("Direction = %v, want forward", s.Direction)
	}

	a.AllocBytes(100)
	a.AllocBytes(156)

	s = a.Stats()
	if s.Used != 256 || s.Remaining != 768 {
		t.Errorf("Used/Remaining = %d/%d, want 256/768", s.Used, s.Remaining)
	}
	if s.Utilization != 0.25 {
		t.Errorf("Utilization = %f, want 0.25", s.Utilization)
	}
	if s.Utilization != a.Utilization() {
		t.Errorf("Stats.Utilization = %f, want %f", s.Utilization, a.Utilization())
	}
	if s.Allocations != 2 || s.Peak != 256 {
		t.Errorf("Allocations/Peak = %d/%d, want 2/256", s.Allocations, s.Peak)
	}

	a.Release()
	a.Release()
	s = a.Stats()
	if s.Used != 0 || s.Peak != 256 {
		t.Errorf("after reset Used/Peak = %d/%d, want 0/256", s.Used, s.Peak)
	}
}

func TestBackwardArenaStats(t *testing.T) {
	a := NewBackwardArena(512)
	AllocSlice[int64](a, 16)

	s := a.Stats()
	if s.Direction != Backward {
		t.Errorf("Direction = %v, want backward", s.Direction)
	}
	if s.Used != 128 || s.Remaining != 384 || s.Allocations != 1 {
		t.Errorf("Stats = %+v, want used 128, remaining 384, 1 allocation", s)
	}
	if s.Utilization != a.Utilization() || s.Utilization != 0.25 {
		t.Errorf("Utilization = %f, want 0.25", s.Utilization)
	}
}

func TestSnapshotMatchesAccessors(t *testing.T) {
	for name, a := range allocators(300) {
		t.Run(name, func(t *testing.T) {
			Alloc[int32](a)
			Alloc[float64](a)

			s := Snapshot(a)
			if s.Capacity != a.Capacity() || s.Used != a.Used() || s.Remaining != a.Remaining() {
				t.Errorf("Snapshot %+v disagrees with accessors", s)
			}
			if s.Capacity != s.Used+s.Remaining {
				t.Errorf("Capacity %d != Used %d + Remaining %d", s.Capacity, s.Used, s.Remaining)
			}
		})
	}
}
