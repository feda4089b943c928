package arena

// Stats contains a point-in-time view of an arena.
type Stats struct {
	Direction   Direction
	Capacity    int     // Total capacity in bytes
	Used        int     // Bytes between origin and cursor, padding included
	Remaining   int     // Bytes still available
	Allocations int     // Allocations not yet released
	Peak        int     // Largest Used value seen
	Utilization float64 // Used / Capacity (0.0-1.0)
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
func (a *Arena) Utilization() float64 {
	return utilization(a)
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
func (a *BackwardArena) Utilization() float64 {
	return utilization(a)
}

// Stats returns a snapshot of arena statistics.
func (a *Arena) Stats() Stats {
	return Snapshot(a)
}

// Stats returns a snapshot of arena statistics.
func (a *BackwardArena) Stats() Stats {
	return Snapshot(a)
}

// Snapshot collects Stats from any Allocator.
func Snapshot(a Allocator) Stats {
	return Stats{
		Direction:   a.Direction(),
		Capacity:    a.Capacity(),
		Used:        a.Used(),
		Remaining:   a.Remaining(),
		Allocations: a.Allocations(),
		Peak:        a.Peak(),
		Utilization: utilization(a),
	}
}

func utilization(a Allocator) float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.Used()) / float64(capacity)
}
