// Package bench times arena workloads and formats the results.
package bench

import (
	"fmt"
	"time"
)

// Result is one labelled benchmark measurement.
type Result struct {
	Name       string
	Time       time.Duration // mean wall-clock time per iteration, whole microseconds
	Iterations int
}

// Microseconds returns the mean time in whole microseconds.
func (r Result) Microseconds() int64 {
	return r.Time.Microseconds()
}

// String renders the result as a single report line.
func (r Result) String() string {
	return fmt.Sprintf("%s: %d microseconds (averaged over %d iterations)",
		r.Name, r.Microseconds(), r.Iterations)
}

// Measure runs op once and returns the elapsed wall-clock time truncated to
// microseconds.
func Measure(op func()) time.Duration {
	start := time.Now()
	op()
	return time.Since(start).Truncate(time.Microsecond)
}

// MeasureAverage runs op iterations times and returns the mean of the
// individual measurements, truncated to whole microseconds. Values of
// iterations below one are treated as one.
func MeasureAverage(op func(), iterations int) time.Duration {
	if iterations < 1 {
		iterations = 1
	}
	var total time.Duration
	for i := 0; i < iterations; i++ {
		total += Measure(op)
	}
	return time.Duration(total.Microseconds()/int64(iterations)) * time.Microsecond
}

// Run measures op and labels the result. It does not print anything.
func Run(name string, op func(), iterations int) Result {
	if iterations < 1 {
		iterations = 1
	}
	return Result{
		Name:       name,
		Time:       MeasureAverage(op, iterations),
		Iterations: iterations,
	}
}
