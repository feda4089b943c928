// Package check is a minimal assertion framework for self-check binaries.
//
// Each group of assertions records into its own Group, so groups can run in
// isolation (or in parallel) without sharing counters.
package check

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
)

// Group collects pass/total counts for one named set of assertions.
type Group struct {
	name    string
	out     io.Writer
	verbose bool
	passed  int
	total   int
}

// New returns an empty Group that reports to w. When verbose is set,
// passing assertions are printed as well as failing ones.
func New(name string, w io.Writer, verbose bool) *Group {
	return &Group{name: name, out: w, verbose: verbose}
}

// Name returns the group name.
func (g *Group) Name() string { return g.name }

// Passed returns the number of passing assertions since the last Execute.
func (g *Group) Passed() int { return g.passed }

// Total returns the number of assertions since the last Execute.
func (g *Group) Total() int { return g.total }

// Message records a boolean assertion.
func (g *Group) Message(cond bool, msg string) bool {
	g.total++
	if !cond {
		fmt.Fprintf(g.out, "FAILED: %s [%s]\n", msg, caller())
		return false
	}
	g.pass(msg)
	return true
}

// Equal records an equality assertion on g.
func Equal[T comparable](g *Group, actual, expected T, msg string) bool {
	g.total++
	if actual != expected {
		fmt.Fprintf(g.out, "FAILED: %s\nExpected: %v\nActual: %v\n[%s]\n", msg, expected, actual, caller())
		return false
	}
	g.pass(msg)
	return true
}

func (g *Group) pass(msg string) {
	g.passed++
	if g.verbose {
		fmt.Fprintf(g.out, "PASSED: %s\n", msg)
	}
}

// Execute prints the group summary, resets the counters and reports
// whether every assertion passed.
func (g *Group) Execute() bool {
	fmt.Fprintf(g.out, "\nTest Group: %s\n", g.name)
	fmt.Fprintf(g.out, "Passed %d out of %d tests.\n", g.passed, g.total)
	ok := g.passed == g.total
	g.passed, g.total = 0, 0
	return ok
}

// caller returns file:line of the assertion call site.
func caller() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
