package check

import (
	"fmt"
	"io"
)

// Case is a single test function. It records its assertions into g.
type Case func(g *Group)

// Suite is a named list of cases sharing one Group.
type Suite struct {
	Name  string
	Cases []Case
}

// Run executes every suite with a fresh Group, prints each summary and
// reports whether all assertions in all suites passed.
func Run(w io.Writer, verbose bool, suites ...Suite) bool {
	pass := true
	for _, s := range suites {
		fmt.Fprintf(w, "\nRunning test group: %s\n", s.Name)
		g := New(s.Name, w, verbose)
		for _, c := range s.Cases {
			c(g)
		}
		if !g.Execute() {
			pass = false
		}
	}
	return pass
}
