package bench

import (
	"fmt"
	"io"
	"log/slog"

	arena "github.com/pavanmanishd/bumparena"
)

// Variant names an arena constructor.
type Variant struct {
	Name string
	New  func(capacity int) arena.Allocator
}

// Variants returns the forward and backward arenas, in report order.
func Variants() []Variant {
	return []Variant{
		{Name: "Forward", New: func(c int) arena.Allocator { return arena.NewArena(c) }},
		{Name: "Backward", New: func(c int) arena.Allocator { return arena.NewBackwardArena(c) }},
	}
}

// Section groups the results of one workload across all variants.
type Section struct {
	Title   string
	Results []Result
}

// Suite runs every workload on every variant.
type Suite struct {
	cfg      Config
	variants []Variant
	logger   *slog.Logger
}

// Option configures a Suite.
type Option func(*Suite)

// WithLogger sets the logger used for per-result diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Suite) {
		s.logger = l
	}
}

// WithVariants replaces the arena variants under test.
func WithVariants(v ...Variant) Option {
	return func(s *Suite) {
		s.variants = v
	}
}

// NewSuite validates cfg and returns a Suite ready to run.
func NewSuite(cfg Config, opts ...Option) (*Suite, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Suite{cfg: cfg, variants: Variants(), logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Run measures each workload on each variant. It stops at the first
// workload that fails to allocate.
func (s *Suite) Run() ([]Section, error) {
	var sections []Section
	for _, w := range s.cfg.Workloads() {
		sec := Section{Title: w.Title}
		for _, v := range s.variants {
			var runErr error
			res := Run(v.Name+" - "+w.Name, func() {
				if err := w.Op(v.New(s.cfg.HeapSize)); err != nil && runErr == nil {
					runErr = err
				}
			}, s.cfg.Iterations)
			if runErr != nil {
				return nil, fmt.Errorf("%s: %w", res.Name, runErr)
			}
			s.logger.Debug("benchmark finished",
				"name", res.Name,
				"avg_us", res.Microseconds(),
				"iterations", res.Iterations)
			sec.Results = append(sec.Results, res)
		}
		sections = append(sections, sec)
	}
	return sections, nil
}

// Report writes the sections in the plain-text report format.
func Report(w io.Writer, sections []Section) error {
	if _, err := fmt.Fprint(w, "Running benchmarks...\n"); err != nil {
		return err
	}
	for i, sec := range sections {
		if _, err := fmt.Fprintf(w, "\n%d. %s\n", i+1, sec.Title); err != nil {
			return err
		}
		for _, r := range sec.Results {
			if _, err := fmt.Fprintln(w, r.String()); err != nil {
				return err
			}
		}
	}
	return nil
}
