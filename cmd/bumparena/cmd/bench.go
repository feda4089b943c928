package cmd

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/pavanmanishd/bumparena/internal/bench"
)

// newBenchCmd represents the bench command
func newBenchCmd(e *env) *cobra.Command {
	c := &cobra.Command{
		Use:   "bench",
		Short: "Times small, large and mixed workloads on both arena directions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := e.load(cmd)
			if err != nil {
				return err
			}

			log.Info("running benchmarks",
				"heap", humanize.IBytes(uint64(cfg.Bench.HeapSize)),
				"iterations", cfg.Bench.Iterations,
				"large_size", humanize.IBytes(uint64(cfg.Bench.LargeSize)))

			s, err := bench.NewSuite(cfg.Bench, bench.WithLogger(log))
			if err != nil {
				return err
			}
			sections, err := s.Run()
			if err != nil {
				log.Error("benchmark failed", "err", err)
				return err
			}
			return bench.Report(cmd.OutOrStdout(), sections)
		},
	}

	d := bench.DefaultConfig()
	f := c.Flags()
	f.Int("heap-size", d.HeapSize, "arena capacity in bytes")
	f.Int("iterations", d.Iterations, "runs averaged per result")
	f.Int("small-count", d.SmallCount, "single-byte allocations in the small workload")
	f.Int("large-count", d.LargeCount, "allocations in the large workload")
	f.Int("large-size", d.LargeSize, "bytes per large allocation")
	f.Int("mixed-count", d.MixedCount, "allocations in the mixed workload")
	for flag, key := range map[string]string{
		"heap-size":   "bench.heap_size",
		"iterations":  "bench.iterations",
		"small-count": "bench.small_count",
		"large-count": "bench.large_count",
		"large-size":  "bench.large_size",
		"mixed-count": "bench.mixed_count",
	} {
		e.bind(key, f, flag)
	}
	return c
}
