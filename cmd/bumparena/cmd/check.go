package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/bumparena/internal/check"
	"github.com/pavanmanishd/bumparena/internal/selftest"
)

// ErrChecksFailed is returned when any self-check assertion fails.
var ErrChecksFailed = errors.New("self-check failed")

// newCheckCmd represents the check command
func newCheckCmd(e *env) *cobra.Command {
	c := &cobra.Command{
		Use:   "check",
		Short: "Runs the arena self-check groups; exits non-zero on failure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := e.load(cmd)
			if err != nil {
				return err
			}

			suites := selftest.Suites()
			log.Debug("running self-check", "groups", len(suites))
			if !check.Run(cmd.OutOrStdout(), cfg.Verbose, suites...) {
				return ErrChecksFailed
			}
			return nil
		},
	}

	c.Flags().Bool("verbose", true, "print passing assertions")
	e.bind("verbose", c.Flags(), "verbose")
	return c
}
