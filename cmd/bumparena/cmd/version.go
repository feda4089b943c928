package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	arena "github.com/pavanmanishd/bumparena"
)

// newVersionCmd represents the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the bumparena version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bumparena v%s (default arena capacity: %s)\n",
				version, humanize.IBytes(arena.DefaultCapacity))
		},
	}
}
