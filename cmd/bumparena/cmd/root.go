package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pavanmanishd/bumparena/internal/config"
	"github.com/pavanmanishd/bumparena/internal/logger"
)

const version = "0.1.0"

// env carries what every subcommand needs to load its settings.
type env struct {
	v          *viper.Viper
	configFile string
}

// load decodes the configuration and builds the diagnostics logger, which
// writes to the command's error stream so reports on stdout stay clean.
func (e *env) load(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(e.v, e.configFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger.New(cmd.ErrOrStderr(), cfg.Log), nil
}

// bind ties a config key to a flag. A missing flag is a programming error
// and panics while the command tree is built.
func (e *env) bind(key string, fs *pflag.FlagSet, name string) {
	if err := e.v.BindPFlag(key, fs.Lookup(name)); err != nil {
		panic(fmt.Sprintf("bumparena: bind flag %q to %q: %v", name, key, err))
	}
}

// NewRootCmd builds the bumparena command tree writing to stdout and stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	e := &env{v: config.New()}

	root := &cobra.Command{
		Use:   "bumparena",
		Short: "Benchmarks and self-checks for the fixed-capacity bump arena",
		Long: `bumparena exercises the forward and backward bump arenas.
For example:
	./bumparena bench --iterations 20
	./bumparena check`,
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&e.configFile, "config", "", "config file (yaml, json or toml)")
	flags.String("log-level", "INFO", "log level: DEBUG, INFO, WARN or ERROR")
	flags.String("log-format", "text", "log format: text or json")
	e.bind("log.level", flags, "log-level")
	e.bind("log.format", flags, "log-format")

	root.AddCommand(newBenchCmd(e), newCheckCmd(e), newVersionCmd())
	return root
}
