// Package config loads settings for the bumparena command.
//
// Values come from, in increasing priority: built-in defaults, an optional
// config file (YAML, JSON or TOML), and BUMPARENA_* environment variables,
// e.g. BUMPARENA_BENCH_HEAP_SIZE=2097152 or BUMPARENA_LOG_LEVEL=DEBUG.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/pavanmanishd/bumparena/internal/bench"
	"github.com/pavanmanishd/bumparena/internal/logger"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "BUMPARENA"

// Config is the full command configuration.
type Config struct {
	Bench   bench.Config  `mapstructure:"bench"`
	Log     logger.Config `mapstructure:"log"`
	Verbose bool          `mapstructure:"verbose"` // print passing assertions in check
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Bench:   bench.DefaultConfig(),
		Log:     logger.Config{Level: "INFO", Format: "text"},
		Verbose: true,
	}
}

// New returns a viper instance primed with defaults and environment
// bindings. Callers may bind flags on it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	d := Default()

	v.SetDefault("bench.heap_size", d.Bench.HeapSize)
	v.SetDefault("bench.iterations", d.Bench.Iterations)
	v.SetDefault("bench.small_count", d.Bench.SmallCount)
	v.SetDefault("bench.large_count", d.Bench.LargeCount)
	v.SetDefault("bench.large_size", d.Bench.LargeSize)
	v.SetDefault("bench.mixed_count", d.Bench.MixedCount)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.add_source", d.Log.AddSource)
	v.SetDefault("verbose", d.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional file at path into v and decodes the result.
// An empty path skips the file.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Bench.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
