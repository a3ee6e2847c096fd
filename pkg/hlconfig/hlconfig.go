// Package hlconfig loads the CLI/server configuration, grounded on
// perf-analysis's pkg/config: one struct per concern, mapstructure tags,
// defaults set before the file is read, viper as the loader.
package hlconfig

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the hashlife CLI and its optional
// server/telemetry side-cars.
type Config struct {
	CLI       CLIConfig       `mapstructure:"cli"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Store     StoreConfig     `mapstructure:"store"`
}

// CLIConfig holds defaults for the `run` subcommand and the CLI log level.
type CLIConfig struct {
	DefaultTicks int    `mapstructure:"default_ticks"`
	DefaultFPS   int    `mapstructure:"default_fps"`
	LogLevel     string `mapstructure:"log_level"`
}

// MetricsConfig configures the `serve` subcommand's /metrics endpoint.
type MetricsConfig struct {
	Addr    string `mapstructure:"addr"`
	Enabled bool   `mapstructure:"enabled"`
}

// TelemetryConfig configures OpenTelemetry tracing of engine operations.
type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
}

// StoreConfig configures the sqlite-backed pattern catalogue.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads configuration from configPath (if non-empty) layered over
// defaults and HASHLIFE_-prefixed environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("HASHLIFE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("cli.default_ticks", 1)
	v.SetDefault("cli.default_fps", 0)
	v.SetDefault("cli.log_level", "info")

	v.SetDefault("metrics.addr", ":9090")
	v.SetDefault("metrics.enabled", true)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "hashlife")

	v.SetDefault("store.path", "patterns.db")
}
