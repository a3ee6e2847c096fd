// Command hashlife is the CLI front-end for the engine: load RLE patterns,
// step them forward, render a viewport, manage a catalogue of named
// patterns and serve Prometheus metrics. Grounded on
// perf-analysis/cmd/cli/cmd/root.go's persistent-flag + PersistentPreRunE
// wiring of logging/telemetry.
package main

import (
	"os"

	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kestrelsim/hashlife/pkg/hlconfig"
	"github.com/kestrelsim/hashlife/pkg/hllog"
)

var (
	cfgFile string
	cfg     *hlconfig.Config
	logger  hllog.Logger

	tracerProvider *sdktrace.TracerProvider
)

var rootCmd = &cobra.Command{
	Use:   "hashlife",
	Short: "A HashLife engine CLI: load, step and inspect Game of Life patterns",
	Long: `hashlife loads Run-Length-Encoded Life patterns into a HashLife
universe, steps them forward using recursive memoized evolution, and can
render a text viewport, catalogue named patterns in a local sqlite store,
and serve a Prometheus /metrics endpoint.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := hlconfig.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		level := hllog.LevelInfo
		if cfg.CLI.LogLevel == "debug" {
			level = hllog.LevelDebug
		}
		logger = hllog.New(level, os.Stderr)

		if cfg.Telemetry.Enabled {
			tp, err := setupTracing(cfg.Telemetry.ServiceName)
			if err != nil {
				return err
			}
			tracerProvider = tp
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if tracerProvider != nil {
			return tracerProvider.Shutdown(cmd.Context())
		}
		return nil
	},
}

// Execute runs the CLI, exiting the process with status 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a config file (yaml)")
}

func main() {
	Execute()
}
