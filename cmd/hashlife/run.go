package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/kestrelsim/hashlife/pkg/hlmetrics"
	"github.com/kestrelsim/hashlife/pkg/hltrace"
)

var (
	runTicks int
	runFPS   float64
)

func init() {
	runCmd.Flags().IntVar(&runTicks, "ticks", 1, "number of Evolve ticks to run")
	runCmd.Flags().Float64Var(&runFPS, "fps", 0, "pace ticks to at most this many per second (0 = unthrottled)")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run <file.rle>",
	Short: "Load a pattern and advance it by --ticks Evolve calls, printing population after each",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("ticks") {
			runTicks = cfg.CLI.DefaultTicks
		}
		if !cmd.Flags().Changed("fps") {
			runFPS = float64(cfg.CLI.DefaultFPS)
		}

		u, err := loadUniverse(args[0])
		if err != nil {
			return err
		}
		traced := hltrace.Wrap(u)

		var limiter *rate.Limiter
		if runFPS > 0 {
			limiter = rate.NewLimiter(rate.Limit(runFPS), 1)
		}

		var recorder *hlmetrics.Recorder
		if cfg.Metrics.Enabled {
			recorder = hlmetrics.NewRecorder(prometheus.NewRegistry())
		}

		ctx := cmd.Context()
		for i := 0; i < runTicks; i++ {
			if limiter != nil {
				if err := limiter.Wait(ctx); err != nil {
					return fmt.Errorf("rate limiter wait interrupted: %w", err)
				}
			}

			if recorder != nil {
				recorder.ObserveEvolve(u, func() { traced.Evolve(ctx) })
			} else {
				traced.Evolve(ctx)
			}

			stats := u.Stats()
			logger.Debug("tick complete generation=%d population=%d", stats.Generation, stats.Population)
			fmt.Printf("tick=%d generation=%d population=%d root_level=%d\n", i+1, stats.Generation, stats.Population, stats.RootLevel)
		}
		return nil
	},
}
