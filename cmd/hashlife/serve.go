package main

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/kestrelsim/hashlife/pkg/hlmetrics"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "address to listen on (defaults to config metrics.addr)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a Prometheus /metrics endpoint for engine instrumentation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			addr = cfg.Metrics.Addr
		}

		reg := prometheus.NewRegistry()
		hlmetrics.NewRecorder(reg)

		mux := http.NewServeMux()
		mux.Handle("/metrics", hlmetrics.Handler(reg))

		logger.Info("serving metrics on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			return fmt.Errorf("metrics server stopped: %w", err)
		}
		return nil
	},
}
