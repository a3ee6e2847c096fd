package hlconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelsim/hashlife/pkg/hlconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := hlconfig.Load("")
	require.NoError(t, err)

	require.Equal(t, 1, cfg.CLI.DefaultTicks)
	require.Equal(t, "info", cfg.CLI.LogLevel)
	require.Equal(t, ":9090", cfg.Metrics.Addr)
	require.True(t, cfg.Metrics.Enabled)
	require.False(t, cfg.Telemetry.Enabled)
	require.Equal(t, "patterns.db", cfg.Store.Path)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hashlife.yaml")
	body := []byte("cli:\n  default_ticks: 50\n  log_level: debug\ntelemetry:\n  enabled: true\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	cfg, err := hlconfig.Load(path)
	require.NoError(t, err)

	require.Equal(t, 50, cfg.CLI.DefaultTicks)
	require.Equal(t, "debug", cfg.CLI.LogLevel)
	require.True(t, cfg.Telemetry.Enabled)
	require.Equal(t, ":9090", cfg.Metrics.Addr) // untouched default
}
