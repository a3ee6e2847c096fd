package hllog_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelsim/hashlife/pkg/hllog"
)

func TestDefaultLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := hllog.New(hllog.LevelWarn, &buf)

	logger.Debug("should not appear")
	logger.Info("should not appear either")
	require.Empty(t, buf.String())

	logger.Warn("visible warning")
	require.Contains(t, buf.String(), "WARN")
	require.Contains(t, buf.String(), "visible warning")
}

func TestDefaultLogger_FormatsArgs(t *testing.T) {
	var buf bytes.Buffer
	logger := hllog.New(hllog.LevelDebug, &buf)

	logger.Info("tick=%d population=%d", 3, 42)
	require.Contains(t, buf.String(), "tick=3 population=42")
}

func TestDefaultLogger_WithFieldAppendsWithoutMutatingParent(t *testing.T) {
	var buf bytes.Buffer
	base := hllog.New(hllog.LevelInfo, &buf)
	child := base.WithField("universe", "acorn")

	child.Info("evolved")
	base.Info("no fields")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "universe=acorn")
	require.NotContains(t, lines[1], "universe=acorn")
}
