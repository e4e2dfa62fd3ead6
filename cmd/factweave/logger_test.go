// cmd/factweave/logger_test.go
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoggerFallsBackToStdout(t *testing.T) {
	l := GetLogger()

	require.NotNil(t, l)
	assert.Same(t, l, GetLogger())
	assert.NotPanics(t, func() { l.Info("logger fallback check") })
}

func TestInitLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "factweave.log")
	require.NoError(t, InitLogger(path, LogDebug))
	defer GetLogger().Close()

	GetLogger().Debug("debug line %d", 1)
	GetLogger().Error("error line")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] debug line 1")
	assert.Contains(t, string(data), "[ERROR] error line")
}

func TestLoggerLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "factweave.log")
	l, err := newLogger(path, LogWarning)
	require.NoError(t, err)
	defer l.Close()

	l.Info("suppressed")
	l.Warning("kept")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "suppressed")
	assert.Contains(t, string(data), "[WARN] kept")
}
