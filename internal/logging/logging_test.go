package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/jask/moneydash/internal/config"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" INFO ":  zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"Warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range cases {
		require.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewWritesJSONToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "moneydash.log")
	logger, err := New(config.LogConfig{Level: "debug", Format: "json", Path: path})
	require.NoError(t, err)

	logger.Debug("projection rebuilt")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"message":"projection rebuilt"`)
	require.Contains(t, string(data), `"service":"moneydash"`)
}

func TestNewRespectsLevel(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.log")
	logger, err := New(config.LogConfig{Level: "warn", Format: "console", Path: path})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "hidden")
	require.Contains(t, string(data), "shown")
}

func TestNewEmptyPathUsesStateFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	logger, err := New(config.LogConfig{Level: "info", Format: "console"})
	require.NoError(t, err)
	logger.Info("dashboard started")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(home, ".local", "state", "moneydash", "moneydash.log"))
	require.NoError(t, err)
	require.Contains(t, string(data), "dashboard started")
}
