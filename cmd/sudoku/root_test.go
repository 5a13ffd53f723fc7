package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("bogus"))
}

func TestConfigFileLogLevelApplies(t *testing.T) {
	cfgPath = writeConfig(t, "log_level: debug\n")
	defer func() { cfgPath = "" }()

	require.NoError(t, rootCmd.PersistentPreRunE(rootCmd, nil))
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}

func TestBlockSizeFallsBackToConfig(t *testing.T) {
	cfgPath = writeConfig(t, "default_block_size: 4\n")
	defer func() { cfgPath = "" }()
	require.NoError(t, rootCmd.PersistentPreRunE(rootCmd, nil))

	// no explicit --k: the configured default wins over the flag default
	assert.Equal(t, 4, blockSize(generateCmd, genK))

	// an explicit --k wins over the config
	require.NoError(t, generateCmd.Flags().Set("k", "2"))
	assert.Equal(t, 2, blockSize(generateCmd, genK))
}

// Runs last in this file: setting the persistent flag marks it changed for
// the rest of the process.
func TestLogLevelFlagOverridesConfig(t *testing.T) {
	cfgPath = writeConfig(t, "log_level: debug\n")
	defer func() { cfgPath = "" }()

	require.NoError(t, rootCmd.PersistentFlags().Set("log-level", "error"))
	require.NoError(t, rootCmd.PersistentPreRunE(rootCmd, nil))
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelError))
}
