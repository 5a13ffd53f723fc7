package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/EmpyreanHYR/sudoku/internal/config"
)

var (
	cfgPath  string
	logLevel string
	cfg      config.Config
)

var rootCmd = &cobra.Command{
	Use:           "sudoku",
	Short:         "Generalized Sudoku solver, generator, and learning service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		level := cfg.LogLevel
		if cmd.Root().PersistentFlags().Changed("log-level") {
			level = logLevel
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(level)}))
		slog.SetDefault(logger)
		return nil
	},
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// blockSize resolves --k: an explicit flag wins, otherwise the configured
// default applies.
func blockSize(cmd *cobra.Command, flagVal int) int {
	if cmd.Flags().Changed("k") {
		return flagVal
	}
	if cfg.DefaultBlockSize != 0 {
		return cfg.DefaultBlockSize
	}
	return flagVal
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	rootCmd.AddCommand(serveCmd, solveCmd, generateCmd, historyCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}
