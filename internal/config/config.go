// Package config loads the service configuration from an optional YAML file,
// with sane defaults for every field.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the server and history settings.
type Config struct {
	Listen            string `yaml:"listen"`
	HistoryFile       string `yaml:"history_file"`
	LogLevel          string `yaml:"log_level"`
	DefaultBlockSize  int    `yaml:"default_block_size"`
	DefaultDifficulty string `yaml:"default_difficulty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Listen:            ":8080",
		HistoryFile:       "./data/sudoku_history.json",
		LogLevel:          "info",
		DefaultBlockSize:  3,
		DefaultDifficulty: "easy",
	}
}

// Load overlays the YAML file at path onto the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
