package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// TOMLConfig represents the structure of the benchmark config file
type TOMLConfig struct {
	Generate GenerateSection `toml:"generate"`
	Compress CompressSection `toml:"compress"`
}

type GenerateSection struct {
	Count int   `toml:"count"`
	Seed  int64 `toml:"seed"`
}

type CompressSection struct {
	Level int `toml:"level"`
}

// DefaultTOMLConfig returns the default benchmark configuration
func DefaultTOMLConfig() TOMLConfig {
	return TOMLConfig{
		Generate: GenerateSection{
			Count: 500_000,
			Seed:  1,
		},
		Compress: CompressSection{
			Level: 5,
		},
	}
}

// LoadConfig loads configuration from a TOML file, falls back to defaults if
// the file doesn't exist, and applies environment variable overrides
func LoadConfig(path string) (TOMLConfig, error) {
	// Expand ~ in path
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return TOMLConfig{}, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	config := DefaultTOMLConfig()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &config); err != nil {
			return TOMLConfig{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	return applyEnvOverrides(config), nil
}

// applyEnvOverrides applies environment variable overrides to the config
// Environment variables follow the pattern: PLAYERLOG_SECTION_KEY
// Example: PLAYERLOG_GENERATE_COUNT=100000
func applyEnvOverrides(config TOMLConfig) TOMLConfig {
	if val := os.Getenv("PLAYERLOG_GENERATE_COUNT"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			config.Generate.Count = n
		}
	}
	if val := os.Getenv("PLAYERLOG_GENERATE_SEED"); val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			config.Generate.Seed = n
		}
	}
	if val := os.Getenv("PLAYERLOG_COMPRESS_LEVEL"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			config.Compress.Level = n
		}
	}
	return config
}
