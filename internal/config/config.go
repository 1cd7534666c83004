// Package config loads the optional gasfocus configuration file:
// ~/.gasfocus/config.yaml, overridable via the GASFOCUS_CONFIG environment
// variable or the --config flag. A missing file yields defaults; a
// malformed file is an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rshade/gasfocus/internal/logging"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "GASFOCUS_CONFIG"

// configDirName is the per-user directory holding config.yaml.
const configDirName = ".gasfocus"

// Config is the root configuration document.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	// DefaultFormat is used when --output is not passed: table, json, or
	// ndjson.
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig controls the zerolog setup.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// ToLoggingConfig converts to the logging package's config type.
func (c LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{Level: c.Level, Format: c.Format, File: c.File}
}

// DefaultsConfig pre-fills estimate inputs so frequent flows need fewer
// flags or keystrokes.
type DefaultsConfig struct {
	// GasType pre-selects a cylinder by its raw label.
	GasType string `yaml:"gas_type"`

	// Instruments pre-fills the instrument count when positive.
	Instruments int `yaml:"instruments"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output:  OutputConfig{DefaultFormat: "table"},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// DefaultPath resolves the config file location: the GASFOCUS_CONFIG
// environment variable when set, otherwise ~/.gasfocus/config.yaml.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, "config.yaml")
}

// Load reads the config at path, or at DefaultPath when path is empty.
// A missing file is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// An explicitly requested file must exist; the default location
		// is optional.
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
