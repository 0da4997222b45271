// Package config builds the immutable application configuration.
//
// A Config is constructed once at startup and passed by pointer; nothing
// mutates it afterwards. Identity fields (app name, version) are fixed at
// build time, while presentation settings may be overridden from
// $XDG_CONFIG_HOME/hull/config.yaml (defaults to
// ~/.config/hull/config.yaml).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"hull/internal/support/buildinfo"

	"gopkg.in/yaml.v3"
)

// AppName is the canonical application name.
const AppName = "hull"

// Config is the process-wide configuration.
type Config struct {
	// Identity — never read from the config file.
	AppName string `yaml:"-"`
	Version string `yaml:"-"`

	// Presentation overrides.
	LogLevel string `yaml:"log-level,omitempty"`
	NoColor  bool   `yaml:"no-color,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		AppName:  AppName,
		Version:  buildinfo.Version,
		LogLevel: "warn",
	}
}

// Path returns the config file location. It respects XDG_CONFIG_HOME,
// falling back to ~/.config/hull/config.yaml.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".config", AppName, "config.yaml")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, AppName, "config.yaml")
}

// Load returns Default overlaid with the config file, if one exists.
// A missing file is not an error; a malformed one is.
func Load() (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
