// Package config loads the sabha configuration file. Every field has a
// working default so the file is optional; CLI flags override whatever the
// file supplies.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultDirName  = ".sabha"
	DefaultFileName = "config.yaml"
	DefaultOutput   = "terminal"
	DefaultEvent    = "India AI Summit 2026"
)

// Config holds the tool-wide settings.
type Config struct {
	// Dataset is a file path or http(s) URL to the session feed.
	Dataset string `yaml:"dataset"`

	// DataDir stores the personal schedule and availability files.
	// Defaults to ~/.sabha.
	DataDir string `yaml:"data_dir"`

	// Output is the default render format: terminal, json, or html.
	Output string `yaml:"output"`

	// Event is the display name used in rendered listings.
	Event string `yaml:"event"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DataDir: filepath.Join(homeDir(), DefaultDirName),
		Output:  DefaultOutput,
		Event:   DefaultEvent,
	}
}

// DefaultPath returns the standard config file location (~/.sabha/config.yaml).
func DefaultPath() string {
	return filepath.Join(homeDir(), DefaultDirName, DefaultFileName)
}

// Load reads the config file at path, layering it over the defaults.
// A missing file is not an error — the defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Join(homeDir(), DefaultDirName)
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.Event == "" {
		cfg.Event = DefaultEvent
	}
	return cfg, nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
