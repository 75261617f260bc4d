// Package config loads interactivity settings from standard locations.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the settings read from interactivity.toml.
type Config struct {
	Rundown RundownConfig `toml:"rundown"`
	Logging LoggingConfig `toml:"logging"`
}

// RundownConfig controls teardown behavior.
type RundownConfig struct {
	// StrictTeardown enables full cleanup during rundown. Off by default:
	// production leaks the renderer and window rather than risking a
	// teardown deadlock; verification runs turn this on.
	StrictTeardown bool `toml:"strict_teardown"`
}

// LoggingConfig controls diagnostics output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string `toml:"level"`

	// Development switches to the human-readable console encoding.
	Development bool `toml:"development"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
	}
}

// validLevels are the accepted logging levels.
var validLevels = map[string]bool{
	"":      true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level %q", c.Logging.Level)
	}
	return nil
}

// StandardPaths returns the config file locations in order of priority.
func StandardPaths() []string {
	paths := []string{"interactivity.toml"}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "terminal", "interactivity.toml"),
			filepath.Join(home, ".terminal", "interactivity.toml"))
	}

	return paths
}

// Load reads the first config file found in the standard locations.
// A missing file is not an error; defaults are returned with an empty path.
func Load() (Config, string, error) {
	for _, path := range StandardPaths() {
		if _, err := os.Stat(path); err == nil {
			cfg, err := LoadFile(path)
			return cfg, path, err
		}
	}
	return Default(), "", nil
}

// LoadFile reads and validates a config file.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("validating %s: %w", path, err)
	}
	return cfg, nil
}
