package config

import (
	"os"
	"path/filepath"
)

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level"`      // debug, info, warn, error
	Format     string          `yaml:"format"`     // json, console
	File       string          `yaml:"file"`       // empty = stderr
	DebugMode  bool            `yaml:"debug_mode"` // Master toggle - false = no logging
	Categories map[string]bool `yaml:"categories"` // Per-category toggles
}

// DefaultLoggingConfig returns production defaults: logging off.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:  "info",
		Format: "json",
	}
}

// DefaultLogPath returns ~/.config/textmathkb/logs/tmkb.log, or a relative
// path when the user config dir cannot be resolved.
func DefaultLogPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".textmathkb", "logs", "tmkb.log")
	}
	return filepath.Join(dir, "textmathkb", "logs", "tmkb.log")
}

// IsCategoryEnabled returns whether logging is enabled for a category.
// Returns false if debug_mode is false (production mode).
// Returns true if debug_mode is true and category is enabled (or not specified).
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.DebugMode {
		return false
	}
	if c.Categories == nil {
		return true // All enabled by default in debug mode
	}
	enabled, exists := c.Categories[category]
	if !exists {
		return true // Enable by default if not specified
	}
	return enabled
}
