package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config holds all textmathkb configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Emoji picker behaviour
	Picker PickerConfig `yaml:"picker"`

	// Catalog source
	Catalog CatalogConfig `yaml:"catalog"`

	// Persistent key-value store
	Store StoreConfig `yaml:"store"`

	// Base layout and augmentation
	Layout LayoutConfig `yaml:"layout"`

	// Terminal front end
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// CatalogConfig selects the emoji catalog.
type CatalogConfig struct {
	// Path to a YAML catalog. Empty means the embedded default catalog.
	Path string `yaml:"path"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "textmathkb",
		Version: "0.3.0",

		Picker:  DefaultPickerConfig(),
		Store:   DefaultStoreConfig(),
		Layout:  DefaultLayoutConfig(),
		UI:      DefaultUIConfig(),
		Logging: DefaultLoggingConfig(),
	}
}

// DefaultConfigPath returns ~/.config/textmathkb/config.yaml, or a relative
// path when the user config dir cannot be resolved.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".textmathkb", "config.yaml")
	}
	return filepath.Join(dir, "textmathkb", "config.yaml")
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Defaults if the file doesn't exist; env still applies
		data = nil
	}

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if locale := os.Getenv("TMKB_LOCALE"); locale != "" {
		c.Picker.Locale = locale
	}
	if path := os.Getenv("TMKB_DB"); path != "" {
		c.Store.Path = path
	}
	if path := os.Getenv("TMKB_CATALOG"); path != "" {
		c.Catalog.Path = path
	}
	if v := os.Getenv("TMKB_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			c.Logging.DebugMode = debug
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := language.Parse(c.Picker.Locale); err != nil {
		return fmt.Errorf("invalid picker locale %q: %w", c.Picker.Locale, err)
	}

	if !isValid(c.Picker.MatchRule, ValidMatchRules) {
		return fmt.Errorf("invalid match rule: %s (valid: %v)", c.Picker.MatchRule, ValidMatchRules)
	}
	if !isValid(c.Store.Driver, ValidStoreDrivers) {
		return fmt.Errorf("invalid store driver: %s (valid: %v)", c.Store.Driver, ValidStoreDrivers)
	}
	if c.Store.Driver == StoreDriverSQLite && c.Store.Path == "" {
		return fmt.Errorf("store path required for driver %s", StoreDriverSQLite)
	}
	if c.Store.Namespace == "" {
		return fmt.Errorf("store namespace must not be empty")
	}
	if !isValid(c.Layout.Device, ValidDevices) {
		return fmt.Errorf("invalid layout device: %s (valid: %v)", c.Layout.Device, ValidDevices)
	}

	return nil
}

// LocaleTag returns the picker locale as a language tag, falling back to
// English when the configured value does not parse.
func (c *Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Picker.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

func isValid(v string, valid []string) bool {
	for _, s := range valid {
		if v == s {
			return true
		}
	}
	return false
}
