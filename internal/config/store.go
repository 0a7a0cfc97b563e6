package config

import (
	"os"
	"path/filepath"
)

// Store drivers.
const (
	StoreDriverSQLite = "sqlite"
	StoreDriverMemory = "memory"
)

// ValidStoreDrivers lists all supported key-value store drivers.
var ValidStoreDrivers = []string{StoreDriverSQLite, StoreDriverMemory}

// StoreConfig configures the persistent settings store.
type StoreConfig struct {
	// Driver is "sqlite" or "memory" (nothing survives the process)
	Driver string `yaml:"driver"`

	// Path of the SQLite database
	Path string `yaml:"path"`

	// Namespace prefixes every persisted key
	Namespace string `yaml:"namespace"`
}

// DefaultStoreConfig returns sensible store defaults.
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		Driver:    StoreDriverSQLite,
		Path:      defaultStorePath(),
		Namespace: "textmathkb",
	}
}

func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".textmathkb", "state.db")
	}
	return filepath.Join(dir, "textmathkb", "state.db")
}
