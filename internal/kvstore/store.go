// Package kvstore provides the string key/value settings store used to
// persist picker state.
//
// Implementations:
//   - MemoryStore: process-local map, used in tests and with driver "memory"
//   - SQLiteStore: a single settings table in a SQLite database
//   - AsyncWriter: wraps another Store so that Set never waits on disk
package kvstore

import (
	"context"
	"errors"
	"fmt"

	"textmathkb/internal/config"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("kvstore: store closed")

// Store is a string-keyed get/set interface.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Close releases resources held by the store.
	Close() error
}

// Open builds the store described by cfg.
func Open(cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case config.StoreDriverMemory:
		return NewMemoryStore(), nil
	case config.StoreDriverSQLite:
		return OpenSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
