// Package logging provides config-driven categorized logging for textmathkb.
// Each category is a named zap logger. Logging is controlled by debug_mode in
// the config file - when false, every category is a no-op.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"textmathkb/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot      Category = "boot"      // Startup, config, wiring
	CategoryCatalog   Category = "catalog"   // Catalog loading and validation
	CategorySelection Category = "selection" // Persisted category load/save
	CategoryStore     Category = "store"     // Key-value store operations
	CategoryPicker    Category = "picker"    // Controller state transitions
	CategoryLayout    Category = "layout"    // Layout providers and augmentation
	CategoryUI        Category = "ui"        // Terminal front end
)

var (
	root     = zap.NewNop()
	loggers  = make(map[Category]*zap.Logger)
	settings config.LoggingConfig
	mu       sync.RWMutex
)

// Initialize builds the root logger from config.
// With debug_mode off nothing is built and every category stays a no-op.
func Initialize(cfg config.LoggingConfig) error {
	if !cfg.DebugMode {
		install(zap.NewNop(), cfg)
		return nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Sampling = nil
	if cfg.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		zc.OutputPaths = []string{cfg.File}
		zc.ErrorOutputPaths = []string{cfg.File}
	}

	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	install(logger, cfg)
	Get(CategoryBoot).Info("logging initialized",
		zap.String("level", level.String()),
		zap.String("file", cfg.File),
		zap.Int("category_filters", len(cfg.Categories)))
	return nil
}

// SetLogger replaces the root logger with every category enabled.
// Tests use it with zaptest/observer.
func SetLogger(logger *zap.Logger) {
	install(logger, config.LoggingConfig{DebugMode: true})
}

func install(logger *zap.Logger, cfg config.LoggingConfig) {
	mu.Lock()
	defer mu.Unlock()
	root = logger
	settings = cfg
	loggers = make(map[Category]*zap.Logger)
}

// IsDebugMode returns whether debug logging is enabled
func IsDebugMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return settings.DebugMode
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return settings.IsCategoryEnabled(string(category))
}

// Get returns (or creates) the logger for the given category.
// Returns a no-op logger if debug mode is disabled or category is disabled.
func Get(category Category) *zap.Logger {
	if !IsCategoryEnabled(category) {
		return zap.NewNop()
	}

	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}
	l := root.Named(string(category))
	loggers[category] = l
	return l
}

// Sync flushes buffered entries (call at shutdown)
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = root.Sync()
}

// =============================================================================
// TIMING HELPERS - For performance logging
// =============================================================================

// Timer helps measure operation duration
type Timer struct {
	category Category
	op       string
	start    time.Time
}

// StartTimer begins timing an operation
func StartTimer(category Category, operation string) *Timer {
	return &Timer{
		category: category,
		op:       operation,
		start:    time.Now(),
	}
}

// Stop ends the timer and logs the duration
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debug("operation completed",
		zap.String("op", t.op), zap.Duration("elapsed", elapsed))
	return elapsed
}

// StopWithThreshold logs warning if duration exceeds threshold
func (t *Timer) StopWithThreshold(threshold time.Duration) time.Duration {
	elapsed := time.Since(t.start)
	if elapsed > threshold {
		Get(t.category).Warn("operation slow",
			zap.String("op", t.op),
			zap.Duration("elapsed", elapsed),
			zap.Duration("threshold", threshold))
	} else {
		Get(t.category).Debug("operation completed",
			zap.String("op", t.op), zap.Duration("elapsed", elapsed))
	}
	return elapsed
}
