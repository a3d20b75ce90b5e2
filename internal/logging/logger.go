// Package logging provides config-driven categorized logging for numfield.
// Every category is a named child of one zap logger. Logging is controlled
// by debug_mode: when false, every category returns a no-op logger.
// While the terminal UI owns the screen, logs go to a file only.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/subsystem.
type Category string

const (
	CategoryBoot   Category = "boot"   // startup, shutdown
	CategoryConfig Category = "config" // config load, reload, watcher
	CategoryFilter Category = "filter" // canonicalization passes
	CategoryBinder Category = "binder" // key, paste and input sequencing
	CategoryCalc   Category = "calc"   // commission calculation
	CategoryUI     Category = "ui"     // calculator screen
)

// Options mirrors config.LoggingConfig so this package has no dependency
// on the config package.
type Options struct {
	DebugMode  bool
	Level      string
	File       string
	Categories map[string]bool
}

var (
	mu        sync.RWMutex
	root      = zap.NewNop()
	opts      Options
	sessionID = uuid.NewString()
	loggers   = make(map[Category]*zap.SugaredLogger)
)

// Initialize builds the root logger from o. It may be called again to
// apply new options; previously handed-out loggers keep their old core.
func Initialize(o Options) error {
	if !o.DebugMode {
		Replace(zap.NewNop(), o)
		return nil
	}

	level, err := zapcore.ParseLevel(o.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Sampling = nil
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if o.File != "" {
		if err := os.MkdirAll(filepath.Dir(o.File), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		cfg.OutputPaths = []string{o.File}
		cfg.ErrorOutputPaths = []string{o.File}
	}

	l, err := cfg.Build(zap.Fields(zap.String("session", SessionID())))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	Replace(l, o)

	boot := Get(CategoryBoot)
	boot.Infow("logging initialized", "level", level.String(), "file", o.File)
	for cat, enabled := range o.Categories {
		boot.Debugw("category toggle", "category", cat, "enabled", enabled)
	}
	return nil
}

// Replace installs l as the root logger. Tests use it with an observer core.
func Replace(l *zap.Logger, o Options) {
	mu.Lock()
	defer mu.Unlock()
	_ = root.Sync()
	root = l
	opts = o
	loggers = make(map[Category]*zap.SugaredLogger)
}

// SessionID identifies this process run on every log line.
func SessionID() string {
	return sessionID
}

// IsDebugMode returns whether logging is on at all.
func IsDebugMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return opts.DebugMode
}

// IsCategoryEnabled returns whether a specific category is enabled.
// Categories missing from the toggle map are enabled in debug mode.
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return categoryEnabled(category)
}

func categoryEnabled(category Category) bool {
	if !opts.DebugMode {
		return false
	}
	enabled, exists := opts.Categories[string(category)]
	return !exists || enabled
}

// Get returns (or creates) the logger for category. A disabled category
// gets a no-op logger.
func Get(category Category) *zap.SugaredLogger {
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

	var l *zap.SugaredLogger
	if categoryEnabled(category) {
		l = root.Named(string(category)).Sugar()
	} else {
		l = zap.NewNop().Sugar()
	}
	loggers[category] = l
	return l
}

// Sync flushes the root logger.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = root.Sync()
}

// Timer helps measure operation duration.
type Timer struct {
	category Category
	op       string
	start    time.Time
}

// StartTimer begins timing an operation.
func StartTimer(category Category, operation string) *Timer {
	return &Timer{
		category: category,
		op:       operation,
		start:    time.Now(),
	}
}

// Stop ends the timer and logs the duration at debug level.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debugw(t.op+" completed", "elapsed", elapsed)
	return elapsed
}

// StopWithThreshold logs a warning if the duration exceeds threshold.
func (t *Timer) StopWithThreshold(threshold time.Duration) time.Duration {
	elapsed := time.Since(t.start)
	if elapsed > threshold {
		Get(t.category).Warnw(t.op+" was slow", "elapsed", elapsed, "threshold", threshold)
	} else {
		Get(t.category).Debugw(t.op+" completed", "elapsed", elapsed)
	}
	return elapsed
}
