// Package logging provides config-driven categorized logging for textreport.
// Logs go to stderr only, so the report on stdout is never interleaved with
// diagnostics. Logging is controlled by debug_mode in the config file (or
// --verbose) - when both are off, every logger is a no-op.
package logging

import (
	"os"
	"sync"

	"textreport/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, config loading
	CategoryReport Category = "report" // Report sections
)

var (
	root    = zap.NewNop()
	enabled bool
	cfg     config.LoggingConfig
	mu      sync.RWMutex
)

// ParseLevel maps a config level string to a zap level. Unknown values
// fall back to info.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Initialize builds the process logger from the logging config.
// verbose forces debug level and enables logging even when debug_mode is
// off. A nil sink means stderr.
func Initialize(lc config.LoggingConfig, verbose bool, sink zapcore.WriteSyncer) *zap.Logger {
	mu.Lock()
	defer mu.Unlock()

	cfg = lc
	if verbose && !cfg.DebugMode {
		// --verbose turns on every category
		cfg.DebugMode = true
		cfg.Categories = nil
	}

	if !cfg.DebugMode {
		enabled = false
		root = zap.NewNop()
		return root
	}

	level := ParseLevel(cfg.Level)
	if verbose {
		level = zapcore.DebugLevel
	}
	if sink == nil {
		sink = zapcore.Lock(os.Stderr)
	}

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	enabled = true
	root = zap.New(zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(level)))
	return root
}

// IsDebugMode returns whether any logging is enabled
func IsDebugMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// Get returns a logger named after the category.
// Returns a no-op logger if debug mode is disabled or category is disabled.
func Get(category Category) *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()

	if !enabled || !cfg.IsCategoryEnabled(string(category)) {
		return zap.NewNop()
	}
	return root.Named(string(category))
}

// Sync flushes the process logger.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = root.Sync()
}

// Boot logs an info message to the boot category.
func Boot(msg string, fields ...zap.Field) {
	Get(CategoryBoot).Info(msg, fields...)
}

// BootDebug logs a debug message to the boot category.
func BootDebug(msg string, fields ...zap.Field) {
	Get(CategoryBoot).Debug(msg, fields...)
}
