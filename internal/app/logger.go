package app

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	loggerMu     sync.RWMutex
	globalLogger = NewLogger("info", os.Stderr)
)

// ParseLevel maps a level name to a slog level. Unknown names map to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a text logger writing to w at the given level
func NewLogger(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// WithModule tags every record of logger with a module attribute
func WithModule(logger *slog.Logger, module string) *slog.Logger {
	return logger.With("module", module)
}

// SetLogger sets the global logger for app layer
func SetLogger(logger *slog.Logger) {
	if logger == nil {
		return
	}
	loggerMu.Lock()
	globalLogger = logger
	loggerMu.Unlock()
}

// GetLogger returns the current logger
func GetLogger() *slog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return globalLogger
}

// SetupLogger creates a logger for level writing to w and installs it globally
func SetupLogger(level string, w io.Writer) *slog.Logger {
	logger := NewLogger(level, w)
	SetLogger(logger)
	return logger
}
