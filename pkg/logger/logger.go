// Package logger provides structured logging setup using Go's slog package.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Options configures the logger setup.
type Options struct {
	Level   string // debug, info, warn, error
	Console bool   // pretty print for dev (LOG_FORMAT=console)
}

// Logger is a thin printf-style wrapper around slog. The wrapper exists so
// adapters (kafka, gin) take a single dependency instead of the global default.
type Logger struct {
	sl *slog.Logger
}

// New creates a logger with the given level and installs it as the slog default.
func New(level string) *Logger {
	return NewWithOptions(Options{Level: level})
}

// NewWithOptions creates a logger with full options.
func NewWithOptions(opts Options) *Logger {
	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(opts.Level),
	}

	var handler slog.Handler
	if opts.Console {
		handler = slog.NewTextHandler(os.Stdout, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, handlerOpts)
	}

	// Wrap with correlation handler to auto-inject correlation_id from context
	handler = NewCorrelationHandler(handler)

	sl := slog.New(handler)
	slog.SetDefault(sl)
	return &Logger{sl: sl}
}

func (l *Logger) Debug(format string, args ...any) {
	l.sl.Debug(fmt.Sprintf(format, args...))
}

func (l *Logger) Info(format string, args ...any) {
	l.sl.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	l.sl.Warn(fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	l.sl.Error(fmt.Sprintf(format, args...))
}

func (l *Logger) Fatal(err error) {
	l.sl.Error(err.Error())
	os.Exit(1)
}

func (l *Logger) DebugCtx(ctx context.Context, format string, args ...any) {
	l.sl.DebugContext(ctx, fmt.Sprintf(format, args...))
}

func (l *Logger) InfoCtx(ctx context.Context, format string, args ...any) {
	l.sl.InfoContext(ctx, fmt.Sprintf(format, args...))
}

func (l *Logger) ErrorCtx(ctx context.Context, format string, args ...any) {
	l.sl.ErrorContext(ctx, fmt.Sprintf(format, args...))
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
