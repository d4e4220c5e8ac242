// Package logger provides structured logging for lintguard.
package logger

import (
	"io"
	"log/slog"
)

// Logger is the logging interface used across lintguard.
// Arguments after the message are alternating key/value pairs.
type Logger interface {
	// Debug logs a message at debug level.
	Debug(msg string, args ...any)

	// Info logs a message at info level.
	Info(msg string, args ...any)

	// Warn logs a message at warning level.
	Warn(msg string, args ...any)

	// Error logs a message at error level.
	Error(msg string, args ...any)
}

// slogLogger implements Logger on top of log/slog.
type slogLogger struct {
	inner *slog.Logger
}

// New creates a Logger writing text output to w at the given level.
func New(w io.Writer, level slog.Level) Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	return &slogLogger{
		inner: slog.New(handler),
	}
}

func (l *slogLogger) Debug(msg string, args ...any) {
	l.inner.Debug(msg, args...)
}

func (l *slogLogger) Info(msg string, args ...any) {
	l.inner.Info(msg, args...)
}

func (l *slogLogger) Warn(msg string, args ...any) {
	l.inner.Warn(msg, args...)
}

func (l *slogLogger) Error(msg string, args ...any) {
	l.inner.Error(msg, args...)
}

// noOpLogger discards all log output.
type noOpLogger struct{}

// NewNoOpLogger creates a Logger that discards everything. Intended for tests.
func NewNoOpLogger() Logger {
	return &noOpLogger{}
}

func (*noOpLogger) Debug(string, ...any) {}
func (*noOpLogger) Info(string, ...any)  {}
func (*noOpLogger) Warn(string, ...any)  {}
func (*noOpLogger) Error(string, ...any) {}
