// Package logger provides the slog-backed implementation of ports.Logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/den/internal/core/ports"
)

// Logger writes text-formatted log lines through log/slog.
type Logger struct {
	logger *slog.Logger
	mu     sync.RWMutex
}

// New creates a Logger on stderr. Stdout stays reserved for command
// results so output remains pipeable.
func New() ports.Logger {
	return &Logger{logger: newTextLogger(os.Stderr)}
}

// SetOutput redirects subsequent log lines to w.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = newTextLogger(w)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a non-fatal problem the user should know about.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs a failed operation with its error attached.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", "error", err)
}

func newTextLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
