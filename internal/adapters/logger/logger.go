// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/rgreenblatt/cmake-cli/internal/core/ports"
)

// messager describes an error that can report its own message without the
// chain. This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog with the pretty handler.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger
}

// New creates a new Logger writing to stderr.
func New() ports.Logger {
	handler := NewPrettyHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{logger: slog.New(handler)}
}

// SetOutput redirects the logger to the given writer. Used by tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.logger = slog.New(NewPrettyHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error, rendering a zerr chain hierarchically.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	var messages []string
	current := err
	for current != nil {
		if m, ok := current.(messager); ok {
			// zerr error: raw message without the chain.
			messages = append(messages, m.Message())
			current = errors.Unwrap(current)
		} else {
			messages = append(messages, current.Error())
			break
		}
	}

	lines := make([]string, 0, len(messages)+2)
	for i, msg := range messages {
		switch i {
		case 0:
			lines = append(lines, "Error: "+msg)
		case 1:
			lines = append(lines, "", "  Caused by:", "    "+msg)
		default:
			lines = append(lines, "    "+msg)
		}
	}

	l.logger.Error(strings.Join(lines, "\n"))
}
