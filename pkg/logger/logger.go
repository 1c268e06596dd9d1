// Package logger provides logging functionality for the plugin builder.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

//go:generate mockgen -source=logger.go -destination=mocklogger.gen.go -package=logger

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted informational message.
	Logf(format string, args ...interface{})

	// Warnf logs a formatted message that deserves the operator's attention.
	Warnf(format string, args ...interface{})

	// Debugf logs a formatted message only shown in verbose mode.
	Debugf(format string, args ...interface{})

	// Errorf logs a formatted error message.
	Errorf(format string, args ...interface{})
}

// Level selects the minimum level a default logger prints.
type Level string

// Supported log levels.
const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// ParseLevel converts a configuration string into a Level.
// The bundler's level names are accepted too: "verbose" maps to debug,
// "warning" to warn and "silent" to error.
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(s)) {
	case LevelDebug, "verbose":
		return LevelDebug, nil
	case LevelInfo, "":
		return LevelInfo, nil
	case LevelWarn, "warning":
		return LevelWarn, nil
	case LevelError, "silent":
		return LevelError, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

func (l Level) charm() log.Level {
	switch l {
	case LevelDebug:
		return log.DebugLevel
	case LevelWarn:
		return log.WarnLevel
	case LevelError:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Warnf does nothing for noop logger.
func (n *noopLogger) Warnf(_ string, _ ...interface{}) {}

// Debugf does nothing for noop logger.
func (n *noopLogger) Debugf(_ string, _ ...interface{}) {}

// Errorf does nothing for noop logger.
func (n *noopLogger) Errorf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger backed by charmbracelet/log.
type defaultLogger struct {
	mu  sync.Mutex
	log *log.Logger
}

// NewDefaultLogger creates a new default logger writing to stderr at info level.
func NewDefaultLogger() Logger {
	return NewLogger(os.Stderr, LevelInfo)
}

// NewLogger creates a default logger writing to w at the given level.
func NewLogger(w io.Writer, level Level) Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix: "pbuild",
		Level:  level.charm(),
	})
	l.SetStyles(styles())
	return &defaultLogger{log: l}
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Prefix = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	s.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Bold(true).
		Foreground(lipgloss.Color("214"))
	return s
}

// Logf writes a formatted informational message.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log.Infof(format, args...)
}

// Warnf writes a formatted warning.
func (d *defaultLogger) Warnf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log.Warnf(format, args...)
}

// Debugf writes a formatted debug message.
func (d *defaultLogger) Debugf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log.Debugf(format, args...)
}

// Errorf writes a formatted error message.
func (d *defaultLogger) Errorf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.log.Errorf(format, args...)
}
