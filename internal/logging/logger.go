package logging

import (
	"errors"
	"fmt"
	"io"
	"log"
)

// Color constants for logging
const (
	ColorRed     = "\033[31m"
	ColorGreen   = "\033[32m"
	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
	ColorReset   = "\033[0m"
)

// Logger writes tagged lines such as "[APP] [INFO] solver ready".
type Logger struct {
	tag   string
	color string
	debug bool
	out   *log.Logger
}

// New creates a logger for tag. An empty color disables coloring.
func New(tag, color string, w io.Writer) (*Logger, error) {
	if tag == "" {
		return nil, errors.New("logger tag is required")
	}
	if w == nil {
		return nil, errors.New("logger writer is required")
	}
	return &Logger{
		tag:   tag,
		color: color,
		out:   log.New(w, "", log.LstdFlags),
	}, nil
}

// Discard returns a logger that drops every line.
func Discard() *Logger {
	l, _ := New("DISCARD", "", io.Discard)
	return l
}

// WithDebug returns a copy of l that also emits Debug lines when enabled.
func (l *Logger) WithDebug(enabled bool) *Logger {
	c := *l
	c.debug = enabled
	return &c
}

// Info logs a message at INFO level.
func (l *Logger) Info(msg string) { l.write("INFO", msg) }

// Error logs a message at ERROR level.
func (l *Logger) Error(msg string) { l.write("ERROR", msg) }

// Debug logs a message at DEBUG level when debug output is enabled.
func (l *Logger) Debug(msg string) {
	if l.debug {
		l.write("DEBUG", msg)
	}
}

// Infof formats and logs at INFO level.
func (l *Logger) Infof(format string, args ...any) { l.Info(fmt.Sprintf(format, args...)) }

// Errorf formats and logs at ERROR level.
func (l *Logger) Errorf(format string, args ...any) { l.Error(fmt.Sprintf(format, args...)) }

// Debugf formats and logs at DEBUG level.
func (l *Logger) Debugf(format string, args ...any) {
	if l.debug {
		l.Debug(fmt.Sprintf(format, args...))
	}
}

func (l *Logger) write(level, msg string) {
	if l.color == "" {
		l.out.Printf("[%s] [%s] %s", l.tag, level, msg)
		return
	}
	l.out.Printf("%s[%s]%s [%s] %s", l.color, l.tag, ColorReset, level, msg)
}
