// Package logging provides the console logger behind the ports.Logger
// interface.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"pipeforge/internal/ports"
)

// ConsoleLogger logs structured messages to a writer, one line per entry.
type ConsoleLogger struct {
	mu     *sync.Mutex
	out    io.Writer
	level  ports.Level
	fields []ports.Field
}

// Option configures the console logger.
type Option func(*ConsoleLogger)

// WithOutput sets the output writer (default: os.Stderr).
func WithOutput(w io.Writer) Option {
	return func(l *ConsoleLogger) {
		l.out = w
	}
}

// WithLevel sets the minimum log level (default: Info).
func WithLevel(level ports.Level) Option {
	return func(l *ConsoleLogger) {
		l.level = level
	}
}

// NewConsoleLogger creates a console logger.
func NewConsoleLogger(opts ...Option) *ConsoleLogger {
	l := &ConsoleLogger{
		mu:    &sync.Mutex{},
		out:   os.Stderr,
		level: ports.LevelInfo,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Debug logs a debug message.
func (l *ConsoleLogger) Debug(msg string, fields ...ports.Field) {
	l.log(ports.LevelDebug, msg, fields)
}

// Info logs an informational message.
func (l *ConsoleLogger) Info(msg string, fields ...ports.Field) {
	l.log(ports.LevelInfo, msg, fields)
}

// Warn logs a warning message.
func (l *ConsoleLogger) Warn(msg string, fields ...ports.Field) {
	l.log(ports.LevelWarn, msg, fields)
}

// Error logs an error message.
func (l *ConsoleLogger) Error(msg string, fields ...ports.Field) {
	l.log(ports.LevelError, msg, fields)
}

// With returns a logger that adds the given fields to every entry.
func (l *ConsoleLogger) With(fields ...ports.Field) ports.Logger {
	combined := make([]ports.Field, 0, len(l.fields)+len(fields))
	combined = append(combined, l.fields...)
	combined = append(combined, fields...)
	return &ConsoleLogger{
		mu:     l.mu,
		out:    l.out,
		level:  l.level,
		fields: combined,
	}
}

func (l *ConsoleLogger) log(level ports.Level, msg string, fields []ports.Field) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.out, "%-5s %s", level, msg)
	for _, f := range l.fields {
		fmt.Fprintf(l.out, " %s=%v", f.Key, f.Value)
	}
	for _, f := range fields {
		fmt.Fprintf(l.out, " %s=%v", f.Key, f.Value)
	}
	fmt.Fprintln(l.out)
}
