// Package ports defines the interfaces the CLI depends on; adapters under
// internal/adapters provide the implementations.
package ports

// Level represents the severity of a log message.
type Level int

const (
	// LevelDebug is for verbose diagnostics.
	LevelDebug Level = iota
	// LevelInfo is for general operational information.
	LevelInfo
	// LevelWarn is for potentially problematic situations.
	LevelWarn
	// LevelError is for error conditions.
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Field is a structured logging field.
type Field struct {
	Key   string
	Value any
}

// F creates a new Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger is the interface the CLI logs through.
type Logger interface {
	// Debug logs a debug message with optional structured fields.
	Debug(msg string, fields ...Field)

	// Info logs an informational message with optional structured fields.
	Info(msg string, fields ...Field)

	// Warn logs a warning message with optional structured fields.
	Warn(msg string, fields ...Field)

	// Error logs an error message with optional structured fields.
	Error(msg string, fields ...Field)

	// With returns a Logger that adds the given fields to every entry.
	With(fields ...Field) Logger
}

// NopLogger discards everything.
type NopLogger struct{}

// Debug does nothing.
func (NopLogger) Debug(string, ...Field) {}

// Info does nothing.
func (NopLogger) Info(string, ...Field) {}

// Warn does nothing.
func (NopLogger) Warn(string, ...Field) {}

// Error does nothing.
func (NopLogger) Error(string, ...Field) {}

// With returns the logger unchanged.
func (n NopLogger) With(...Field) Logger { return n }
