package main

import "fmt"

// usageError is a CLI-facing error with an actionable suggestion.
type usageError struct {
	Message    string
	Suggestion string
	Underlying error
}

// Error returns the plain message.
func (e *usageError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error.
func (e *usageError) Unwrap() error {
	return e.Underlying
}

// newUsageError creates a usageError.
func newUsageError(message, suggestion string, underlying error) *usageError {
	return &usageError{Message: message, Suggestion: suggestion, Underlying: underlying}
}

// fileReadError wraps a config file read failure with a suggestion.
func fileReadError(path string, err error) error {
	return newUsageError(
		fmt.Sprintf("cannot read configuration file %q", path),
		"check that the file exists and is readable",
		err,
	)
}
