// Package errors defines the typed errors surfaced by prism's I/O boundary:
// configuration loading and writing rendered output. Rendering itself never
// fails.
package errors

import (
	"fmt"
)

// ParseError reports a configuration file that is not valid YAML.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError. A line of zero means unknown.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("config %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("config %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a configuration value that parsed but is not
// acceptable, such as an unknown color system or a malformed style.
type ValidationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, value, message string, err error) error {
	return &ValidationError{Field: field, Value: value, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Field != "" && e.Value != "":
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
	case e.Field != "":
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	default:
		return fmt.Sprintf("invalid configuration: %s", e.Message)
	}
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// WriteError wraps a failure of the output sink.
type WriteError struct {
	Op  string
	Err error
}

// NewWriteError constructs a WriteError for the named console operation.
func NewWriteError(op string, err error) error {
	return &WriteError{Op: op, Err: err}
}

func (e *WriteError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("write failed during %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("write failed: %v", e.Err)
}

// Unwrap exposes the sink error.
func (e *WriteError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
