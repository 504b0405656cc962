package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
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
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConfigurationError reports a UI that cannot be built: a variant list
// without a catch-all, diverging breakpoints, or a component rejecting its
// configuration. These are fatal when the UI is assembled.
type ConfigurationError struct {
	Subject string
	Message string
	Err     error
}

// NewConfigurationError constructs a ConfigurationError for the given subject
// (a variant name, component id or "variants" for list-level problems).
func NewConfigurationError(subject, message string, err error) error {
	return &ConfigurationError{Subject: subject, Message: message, Err: err}
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = fmt.Sprintf("%s: %v", msg, e.Err)
		}
	}
	if e.Subject != "" {
		return fmt.Sprintf("configuration error [%s]: %s", e.Subject, msg)
	}
	return fmt.Sprintf("configuration error: %s", msg)
}

// Unwrap exposes the underlying error.
func (e *ConfigurationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// HandlerError wraps a failure raised by an event listener. Dispatchers log
// it and keep delivering to the remaining listeners.
type HandlerError struct {
	Event string
	Err   error
}

// NewHandlerError constructs a HandlerError for the given event type.
func NewHandlerError(event string, err error) error {
	return &HandlerError{Event: event, Err: err}
}

func (e *HandlerError) Error() string {
	if e == nil {
		return ""
	}
	if e.Event != "" {
		return fmt.Sprintf("handler error on %s: %v", e.Event, e.Err)
	}
	return fmt.Sprintf("handler error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *HandlerError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
