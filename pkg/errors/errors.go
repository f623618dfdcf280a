// Package errors provides structured error types for the radii editor.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the editor and the HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: Resource not found
//   - STORAGE_ERROR, TIMEOUT: Persistence backend failures
//   - INTERNAL_*: Unexpected internal errors
//   - UNSUPPORTED: Missing host support (clipboard)
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidMode, "mode must be 1-4, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidMode) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeStorage, origErr, "save %s", key)
package errors

import (
	"context"
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidCorner Code = "INVALID_CORNER"
	ErrCodeInvalidAxis   Code = "INVALID_AXIS"
	ErrCodeInvalidMode   Code = "INVALID_MODE"
	ErrCodeInvalidShape  Code = "INVALID_SHAPE"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidKey    Code = "INVALID_KEY"

	// Resource not found errors
	ErrCodePresetNotFound  Code = "PRESET_NOT_FOUND"
	ErrCodeSessionNotFound Code = "SESSION_NOT_FOUND"

	// Persistence errors
	ErrCodeStorage Code = "STORAGE_ERROR"
	ErrCodeTimeout Code = "TIMEOUT"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"

	// A feature the host system cannot provide, e.g. no clipboard.
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsInvalid reports whether err carries one of the INVALID_* codes.
func IsInvalid(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidCorner, ErrCodeInvalidAxis,
		ErrCodeInvalidMode, ErrCodeInvalidShape, ErrCodeInvalidFormat, ErrCodeInvalidKey:
		return true
	}
	return false
}

// IsNotFound reports whether err carries one of the not-found codes.
func IsNotFound(err error) bool {
	switch GetCode(err) {
	case ErrCodePresetNotFound, ErrCodeSessionNotFound:
		return true
	}
	return false
}

// StorageCode classifies a persistence backend failure: TIMEOUT when the
// operation ran out its deadline, STORAGE_ERROR otherwise.
func StorageCode(err error) Code {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrCodeTimeout
	}
	return ErrCodeStorage
}
