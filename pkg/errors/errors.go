// Package errors provides structured error types for the Cardpress application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: Resource not found
//   - UPSTREAM_*: Failures of external services (AI suggestions)
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "invalid card name: %s", name)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeUpstream, origErr, "balance suggestion failed")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidAttributes Code = "INVALID_ATTRIBUTES"
	ErrCodeInvalidDesign     Code = "INVALID_DESIGN"
	ErrCodeInvalidUpload     Code = "INVALID_UPLOAD"

	// Title conflicts are distinct from plain validation: callers branch on
	// them (open the existing game, rename, cancel) instead of failing.
	ErrCodeDuplicateTitle Code = "DUPLICATE_TITLE"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeGameNotFound Code = "GAME_NOT_FOUND"
	ErrCodeCardNotFound Code = "CARD_NOT_FOUND"

	// Upstream (AI) errors
	ErrCodeUpstream Code = "UPSTREAM_ERROR"
	ErrCodeTimeout  Code = "TIMEOUT"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
// Field names the offending request field for validation errors, so the
// editor can attach the message to the right input.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Field   string // Offending field for validation errors (optional)
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

// NewField creates a validation Error attached to a specific request field.
func NewField(code Code, field, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Field:   field,
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

// GetField extracts the field name from a validation error, if any.
func GetField(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
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

// DuplicateTitleError reports a game title collision. It carries the ID of
// the already existing game so callers can offer to open it instead.
type DuplicateTitleError struct {
	Title          string
	ExistingGameID int64
}

// Error implements the error interface.
func (e *DuplicateTitleError) Error() string {
	return fmt.Sprintf("a game titled %q already exists (id %d)", e.Title, e.ExistingGameID)
}

// Code returns the error code for this error type.
func (e *DuplicateTitleError) Code() Code {
	return ErrCodeDuplicateTitle
}

// AsDuplicateTitle extracts a DuplicateTitleError from an error chain.
func AsDuplicateTitle(err error) (*DuplicateTitleError, bool) {
	var e *DuplicateTitleError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
