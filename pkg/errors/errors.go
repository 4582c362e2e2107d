// Package errors provides structured error types for cargo-license.
//
// Every failure that reaches the command line carries a [Code] so the front end
// can pick the right exit status and message without inspecting error strings:
//   - INVALID_*: bad command-line input
//   - NOT_FOUND_*: missing files or registry entries
//   - OUTPUT_*: failures writing the report
//   - NETWORK_*, INTERNAL_*: everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeLockfileNotFound, "no Cargo.lock above %s", dir)
//	if errors.Is(err, errors.ErrCodeLockfileNotFound) {
//	    // Tell the user to build the project first
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeOutput, origErr, "write report")
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
	ErrCodeUsage           Code = "INVALID_USAGE"
	ErrCodeInvalidManifest Code = "INVALID_MANIFEST"
	ErrCodeInvalidLockfile Code = "INVALID_LOCKFILE"

	// Resource not found errors
	ErrCodeLockfileNotFound Code = "NOT_FOUND_LOCKFILE"
	ErrCodeFileNotFound     Code = "NOT_FOUND_FILE"

	// Output errors
	ErrCodeOutput Code = "OUTPUT_WRITE"

	// Network errors
	ErrCodeNetwork Code = "NETWORK_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
// It walks the whole chain, so an outer error with a different code does not
// hide an inner match.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the outermost error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message and cause without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s", e.Message, UserMessage(e.Cause))
		}
		return e.Message
	}
	return err.Error()
}
