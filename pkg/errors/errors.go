// Package errors provides structured error types for glyphviz.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow the taxonomy of the layout/encoding pipeline:
//   - CONFIG_*: a caller asked for something the data cannot provide
//     (missing attribute, too many hive groups, bad option value)
//   - DATA_*: the graph and its derived tables disagree with each other
//     (dangling edges, duplicate node identifiers)
//   - INTERNAL_*: unexpected internal errors
//
// Degenerate-input conditions (single-valued continuous columns, category
// counts beyond palette capacity) are deliberately NOT errors; they are
// reported as [Warning] values next to a valid result.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMissingAttribute, "no column %q in node table", name)
//	if errors.Is(err, errors.ErrCodeMissingAttribute) {
//	    // Handle configuration error
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors: the request cannot be satisfied by the data.
	ErrCodeMissingAttribute Code = "CONFIG_MISSING_ATTRIBUTE"
	ErrCodeTooManyGroups    Code = "CONFIG_TOO_MANY_GROUPS"
	ErrCodeBadCoordinates   Code = "CONFIG_BAD_COORDINATES"
	ErrCodeBadValue         Code = "CONFIG_BAD_VALUE"
	ErrCodeBadFamily        Code = "CONFIG_BAD_FAMILY"
	ErrCodeBadFormat        Code = "CONFIG_BAD_FORMAT"

	// Data-consistency errors: graph and derived tables disagree.
	ErrCodeDanglingEdge  Code = "DATA_DANGLING_EDGE"
	ErrCodeDuplicateNode Code = "DATA_DUPLICATE_NODE"
	ErrCodeUnknownNode   Code = "DATA_UNKNOWN_NODE"

	// Internal errors.
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
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsConfiguration reports whether err carries any CONFIG_* code.
func IsConfiguration(err error) bool {
	return hasPrefix(err, "CONFIG_")
}

// IsDataConsistency reports whether err carries any DATA_* code.
func IsDataConsistency(err error) bool {
	return hasPrefix(err, "DATA_")
}

func hasPrefix(err error, prefix string) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return strings.HasPrefix(string(e.Code), prefix)
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
