// Package errors provides structured error codes shared by the chaos-agent
// packages and maps them to process exit codes.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a failure.
type ErrorCode string

// Error codes as constants
const (
	// ErrCodeInvalidArgument covers any operator input outside the accepted
	// sets: intent, topology, transport, format, seed or flag syntax.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// ErrCodeConfigurationGap means the intent enumeration and the scenario
	// catalog disagree. It is only raised at startup.
	ErrCodeConfigurationGap ErrorCode = "CONFIGURATION_GAP"

	// ErrCodeInternal is everything else.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// Exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// StructuredError carries an ErrorCode alongside a message and optional cause.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a StructuredError without a cause.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message}
}

// Wrap creates a StructuredError that wraps cause.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause}
}

// CodeOf returns the code of the outermost StructuredError in err's chain,
// or ErrCodeInternal when there is none.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch CodeOf(err) {
	case ErrCodeInvalidArgument:
		return ExitUsage
	default:
		return ExitFailure
	}
}
