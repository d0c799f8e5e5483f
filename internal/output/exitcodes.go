// Package output provides structured output and error handling for the bookmarkgen CLI.
package output

import "errors"

// Exit codes:
// 0 = Success (repeated-bookmark warnings do not change it)
// 1 = Usage error (missing or invalid flags)
// 2 = Input parse error (bookmarks document unreadable or malformed)
// 3 = Output write error (exchange mapping or stub files)
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitInputError  = 2
	ExitOutputError = 3
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
// The cause is appended when present.
func (e *ExitError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an error for usage problems (exit code 1).
func NewUserError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
	}
}

// NewInputError wraps a failure to read or parse the bookmarks document (exit code 2).
func NewInputError(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitInputError,
		Message: message,
		Cause:   cause,
	}
}

// NewOutputError wraps a failure to write or remove an output file (exit code 3).
func NewOutputError(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitOutputError,
		Message: message,
		Cause:   cause,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUserError for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitUserError
}
