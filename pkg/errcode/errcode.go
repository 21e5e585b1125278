// Package errcode defines error codes and the error type used across nmtkit.
package errcode

import "fmt"

// Code identifies a class of error. Codes are used by the CLI layer to
// decide how an error is reported; they are not shown to users directly.
type Code int

const (
	UnknownError Code = iota

	// File system errors
	CreateDirError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Model configuration errors
	ConfigFileMissingError
	ConfigNameClashError
	ConfigConsistencyError
	ConfigFlagError
	ConfigChoiceError
	ConfigVersionError

	// Dictionary errors
	DictReadError
	DictEmptyError
)

// Error carries a code, a user-facing message and an optional wrapped cause.
type Error struct {
	Code Code
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error with a formatted user-facing message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error that wraps an underlying cause.
func Wrap(code Code, err error, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...), Err: err}
}
