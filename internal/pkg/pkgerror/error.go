package pkgerror

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPoolSize indicates that a worker pool was requested with a non-positive size.
	ErrInvalidPoolSize = errors.New("pool size must be a positive integer")
)

// Exit codes returned by the command line entrypoint.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitInvalidArg = 2
)

// Type classifies errors into high-level buckets used by the application.
type Type int

const (
	TypeInternal   Type = iota // Unexpected errors (e.g., a recovered panic).
	TypeIO                     // Filesystem errors (e.g., unreadable directory or file).
	TypeValidation             // Validation errors (e.g., bad command line input).
)

func (t Type) String() string {
	switch t {
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeIO:
		return "ERROR_TYPE_IO"
	case TypeInternal:
		return "ERROR_TYPE_INTERNAL"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier used for mapping errors to exit codes and log fields.
type Code int

const (
	CodeInternal        Code = iota // Internal or unspecified error.
	CodeInvalidArgument             // Error code for a malformed command line argument.
	CodeInvalidPoolSize             // Error code for a non-positive pool size.
	CodeDirectory                   // Error code for a directory that cannot be enumerated.
	CodeFileOpen                    // Error code for a file that cannot be opened.
	CodeFileRead                    // Error code for a read failing mid-stream.
)

func (c Code) String() string {
	switch c {
	case CodeInvalidArgument:
		return "ERROR_CODE_INVALID_ARGUMENT"
	case CodeInvalidPoolSize:
		return "ERROR_CODE_INVALID_POOL_SIZE"
	case CodeDirectory:
		return "ERROR_CODE_DIRECTORY"
	case CodeFileOpen:
		return "ERROR_CODE_FILE_OPEN"
	case CodeFileRead:
		return "ERROR_CODE_FILE_READ"
	case CodeInternal:
		return "ERROR_CODE_INTERNAL"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Error is a structured error used across the application.
//
// It can wrap an underlying error while also carrying a message,
// a high-level type, and a stable error code.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.msg != "" && e.err != nil {
		return e.msg + ": " + e.err.Error()
	}

	if e.err != nil {
		return e.err.Error()
	}

	if e.msg != "" {
		return e.msg
	}

	if e.errType == TypeValidation {
		return "Validation violation"
	}

	if e.errType == TypeIO {
		return "I/O failure"
	}

	if e.errType == TypeInternal {
		return "Internal error"
	}

	return "Unknown error"
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error Type: %s, Code: %s, Message: %s, Underlying Error: %v",
		e.errType.String(),
		e.code.String(),
		e.msg,
		e.err,
	)
}

// Msg returns the error message, if set.
func (e *Error) Msg() string {
	return e.msg
}

// Type returns the high-level error type.
func (e *Error) Type() Type {
	return e.errType
}

// Code returns the stable error code.
func (e *Error) Code() Code {
	return e.code
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// ExitCode maps the error type to a process exit code.
func (e *Error) ExitCode() int {
	if e.errType == TypeValidation {
		return ExitInvalidArg
	}
	return ExitFailure
}

// ExitCode returns the exit code for any error; nil maps to ExitOK and
// errors that are not *Error map to ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var perr *Error
	if errors.As(err, &perr) {
		return perr.ExitCode()
	}

	return ExitFailure
}

func new(err error, msg string, et Type, code Code) error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewInternal creates an internal-type error wrapping err.
func NewInternal(err error) error {
	return new(err, "", TypeInternal, CodeInternal)
}

// NewIO creates an I/O error for the given path, wrapping the underlying error.
func NewIO(err error, path string, code Code) error {
	return new(err, path, TypeIO, code)
}

// NewInvalidArgument creates a validation error for a malformed argument.
func NewInvalidArgument(name string, err error) error {
	return new(err, "invalid argument "+name, TypeValidation, CodeInvalidArgument)
}

// NewInvalidPoolSize creates a validation error for a non-positive pool size.
func NewInvalidPoolSize(size int) error {
	return new(ErrInvalidPoolSize, fmt.Sprintf("pool size %d", size), TypeValidation, CodeInvalidPoolSize)
}
