package scan

import (
	"errors"
	"fmt"
)

// ErrorReason categorizes why a scan request was rejected
type ErrorReason int

const (
	ErrorInvalidRoot ErrorReason = iota
	ErrorInvalidParameter
	ErrorUnknownMode
)

// String returns a human-readable error reason
func (e ErrorReason) String() string {
	switch e {
	case ErrorInvalidRoot:
		return "Invalid root"
	case ErrorInvalidParameter:
		return "Invalid parameter"
	case ErrorUnknownMode:
		return "Unknown scan mode"
	default:
		return "Unspecified error"
	}
}

// Error is a rejected scan request. Per-file failures during a walk are
// never surfaced this way; they are recovered locally by omission.
type Error struct {
	Reason ErrorReason
	Field  string // offending parameter, for ErrorInvalidParameter
	Path   string // attempted resolved root, for ErrorInvalidRoot
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	switch e.Reason {
	case ErrorInvalidRoot:
		return fmt.Sprintf("%s: %s (resolved to %s)", e.Reason, e.Detail, e.Path)
	case ErrorInvalidParameter:
		return fmt.Sprintf("%s %q: %s", e.Reason, e.Field, e.Detail)
	case ErrorUnknownMode:
		return fmt.Sprintf("%s: %q", e.Reason, e.Detail)
	default:
		return fmt.Sprintf("%s: %s", e.Reason, e.Detail)
	}
}

func newInvalidRoot(path, detail string) *Error {
	return &Error{Reason: ErrorInvalidRoot, Path: path, Detail: detail}
}

func newInvalidParameter(field, detail string) *Error {
	return &Error{Reason: ErrorInvalidParameter, Field: field, Detail: detail}
}

func newUnknownMode(mode string) *Error {
	return &Error{Reason: ErrorUnknownMode, Detail: mode}
}

// IsInvalidRoot reports whether err is a rejected root path.
func IsInvalidRoot(err error) bool {
	return hasReason(err, ErrorInvalidRoot)
}

// IsInvalidParameter reports whether err is a malformed parameter.
func IsInvalidParameter(err error) bool {
	return hasReason(err, ErrorInvalidParameter)
}

// IsUnknownMode reports whether err is an unrecognized scan mode.
func IsUnknownMode(err error) bool {
	return hasReason(err, ErrorUnknownMode)
}

func hasReason(err error, reason ErrorReason) bool {
	var se *Error
	return errors.As(err, &se) && se.Reason == reason
}
