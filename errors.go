package filemethod

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a specific failure condition. Codes are string-based
// so callers can branch on kind without parsing messages.
type ErrorCode string

const (
	// CodeIO indicates the underlying filesystem operation failed: the path
	// does not exist, cannot be resolved, or the directory cannot be read.
	CodeIO ErrorCode = "IO_ERROR"

	// CodeNotADirectory indicates the resolved path exists but is not a
	// directory.
	CodeNotADirectory ErrorCode = "NOT_A_DIRECTORY"

	// CodeNotAFile indicates the resolved path exists but is not a regular
	// file.
	CodeNotAFile ErrorCode = "NOT_A_FILE"

	// CodeMissingExtension indicates the caller supplied an empty extension
	// filter.
	CodeMissingExtension ErrorCode = "MISSING_EXTENSION"

	// CodeUnknown is returned by CodeOf for errors that did not originate
	// from this library.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// Error is the failure value returned by every operation in this library.
// Path holds the path the failure refers to (resolved where resolution
// succeeded, as supplied otherwise); Err holds the underlying cause, if any.
type Error struct {
	Code ErrorCode
	Path string
	Err  error
}

// NewError builds an Error with the given code, subject path, and optional
// underlying cause.
func NewError(code ErrorCode, path string, err error) *Error {
	return &Error{Code: code, Path: path, Err: err}
}

func (e *Error) Error() string {
	switch e.Code {
	case CodeNotADirectory:
		return fmt.Sprintf("%s is not a directory", e.Path)
	case CodeNotAFile:
		return fmt.Sprintf("%s is not a regular file", e.Path)
	case CodeMissingExtension:
		return "extension is not specified"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Code)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf extracts the ErrorCode from err, looking through wrapping.
// It returns CodeUnknown for nil and for errors not produced by this
// library.
func CodeOf(err error) ErrorCode {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return CodeUnknown
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
