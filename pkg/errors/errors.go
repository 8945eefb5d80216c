package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
)

// ErrorType represents different types of errors that can occur
type ErrorType string

const (
	ErrorTypeNotFound ErrorType = "not_found"
	ErrorTypeParsing  ErrorType = "parsing"
	ErrorTypeWrite    ErrorType = "write"
	ErrorTypeConfig   ErrorType = "config"
	ErrorTypeUnknown  ErrorType = "unknown"
)

// Error is a failure tied to a file on disk. Path is empty for configuration
// problems that no single file caused.
type Error struct {
	Type ErrorType
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return fmt.Sprintf("%s error: %s", e.Type, e.Path)
	case e.Path == "":
		return fmt.Sprintf("%s error: %v", e.Type, e.Err)
	default:
		return fmt.Sprintf("%s error: %s: %v", e.Type, e.Path, e.cause())
	}
}

// cause drops the operation and path of an *fs.PathError on the same file,
// which Error already names
func (e *Error) cause() error {
	if pe, ok := e.Err.(*fs.PathError); ok && pe.Path == e.Path {
		return pe.Err
	}
	return e.Err
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports a required input file that does not exist
func NotFound(path string, err error) *Error {
	return &Error{Type: ErrorTypeNotFound, Path: path, Err: err}
}

// Parsing reports an input file whose contents could not be interpreted
func Parsing(path string, err error) *Error {
	return &Error{Type: ErrorTypeParsing, Path: path, Err: err}
}

// Write reports a failure writing an output file
func Write(path string, err error) *Error {
	return &Error{Type: ErrorTypeWrite, Path: path, Err: err}
}

// Config reports an unreadable or invalid configuration
func Config(path string, err error) *Error {
	return &Error{Type: ErrorTypeConfig, Path: path, Err: err}
}

// Wrap classifies err by its cause. fs.ErrNotExist becomes a not_found error.
func Wrap(path string, err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return NotFound(path, err)
	}
	return &Error{Type: ErrorTypeUnknown, Path: path, Err: err}
}

// TypeOf returns the ErrorType carried by err, or ErrorTypeUnknown
func TypeOf(err error) ErrorType {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type
	}
	return ErrorTypeUnknown
}

// IsNotFound checks if err reports a missing file
func IsNotFound(err error) bool {
	return TypeOf(err) == ErrorTypeNotFound
}

// IsConfig checks if err reports a configuration problem
func IsConfig(err error) bool {
	return TypeOf(err) == ErrorTypeConfig
}
