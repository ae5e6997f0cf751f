package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Pattern source errors
	ErrSourceNotFound ErrorCode = "SOURCE_NOT_FOUND"
	ErrSourceRead     ErrorCode = "SOURCE_READ"

	// Settings document errors
	ErrJSONParse         ErrorCode = "JSON_PARSE"
	ErrMalformedSettings ErrorCode = "MALFORMED_SETTINGS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// FileSystem errors
	ErrFileAccess      ErrorCode = "FILE_ACCESS"
	ErrDirCreate       ErrorCode = "DIR_CREATE"
	ErrWritePermission ErrorCode = "WRITE_PERMISSION"
)

// GooseError represents a structured error with code and details
type GooseError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GooseError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GooseError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GooseError) Is(target error) bool {
	var targetErr *GooseError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GooseError with the given code and message
func New(code ErrorCode, message string) *GooseError {
	return &GooseError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GooseError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GooseError {
	return &GooseError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GooseError
func Wrap(err error, code ErrorCode, message string) *GooseError {
	if err == nil {
		return nil
	}
	return &GooseError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GooseError {
	if err == nil {
		return nil
	}
	return &GooseError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GooseError) WithDetail(key string, value interface{}) *GooseError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var gooseErr *GooseError
	if errors.As(err, &gooseErr) {
		return gooseErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GooseError
func GetErrorCode(err error) ErrorCode {
	var gooseErr *GooseError
	if errors.As(err, &gooseErr) {
		return gooseErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GooseError
func GetErrorDetails(err error) map[string]interface{} {
	var gooseErr *GooseError
	if errors.As(err, &gooseErr) {
		return gooseErr.Details
	}
	return nil
}
