package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category with a stable string value
// that tests and callers can match on.
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"
	ErrPermission    ErrorCode = "PERMISSION"

	// Registry configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Workspace errors
	ErrWorkspaceNotFound ErrorCode = "WORKSPACE_NOT_FOUND"
	ErrWorkspaceInvalid  ErrorCode = "WORKSPACE_INVALID"

	// Code generation errors
	ErrScanSource      ErrorCode = "SCAN_SOURCE"
	ErrTemplateInvalid ErrorCode = "TEMPLATE_INVALID"
	ErrGenerate        ErrorCode = "GENERATE"

	// Storage errors
	ErrStorageScan  ErrorCode = "STORAGE_SCAN"
	ErrStorageWrite ErrorCode = "STORAGE_WRITE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCreate   ErrorCode = "FILE_CREATE"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// WritError represents a structured error with code and details
type WritError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *WritError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *WritError) Unwrap() error {
	return e.Wrapped
}

// Is matches two WritErrors by code so errors.Is works across instances
func (e *WritError) Is(target error) bool {
	var targetErr *WritError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new WritError with the given code and message
func New(code ErrorCode, message string) *WritError {
	return &WritError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new WritError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *WritError {
	return &WritError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a WritError
func Wrap(err error, code ErrorCode, message string) *WritError {
	if err == nil {
		return nil
	}
	return &WritError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *WritError {
	if err == nil {
		return nil
	}
	return &WritError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *WritError) WithDetail(key string, value interface{}) *WritError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var writErr *WritError
	if errors.As(err, &writErr) {
		return writErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a WritError
func GetErrorCode(err error) ErrorCode {
	var writErr *WritError
	if errors.As(err, &writErr) {
		return writErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a WritError
func GetErrorDetails(err error) map[string]interface{} {
	var writErr *WritError
	if errors.As(err, &writErr) {
		return writErr.Details
	}
	return nil
}
