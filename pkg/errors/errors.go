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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Registration errors
	ErrLabelEmpty  ErrorCode = "LABEL_EMPTY"
	ErrHandlerNil  ErrorCode = "HANDLER_NIL"
	ErrEventType   ErrorCode = "EVENT_TYPE"

	// Dispatch errors
	ErrHandlerFailed  ErrorCode = "HANDLER_FAILED"
	ErrDispatchFailed ErrorCode = "DISPATCH_FAILED"
)

// SidefxError represents a structured error with code and details
type SidefxError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SidefxError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SidefxError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SidefxError) Is(target error) bool {
	var targetErr *SidefxError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SidefxError with the given code and message
func New(code ErrorCode, message string) *SidefxError {
	return &SidefxError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SidefxError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SidefxError {
	return &SidefxError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SidefxError
func Wrap(err error, code ErrorCode, message string) *SidefxError {
	if err == nil {
		return nil
	}
	return &SidefxError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SidefxError {
	if err == nil {
		return nil
	}
	return &SidefxError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SidefxError) WithDetail(key string, value interface{}) *SidefxError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var sfxErr *SidefxError
	if errors.As(err, &sfxErr) {
		return sfxErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SidefxError
func GetErrorCode(err error) ErrorCode {
	var sfxErr *SidefxError
	if errors.As(err, &sfxErr) {
		return sfxErr.Code
	}
	return ErrUnknown
}
