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

	// Card selection errors, surfaced to the user as-is
	ErrUnknownKind   ErrorCode = "UNKNOWN_KIND"
	ErrUnknownStyle  ErrorCode = "UNKNOWN_STYLE"
	ErrUnknownSource ErrorCode = "UNKNOWN_SOURCE"

	// Remote generation errors. These never leave the remote provider,
	// which recovers by rendering the local template instead.
	ErrGenerationFailed ErrorCode = "GENERATION_FAILED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Template catalog errors
	ErrTemplateInvalid ErrorCode = "TEMPLATE_INVALID"

	// FileSystem errors
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"
)

// GreetingsError represents a structured error with code and details
type GreetingsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GreetingsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GreetingsError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GreetingsError) Is(target error) bool {
	var targetErr *GreetingsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GreetingsError with the given code and message
func New(code ErrorCode, message string) *GreetingsError {
	return &GreetingsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GreetingsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GreetingsError {
	return &GreetingsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GreetingsError
func Wrap(err error, code ErrorCode, message string) *GreetingsError {
	if err == nil {
		return nil
	}
	return &GreetingsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GreetingsError {
	if err == nil {
		return nil
	}
	return &GreetingsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GreetingsError) WithDetail(key string, value interface{}) *GreetingsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *GreetingsError) WithDetails(details map[string]interface{}) *GreetingsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var gErr *GreetingsError
	if errors.As(err, &gErr) {
		return gErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GreetingsError
func GetErrorCode(err error) ErrorCode {
	var gErr *GreetingsError
	if errors.As(err, &gErr) {
		return gErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GreetingsError
func GetErrorDetails(err error) map[string]interface{} {
	var gErr *GreetingsError
	if errors.As(err, &gErr) {
		return gErr.Details
	}
	return nil
}

// IsUserError reports whether err is a selection error the user can fix by
// changing their input (kind, style or source).
func IsUserError(err error) bool {
	switch GetErrorCode(err) {
	case ErrUnknownKind, ErrUnknownStyle, ErrUnknownSource, ErrInvalidInput:
		return true
	}
	return false
}
