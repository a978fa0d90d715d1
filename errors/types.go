package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Storage errors
	ErrCodeStorageRead  ErrorCode = "STORAGE_READ"
	ErrCodeStorageWrite ErrorCode = "STORAGE_WRITE"

	// Archive errors
	ErrCodeArchiveCorrupt  ErrorCode = "ARCHIVE_CORRUPT"
	ErrCodeVersionNotFound ErrorCode = "VERSION_NOT_FOUND"

	// Editing errors
	ErrCodeFormatFailed   ErrorCode = "FORMAT_FAILED"
	ErrCodeUnknownChannel ErrorCode = "UNKNOWN_CHANNEL"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// PlaygroundError represents a structured error with context
type PlaygroundError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *PlaygroundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PlaygroundError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *PlaygroundError) WithDetail(key string, value interface{}) *PlaygroundError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *PlaygroundError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new PlaygroundError
func New(code ErrorCode, message string) *PlaygroundError {
	return &PlaygroundError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a PlaygroundError
func Wrap(err error, code ErrorCode, message string) *PlaygroundError {
	return &PlaygroundError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// As returns the first PlaygroundError in err's chain.
func As(err error) (*PlaygroundError, bool) {
	for err != nil {
		if pe, ok := err.(*PlaygroundError); ok {
			return pe, true
		}
		switch u := err.(type) {
		case interface{ Unwrap() error }:
			err = u.Unwrap()
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				if pe, ok := As(inner); ok {
					return pe, true
				}
			}
			return nil, false
		default:
			return nil, false
		}
	}
	return nil, false
}

// Is checks if an error is a specific PlaygroundError code
func Is(err error, code ErrorCode) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	pe, ok := As(err)
	if !ok {
		return ""
	}
	return pe.Code
}
