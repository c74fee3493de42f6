// Package errors provides the typed error taxonomy shared by value objects and
// dispatchers: coded application errors, field validation errors and unknown
// discriminator errors.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// AsType is a generic error type assertion.
// Returns the error as type T and true if the error chain contains type T.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// ErrorCode represents application error categories.
type ErrorCode string

// Error codes.
const (
	// Caller errors: recoverable by rejecting or re-prompting input.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// Programming/configuration defects: propagate, never default.
	ErrCodeUnknownDiscriminator ErrorCode = "UNKNOWN_DISCRIMINATOR"
	ErrCodeInvalidConfiguration ErrorCode = "INVALID_CONFIGURATION"

	// Strategy failures.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// coded is implemented by every error in this package.
type coded interface {
	error
	ErrorCode() ErrorCode
}

// AppError is the general coded error.
type AppError struct {
	Code      ErrorCode      `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	cause     error
}

// New creates a new AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Internal creates an internal error.
func Internal(message string) *AppError {
	return New(ErrCodeInternal, message)
}

// InvalidConfiguration creates a configuration error.
func InvalidConfiguration(message string) *AppError {
	return New(ErrCodeInvalidConfiguration, message)
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ErrorCode returns the error category.
func (e *AppError) ErrorCode() ErrorCode {
	return e.Code
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause sets the underlying cause.
func (e *AppError) WithCause(cause error) *AppError {
	e.cause = cause
	return e
}

// WithDetail adds a detail to the error.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Is matches another AppError by code, otherwise defers to the cause.
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.cause, target)
}

// MarshalJSON implements json.Marshaler.
func (e *AppError) MarshalJSON() ([]byte, error) {
	type Alias AppError
	aux := &struct {
		*Alias
		Cause string `json:"cause,omitempty"`
	}{Alias: (*Alias)(e)}
	if e.cause != nil {
		aux.Cause = e.cause.Error()
	}
	return json.Marshal(aux)
}

// HasCode reports whether any error in the chain carries code.
func HasCode(err error, code ErrorCode) bool {
	c, ok := AsType[coded](err)
	return ok && c.ErrorCode() == code
}

// GetCode extracts the error code from an error chain.
// Uncoded errors are reported as ErrCodeInternal.
func GetCode(err error) ErrorCode {
	if c, ok := AsType[coded](err); ok {
		return c.ErrorCode()
	}
	return ErrCodeInternal
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join wraps the given errors, discarding nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
