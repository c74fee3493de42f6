package errors

import (
	"fmt"
	"strings"
)

// Validation rule codes.
const (
	RuleRequired    = "required"
	RulePattern     = "pattern"
	RuleContains    = "contains"
	RuleNonNegative = "non_negative"
	RuleRange       = "range"
)

// ValidationError is returned when a value object rejects its input.
// It carries the field and the rule that was violated.
type ValidationError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// Validation creates a ValidationError.
func Validation(field, rule, message string) *ValidationError {
	return &ValidationError{Field: field, Rule: rule, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ErrorCode returns ErrCodeValidation.
func (e *ValidationError) ErrorCode() ErrorCode {
	return ErrCodeValidation
}

// WithValue records the rejected input.
func (e *ValidationError) WithValue(v any) *ValidationError {
	e.Value = v
	return e
}

// ValidationErrors accumulates field errors from aggregate construction.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// ErrorCode returns ErrCodeValidation.
func (e ValidationErrors) ErrorCode() ErrorCode {
	return ErrCodeValidation
}

// Unwrap exposes each field error to errors.Is/As.
func (e ValidationErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}

// Fields returns the failing field names in order.
func (e ValidationErrors) Fields() []string {
	fields := make([]string, len(e))
	for i, err := range e {
		fields[i] = err.Field
	}
	return fields
}

// Collect appends err to the accumulator when it is a validation failure.
// Any other non-nil error is returned unchanged so callers can abort.
func (e *ValidationErrors) Collect(err error) error {
	if err == nil {
		return nil
	}
	if ve, ok := AsType[*ValidationError](err); ok {
		*e = append(*e, ve)
		return nil
	}
	return err
}

// OrNil returns nil when nothing was collected.
func (e ValidationErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
