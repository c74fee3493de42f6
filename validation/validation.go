// Package validation provides composable field validators used by value object
// constructors. A validator reports the first rule a value violates.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	errs "github.com/auth-platform/libs/go/domainkit/errors"
)

// Validator is a function that validates a value.
// It returns nil when the value satisfies the rule.
type Validator[T any] func(T) *errs.ValidationError

// And combines validators with AND logic; the first failure wins.
func And[T any](validators ...Validator[T]) Validator[T] {
	return func(v T) *errs.ValidationError {
		for _, validator := range validators {
			if err := validator(v); err != nil {
				return err
			}
		}
		return nil
	}
}

// Field runs validators against value and stamps the failing error with field.
// It returns a plain error so constructors can return it directly.
func Field[T any](field string, value T, validators ...Validator[T]) error {
	if err := And(validators...)(value); err != nil {
		err.Field = field
		return err
	}
	return nil
}

// All runs validators for several fields and accumulates every failure.
func All(checks ...error) error {
	var collected errs.ValidationErrors
	for _, err := range checks {
		if other := collected.Collect(err); other != nil {
			return other
		}
	}
	return collected.OrNil()
}

// NotEmpty rejects the zero-length string. Whitespace is accepted.
func NotEmpty() Validator[string] {
	return func(s string) *errs.ValidationError {
		if s == "" {
			return &errs.ValidationError{Rule: errs.RuleRequired, Message: "cannot be empty"}
		}
		return nil
	}
}

// Matches requires a full match of pattern.
func Matches(pattern *regexp.Regexp, message string) Validator[string] {
	return func(s string) *errs.ValidationError {
		if !pattern.MatchString(s) {
			return &errs.ValidationError{Rule: errs.RulePattern, Message: message, Value: s}
		}
		return nil
	}
}

// Contains requires substr to occur in the value.
func Contains(substr, message string) Validator[string] {
	return func(s string) *errs.ValidationError {
		if !strings.Contains(s, substr) {
			return &errs.ValidationError{Rule: errs.RuleContains, Message: message, Value: s}
		}
		return nil
	}
}

// Digits requires exactly n ASCII digits.
func Digits(n int, message string) Validator[string] {
	return Matches(regexp.MustCompile(fmt.Sprintf(`^[0-9]{%d}$`, n)), message)
}

// Custom creates a validator from a predicate.
func Custom[T any](check func(T) bool, rule, message string) Validator[T] {
	return func(v T) *errs.ValidationError {
		if !check(v) {
			return &errs.ValidationError{Rule: rule, Message: message, Value: v}
		}
		return nil
	}
}
