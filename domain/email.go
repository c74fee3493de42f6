package domain

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/auth-platform/libs/go/domainkit/validation"
)

// Email represents an email address.
//
// The only rule is that the value contains "@". This is intentionally weak:
// "a@", "@b" and "x@y@z" are accepted. Callers that need RFC 5322 checks
// must layer them on top.
type Email struct {
	value string
}

var emailRule = validation.Contains("@", "must contain @")

// NewEmail creates an Email. The value is stored as given (no normalization).
func NewEmail(value string) (Email, error) {
	if err := validation.Field("email", value, emailRule); err != nil {
		return Email{}, err
	}
	return Email{value: value}, nil
}

// MustNewEmail creates a new Email, panicking on invalid input.
func MustNewEmail(value string) Email {
	email, err := NewEmail(value)
	if err != nil {
		panic(err)
	}
	return email
}

// Value returns the email address.
func (e Email) Value() string { return e.value }

// String returns the email address.
func (e Email) String() string { return e.value }

// LocalPart returns the text before the first @.
func (e Email) LocalPart() string {
	local, _, _ := strings.Cut(e.value, "@")
	return local
}

// Domain returns the text after the first @.
func (e Email) Domain() string {
	_, domain, _ := strings.Cut(e.value, "@")
	return domain
}

// Equals checks if two emails are equal.
func (e Email) Equals(other Email) bool { return e.value == other.value }

// MarshalJSON implements json.Marshaler.
func (e Email) MarshalJSON() ([]byte, error) { return json.Marshal(e.value) }

// UnmarshalJSON implements json.Unmarshaler.
func (e *Email) UnmarshalJSON(data []byte) error {
	v, err := decodeJSONString(data, NewEmail)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (e Email) MarshalText() ([]byte, error) { return []byte(e.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Email) UnmarshalText(data []byte) error {
	v, err := NewEmail(string(data))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (e Email) MarshalYAML() (any, error) { return e.value, nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Email) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeYAMLString(node, NewEmail)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// User owns an email address.
type User struct {
	email Email
}

// NewUser creates a User.
func NewUser(email Email) User {
	return User{email: email}
}

// Email returns the user's email.
func (u User) Email() Email { return u.email }

// WithEmail returns a copy of the user with a different email.
func (u User) WithEmail(email Email) User {
	return User{email: email}
}
