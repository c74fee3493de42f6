package domain

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/auth-platform/libs/go/domainkit/validation"
)

var phoneRule = validation.Digits(10, "must be exactly 10 digits")

// PhoneNumber represents a 10-digit phone number.
// Formatting characters are not stripped; the input must be digits only.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber creates a PhoneNumber from exactly ten ASCII digits.
func NewPhoneNumber(value string) (PhoneNumber, error) {
	if err := validation.Field("phone_number", value, phoneRule); err != nil {
		return PhoneNumber{}, err
	}
	return PhoneNumber{value: value}, nil
}

// MustNewPhoneNumber creates a PhoneNumber, panicking on invalid input.
func MustNewPhoneNumber(value string) PhoneNumber {
	phone, err := NewPhoneNumber(value)
	if err != nil {
		panic(err)
	}
	return phone
}

// Value returns the phone number digits.
func (p PhoneNumber) Value() string { return p.value }

// String returns the phone number digits.
func (p PhoneNumber) String() string { return p.value }

// AreaCode returns the first three digits.
func (p PhoneNumber) AreaCode() string {
	if len(p.value) < 3 {
		return ""
	}
	return p.value[:3]
}

// Equals checks if two phone numbers are equal.
func (p PhoneNumber) Equals(other PhoneNumber) bool { return p.value == other.value }

// MarshalJSON implements json.Marshaler.
func (p PhoneNumber) MarshalJSON() ([]byte, error) { return json.Marshal(p.value) }

// UnmarshalJSON implements json.Unmarshaler.
func (p *PhoneNumber) UnmarshalJSON(data []byte) error {
	v, err := decodeJSONString(data, NewPhoneNumber)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p PhoneNumber) MarshalText() ([]byte, error) { return []byte(p.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PhoneNumber) UnmarshalText(data []byte) error {
	v, err := NewPhoneNumber(string(data))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p PhoneNumber) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: p.value}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *PhoneNumber) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeYAMLString(node, NewPhoneNumber)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Contact owns a phone number.
type Contact struct {
	phone PhoneNumber
}

// NewContact creates a Contact.
func NewContact(phone PhoneNumber) Contact {
	return Contact{phone: phone}
}

// PhoneNumber returns the contact's phone number.
func (c Contact) PhoneNumber() PhoneNumber { return c.phone }
