package domain

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/auth-platform/libs/go/domainkit/validation"
)

var postalCodeRule = validation.Digits(5, "must be exactly 5 digits")

// PostalCode is a 5-digit postal code.
type PostalCode struct {
	code string
}

// NewPostalCode creates a PostalCode from exactly five ASCII digits.
func NewPostalCode(code string) (PostalCode, error) {
	if err := validation.Field("postal_code", code, postalCodeRule); err != nil {
		return PostalCode{}, err
	}
	return PostalCode{code: code}, nil
}

// MustNewPostalCode creates a PostalCode, panicking on invalid input.
func MustNewPostalCode(code string) PostalCode {
	p, err := NewPostalCode(code)
	if err != nil {
		panic(err)
	}
	return p
}

// Code returns the postal code.
func (p PostalCode) Code() string { return p.code }

// String returns the postal code.
func (p PostalCode) String() string { return p.code }

// Equals checks if two postal codes are equal.
func (p PostalCode) Equals(other PostalCode) bool { return p.code == other.code }

// MarshalJSON implements json.Marshaler.
func (p PostalCode) MarshalJSON() ([]byte, error) { return json.Marshal(p.code) }

// UnmarshalJSON implements json.Unmarshaler.
func (p *PostalCode) UnmarshalJSON(data []byte) error {
	v, err := decodeJSONString(data, NewPostalCode)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p PostalCode) MarshalText() ([]byte, error) { return []byte(p.code), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PostalCode) UnmarshalText(data []byte) error {
	v, err := NewPostalCode(string(data))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
// The code is emitted as a quoted string so leading zeros survive.
func (p PostalCode) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: p.code}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *PostalCode) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeYAMLString(node, NewPostalCode)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
