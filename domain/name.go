package domain

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/auth-platform/libs/go/domainkit/validation"
)

// Street is a validated street name.
type Street struct {
	name string
}

// NewStreet creates a Street. The name must not be empty.
func NewStreet(name string) (Street, error) {
	if err := validation.Field("street", name, validation.NotEmpty()); err != nil {
		return Street{}, err
	}
	return Street{name: name}, nil
}

// MustNewStreet creates a Street, panicking on invalid input.
func MustNewStreet(name string) Street {
	s, err := NewStreet(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the street name.
func (s Street) Name() string { return s.name }

// String returns the street name.
func (s Street) String() string { return s.name }

// Equals checks if two streets are equal.
func (s Street) Equals(other Street) bool { return s.name == other.name }

// MarshalJSON implements json.Marshaler.
func (s Street) MarshalJSON() ([]byte, error) { return json.Marshal(s.name) }

// UnmarshalJSON implements json.Unmarshaler.
func (s *Street) UnmarshalJSON(data []byte) error {
	v, err := decodeJSONString(data, NewStreet)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Street) MarshalText() ([]byte, error) { return []byte(s.name), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Street) UnmarshalText(data []byte) error {
	v, err := NewStreet(string(data))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Street) MarshalYAML() (any, error) { return s.name, nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Street) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeYAMLString(node, NewStreet)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// City is a validated city name.
type City struct {
	name string
}

// NewCity creates a City. The name must not be empty.
func NewCity(name string) (City, error) {
	if err := validation.Field("city", name, validation.NotEmpty()); err != nil {
		return City{}, err
	}
	return City{name: name}, nil
}

// MustNewCity creates a City, panicking on invalid input.
func MustNewCity(name string) City {
	c, err := NewCity(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the city name.
func (c City) Name() string { return c.name }

// String returns the city name.
func (c City) String() string { return c.name }

// Equals checks if two cities are equal.
func (c City) Equals(other City) bool { return c.name == other.name }

// MarshalJSON implements json.Marshaler.
func (c City) MarshalJSON() ([]byte, error) { return json.Marshal(c.name) }

// UnmarshalJSON implements json.Unmarshaler.
func (c *City) UnmarshalJSON(data []byte) error {
	v, err := decodeJSONString(data, NewCity)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c City) MarshalText() ([]byte, error) { return []byte(c.name), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *City) UnmarshalText(data []byte) error {
	v, err := NewCity(string(data))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c City) MarshalYAML() (any, error) { return c.name, nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *City) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeYAMLString(node, NewCity)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
