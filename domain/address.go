package domain

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/auth-platform/libs/go/domainkit/validation"
)

// Address owns a street, a city and a postal code.
type Address struct {
	street     Street
	city       City
	postalCode PostalCode
}

// NewAddress validates all three parts and reports every invalid field at once.
func NewAddress(street, city, postalCode string) (Address, error) {
	s, errStreet := NewStreet(street)
	c, errCity := NewCity(city)
	p, errPostal := NewPostalCode(postalCode)
	if err := validation.All(errStreet, errCity, errPostal); err != nil {
		return Address{}, err
	}
	return Address{street: s, city: c, postalCode: p}, nil
}

// AddressOf assembles an Address from already validated parts.
func AddressOf(street Street, city City, postalCode PostalCode) Address {
	return Address{street: street, city: city, postalCode: postalCode}
}

// Street returns the street.
func (a Address) Street() Street { return a.street }

// City returns the city.
func (a Address) City() City { return a.city }

// PostalCode returns the postal code.
func (a Address) PostalCode() PostalCode { return a.postalCode }

// String formats the address as "street, city, postal code".
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s", a.street, a.city, a.postalCode)
}

// Equals checks if two addresses are equal.
func (a Address) Equals(other Address) bool {
	return a.street.Equals(other.street) && a.city.Equals(other.city) && a.postalCode.Equals(other.postalCode)
}

type addressDTO struct {
	Street     string `json:"street" yaml:"street"`
	City       string `json:"city" yaml:"city"`
	PostalCode string `json:"postal_code" yaml:"postal_code"`
}

func (a Address) dto() addressDTO {
	return addressDTO{Street: a.street.name, City: a.city.name, PostalCode: a.postalCode.code}
}

// MarshalJSON implements json.Marshaler.
func (a Address) MarshalJSON() ([]byte, error) { return json.Marshal(a.dto()) }

// UnmarshalJSON implements json.Unmarshaler.
func (a *Address) UnmarshalJSON(data []byte) error {
	var d addressDTO
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	v, err := NewAddress(d.Street, d.City, d.PostalCode)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (a Address) MarshalYAML() (any, error) { return a.dto(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Address) UnmarshalYAML(node *yaml.Node) error {
	var d addressDTO
	if err := node.Decode(&d); err != nil {
		return err
	}
	v, err := NewAddress(d.Street, d.City, d.PostalCode)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
