package domain

import (
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/auth-platform/libs/go/domainkit/validation"
)

// IDGenerator produces raw identifiers for GenerateCustomerID.
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc adapts a function to IDGenerator.
type IDGeneratorFunc func() string

// NewID implements IDGenerator.
func (f IDGeneratorFunc) NewID() string { return f() }

// UUIDGenerator returns random version 4 UUIDs from the process-wide
// crypto/rand source.
type UUIDGenerator struct{}

// NewID implements IDGenerator.
func (UUIDGenerator) NewID() string { return uuid.NewString() }

// SequenceGenerator returns prefix1, prefix2, ... and is safe for concurrent use.
type SequenceGenerator struct {
	prefix string
	next   atomic.Uint64
}

// NewSequenceGenerator creates a deterministic generator.
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

// NewID implements IDGenerator.
func (g *SequenceGenerator) NewID() string {
	return fmt.Sprintf("%s%d", g.prefix, g.next.Add(1))
}

// CustomerID identifies a customer. Any non-empty string is accepted.
type CustomerID struct {
	value string
}

// NewCustomerID creates a CustomerID from a non-empty string.
func NewCustomerID(value string) (CustomerID, error) {
	if err := validation.Field("customer_id", value, validation.NotEmpty()); err != nil {
		return CustomerID{}, err
	}
	return CustomerID{value: value}, nil
}

// MustNewCustomerID creates a CustomerID, panicking on invalid input.
func MustNewCustomerID(value string) CustomerID {
	id, err := NewCustomerID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// GenerateCustomerID asks gen for a fresh identifier and validates it like
// any other input, so a generator returning "" is reported as an error.
func GenerateCustomerID(gen IDGenerator) (CustomerID, error) {
	return NewCustomerID(gen.NewID())
}

// Value returns the identifier.
func (c CustomerID) Value() string { return c.value }

// String returns the identifier.
func (c CustomerID) String() string { return c.value }

// Equals checks if two identifiers are equal.
func (c CustomerID) Equals(other CustomerID) bool { return c.value == other.value }

// MarshalJSON implements json.Marshaler.
func (c CustomerID) MarshalJSON() ([]byte, error) { return json.Marshal(c.value) }

// UnmarshalJSON implements json.Unmarshaler.
func (c *CustomerID) UnmarshalJSON(data []byte) error {
	v, err := decodeJSONString(data, NewCustomerID)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c CustomerID) MarshalText() ([]byte, error) { return []byte(c.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CustomerID) UnmarshalText(data []byte) error {
	v, err := NewCustomerID(string(data))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c CustomerID) MarshalYAML() (any, error) { return c.value, nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *CustomerID) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeYAMLString(node, NewCustomerID)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Customer owns a CustomerID.
type Customer struct {
	id CustomerID
}

// NewCustomer creates a Customer.
func NewCustomer(id CustomerID) Customer {
	return Customer{id: id}
}

// ID returns the customer's identifier.
func (c Customer) ID() CustomerID { return c.id }
