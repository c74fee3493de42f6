package domain

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	errs "github.com/auth-platform/libs/go/domainkit/errors"
	"github.com/auth-platform/libs/go/domainkit/validation"
)

var (
	hundred = decimal.NewFromInt(100)

	moneyRule = validation.Custom(func(d decimal.Decimal) bool {
		return !d.IsNegative()
	}, errs.RuleNonNegative, "amount cannot be negative")

	percentRule = validation.Custom(func(d decimal.Decimal) bool {
		return !d.IsNegative() && d.LessThanOrEqual(hundred)
	}, errs.RuleRange, "must be between 0 and 100")
)

// Money is a non-negative decimal amount.
// Currency is out of scope; all amounts share one implicit unit.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates Money. The amount must be >= 0.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if err := validation.Field("money", amount, moneyRule); err != nil {
		return Money{}, err
	}
	return Money{amount: amount}, nil
}

// MustNewMoney creates Money, panicking on invalid input.
func MustNewMoney(amount decimal.Decimal) Money {
	m, err := NewMoney(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// NewMoneyFromString parses a decimal string such as "19.99".
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.Validation("money", errs.RulePattern, "must be a decimal number").WithValue(s)
	}
	return NewMoney(d)
}

// NewMoneyFromFloat creates Money from a float64.
func NewMoneyFromFloat(f float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(f))
}

// NewMoneyFromInt creates Money from a whole amount.
func NewMoneyFromInt(i int64) (Money, error) {
	return NewMoney(decimal.NewFromInt(i))
}

// ZeroMoney returns an amount of zero.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the amount exactly as constructed.
func (m Money) Amount() decimal.Decimal { return m.amount }

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool { return m.amount.IsZero() }

// Cmp compares two amounts: -1, 0 or +1.
func (m Money) Cmp(other Money) int { return m.amount.Cmp(other.amount) }

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) bool { return m.amount.GreaterThan(other.amount) }

// Equals compares amounts numerically, so 1.0 equals 1.00.
func (m Money) Equals(other Money) bool { return m.amount.Equal(other.amount) }

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other. A negative result is rejected.
func (m Money) Sub(other Money) (Money, error) {
	return NewMoney(m.amount.Sub(other.amount))
}

// Mul scales the amount by a non-negative factor.
func (m Money) Mul(factor decimal.Decimal) (Money, error) {
	return NewMoney(m.amount.Mul(factor))
}

// Percent returns p percent of m, with p in [0, 100].
func (m Money) Percent(p decimal.Decimal) (Money, error) {
	if err := validation.Field("percent", p, percentRule); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Mul(p).Div(hundred)}, nil
}

// String returns the amount in its shortest decimal form.
func (m Money) String() string { return m.amount.String() }

// StringFixed returns the amount rounded to places decimals.
func (m Money) StringFixed(places int32) string { return m.amount.StringFixed(places) }

// MarshalJSON implements json.Marshaler. Amounts are encoded as strings.
func (m Money) MarshalJSON() ([]byte, error) { return json.Marshal(m.amount.String()) }

// UnmarshalJSON implements json.Unmarshaler. Strings and numbers are accepted;
// null is rejected.
func (m *Money) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return errs.Validation("money", errs.RuleRequired, "cannot be null")
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	v, err := NewMoney(d)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Money) MarshalText() ([]byte, error) { return []byte(m.amount.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Money) UnmarshalText(data []byte) error {
	v, err := NewMoneyFromString(string(data))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m Money) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.amount.String()}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Money) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeYAMLString(node, NewMoneyFromString)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
