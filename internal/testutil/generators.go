// Package testutil provides generators for property-based testing.
package testutil

import (
	"fmt"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"
)

// PostalCodeGen generates valid 5-digit postal codes.
func PostalCodeGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[0-9]{5}`)
}

// InvalidPostalCodeGen generates strings that are not exactly 5 ASCII digits.
func InvalidPostalCodeGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.StringMatching(`[0-9]{0,4}`),
		rapid.StringMatching(`[0-9]{6,9}`),
		rapid.StringMatching(`[0-9]{0,4}[a-zA-Z \-][0-9]{0,4}`),
	)
}

// PhoneNumberGen generates valid 10-digit phone numbers.
func PhoneNumberGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[0-9]{10}`)
}

// InvalidPhoneNumberGen generates strings that are not exactly 10 ASCII digits.
func InvalidPhoneNumberGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.StringMatching(`[0-9]{0,9}`),
		rapid.StringMatching(`[0-9]{11,14}`),
		rapid.StringMatching(`\+[0-9]{10}`),
		rapid.StringMatching(`[0-9]{3}-[0-9]{3}-[0-9]{4}`),
	)
}

// EmailGen generates strings containing "@".
func EmailGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		local := rapid.StringMatching(`[a-z][a-z0-9.]{0,10}`).Draw(t, "local")
		domain := rapid.StringMatching(`[a-z]{3,8}`).Draw(t, "domain")
		tld := rapid.SampledFrom([]string{"com", "org", "net", "io", "dev"}).Draw(t, "tld")
		return fmt.Sprintf("%s@%s.%s", local, domain, tld)
	})
}

// NameGen generates non-empty street or city names.
func NameGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z0-9][A-Za-z0-9 .'\-]{0,30}`)
}

// AmountGen generates non-negative decimals with up to two fraction digits.
func AmountGen() *rapid.Generator[decimal.Decimal] {
	return rapid.Custom(func(t *rapid.T) decimal.Decimal {
		cents := rapid.Int64Range(0, 99999999).Draw(t, "cents")
		return decimal.New(cents, -2)
	})
}

// NegativeAmountGen generates strictly negative decimals.
func NegativeAmountGen() *rapid.Generator[decimal.Decimal] {
	return rapid.Custom(func(t *rapid.T) decimal.Decimal {
		cents := rapid.Int64Range(1, 99999999).Draw(t, "cents")
		return decimal.New(-cents, -2)
	})
}

// PercentGen generates percentages in [0, 100].
func PercentGen() *rapid.Generator[decimal.Decimal] {
	return rapid.Custom(func(t *rapid.T) decimal.Decimal {
		return decimal.NewFromInt(rapid.Int64Range(0, 100).Draw(t, "percent"))
	})
}
