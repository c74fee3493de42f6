package domain_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"

	"github.com/auth-platform/libs/go/domainkit/domain"
	errs "github.com/auth-platform/libs/go/domainkit/errors"
	"github.com/auth-platform/libs/go/domainkit/internal/testutil"
)

// Property 1: PostalCode accepts exactly five ASCII digits
func TestPostalCodeValidationConsistency(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		code := testutil.PostalCodeGen().Draw(t, "code")
		p, err := domain.NewPostalCode(code)
		if err != nil {
			t.Fatalf("valid postal code rejected: %q: %v", code, err)
		}
		if p.Code() != code {
			t.Fatalf("code changed: got %q, want %q", p.Code(), code)
		}

		bad := testutil.InvalidPostalCodeGen().Draw(t, "bad")
		_, err = domain.NewPostalCode(bad)
		if !errs.HasCode(err, errs.ErrCodeValidation) {
			t.Fatalf("invalid postal code accepted: %q", bad)
		}
	})
}

// Property 2: PhoneNumber accepts exactly ten ASCII digits
func TestPhoneNumberValidationConsistency(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		number := testutil.PhoneNumberGen().Draw(t, "number")
		p, err := domain.NewPhoneNumber(number)
		if err != nil {
			t.Fatalf("valid phone number rejected: %q: %v", number, err)
		}
		if p.AreaCode() != number[:3] {
			t.Fatalf("area code: got %q, want %q", p.AreaCode(), number[:3])
		}

		bad := testutil.InvalidPhoneNumberGen().Draw(t, "bad")
		if _, err := domain.NewPhoneNumber(bad); err == nil {
			t.Fatalf("invalid phone number accepted: %q", bad)
		}
	})
}

// Property 3: Email accepts exactly the strings containing "@"
func TestEmailContainsAt(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		_, err := domain.NewEmail(s)
		if (err == nil) != strings.Contains(s, "@") {
			t.Fatalf("NewEmail(%q) err=%v", s, err)
		}
	})
}

// Property 4: Email is stored as given
func TestEmailNotNormalized(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := strings.ToUpper(testutil.EmailGen().Draw(t, "email"))
		e, err := domain.NewEmail(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Value() != raw {
			t.Fatalf("got %q, want %q", e.Value(), raw)
		}
		if e.LocalPart()+"@"+e.Domain() != raw {
			t.Fatalf("local/domain split lost data: %q", raw)
		}
	})
}

// Property 5: Money rejects exactly the negative amounts
func TestMoneyNonNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		amount := testutil.AmountGen().Draw(t, "amount")
		m, err := domain.NewMoney(amount)
		if err != nil {
			t.Fatalf("non-negative amount rejected: %s: %v", amount, err)
		}
		if !m.Amount().Equal(amount) {
			t.Fatalf("amount changed: %s -> %s", amount, m.Amount())
		}

		negative := testutil.NegativeAmountGen().Draw(t, "negative")
		_, err = domain.NewMoney(negative)
		ve, ok := errs.AsType[*errs.ValidationError](err)
		if !ok || ve.Rule != errs.RuleNonNegative {
			t.Fatalf("negative amount accepted or wrong rule: %s: %v", negative, err)
		}
	})
}

// Property 6: Money JSON Round-Trip
func TestMoneyJSONRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		original := domain.MustNewMoney(testutil.AmountGen().Draw(t, "amount"))

		data, err := json.Marshal(original)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}

		var restored domain.Money
		if err := json.Unmarshal(data, &restored); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}

		if !original.Equals(restored) {
			t.Fatalf("round-trip failed: %s != %s", original, restored)
		}
	})
}

// Property 7: Discounted price never exceeds the original price
func TestApplyDiscountBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		price := domain.MustNewMoney(testutil.AmountGen().Draw(t, "price"))
		pct := testutil.PercentGen().Draw(t, "percent")

		p, err := domain.NewProduct("item", price)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		discounted, err := p.ApplyDiscount(pct)
		if err != nil {
			t.Fatalf("apply %s%% failed: %v", pct, err)
		}
		if discounted.GreaterThan(price) || discounted.Amount().IsNegative() {
			t.Fatalf("discounted %s out of range for price %s", discounted, price)
		}
		if pct.Equal(decimal.Zero) && !discounted.Equals(price) {
			t.Fatalf("0%% changed the price: %s -> %s", price, discounted)
		}
	})
}

// Property 8: Address reports every invalid field
func TestAddressAccumulatesErrors(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		badStreet := rapid.Bool().Draw(t, "badStreet")
		badCity := rapid.Bool().Draw(t, "badCity")
		badPostal := rapid.Bool().Draw(t, "badPostal")

		street := testutil.NameGen().Draw(t, "street")
		city := testutil.NameGen().Draw(t, "city")
		postal := testutil.PostalCodeGen().Draw(t, "postal")
		var want []string
		if badStreet {
			street = ""
			want = append(want, "street")
		}
		if badCity {
			city = ""
			want = append(want, "city")
		}
		if badPostal {
			postal = testutil.InvalidPostalCodeGen().Draw(t, "badPostalValue")
			want = append(want, "postal_code")
		}

		_, err := domain.NewAddress(street, city, postal)
		if len(want) == 0 {
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			return
		}
		list, ok := errs.AsType[errs.ValidationErrors](err)
		if !ok {
			t.Fatalf("expected ValidationErrors, got %T: %v", err, err)
		}
		got := list.Fields()
		if strings.Join(got, ",") != strings.Join(want, ",") {
			t.Fatalf("fields: got %v, want %v", got, want)
		}
	})
}

// Property 9: Generated customer ids are unique
func TestGeneratedCustomerIDUniqueness(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(2, 100).Draw(t, "count")
		seen := make(map[string]bool)

		for i := 0; i < count; i++ {
			id, err := domain.GenerateCustomerID(domain.UUIDGenerator{})
			if err != nil {
				t.Fatalf("generate failed: %v", err)
			}
			if seen[id.Value()] {
				t.Fatalf("duplicate customer id generated: %s", id)
			}
			seen[id.Value()] = true
		}
	})
}
