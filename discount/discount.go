// Package discount computes purchase discounts by customer category using a
// closed policy dispatcher.
package discount

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/auth-platform/libs/go/domainkit/domain"
	errs "github.com/auth-platform/libs/go/domainkit/errors"
	"github.com/auth-platform/libs/go/domainkit/patterns"
	"github.com/auth-platform/libs/go/domainkit/policy"
)

// DispatcherName identifies the discount dispatcher in errors and metrics.
const DispatcherName = "discount"

// CustomerType is the discount discriminator.
type CustomerType string

// Customer categories.
const (
	Regular CustomerType = "REGULAR"
	VIP     CustomerType = "VIP"
)

var customerTypes = patterns.In(Regular, VIP)

// ParseCustomerType accepts "REGULAR"/"VIP" in any letter case.
func ParseCustomerType(s string) (CustomerType, error) {
	t := CustomerType(strings.ToUpper(s))
	if !customerTypes.IsSatisfiedBy(t) {
		return "", errs.UnknownDiscriminator(DispatcherName, s)
	}
	return t, nil
}

// String returns the category name.
func (t CustomerType) String() string { return string(t) }

// Purchase is the strategy input.
type Purchase struct {
	Amount domain.Money
}

// Strategy computes a discount for a purchase.
type Strategy = policy.Strategy[Purchase, decimal.Decimal]

// Rule grants Discount when the purchase amount satisfies When.
type Rule struct {
	When     patterns.Spec[domain.Money]
	Discount decimal.Decimal
}

// Above is satisfied by amounts strictly greater than threshold.
func Above(threshold domain.Money) patterns.Spec[domain.Money] {
	return patterns.SpecFunc[domain.Money](func(m domain.Money) bool {
		return m.GreaterThan(threshold)
	})
}

// AtOrBelow is satisfied by amounts less than or equal to threshold.
func AtOrBelow(threshold domain.Money) patterns.Spec[domain.Money] {
	return patterns.Not(Above(threshold))
}

// RuleStrategy applies the first matching rule, or the fallback discount.
type RuleStrategy struct {
	name     string
	rules    []Rule
	fallback decimal.Decimal
}

// NewRuleStrategy creates a RuleStrategy. Rules are evaluated in order.
func NewRuleStrategy(name string, fallback decimal.Decimal, rules ...Rule) RuleStrategy {
	return RuleStrategy{name: name, rules: append([]Rule(nil), rules...), fallback: fallback}
}

// Name implements policy.Strategy.
func (s RuleStrategy) Name() string { return s.name }

// Execute implements policy.Strategy.
func (s RuleStrategy) Execute(_ context.Context, p Purchase) (decimal.Decimal, error) {
	matches := patterns.SpecFunc[Rule](func(r Rule) bool { return r.When.IsSatisfiedBy(p.Amount) })
	if r, ok := patterns.FindFirst(s.rules, matches); ok {
		return r.Discount, nil
	}
	return s.fallback, nil
}

// Tier is a single-threshold discount: Above when amount > Threshold,
// AtOrBelow otherwise.
type Tier struct {
	Threshold domain.Money
	Above     decimal.Decimal
	AtOrBelow decimal.Decimal
}

// Strategy builds the RuleStrategy for the tier.
func (t Tier) Strategy(name string) RuleStrategy {
	return NewRuleStrategy(name, t.AtOrBelow,
		Rule{When: Above(t.Threshold), Discount: t.Above},
		Rule{When: AtOrBelow(t.Threshold), Discount: t.AtOrBelow},
	)
}

// Tiers holds the tier of each customer category.
type Tiers struct {
	Regular Tier
	VIP     Tier
}

// DefaultTiers returns REGULAR: >100 -> 10 else 5, VIP: >500 -> 20 else 15.
func DefaultTiers() Tiers {
	return Tiers{
		Regular: Tier{
			Threshold: domain.MustNewMoney(decimal.NewFromInt(100)),
			Above:     decimal.NewFromInt(10),
			AtOrBelow: decimal.NewFromInt(5),
		},
		VIP: Tier{
			Threshold: domain.MustNewMoney(decimal.NewFromInt(500)),
			Above:     decimal.NewFromInt(20),
			AtOrBelow: decimal.NewFromInt(15),
		},
	}
}

// Calculator resolves the customer category and applies its strategy.
type Calculator struct {
	dispatcher *policy.Dispatcher[CustomerType, Purchase, decimal.Decimal]
}

// NewCalculator binds REGULAR and VIP to their tiers.
func NewCalculator(tiers Tiers, opts ...policy.Option) (*Calculator, error) {
	d, err := policy.NewDispatcher(DispatcherName, []policy.Binding[CustomerType, Purchase, decimal.Decimal]{
		policy.Bind[CustomerType, Purchase, decimal.Decimal](Regular, tiers.Regular.Strategy("regular")),
		policy.Bind[CustomerType, Purchase, decimal.Decimal](VIP, tiers.VIP.Strategy("vip")),
	}, opts...)
	if err != nil {
		return nil, err
	}
	return &Calculator{dispatcher: d}, nil
}

// Calculate returns the discount for amount under customerType.
func (c *Calculator) Calculate(ctx context.Context, customerType CustomerType, amount domain.Money) (decimal.Decimal, error) {
	return c.dispatcher.Dispatch(ctx, customerType, Purchase{Amount: amount})
}

// Dispatcher exposes the underlying dispatcher.
func (c *Calculator) Dispatcher() *policy.Dispatcher[CustomerType, Purchase, decimal.Decimal] {
	return c.dispatcher
}
