// Package payment processes payments by method using a closed policy
// dispatcher.
package payment

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/auth-platform/libs/go/domainkit/domain"
	errs "github.com/auth-platform/libs/go/domainkit/errors"
	"github.com/auth-platform/libs/go/domainkit/patterns"
	"github.com/auth-platform/libs/go/domainkit/policy"
)

// DispatcherName identifies the payment dispatcher in errors and metrics.
const DispatcherName = "payment"

// Method is the payment discriminator.
type Method string

// Supported payment methods.
const (
	CreditCard   Method = "credit_card"
	DebitCard    Method = "debit_card"
	PayPal       Method = "paypal"
	Bitcoin      Method = "bitcoin"
	BankTransfer Method = "bank_transfer"
)

var labels = map[Method]string{
	CreditCard:   "credit card",
	DebitCard:    "debit card",
	PayPal:       "PayPal",
	Bitcoin:      "Bitcoin",
	BankTransfer: "bank transfer",
}

// AllMethods returns every supported method in a stable order.
func AllMethods() []Method {
	return []Method{CreditCard, DebitCard, PayPal, Bitcoin, BankTransfer}
}

// ParseMethod accepts snake_case names in any letter case.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := labels[m]; !ok {
		return "", errs.UnknownDiscriminator(DispatcherName, s)
	}
	return m, nil
}

// String returns the method name.
func (m Method) String() string { return string(m) }

// Payment is the strategy input.
type Payment struct {
	Method   Method
	Amount   domain.Money
	Customer domain.CustomerID
}

// Receipt is the strategy output.
type Receipt struct {
	Method   Method
	Amount   domain.Money
	Customer domain.CustomerID
	Message  string
}

// Strategy processes one payment.
type Strategy = policy.Strategy[Payment, Receipt]

type methodStrategy struct {
	method Method
	out    io.Writer
}

// NewMethodStrategy returns the strategy for m, announcing each payment on out.
func NewMethodStrategy(m Method, out io.Writer) (Strategy, error) {
	if _, ok := labels[m]; !ok {
		return nil, errs.UnknownDiscriminator(DispatcherName, m)
	}
	if out == nil {
		out = io.Discard
	}
	return methodStrategy{method: m, out: out}, nil
}

func (s methodStrategy) Name() string { return string(s.method) }

func (s methodStrategy) Execute(_ context.Context, p Payment) (Receipt, error) {
	msg := fmt.Sprintf("Processing %s payment...", labels[s.method])
	if _, err := fmt.Fprintln(s.out, msg); err != nil {
		return Receipt{}, err
	}
	return Receipt{Method: s.method, Amount: p.Amount, Customer: p.Customer, Message: msg}, nil
}

// Processor resolves a payment's method and runs its strategy.
type Processor struct {
	dispatcher *policy.Dispatcher[Method, Payment, Receipt]
}

// NewProcessor binds the enabled methods. Methods left out resolve to
// *errors.UnknownDiscriminatorError.
func NewProcessor(out io.Writer, enabled []Method, opts ...policy.Option) (*Processor, error) {
	for _, m := range enabled {
		if _, ok := labels[m]; !ok {
			return nil, errs.UnknownDiscriminator(DispatcherName, m)
		}
	}
	isEnabled := patterns.In(enabled...)
	var bindings []policy.Binding[Method, Payment, Receipt]
	for _, m := range AllMethods() {
		if !isEnabled.IsSatisfiedBy(m) {
			continue
		}
		s, err := NewMethodStrategy(m, out)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, policy.Bind(m, s))
	}
	d, err := policy.NewDispatcher(DispatcherName, bindings, opts...)
	if err != nil {
		return nil, err
	}
	return &Processor{dispatcher: d}, nil
}

// Process resolves p.Method and runs the bound strategy.
func (pr *Processor) Process(ctx context.Context, p Payment) (Receipt, error) {
	return pr.dispatcher.Dispatch(ctx, p.Method, p)
}

// Handle runs an already chosen strategy.
func (pr *Processor) Handle(ctx context.Context, s Strategy, p Payment) (Receipt, error) {
	return pr.dispatcher.Apply(ctx, s, p)
}

// Strategy resolves the strategy bound to m.
func (pr *Processor) Strategy(m Method) (Strategy, error) {
	return pr.dispatcher.Resolve(m)
}

// Methods returns the enabled methods.
func (pr *Processor) Methods() []Method {
	return pr.dispatcher.Discriminators()
}
