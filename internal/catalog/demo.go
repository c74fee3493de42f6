package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/auth-platform/libs/go/domainkit/behavior"
	"github.com/auth-platform/libs/go/domainkit/discount"
	"github.com/auth-platform/libs/go/domainkit/domain"
	errs "github.com/auth-platform/libs/go/domainkit/errors"
	"github.com/auth-platform/libs/go/domainkit/payment"
	"github.com/auth-platform/libs/go/domainkit/policy"
)

// Demo walks through value objects and dispatchers, printing to out.
type Demo struct {
	out        io.Writer
	logger     *slog.Logger
	calculator *discount.Calculator
	processor  *payment.Processor
	catalogue  *behavior.Catalogue
	ids        domain.IDGenerator
}

// NewDemo creates a Demo.
func NewDemo(
	out io.Writer,
	logger *slog.Logger,
	calculator *discount.Calculator,
	processor *payment.Processor,
	catalogue *behavior.Catalogue,
	ids domain.IDGenerator,
) *Demo {
	return &Demo{
		out:        out,
		logger:     logger,
		calculator: calculator,
		processor:  processor,
		catalogue:  catalogue,
		ids:        ids,
	}
}

// Run executes every step in order and stops at the first unexpected error.
func (d *Demo) Run(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"value_objects", d.valueObjects},
		{"discounts", d.discounts},
		{"payments", d.payments},
		{"behaviors", d.behaviors},
	}
	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			d.logger.ErrorContext(ctx, "demo step failed",
				slog.String("step", step.name),
				slog.String("code", string(errs.GetCode(err))),
				slog.String("error", err.Error()))
			return err
		}
	}
	return nil
}

func (d *Demo) valueObjects(context.Context) error {
	address, err := domain.NewAddress("123 Main St", "Springfield", "12345")
	if err != nil {
		return err
	}
	if err := d.printf("Address: %s\n", address); err != nil {
		return err
	}

	if _, rejected := domain.NewPostalCode("1234"); rejected != nil {
		if err := d.printf("Rejected postal code: %v\n", rejected); err != nil {
			return err
		}
	}

	phone, err := domain.NewPhoneNumber("5551234567")
	if err != nil {
		return err
	}
	if err := d.printf("Contact phone: %s\n", domain.NewContact(phone).PhoneNumber()); err != nil {
		return err
	}

	email, err := domain.NewEmail("john@example.com")
	if err != nil {
		return err
	}
	if err := d.printf("User email: %s\n", domain.NewUser(email).Email()); err != nil {
		return err
	}

	id, err := domain.GenerateCustomerID(d.ids)
	if err != nil {
		return err
	}
	if err := d.printf("Customer id: %s\n", domain.NewCustomer(id).ID()); err != nil {
		return err
	}

	price, err := domain.NewMoneyFromString("999.99")
	if err != nil {
		return err
	}
	product, err := domain.NewProduct("Laptop", price)
	if err != nil {
		return err
	}
	discounted, err := product.ApplyDiscount(decimal.NewFromInt(10))
	if err != nil {
		return err
	}
	if err := d.printf("Product: %s %s, after 10%% off: %s\n", product.Name(), product.Price(), discounted.StringFixed(2)); err != nil {
		return err
	}
	return nil
}

func (d *Demo) discounts(ctx context.Context) error {
	cases := []struct {
		customerType discount.CustomerType
		amount       int64
	}{
		{discount.Regular, 120},
		{discount.VIP, 600},
	}
	for _, c := range cases {
		amount, err := domain.NewMoneyFromInt(c.amount)
		if err != nil {
			return err
		}
		pct, err := d.calculator.Calculate(ctx, c.customerType, amount)
		if err != nil {
			return err
		}
		if err := d.printf("%s discount for %s: %s%%\n", c.customerType, amount, pct); err != nil {
			return err
		}
	}
	return nil
}

func (d *Demo) payments(ctx context.Context) error {
	id, err := domain.GenerateCustomerID(d.ids)
	if err != nil {
		return err
	}
	amount, err := domain.NewMoneyFromInt(100)
	if err != nil {
		return err
	}
	for _, m := range d.processor.Methods() {
		if _, err := d.processor.Process(ctx, payment.Payment{Method: m, Amount: amount, Customer: id}); err != nil {
			return err
		}
	}
	return nil
}

func (d *Demo) behaviors(ctx context.Context) error {
	dog, err := d.catalogue.Animal("Husky", behavior.TagBarking)
	if err != nil {
		return err
	}
	cat, err := d.catalogue.Animal("Cat", behavior.TagMeowing)
	if err != nil {
		return err
	}
	for _, a := range []behavior.Animal{dog, cat} {
		if err := d.printf("%s:\n", a.Name()); err != nil {
			return err
		}
		if err := policy.Errors(a.PerformBehaviors(ctx)); err != nil {
			return err
		}
	}

	phone, err := d.catalogue.Device("Foldable smartphone", behavior.TagTouchScreen, behavior.TagFoldable)
	if err != nil {
		return err
	}
	if err := d.printf("%s:\n", phone.Name()); err != nil {
		return err
	}
	return policy.Errors(phone.ListFeatures(ctx))
}

func (d *Demo) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(d.out, format, args...)
	return err
}
