package domain

import (
	"github.com/shopspring/decimal"

	"github.com/auth-platform/libs/go/domainkit/validation"
)

// Product owns its name and price.
type Product struct {
	name  string
	price Money
}

// NewProduct creates a Product. The name must not be empty.
func NewProduct(name string, price Money) (Product, error) {
	if err := validation.Field("product_name", name, validation.NotEmpty()); err != nil {
		return Product{}, err
	}
	return Product{name: name, price: price}, nil
}

// Name returns the product name.
func (p Product) Name() string { return p.name }

// Price returns the product price.
func (p Product) Price() Money { return p.price }

// ApplyDiscount returns the price reduced by percent, with percent in [0, 100].
// The product itself is unchanged.
func (p Product) ApplyDiscount(percent decimal.Decimal) (Money, error) {
	off, err := p.price.Percent(percent)
	if err != nil {
		return Money{}, err
	}
	return p.price.Sub(off)
}

// WithPrice returns a copy of the product with a different price.
func (p Product) WithPrice(price Money) Product {
	return Product{name: p.name, price: price}
}
