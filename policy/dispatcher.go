package policy

import (
	"context"
	"fmt"

	errs "github.com/auth-platform/libs/go/domainkit/errors"
	"github.com/auth-platform/libs/go/domainkit/patterns"
)

// Dispatcher maps each discriminator of a closed set to exactly one strategy.
// The mapping is fixed at construction; a Dispatcher is safe for concurrent use.
type Dispatcher[D comparable, I, O any] struct {
	name       string
	strategies *patterns.Registry[D, Strategy[I, O]]
	opts       options
}

// NewDispatcher builds a Dispatcher from at least one binding.
// Nil strategies and duplicate discriminators are configuration errors.
func NewDispatcher[D comparable, I, O any](name string, bindings []Binding[D, I, O], opts ...Option) (*Dispatcher[D, I, O], error) {
	if len(bindings) == 0 {
		return nil, errs.InvalidConfiguration("dispatcher has no bindings").WithDetail("dispatcher", name)
	}
	reg := patterns.NewRegistry[D, Strategy[I, O]]()
	for _, b := range bindings {
		if b.Strategy == nil {
			return nil, errs.InvalidConfiguration("nil strategy").
				WithDetail("dispatcher", name).
				WithDetail("discriminator", fmt.Sprint(b.Discriminator))
		}
		if reg.Has(b.Discriminator) {
			return nil, errs.InvalidConfiguration("duplicate discriminator").
				WithDetail("dispatcher", name).
				WithDetail("discriminator", fmt.Sprint(b.Discriminator))
		}
		if err := reg.Register(b.Discriminator, b.Strategy); err != nil {
			return nil, err
		}
	}
	return &Dispatcher[D, I, O]{
		name:       name,
		strategies: reg.Freeze(),
		opts:       newOptions(opts),
	}, nil
}

// MustNewDispatcher is like NewDispatcher but panics on error.
func MustNewDispatcher[D comparable, I, O any](name string, bindings []Binding[D, I, O], opts ...Option) *Dispatcher[D, I, O] {
	d, err := NewDispatcher(name, bindings, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Name returns the dispatcher name.
func (d *Dispatcher[D, I, O]) Name() string { return d.name }

// Resolve returns the strategy bound to discriminator.
// An unbound value yields *errors.UnknownDiscriminatorError.
func (d *Dispatcher[D, I, O]) Resolve(discriminator D) (Strategy[I, O], error) {
	s, ok := d.strategies.Get(discriminator).Get()
	var err error
	if !ok {
		err = errs.UnknownDiscriminator(d.name, discriminator)
	}
	d.opts.observer.Resolved(d.name, fmt.Sprint(discriminator), err)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Apply runs s on in and returns its output and error unchanged.
func (d *Dispatcher[D, I, O]) Apply(ctx context.Context, s Strategy[I, O], in I) (O, error) {
	if s == nil {
		var zero O
		return zero, errs.InvalidConfiguration("nil strategy").WithDetail("dispatcher", d.name)
	}
	start := d.opts.now()
	out, err := s.Execute(ctx, in)
	d.opts.observer.Executed(ctx, d.name, s.Name(), start, d.opts.now().Sub(start), err)
	return out, err
}

// Dispatch resolves discriminator and applies the bound strategy.
func (d *Dispatcher[D, I, O]) Dispatch(ctx context.Context, discriminator D, in I) (O, error) {
	s, err := d.Resolve(discriminator)
	if err != nil {
		var zero O
		return zero, err
	}
	return d.Apply(ctx, s, in)
}

// Discriminators returns the bound discriminators in binding order.
func (d *Dispatcher[D, I, O]) Discriminators() []D {
	return d.strategies.Keys()
}

// Knows reports whether discriminator is bound.
func (d *Dispatcher[D, I, O]) Knows(discriminator D) bool {
	return d.strategies.Has(discriminator)
}
