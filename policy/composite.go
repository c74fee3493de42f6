package policy

import (
	"context"
	"fmt"

	errs "github.com/auth-platform/libs/go/domainkit/errors"
	"github.com/auth-platform/libs/go/domainkit/functional"
)

// Outcome is the result of one strategy in a Composite run.
type Outcome[O any] struct {
	Strategy string
	Result   functional.Result[O]
}

// Composite runs a fixed, ordered sequence of strategies.
// It never mutates after construction; With and Without return new values.
type Composite[I, O any] struct {
	name       string
	strategies []Strategy[I, O]
	opts       options
	rawOpts    []Option
}

// NewComposite builds a Composite. An empty sequence is valid.
func NewComposite[I, O any](name string, strategies []Strategy[I, O], opts ...Option) (*Composite[I, O], error) {
	for i, s := range strategies {
		if s == nil {
			return nil, errs.InvalidConfiguration("nil strategy").
				WithDetail("composite", name).
				WithDetail("position", i)
		}
	}
	seq := make([]Strategy[I, O], len(strategies))
	copy(seq, strategies)
	return &Composite[I, O]{
		name:       name,
		strategies: seq,
		opts:       newOptions(opts),
		rawOpts:    opts,
	}, nil
}

// MustNewComposite is like NewComposite but panics on error.
func MustNewComposite[I, O any](name string, strategies []Strategy[I, O], opts ...Option) *Composite[I, O] {
	c, err := NewComposite(name, strategies, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the composite name.
func (c *Composite[I, O]) Name() string { return c.name }

// Len returns the number of strategies.
func (c *Composite[I, O]) Len() int { return len(c.strategies) }

// Names returns strategy names in execution order.
func (c *Composite[I, O]) Names() []string {
	names := make([]string, len(c.strategies))
	for i, s := range c.strategies {
		names[i] = s.Name()
	}
	return names
}

// PerformAll runs every strategy once, front to back. A strategy that
// returns an error or panics is recorded in its Outcome and the remaining
// strategies still run.
func (c *Composite[I, O]) PerformAll(ctx context.Context, in I) []Outcome[O] {
	outcomes := make([]Outcome[O], len(c.strategies))
	for i, s := range c.strategies {
		start := c.opts.now()
		out, err := c.perform(ctx, s, in)
		c.opts.observer.Executed(ctx, c.name, s.Name(), start, c.opts.now().Sub(start), err)
		outcomes[i] = Outcome[O]{Strategy: s.Name(), Result: functional.Try(out, err)}
	}
	return outcomes
}

func (c *Composite[I, O]) perform(ctx context.Context, s Strategy[I, O], in I) (out O, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero O
			out = zero
			err = errs.Internal("strategy panicked").
				WithDetail("composite", c.name).
				WithDetail("strategy", s.Name()).
				WithDetail("panic", fmt.Sprint(r))
		}
	}()
	return s.Execute(ctx, in)
}

// With returns a new Composite with strategies appended.
func (c *Composite[I, O]) With(strategies ...Strategy[I, O]) (*Composite[I, O], error) {
	seq := make([]Strategy[I, O], 0, len(c.strategies)+len(strategies))
	seq = append(seq, c.strategies...)
	seq = append(seq, strategies...)
	return NewComposite(c.name, seq, c.rawOpts...)
}

// Without returns a new Composite with every strategy called name removed.
func (c *Composite[I, O]) Without(name string) *Composite[I, O] {
	seq := make([]Strategy[I, O], 0, len(c.strategies))
	for _, s := range c.strategies {
		if s.Name() != name {
			seq = append(seq, s)
		}
	}
	return &Composite[I, O]{name: c.name, strategies: seq, opts: c.opts, rawOpts: c.rawOpts}
}

// Values returns the successful outputs in order, skipping failures.
func Values[O any](outcomes []Outcome[O]) []O {
	values := make([]O, 0, len(outcomes))
	for _, o := range outcomes {
		if v, err := o.Result.Get(); err == nil {
			values = append(values, v)
		}
	}
	return values
}

// Errors joins the failures of a run, or returns nil if every strategy succeeded.
func Errors[O any](outcomes []Outcome[O]) error {
	var failed []error
	for _, o := range outcomes {
		if o.Result.IsErr() {
			failed = append(failed, o.Result.UnwrapErr())
		}
	}
	return errs.Join(failed...)
}
