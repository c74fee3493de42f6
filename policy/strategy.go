// Package policy selects and runs interchangeable strategies.
//
// Two dispatch shapes are provided:
//
//   - Dispatcher: closed enumeration dispatch. Every discriminator value is
//     bound to exactly one strategy at construction time; resolving an
//     unbound value fails with *errors.UnknownDiscriminatorError.
//   - Composite: open composition. A fixed, ordered sequence of strategies is
//     run front to back; a failing strategy never stops the ones after it.
//
// Dispatchers hold no business logic and no mutable state after
// construction. Strategy results and errors are passed through unchanged.
package policy

import "context"

// Strategy is one interchangeable implementation of a capability.
// Implementations must be stateless and safe for concurrent use.
type Strategy[I, O any] interface {
	// Name identifies the strategy in errors, logs and metrics.
	Name() string
	// Execute runs the strategy on in.
	Execute(ctx context.Context, in I) (O, error)
}

type funcStrategy[I, O any] struct {
	name string
	fn   func(context.Context, I) (O, error)
}

// Func adapts a function to Strategy.
func Func[I, O any](name string, fn func(context.Context, I) (O, error)) Strategy[I, O] {
	return funcStrategy[I, O]{name: name, fn: fn}
}

func (s funcStrategy[I, O]) Name() string { return s.name }

func (s funcStrategy[I, O]) Execute(ctx context.Context, in I) (O, error) {
	return s.fn(ctx, in)
}

// Binding pairs a discriminator with its strategy.
type Binding[D comparable, I, O any] struct {
	Discriminator D
	Strategy      Strategy[I, O]
}

// Bind creates a Binding.
func Bind[D comparable, I, O any](d D, s Strategy[I, O]) Binding[D, I, O] {
	return Binding[D, I, O]{Discriminator: d, Strategy: s}
}
