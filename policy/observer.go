package policy

import (
	"context"
	"time"
)

// Observer receives dispatch events. Observers must not block and cannot
// change results.
type Observer interface {
	// Resolved is called after every Resolve. err is non-nil for unbound
	// discriminators.
	Resolved(dispatcher, discriminator string, err error)
	// Executed is called after every strategy run with its wall-clock
	// start time and duration.
	Executed(ctx context.Context, dispatcher, strategy string, start time.Time, elapsed time.Duration, err error)
}

// NopObserver ignores all events.
type NopObserver struct{}

// Resolved implements Observer.
func (NopObserver) Resolved(string, string, error) {}

// Executed implements Observer.
func (NopObserver) Executed(context.Context, string, string, time.Time, time.Duration, error) {}

type multiObserver []Observer

// Observers fans events out to each non-nil observer in order.
func Observers(observers ...Observer) Observer {
	var out multiObserver
	for _, o := range observers {
		switch v := o.(type) {
		case nil, NopObserver:
		case multiObserver:
			out = append(out, v...)
		default:
			out = append(out, o)
		}
	}
	switch len(out) {
	case 0:
		return NopObserver{}
	case 1:
		return out[0]
	}
	return out
}

func (m multiObserver) Resolved(dispatcher, discriminator string, err error) {
	for _, o := range m {
		o.Resolved(dispatcher, discriminator, err)
	}
}

func (m multiObserver) Executed(ctx context.Context, dispatcher, strategy string, start time.Time, elapsed time.Duration, err error) {
	for _, o := range m {
		o.Executed(ctx, dispatcher, strategy, start, elapsed, err)
	}
}

// Option configures a Dispatcher or Composite.
type Option func(*options)

type options struct {
	observer Observer
	now      func() time.Time
}

func newOptions(opts []Option) options {
	o := options{observer: NopObserver{}, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithObserver attaches observers. Repeated calls accumulate.
func WithObserver(observers ...Observer) Option {
	return func(o *options) {
		o.observer = Observers(append([]Observer{o.observer}, observers...)...)
	}
}

// WithClock overrides the time source used for execution timing.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
