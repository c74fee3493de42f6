package behavior

import (
	"context"
	"io"

	"github.com/auth-platform/libs/go/domainkit/policy"
)

// Composite names reported to observers. They never include the subject name.
const (
	AnimalComposite = "animal"
	DeviceComposite = "device"
)

// Animal performs a fixed list of behaviors.
type Animal struct {
	subject   Subject
	behaviors *policy.Composite[Subject, string]
}

// NewAnimal creates an Animal that performs behaviors in the given order.
func NewAnimal(name string, behaviors []Behavior, opts ...policy.Option) (Animal, error) {
	c, err := policy.NewComposite(AnimalComposite, behaviors, opts...)
	if err != nil {
		return Animal{}, err
	}
	return Animal{subject: Subject{Name: name}, behaviors: c}, nil
}

// Name returns the animal's name.
func (a Animal) Name() string { return a.subject.Name }

// Behaviors returns the behavior names in order.
func (a Animal) Behaviors() []string { return a.behaviors.Names() }

// PerformBehaviors runs every behavior; one failure does not stop the rest.
func (a Animal) PerformBehaviors(ctx context.Context) []policy.Outcome[string] {
	return a.behaviors.PerformAll(ctx, a.subject)
}

// With returns a copy of the animal that also performs behaviors.
func (a Animal) With(behaviors ...Behavior) (Animal, error) {
	c, err := a.behaviors.With(behaviors...)
	if err != nil {
		return Animal{}, err
	}
	return Animal{subject: a.subject, behaviors: c}, nil
}

// Without returns a copy of the animal without the named behavior.
func (a Animal) Without(behavior string) Animal {
	return Animal{subject: a.subject, behaviors: a.behaviors.Without(behavior)}
}

// Device lists a fixed set of features.
type Device struct {
	subject  Subject
	features *policy.Composite[Subject, string]
}

// NewDevice creates a Device whose features are listed in the given order.
func NewDevice(name string, features []Behavior, opts ...policy.Option) (Device, error) {
	c, err := policy.NewComposite(DeviceComposite, features, opts...)
	if err != nil {
		return Device{}, err
	}
	return Device{subject: Subject{Name: name}, features: c}, nil
}

// Name returns the device's name.
func (d Device) Name() string { return d.subject.Name }

// Features returns the feature names in order.
func (d Device) Features() []string { return d.features.Names() }

// ListFeatures runs every feature; one failure does not stop the rest.
func (d Device) ListFeatures(ctx context.Context) []policy.Outcome[string] {
	return d.features.PerformAll(ctx, d.subject)
}

// Catalogue resolves tags to built-in behaviors.
type Catalogue struct {
	dispatcher *policy.Dispatcher[Tag, Subject, string]
	opts       []policy.Option
}

// NewCatalogue binds every built-in tag. Behaviors write to out.
// opts are applied to the tag dispatcher and to every composite it builds.
func NewCatalogue(out io.Writer, opts ...policy.Option) (*Catalogue, error) {
	d, err := policy.NewDispatcher(CatalogueName, []policy.Binding[Tag, Subject, string]{
		policy.Bind(TagBarking, Barking(out)),
		policy.Bind(TagMeowing, Meowing(out)),
		policy.Bind(TagTouchScreen, TouchScreen(out)),
		policy.Bind(TagFoldable, Foldable(out)),
	}, opts...)
	if err != nil {
		return nil, err
	}
	return &Catalogue{dispatcher: d, opts: opts}, nil
}

// Behaviors resolves each tag in order.
func (c *Catalogue) Behaviors(tags ...Tag) ([]Behavior, error) {
	out := make([]Behavior, 0, len(tags))
	for _, t := range tags {
		b, err := c.dispatcher.Resolve(t)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// Animal builds an Animal from tags.
func (c *Catalogue) Animal(name string, tags ...Tag) (Animal, error) {
	b, err := c.Behaviors(tags...)
	if err != nil {
		return Animal{}, err
	}
	return NewAnimal(name, b, c.opts...)
}

// Device builds a Device from tags.
func (c *Catalogue) Device(name string, tags ...Tag) (Device, error) {
	f, err := c.Behaviors(tags...)
	if err != nil {
		return Device{}, err
	}
	return NewDevice(name, f, c.opts...)
}
