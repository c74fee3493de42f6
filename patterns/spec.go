package patterns

// Spec is a predicate over T used to select rules and validate membership.
type Spec[T any] interface {
	IsSatisfiedBy(T) bool
}

// SpecFunc adapts a function to Spec.
type SpecFunc[T any] func(T) bool

// IsSatisfiedBy implements Spec.
func (f SpecFunc[T]) IsSatisfiedBy(t T) bool {
	return f(t)
}

// Not negates spec.
func Not[T any](spec Spec[T]) Spec[T] {
	return SpecFunc[T](func(t T) bool {
		return !spec.IsSatisfiedBy(t)
	})
}

// In is satisfied by any of values.
func In[T comparable](values ...T) Spec[T] {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return SpecFunc[T](func(v T) bool {
		_, ok := set[v]
		return ok
	})
}

// FindFirst returns the first item satisfying spec.
func FindFirst[T any](items []T, spec Spec[T]) (T, bool) {
	for _, item := range items {
		if spec.IsSatisfiedBy(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}
