// Package patterns provides the generic building blocks behind the
// dispatchers: a freezable keyed registry and composable specifications.
package patterns

import (
	"errors"
	"sync"
	"sync/atomic"

	errs "github.com/auth-platform/libs/go/domainkit/errors"
	"github.com/auth-platform/libs/go/domainkit/functional"
)

// ErrFrozen is the cause of every write rejected by a frozen registry.
var ErrFrozen = errors.New("patterns: registry is frozen")

type snapshot[K comparable, V any] struct {
	items map[K]V
	order []K
}

// Registry provides a thread-safe keyed registry.
// Once frozen it becomes read-only and reads take no lock.
type Registry[K comparable, V any] struct {
	items  map[K]V
	order  []K
	frozen atomic.Pointer[snapshot[K, V]]
	mu     sync.RWMutex
}

// NewRegistry creates a new registry.
func NewRegistry[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{
		items: make(map[K]V),
	}
}

// Register adds or replaces an item.
// A frozen registry returns INVALID_CONFIGURATION wrapping ErrFrozen.
func (r *Registry[K, V]) Register(key K, value V) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen.Load() != nil {
		return errs.InvalidConfiguration("registry is frozen").WithCause(ErrFrozen)
	}
	if _, ok := r.items[key]; !ok {
		r.order = append(r.order, key)
	}
	r.items[key] = value
	return nil
}

// Freeze makes the registry read-only.
func (r *Registry[K, V]) Freeze() *Registry[K, V] {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen.Load() == nil {
		r.frozen.Store(&snapshot[K, V]{items: r.items, order: r.order})
	}
	return r
}

// Get retrieves an item from the registry.
func (r *Registry[K, V]) Get(key K) functional.Option[V] {
	if s := r.frozen.Load(); s != nil {
		return lookup(s.items, key)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lookup(r.items, key)
}

func lookup[K comparable, V any](items map[K]V, key K) functional.Option[V] {
	if v, ok := items[key]; ok {
		return functional.Some(v)
	}
	return functional.None[V]()
}

// Has checks if a key exists.
func (r *Registry[K, V]) Has(key K) bool {
	return r.Get(key).IsSome()
}

// Keys returns all registered keys in registration order.
func (r *Registry[K, V]) Keys() []K {
	if s := r.frozen.Load(); s != nil {
		return append([]K(nil), s.order...)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]K(nil), r.order...)
}
