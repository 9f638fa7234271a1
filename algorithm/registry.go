package algorithm

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a fresh Algorithm instance.
type Factory func() Algorithm

// Registry maps algorithm IDs to factories. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Default is the process-wide registry.
var Default = NewRegistry()

// Register adds factory under id.
func (r *Registry) Register(id string, factory Factory) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	if factory == nil {
		return fmt.Errorf("%w: %q: nil factory", ErrBadID, id)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, id)
	}
	r.factories[id] = factory

	return nil
}

// MustRegister is Register that panics on error, for init-time wiring.
func (r *Registry) MustRegister(id string, factory Factory) {
	if err := r.Register(id, factory); err != nil {
		panic(err)
	}
}

// New instantiates the algorithm registered under id.
func (r *Registry) New(id string) (Algorithm, error) {
	r.mu.RLock()
	factory, ok := r.factories[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, id)
	}

	return factory(), nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[id]

	return ok
}

// RegisteredTypes returns every registered ID, sorted.
func (r *Registry) RegisteredTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Register adds factory to the Default registry.
func Register(id string, factory Factory) error { return Default.Register(id, factory) }

// New instantiates id from the Default registry.
func New(id string) (Algorithm, error) { return Default.New(id) }

// RegisteredTypes lists the Default registry.
func RegisteredTypes() []string { return Default.RegisteredTypes() }
