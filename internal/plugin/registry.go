// Package plugin implements the in-process plugin registry: flat
// collections of driver factories and catalog fragments contributed by
// active plugins. The registry satisfies the catalog package's
// DriverResolver and FragmentProvider interfaces and is injected where
// needed; there is no process-wide global.
package plugin

import (
	"errors"
	"sync"

	"github.com/nyonicai/squirrel-core/internal/catalog"
)

// Registry errors
var (
	ErrNilFactory = errors.New("driver factory cannot be nil")
)

// Registry collects plugin contributions. Registration order is
// preserved: fragment merging is last-wins, so order matters.
// Safe for concurrent registration and query.
type Registry struct {
	mu        sync.RWMutex
	drivers   []catalog.DriverFactory
	fragments [][]catalog.KeyedSource
}

// NewRegistry creates an empty plugin registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterDriver contributes a driver factory.
func (r *Registry) RegisterDriver(factory catalog.DriverFactory) error {
	if factory == nil {
		return ErrNilFactory
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drivers = append(r.drivers, factory)
	return nil
}

// RegisterFragment contributes a catalog fragment: a list of sources
// addressed by fully qualified keys.
func (r *Registry) RegisterFragment(fragment []catalog.KeyedSource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fragments = append(r.fragments, fragment)
}

// Drivers returns the contributed driver factories in registration order.
func (r *Registry) Drivers() []catalog.DriverFactory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]catalog.DriverFactory, len(r.drivers))
	copy(out, r.drivers)
	return out
}

// Fragments returns the contributed catalog fragments in registration
// order, one slice per contribution.
func (r *Registry) Fragments() [][]catalog.KeyedSource {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([][]catalog.KeyedSource, len(r.fragments))
	copy(out, r.fragments)
	return out
}

// Compile-time checks that Registry serves both collaborator roles.
var (
	_ catalog.DriverResolver   = (*Registry)(nil)
	_ catalog.FragmentProvider = (*Registry)(nil)
)
