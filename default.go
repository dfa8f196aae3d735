package ns

import "sync"

//nolint:gochecknoglobals // the shared default slot is the point of this file.
var (
	defaultMu       sync.Mutex
	defaultRegistry = New()
)

// Default returns the registry used by the package-level functions.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	return defaultRegistry
}

// SetDefault makes reg the registry used by the package-level functions.
// Whatever held the slot before is remembered so that reg.NoConflict can reinstate it.
func SetDefault(reg *Registry) {
	if reg == nil {
		return
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultRegistry == reg {
		return
	}

	reg.mu.Lock()
	reg.previous = defaultRegistry
	reg.mu.Unlock()

	defaultRegistry = reg
}

// NoConflict gives the default slot back to the registry that held it before
// SetDefault(r), then applies opts when any are given. It returns r unchanged.
// When r does not hold the slot, or never displaced another registry, only opts are applied.
func (r *Registry) NoConflict(opts ...Option) *Registry {
	defaultMu.Lock()

	if defaultRegistry == r {
		r.mu.Lock()
		previous := r.previous
		r.previous = nil
		r.mu.Unlock()

		if previous != nil {
			defaultRegistry = previous
		}
	}

	defaultMu.Unlock()

	if len(opts) > 0 {
		r.Configure(opts...)
	}

	return r
}

// Resolve calls Resolve on the default registry.
func Resolve(keypath string) any {
	return Default().Resolve(keypath)
}

// Lookup calls Lookup on the default registry.
func Lookup(keypath string) (any, error) {
	return Default().Lookup(keypath)
}

// Register calls Register on the default registry.
func Register(keypath string, value any, args ...any) (*Registry, error) {
	return Default().Register(keypath, value, args...)
}

// MustRegister calls MustRegister on the default registry.
func MustRegister(keypath string, value any, args ...any) *Registry {
	return Default().MustRegister(keypath, value, args...)
}

// Configure calls Configure on the default registry.
func Configure(opts ...Option) *Registry {
	return Default().Configure(opts...)
}
