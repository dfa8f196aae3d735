package ns

import (
	"log/slog"
	"maps"
	"slices"
	"sync"
)

// Registry is a tree of nested containers addressed by keypaths.
type Registry struct {
	mu       sync.Mutex
	root     Container
	config   Configuration
	logger   *slog.Logger
	previous *Registry
}

// New creates an empty Registry configured with opts.
func New(opts ...Option) *Registry {
	reg := &Registry{
		root: Container{},
		config: Configuration{
			Delimiter: DefaultDelimiter,
			Arguments: []any{},
			Context:   nil,
			Extra:     map[string]any{},
		},
		logger:   slog.Default(),
		previous: nil,
	}

	for _, apply := range opts {
		apply(reg)
	}

	return reg
}

// Configure applies opts to the registry in place and returns it.
// Settings not named by opts keep their current values.
func (r *Registry) Configure(opts ...Option) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, apply := range opts {
		apply(r)
	}

	r.logger.Debug("registry configured",
		slog.String("delimiter", r.config.Delimiter),
		slog.Int("arguments", len(r.config.Arguments)),
	)

	return r
}

// Configuration returns a copy of the current configuration.
func (r *Registry) Configuration() Configuration {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Configuration{
		Delimiter: r.config.Delimiter,
		Arguments: slices.Clone(r.config.Arguments),
		Context:   r.config.Context,
		Extra:     maps.Clone(r.config.Extra),
	}
}

// Modules returns the live root container.
func (r *Registry) Modules() Container {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.root
}

// Resolve returns the value at keypath, creating empty containers for missing segments.
// It returns nil when a non-container value blocks the walk; use Lookup to tell that
// case apart from a stored nil.
func (r *Registry) Resolve(keypath string) any {
	value, err := r.Lookup(keypath)
	if err != nil {
		return nil
	}

	return value
}

// Lookup is Resolve with the blocking error reported.
// The returned error wraps ErrNotContainer.
func (r *Registry) Lookup(keypath string) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	target, err := r.resolve(keypath)
	if err != nil {
		return nil, err
	}

	return target.value, nil
}

// Register stores value at keypath and returns the registry for chaining.
//
// A Factory value is invoked with args followed by the default arguments and its result
// is stored instead. Records (Container or map[string]any) are merged into the container
// at keypath; any other value replaces the slot. Errors returned by the factory are
// passed through unchanged.
func (r *Registry) Register(keypath string, value any, args ...any) (*Registry, error) {
	factory, isFactory := asFactory(value)
	if isFactory {
		err := r.prepare(keypath)
		if err != nil {
			return r, err
		}

		produced, err := r.invoke(factory, args)
		if err != nil {
			return r, err
		}

		value = produced
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	target, err := r.resolve(keypath)
	if err != nil {
		return r, err
	}

	return r, r.apply(keypath, target, value)
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(keypath string, value any, args ...any) *Registry {
	_, err := r.Register(keypath, value, args...)
	if err != nil {
		panic(err)
	}

	return r
}

// prepare creates the containers leading to keypath before a factory runs.
func (r *Registry) prepare(keypath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.resolve(keypath)

	return err
}
