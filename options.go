package ns

import (
	"log/slog"
	"slices"
)

// Configuration holds the settings consulted by every resolution and factory call.
type Configuration struct {
	// Delimiter separates keypath segments.
	Delimiter string
	// Arguments are appended to every factory call after the caller's arguments.
	Arguments []any
	// Context is passed to factories as their receiver.
	Context any
	// Extra collects options the registry itself does not interpret.
	Extra map[string]any
}

// Option defines a function type for applying registry configuration.
type Option func(*Registry)

// WithModules replaces the whole registry tree with modules.
// A nil container installs a fresh empty root.
func WithModules(modules Container) Option {
	return func(reg *Registry) {
		if modules == nil {
			modules = Container{}
		}

		reg.root = modules
	}
}

// WithDelimiter sets the keypath segment separator.
// An empty delimiter splits keypaths into single characters.
func WithDelimiter(delimiter string) Option {
	return func(reg *Registry) {
		reg.config.Delimiter = delimiter
	}
}

// WithArguments replaces the default arguments appended to every factory call.
func WithArguments(args ...any) Option {
	return func(reg *Registry) {
		reg.config.Arguments = slices.Clone(args)
		if reg.config.Arguments == nil {
			reg.config.Arguments = []any{}
		}
	}
}

// WithContext sets the receiver passed to factories.
func WithContext(receiver any) Option {
	return func(reg *Registry) {
		reg.config.Context = receiver
	}
}

// WithExtra stores an option the registry does not interpret itself.
// Values are kept as given, without validation.
func WithExtra(key string, value any) Option {
	return func(reg *Registry) {
		if reg.config.Extra == nil {
			reg.config.Extra = map[string]any{}
		}

		reg.config.Extra[key] = value
	}
}

// WithLogger sets the logger used for debug output. A nil logger selects slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(reg *Registry) {
		if logger == nil {
			logger = slog.Default()
		}

		reg.logger = logger
	}
}
