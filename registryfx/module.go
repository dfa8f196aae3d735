package registryfx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	ns "github.com/0xalexb/hjarta-ns"
	"github.com/0xalexb/hjarta-ns/config"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// ErrEmptyName is returned when the registry name is empty.
var ErrEmptyName = errors.New("registry name must not be empty")

// ErrTypeMismatch is returned by Expose when the value at the keypath has another type.
var ErrTypeMismatch = errors.New("registered value has unexpected type")

func nameTag(name string) string {
	return fmt.Sprintf(`name:"%s"`, name)
}

// NewModule creates an Fx module providing a *ns.Registry tagged with name.
// The registry logs through the container's *slog.Logger when one is provided.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...ns.Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func(logger *slog.Logger) *ns.Registry {
					return ns.New(append(withLogger(logger), opts...)...)
				},
				fx.ParamTags(`optional:"true"`),
				fx.ResultTags(nameTag(name)),
			),
		),
	)
}

// NewModuleFromSettings creates an Fx module providing a *ns.Registry tagged with name,
// built from config.Settings found at path. It requires config.Parser and
// config.DataFetcher in the container.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModuleFromSettings(name, path string) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func(parser config.Parser, fetcher config.DataFetcher, logger *slog.Logger) (*ns.Registry, error) {
					settings, err := config.Load(parser, fetcher, path)
					if err != nil {
						return nil, fmt.Errorf("loading registry %q: %w", name, err)
					}

					if logger == nil {
						logger = settings.Logger(os.Stderr)
					}

					return ns.New(settings.Options(logger)...), nil
				},
				fx.ParamTags("", "", `optional:"true"`),
				fx.ResultTags(nameTag(name)),
			),
		),
	)
}

// Bind registers value at keypath in the named registry when the application is built.
// Factories are invoked at that point with args followed by the registry default arguments.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Bind(name, keypath string, value any, args ...any) fx.Option {
	return fx.Invoke(
		fx.Annotate(
			func(reg *ns.Registry) error {
				_, err := reg.Register(keypath, value, args...)
				if err != nil {
					return fmt.Errorf("binding %q in registry %q: %w", keypath, name, err)
				}

				return nil
			},
			fx.ParamTags(nameTag(name)),
		),
	)
}

// Expose provides the value registered at keypath in the named registry as a T.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Expose[T any](name, keypath string) fx.Option {
	return fx.Provide(
		fx.Annotate(
			func(reg *ns.Registry) (T, error) {
				var zero T

				value, err := reg.Lookup(keypath)
				if err != nil {
					return zero, fmt.Errorf("exposing %q from registry %q: %w", keypath, name, err)
				}

				typed, ok := value.(T)
				if !ok {
					return zero, fmt.Errorf("%w: %q holds %T, want %T", ErrTypeMismatch, keypath, value, zero)
				}

				return typed, nil
			},
			fx.ParamTags(nameTag(name)),
		),
	)
}

// Claim installs the named registry as ns.Default when the application starts and
// hands the slot back to its previous occupant when it stops.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Claim(name string) fx.Option {
	return fx.Invoke(
		fx.Annotate(
			func(lifecycle fx.Lifecycle, reg *ns.Registry) {
				lifecycle.Append(fx.Hook{
					OnStart: func(_ context.Context) error {
						ns.SetDefault(reg)
						slog.Debug("registry claimed default slot", "name", name)

						return nil
					},
					OnStop: func(_ context.Context) error {
						reg.NoConflict()
						slog.Debug("registry released default slot", "name", name)

						return nil
					},
				})
			},
			fx.ParamTags("", nameTag(name)),
		),
	)
}

// EventLogger routes Fx lifecycle events to the container's *slog.Logger.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func EventLogger() fx.Option {
	return fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
		return &fxevent.SlogLogger{Logger: logger}
	})
}

func withLogger(logger *slog.Logger) []ns.Option {
	if logger == nil {
		return nil
	}

	return []ns.Option{ns.WithLogger(logger)}
}
