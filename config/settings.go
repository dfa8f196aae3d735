package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"strings"

	ns "github.com/0xalexb/hjarta-ns"
	"github.com/0xalexb/hjarta-ns/logging"
)

// ErrInvalidLogLevel is returned when Settings.LogLevel names an unknown level.
var ErrInvalidLogLevel = errors.New("invalid log level")

// ErrInvalidLogFormat is returned when Settings.LogFormat is neither json nor text.
var ErrInvalidLogFormat = errors.New("invalid log format")

// Settings is the declarative form of a registry configuration.
type Settings struct {
	Delimiter string         `yaml:"delimiter"`
	Arguments []any          `yaml:"arguments"`
	Context   any            `yaml:"context"`
	LogLevel  string         `yaml:"log_level"`
	LogFormat string         `yaml:"log_format"`
	Modules   map[string]any `yaml:"modules"`
	Extra     map[string]any `yaml:"extra"`
}

// SetDefaults fills the delimiter and logging fields when they are empty.
func (s *Settings) SetDefaults() bool {
	changed := false

	if s.Delimiter == "" {
		s.Delimiter = ns.DefaultDelimiter
		changed = true
	}

	if s.LogLevel == "" {
		s.LogLevel = "info"
		changed = true
	}

	if s.LogFormat == "" {
		s.LogFormat = logging.FormatJSON
		changed = true
	}

	return changed
}

// Validate checks the logging fields.
func (s *Settings) Validate() error {
	if !logging.ValidLevel(s.LogLevel) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, s.LogLevel)
	}

	switch strings.ToLower(s.LogFormat) {
	case "", logging.FormatJSON, logging.FormatText:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, s.LogFormat)
	}
}

// Logger builds the logger described by the settings, writing to w.
func (s *Settings) Logger(w io.Writer) *slog.Logger {
	return logging.NewLogger(logging.LoggerConfig{
		Level:     s.LogLevel,
		Format:    s.LogFormat,
		AddSource: false,
	}, w)
}

// Options converts the settings into registry options.
// Modules, when present, replace the registry root; the map is copied at the top level.
// A nil logger leaves the registry logger unchanged.
func (s *Settings) Options(logger *slog.Logger) []ns.Option {
	opts := []ns.Option{
		ns.WithDelimiter(s.Delimiter),
		ns.WithArguments(s.Arguments...),
		ns.WithContext(s.Context),
	}

	if s.Modules != nil {
		opts = append(opts, ns.WithModules(ns.Container(maps.Clone(s.Modules))))
	}

	for key, value := range s.Extra {
		opts = append(opts, ns.WithExtra(key, value))
	}

	if logger != nil {
		opts = append(opts, ns.WithLogger(logger))
	}

	return opts
}

// NewRegistry builds a registry from settings, logging to w.
func NewRegistry(settings *Settings, w io.Writer) *ns.Registry {
	return ns.New(settings.Options(settings.Logger(w))...)
}

// Load runs the Provider pipeline for Settings found at path.
func Load(parser Parser, fetcher DataFetcher, path string) (*Settings, error) {
	return Provider(&Settings{}, path)(parser, fetcher)
}
