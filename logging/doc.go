// Package logging builds the slog loggers used by the registry and its settings loader.
// JSON output is the default; a text handler can be selected for local debugging.
package logging
