// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml with native PathString support for
// path navigation. Paths are split on a configurable delimiter (":" by default)
// and converted to YAML path format internally, so "apps:billing" and, with
// WithDelimiter("/"), "apps/billing" both become "$.apps.billing".
//
// Usage:
//
//	parser := yaml.NewParser(yaml.WithDelimiter("/"), yaml.WithStrict())
//	var settings config.Settings
//	err := parser.Parse(data, &settings, "apps/billing/registry")
package yaml
