package config

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrFetch is returned when the DataFetcher fails.
var ErrFetch = errors.New("reading data error")

// ErrParse is returned when the Parser fails.
var ErrParse = errors.New("parsing error")

// ErrValidate is returned when the target fails validation.
var ErrValidate = errors.New("validating error")

// Parser defines an interface for parsing configuration data into a target structure.
//
// The path parameter selects a section of the document. How path segments are
// separated is up to the implementation; the YAML parser uses colon (:) unless
// configured otherwise. An empty path means the entire document.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that reads, parses, sets defaults, and validates configuration data.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, fetcher DataFetcher) (*T, error) {
		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFetch, err)
		}

		err = parser.Parse(data, target, path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}

		if defaulter, isDefaulter := any(target).(Defaulter); isDefaulter {
			if defaulter.SetDefaults() {
				slog.Debug("defaults applied", slog.String("path", path))
			}
		}

		if validator, isValidator := any(target).(Validator); isValidator {
			err := validator.Validate()
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrValidate, err)
			}
		}

		return target, nil
	}
}
