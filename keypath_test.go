package ns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitKeypath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		keypath   string
		delimiter string
		expected  []string
	}{
		{
			name:      "empty keypath",
			keypath:   "",
			delimiter: ".",
			expected:  nil,
		},
		{
			name:      "single segment",
			keypath:   "app",
			delimiter: ".",
			expected:  []string{"app"},
		},
		{
			name:      "nested segments",
			keypath:   "app.services.mailer",
			delimiter: ".",
			expected:  []string{"app", "services", "mailer"},
		},
		{
			name:      "custom delimiter",
			keypath:   "app/services",
			delimiter: "/",
			expected:  []string{"app", "services"},
		},
		{
			name:      "multi-character delimiter",
			keypath:   "app::services",
			delimiter: "::",
			expected:  []string{"app", "services"},
		},
		{
			name:      "dot is literal with other delimiter",
			keypath:   "a.b/c",
			delimiter: "/",
			expected:  []string{"a.b", "c"},
		},
		{
			name:      "only delimiters",
			keypath:   "...",
			delimiter: ".",
			expected:  []string{},
		},
		{
			name:      "stops at inner empty segment",
			keypath:   "a..b",
			delimiter: ".",
			expected:  []string{"a"},
		},
		{
			name:      "trailing delimiter",
			keypath:   "a.b.",
			delimiter: ".",
			expected:  []string{"a", "b"},
		},
		{
			name:      "empty delimiter splits characters",
			keypath:   "abc",
			delimiter: "",
			expected:  []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := splitKeypath(tt.keypath, tt.delimiter)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestAsFactory(t *testing.T) {
	t.Parallel()

	var nilFactory Factory

	literal := func(_ any, _ ...any) (any, error) { return nil, nil }

	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{name: "named type", value: Factory(literal), expected: true},
		{name: "func literal", value: literal, expected: true},
		{name: "nil factory", value: nilFactory, expected: false},
		{name: "other func", value: func() {}, expected: false},
		{name: "scalar", value: "x", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, ok := asFactory(tt.value)
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestAsRecord(t *testing.T) {
	t.Parallel()

	var nilContainer Container

	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{name: "container", value: Container{}, expected: true},
		{name: "plain map", value: map[string]any{"a": 1}, expected: true},
		{name: "nil container", value: nilContainer, expected: true},
		{name: "typed map", value: map[string]int{"a": 1}, expected: false},
		{name: "slice", value: []any{1}, expected: false},
		{name: "struct", value: struct{ A int }{A: 1}, expected: false},
		{name: "nil", value: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, ok := asRecord(tt.value)
			assert.Equal(t, tt.expected, ok)
		})
	}
}
