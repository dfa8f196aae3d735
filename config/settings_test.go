package config_test

import (
	"bytes"
	"testing"

	ns "github.com/0xalexb/hjarta-ns"
	"github.com/0xalexb/hjarta-ns/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_Options(t *testing.T) {
	t.Parallel()

	settings := &config.Settings{
		Delimiter: "/",
		Arguments: []any{"a", "b"},
		Context:   "ctx",
		Modules: map[string]any{
			"db": map[string]any{"host": "localhost"},
		},
		Extra: map[string]any{"owner": "platform"},
	}

	reg := ns.New(settings.Options(nil)...)

	cfg := reg.Configuration()
	assert.Equal(t, "/", cfg.Delimiter)
	assert.Equal(t, []any{"a", "b"}, cfg.Arguments)
	assert.Equal(t, "ctx", cfg.Context)
	assert.Equal(t, map[string]any{"owner": "platform"}, cfg.Extra)
	assert.Equal(t, "localhost", reg.Resolve("db/host"))

	reg.MustRegister("cache", 1)
	assert.NotContains(t, settings.Modules, "cache", "settings modules should not be mutated")
}

func TestSettings_OptionsWithoutModules(t *testing.T) {
	t.Parallel()

	settings := &config.Settings{Delimiter: "."}

	reg := ns.New(ns.WithModules(ns.Container{"keep": 1}))
	reg.Configure(settings.Options(nil)...)

	assert.Equal(t, 1, reg.Resolve("keep"))
}

func TestSettings_MatchesConfigure(t *testing.T) {
	t.Parallel()

	settings := &config.Settings{Delimiter: ":", Arguments: []any{"x"}}

	fromSettings := ns.New(settings.Options(nil)...)
	fromOptions := ns.New(ns.WithDelimiter(":"), ns.WithArguments("x"))

	fromSettings.Resolve("a:b")
	fromOptions.Resolve("a:b")

	assert.Equal(t, fromOptions.Modules(), fromSettings.Modules())
	assert.Equal(t, fromOptions.Configuration(), fromSettings.Configuration())
}

func TestNewRegistry_LogsWithSettingsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	settings := &config.Settings{LogLevel: "debug", LogFormat: "text"}
	settings.SetDefaults()

	reg := config.NewRegistry(settings, &buf)
	reg.Resolve("a.b")

	require.Contains(t, buf.String(), `msg="container created"`)
}
