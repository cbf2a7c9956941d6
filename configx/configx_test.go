package configx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderPriority(t *testing.T) {
	t.Setenv("CFGTEST_STRICT", "true")
	t.Setenv("CFGTEST_LOG_LEVEL", "trace")

	cfg, err := NewBuilder().
		WithDefaults(map[string]any{
			"strict": false,
			"log":    map[string]any{"level": "info", "format": "console"},
		}).
		FromEnv("CFGTEST_").
		Build()
	require.NoError(t, err)

	assert.True(t, cfg.Get("strict").AsBoolDefault(false))
	assert.Equal(t, "trace", cfg.Get("log.level").AsString())
	assert.Equal(t, "console", cfg.Get("log.format").AsString())
	assert.False(t, cfg.Has("log.color"))
}

func TestMapOverridesEnv(t *testing.T) {
	t.Setenv("CFGTEST2_STRICT", "false")

	cfg, err := NewBuilder().
		FromMap(map[string]any{"strict": true}, "overrides").
		FromEnv("CFGTEST2_").
		Build()
	require.NoError(t, err)

	assert.True(t, cfg.Get("strict").AsBoolDefault(false))
}

func TestValueConversions(t *testing.T) {
	cfg, err := New(NewMapSource(map[string]any{
		"port":    8080,
		"enabled": "yes",
		"caller":  "off",
		"log":     map[string]any{"level": "warn"},
	}, "test", PriorityMap))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Get("port").AsString())
	assert.True(t, cfg.Get("enabled").AsBoolDefault(false))
	assert.False(t, cfg.Get("caller").AsBoolDefault(true))
	assert.Equal(t, "warn", cfg.Get("log.level").AsString())
	assert.Equal(t, "", cfg.Get("log").AsString())
	assert.False(t, cfg.Get("missing").IsSet())
	assert.True(t, cfg.Get("missing").AsBoolDefault(true))
	assert.False(t, cfg.Has("log.level.deeper"))
}

func TestBuildDoesNotAliasSources(t *testing.T) {
	defaults := map[string]any{"log": map[string]any{"level": "info"}}
	cfg, err := NewBuilder().WithDefaults(defaults).Build()
	require.NoError(t, err)

	defaults["log"].(map[string]any)["level"] = "error"
	assert.Equal(t, "info", cfg.Get("log.level").AsString())
}
