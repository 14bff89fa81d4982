package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veo_builder/internal/chunk"
	"veo_builder/internal/workspace"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, chunk.DefaultWordsPerClip, cfg.WordsPerClip)
	assert.Equal(t, workspace.DefaultExportPrefix, cfg.ExportPrefix)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestOverrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		EnvDataDir:      "/tmp/vsb",
		EnvLogLevel:     "debug",
		EnvWordsPerClip: "20",
		EnvPort:         "9000",
		EnvExportPrefix: "cooking_show",
	}))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/vsb", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 20, cfg.WordsPerClip)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "cooking_show", cfg.ExportPrefix)
	assert.Equal(t, "/tmp/vsb/history.db", cfg.HistoryDBPath())
}

func TestInvalidValues(t *testing.T) {
	for name, env := range map[string]map[string]string{
		"words not a number": {EnvWordsPerClip: "many"},
		"words zero":         {EnvWordsPerClip: "0"},
		"port not a number":  {EnvPort: "http"},
		"port out of range":  {EnvPort: "70000"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := FromLookup(lookupFrom(env))
			assert.Error(t, err)
		})
	}
}
