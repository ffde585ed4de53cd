package configcmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/texargs/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range envVars {
		t.Setenv(v, "")
	}
}

func TestRunShow_WithConfigFile(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg := &config.Config{
		OutputFormat: "json",
		UnknownArity: 1,
		Arity:        map[string]int{"vect": 1, "pair": 2},
	}
	require.NoError(t, cfg.Save(configPath))

	var out bytes.Buffer
	err := runShow(configPath, true, &out)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "json  (source: config)")
	assert.Contains(t, output, `\pair = 2`)
	assert.Contains(t, output, `\vect = 1`)
	assert.Contains(t, output, "Config file: "+configPath)
	assert.NotContains(t, output, "file not found")
}

func TestRunShow_EnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEXARGS_OUTPUT", "plain")
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, (&config.Config{OutputFormat: "json"}).Save(configPath))

	var out bytes.Buffer
	require.NoError(t, runShow(configPath, true, &out))
	assert.Contains(t, out.String(), "plain  (source: TEXARGS_OUTPUT)")
}

func TestRunShow_NoConfigFile(t *testing.T) {
	clearEnv(t)

	var out bytes.Buffer
	err := runShow(filepath.Join(t.TempDir(), "config.yml"), true, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "(file not found)")
}

func TestRunShow_InvalidConfig(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, (&config.Config{OutputFormat: "xml"}).Save(configPath))

	err := runShow(configPath, true, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestRunShow_MalformedConfig(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("arity:\n  vect: one\n"), 0600))

	err := runShow(configPath, true, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
