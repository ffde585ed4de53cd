package scan

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/texargs/internal/config"
)

// isolateConfig points the config lookup at an empty temp directory.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("TEXARGS_OUTPUT", "")
	t.Setenv("TEXARGS_INCLUDE_UNKNOWN", "")
	t.Setenv("TEXARGS_UNKNOWN_ARITY", "")
	return filepath.Join(dir, "texargs", "config.yml")
}

func TestRunScan_Stdin(t *testing.T) {
	isolateConfig(t)

	var out bytes.Buffer
	opts := &scanOptions{required: 1, start: 0, noColor: true}

	err := runScan("", opts, strings.NewReader("[opt]{req} tail"), &out)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "optional")
	assert.Contains(t, output, "opt")
	assert.Contains(t, output, "required")
	assert.Contains(t, output, "req")
	assert.Contains(t, output, "End: 10")
	assert.NotContains(t, output, "expected")
}

func TestRunScan_JSON(t *testing.T) {
	isolateConfig(t)

	var out bytes.Buffer
	opts := &scanOptions{required: 2, start: 5, output: "json", noColor: true}

	err := runScan("-", opts, strings.NewReader(`\frac{a}{b}c`), &out)
	require.NoError(t, err)

	var got report
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "<stdin>", got.Source)
	assert.Equal(t, 5, got.Start)
	assert.Equal(t, 2, got.Required)
	require.Len(t, got.Arguments, 2)
	assert.Equal(t, "a", got.Arguments[0].Text)
	assert.Equal(t, "b", got.Arguments[1].Text)
	assert.Equal(t, 11, got.End)
	assert.True(t, got.Complete)
}

func TestRunScan_JSONNoArguments(t *testing.T) {
	isolateConfig(t)

	var out bytes.Buffer
	opts := &scanOptions{output: "json", noColor: true}

	err := runScan("", opts, strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"arguments": []`)
	assert.Contains(t, out.String(), `"end": 0`)
}

func TestRunScan_Macro(t *testing.T) {
	isolateConfig(t)

	path := filepath.Join(t.TempDir(), "doc.tex")
	require.NoError(t, os.WriteFile(path, []byte(`\href{a}{b} \href{http://x}{link}`), 0644))

	var out bytes.Buffer
	opts := &scanOptions{macro: "href", occurrence: 2, output: "json", noColor: true}

	err := runScan(path, opts, nil, &out)
	require.NoError(t, err)

	var got report
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, path, got.Source)
	assert.Equal(t, "href", got.Macro)
	assert.Equal(t, 2, got.Required)
	require.Len(t, got.Arguments, 2)
	assert.Equal(t, "http://x", got.Arguments[0].Text)
	assert.Equal(t, "link", got.Arguments[1].Text)
}

func TestRunScan_MacroSkipsCommentsAndEscapes(t *testing.T) {
	isolateConfig(t)

	text := "% \\section{Old}\nline\\\\\\section{New}"

	var out bytes.Buffer
	opts := &scanOptions{macro: "section", occurrence: 1, output: "json", noColor: true}

	err := runScan("", opts, strings.NewReader(text), &out)
	require.NoError(t, err)

	var got report
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got.Arguments, 1)
	assert.Equal(t, "New", got.Arguments[0].Text)
	assert.Equal(t, 30, got.Start)
}

func TestRunScan_MalformedConfig(t *testing.T) {
	configPath := isolateConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0755))
	require.NoError(t, os.WriteFile(configPath, []byte("arity:\n  vect: one\n"), 0600))

	err := runScan("", &scanOptions{}, strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestRunScan_MacroArityFromConfig(t *testing.T) {
	configPath := isolateConfig(t)
	cfg := &config.Config{Arity: map[string]int{"pair": 2}}
	require.NoError(t, cfg.Save(configPath))

	var out bytes.Buffer
	opts := &scanOptions{macro: "pair", occurrence: 1, output: "plain", noColor: true}

	err := runScan("", opts, strings.NewReader(`\pair{x} y`), &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "1\trequired\t5\tx", lines[0])
	assert.Equal(t, "2\trequired\t9\ty", lines[1])
	assert.Equal(t, "End: 10", lines[2])
}

func TestRunScan_MacroUnknownArity(t *testing.T) {
	isolateConfig(t)

	opts := &scanOptions{macro: "mystery", occurrence: 1, noColor: true}
	err := runScan("", opts, strings.NewReader(`\mystery{x}`), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown arity")

	opts = &scanOptions{macro: "mystery", occurrence: 1, required: 1, requiredSet: true, noColor: true}
	err = runScan("", opts, strings.NewReader(`\mystery{x}`), &bytes.Buffer{})
	require.NoError(t, err)
}

func TestRunScan_MacroNotFound(t *testing.T) {
	isolateConfig(t)

	opts := &scanOptions{macro: "section", occurrence: 1, noColor: true}
	err := runScan("", opts, strings.NewReader("no macros here"), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invocation 1 of \section not found`)
}

func TestRunScan_InsufficientWarns(t *testing.T) {
	isolateConfig(t)

	var out bytes.Buffer
	opts := &scanOptions{required: 3, noColor: true}

	err := runScan("", opts, strings.NewReader("{a}"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "expected 3 required arguments, found 1")
}

func TestRunScan_InvalidInput(t *testing.T) {
	isolateConfig(t)

	err := runScan("", &scanOptions{required: -1}, strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")

	err = runScan("", &scanOptions{output: "yaml"}, strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")

	err = runScan(filepath.Join(t.TempDir(), "missing.tex"), &scanOptions{}, nil, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestNewCmdScan(t *testing.T) {
	cmd := NewCmdScan()
	assert.Equal(t, "scan [file]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	for _, name := range []string{"required", "start", "macro", "occurrence"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
