package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_Stdin(t *testing.T) {
	for _, path := range []string{"", "-"} {
		text, name, err := Read(path, strings.NewReader(`\emph{x}`))
		require.NoError(t, err)
		assert.Equal(t, `\emph{x}`, text)
		assert.Equal(t, StdinName, name)
	}
}

func TestRead_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.tex")
	require.NoError(t, os.WriteFile(path, []byte(`\section{A}`), 0644))

	text, name, err := Read(path, nil)
	require.NoError(t, err)
	assert.Equal(t, `\section{A}`, text)
	assert.Equal(t, path, name)
}

func TestRead_MissingFile(t *testing.T) {
	_, _, err := Read(filepath.Join(t.TempDir(), "missing.tex"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}
