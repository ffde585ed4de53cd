// Package input reads the document a command operates on.
package input

import (
	"fmt"
	"io"
	"os"
)

// StdinName is the display name used for standard input.
const StdinName = "<stdin>"

// Read returns the contents of path, or of stdin when path is empty or "-",
// along with a display name for the source.
func Read(path string, stdin io.Reader) (string, string, error) {
	if path == "" || path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", StdinName, fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), StdinName, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", path, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), path, nil
}
