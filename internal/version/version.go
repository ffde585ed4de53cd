// Package version provides build-time version information.
package version

import "fmt"

// Set at build time via -ldflags "-X github.com/open-cli-collective/texargs/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the one-line version banner printed by --version.
func String() string {
	return fmt.Sprintf("texargs version %s (commit: %s, built: %s)", Version, Commit, Date)
}
