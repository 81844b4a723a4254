// Package version carries build-time version metadata.
package version

// Version and Commit are set at build time via -ldflags (e.g. Makefile).
var (
	Version = "0.1.0-dev"
	Commit  = "unknown"
)

// String returns the full version line shown by --version.
func String() string {
	return Version + " (commit " + Commit + ")"
}
