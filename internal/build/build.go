// Package build holds metadata about the binary, set at link time with
// -ldflags "-X github.com/golddranks/scoped-stack/internal/build.Version=...".
package build

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
