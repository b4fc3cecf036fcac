// Package version holds the build information of the cleaner binary
package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/cleaner/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/cleaner/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/cleaner/internal/version.Date={{.Date}}
)
