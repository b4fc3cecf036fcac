package types

import (
	"fmt"

	"github.com/arthur-debert/cleaner/pkg/platforms"
)

// ArtifactItem is a build artifact folder as shown by the builds command
type ArtifactItem struct {
	Platform string `json:"platform"`
	Path     string `json:"path"`
	Display  string `json:"display"`
	Removed  bool   `json:"removed,omitempty"`

	// Width pads the platform name so that listed paths line up
	Width int `json:"-"`
}

// Label renders the item as "[Platform] path"
func (a ArtifactItem) Label() string {
	return fmt.Sprintf("[%-*s] %s", a.Width, a.Platform, a.Display)
}

// EmptyItem is an empty folder as shown by the empties command
type EmptyItem struct {
	Path    string `json:"path"`
	Display string `json:"display"`
	Removed bool   `json:"removed,omitempty"`
}

// ReportLine is one line of a repository report
type ReportLine struct {
	Line string `json:"line"`
}

// PlatformListing is the supported platforms configuration as listed
type PlatformListing struct {
	Path      string                   `json:"path,omitempty"`
	Platforms []platforms.ListingEntry `json:"platforms"`
}

// ScanResult summarizes a builds or empties run
type ScanResult struct {
	Action  string `json:"action"`
	Found   int    `json:"found"`
	Removed int    `json:"removed"`
}

// RepoResult summarizes a repos run
type RepoResult struct {
	Check string `json:"check"`
	Found bool   `json:"found"`
}
