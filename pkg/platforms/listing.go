package platforms

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/cleaner/pkg/ui/text"
)

// Markers appended to a platform name in listings
const (
	MarkDuplicate  = " <<= duplicate platform name"
	MarkWhitespace = " <<= name contains space(s)"
)

// ListingEntry is one platform as shown by `supported list`
type ListingEntry struct {
	Name       string   `json:"name"`
	Folders    []string `json:"folders"`
	Associated []string `json:"associated"`
	Marker     string   `json:"marker,omitempty"`
}

// Listing prepares platforms for display, flagging duplicate names and
// names with whitespace. It works on unvalidated lists so that a broken
// configuration can be shown next to its validation error.
func Listing(platforms []Platform) []ListingEntry {
	counts := map[string]int{}
	for _, p := range platforms {
		counts[strings.ToLower(p.Name)]++
	}

	out := make([]ListingEntry, len(platforms))
	for i, p := range platforms {
		e := ListingEntry{Name: p.Name, Folders: p.Folders, Associated: p.AssociatedStrings()}
		switch {
		case counts[strings.ToLower(p.Name)] > 1:
			e.Marker = MarkDuplicate
		case p.hasWhitespace():
			e.Marker = MarkWhitespace
		}
		out[i] = e
	}
	return out
}

// WriteListing prints entries as plain text, one block per platform
func WriteListing(w io.Writer, entries []ListingEntry) error {
	for i, e := range entries {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "Platform: %s%s\n  Build Artifacts: %s\n  Matched On: %s\n",
			e.Name, e.Marker, text.Join(e.Folders), text.Join(e.Associated))
		if err != nil {
			return err
		}
	}
	return nil
}
