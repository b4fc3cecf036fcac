// Package plain renders results as plain text, without styles
package plain

import (
	"fmt"
	"io"

	"github.com/arthur-debert/cleaner/pkg/errors"
	"github.com/arthur-debert/cleaner/pkg/platforms"
	"github.com/arthur-debert/cleaner/pkg/types"
)

// Renderer prints results as plain text
type Renderer struct {
	output io.Writer
}

// New creates a plain text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult prints one of the values in pkg/types
func (r *Renderer) RenderResult(result interface{}) error {
	var err error
	switch v := result.(type) {
	case types.ArtifactItem:
		_, err = fmt.Fprintln(r.output, ItemLine(v.Label(), v.Removed))
	case types.EmptyItem:
		_, err = fmt.Fprintln(r.output, ItemLine(v.Display, v.Removed))
	case types.ReportLine:
		_, err = fmt.Fprintln(r.output, v.Line)
	case types.PlatformListing:
		err = platforms.WriteListing(r.output, v.Platforms)
	case types.ScanResult:
		// the items were printed as they were found
	default:
		_, err = fmt.Fprintf(r.output, "%+v\n", result)
	}
	return err
}

// RenderError prints the error message without its code
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %s\n", errors.Message(err))
	return werr
}

// RenderMessage prints msg on its own line
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// ItemLine renders a listed folder, marking it when it has been removed
func ItemLine(label string, removed bool) string {
	if removed {
		return "  - " + label + " - removed"
	}
	return "  - " + label
}
