// Package terminal renders results with the styles of pkg/ui/styles
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/cleaner/pkg/errors"
	"github.com/arthur-debert/cleaner/pkg/platforms"
	"github.com/arthur-debert/cleaner/pkg/types"
	"github.com/arthur-debert/cleaner/pkg/ui/styles"
	"github.com/arthur-debert/cleaner/pkg/ui/text"
)

// Renderer prints styled results
type Renderer struct {
	output io.Writer
}

// New creates a terminal renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult prints one of the values in pkg/types
func (r *Renderer) RenderResult(result interface{}) error {
	var err error
	switch v := result.(type) {
	case types.ArtifactItem:
		label := fmt.Sprintf("[%s] %s",
			styles.Render("Platform", fmt.Sprintf("%-*s", v.Width, v.Platform)),
			styles.Render("Path", v.Display))
		_, err = fmt.Fprintln(r.output, item(label, v.Removed))
	case types.EmptyItem:
		_, err = fmt.Fprintln(r.output, item(styles.Render("Path", v.Display), v.Removed))
	case types.ReportLine:
		_, err = fmt.Fprintln(r.output, reportLine(v.Line))
	case types.PlatformListing:
		err = r.listing(v.Platforms)
	case types.ScanResult:
	default:
		_, err = fmt.Fprintf(r.output, "%+v\n", result)
	}
	return err
}

// RenderError prints the error in the Error style
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, styles.Render("Error", "Error: "+errors.Message(err)))
	return werr
}

// RenderMessage prints msg muted
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.Render("Muted", msg))
	return err
}

func item(label string, removed bool) string {
	if removed {
		return "  - " + label + " - " + styles.Render("Removed", "removed")
	}
	return "  - " + label
}

// reportLine highlights the error part of a repository report line
func reportLine(line string) string {
	head, cause, ok := strings.Cut(line, " - Err: ")
	if !ok {
		return line
	}
	return head + " - " + styles.Render("Error", "Err: "+cause)
}

func (r *Renderer) listing(entries []platforms.ListingEntry) error {
	for i, e := range entries {
		if i > 0 {
			if _, err := fmt.Fprintln(r.output); err != nil {
				return err
			}
		}
		name := styles.Render("Platform", e.Name)
		if e.Marker != "" {
			name += styles.Render("Warning", e.Marker)
		}
		_, err := fmt.Fprintf(r.output, "%s %s\n  %s %s\n  %s %s\n",
			styles.Render("Header", "Platform:"), name,
			styles.Render("Header", "Build Artifacts:"), text.Join(e.Folders),
			styles.Render("Header", "Matched On:"), text.Join(e.Associated))
		if err != nil {
			return err
		}
	}
	return nil
}
