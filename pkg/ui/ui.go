// Package ui renders command output in the terminal (styled), text (plain)
// or JSON format.
package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/cleaner/pkg/errors"
	"github.com/arthur-debert/cleaner/pkg/types"
	"github.com/arthur-debert/cleaner/pkg/ui/json"
	"github.com/arthur-debert/cleaner/pkg/ui/plain"
	"github.com/arthur-debert/cleaner/pkg/ui/terminal"
)

// Renderer is the common interface of the output renderers
type Renderer interface {
	// RenderResult renders one of the values in pkg/types
	RenderResult(result interface{}) error

	// RenderError renders an error
	RenderError(err error) error

	// RenderMessage renders a plain message
	RenderMessage(msg string) error
}

// NewRenderer creates the renderer for format. Auto detects the terminal
// capabilities of output, falling back to text when output is not a file.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return plain.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}

// lineWriter feeds each written line to a renderer as a report line
type lineWriter struct {
	r Renderer
}

// LineWriter adapts r to code that prints lines to an io.Writer
func LineWriter(r Renderer) io.Writer {
	return lineWriter{r: r}
}

func (w lineWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimSuffix(string(p), "\n"), "\n") {
		if err := w.r.RenderResult(types.ReportLine{Line: line}); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}
