// Package json renders results as JSON documents, one per line
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/cleaner/pkg/errors"
)

// Renderer writes results for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// New creates a JSON renderer
func New(output io.Writer) *Renderer {
	return &Renderer{encoder: json.NewEncoder(output)}
}

// RenderResult encodes result
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

// RenderError encodes the error message and code
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{
		"error": errors.Message(err),
		"code":  string(errors.GetErrorCode(err)),
	})
}

// RenderMessage encodes msg
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
