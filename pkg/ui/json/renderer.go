// Package json provides machine-readable JSON output for registry
// views. Unlike a plain map marshal, it keeps the registry's label
// order, so raw output is stable and mirrors registration order.
package json

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/arthur-debert/sidefx/pkg/registry"
)

// Renderer writes registry views as JSON for machine consumption
type Renderer struct {
	output io.Writer
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderEvents writes events as an object mapping each label to the
// fully-qualified names of its handlers, preserving the view's label
// order.
func (r *Renderer) RenderEvents(events registry.Events) error {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, entry := range events {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n    ")
		label, err := json.Marshal(entry.Label)
		if err != nil {
			return err
		}
		buf.Write(label)
		buf.WriteString(": ")

		names := make([]string, len(entry.Handlers))
		for j, h := range entry.Handlers {
			names[j] = registry.Fname(h)
		}
		handlers, err := json.MarshalIndent(names, "    ", "    ")
		if err != nil {
			return err
		}
		buf.Write(handlers)
	}
	if len(events) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")

	_, err := r.output.Write(buf.Bytes())
	return err
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]string{
		"error": err.Error(),
	}
	out, merr := json.MarshalIndent(errorObj, "", "    ")
	if merr != nil {
		return merr
	}
	out = append(out, '\n')
	_, werr := r.output.Write(out)
	return werr
}
