// Package json renders session listings as JSON for machine consumption.
package json

import (
	"encoding/json"
	"io"

	"github.com/sonnes/sabha/core"
)

// Renderer renders a listing to JSON.
type Renderer struct {
	// Indent controls pretty-printing. When true, output is indented.
	Indent bool
}

// New creates a JSON Renderer with pretty-printing enabled.
func New() *Renderer {
	return &Renderer{Indent: true}
}

// Render writes the listing as JSON to w. Descriptions are cleaned of UI
// markers before encoding.
func (r *Renderer) Render(w io.Writer, l *core.Listing) error {
	out := *l
	out.Sessions = make([]core.Session, len(l.Sessions))
	for i, s := range l.Sessions {
		s.Description = core.CleanDescription(s.Description)
		out.Sessions[i] = s
	}

	enc := json.NewEncoder(w)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(&out)
}
