// Package render defines the interface for rendering session listings into
// various output formats.
package render

import (
	"io"

	"github.com/sonnes/sabha/core"
)

// Renderer writes a session listing to the given writer in a specific format.
type Renderer interface {
	Render(w io.Writer, l *core.Listing) error
}
