// Package html renders session listings as standalone HTML pages styled with
// Tailwind CSS v4 (CDN). Session descriptions are rendered as markdown via
// goldmark with chroma syntax highlighting.
package html

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/sonnes/sabha/core"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

//go:embed templates/*.html
var content embed.FS

// Renderer renders a session listing to a standalone HTML page.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template
}

// New creates an HTML Renderer with goldmark configured for GFM and syntax
// highlighting.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("dracula"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline styles for standalone pages
				),
			),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(),
		),
	)

	tmpl := template.Must(
		template.New("page.html").
			Funcs(funcMap()).
			ParseFS(content, "templates/*.html"),
	)

	return &Renderer{md: md, tmpl: tmpl}
}

// pageData is the top-level template data passed to page.html.
type pageData struct {
	Event    string
	Shown    int
	Total    int
	Sessions []sessionData
}

// sessionData is the per-session template data.
type sessionData struct {
	Session     core.Session
	Place       string
	Description template.HTML
	Sectors     []string
	Thematics   []string
	Formats     []string
}

// Render writes the listing as a complete HTML page to w.
func (r *Renderer) Render(w io.Writer, l *core.Listing) error {
	sessions := make([]sessionData, 0, len(l.Sessions))
	for _, s := range l.Sessions {
		desc, err := r.renderDescription(s.Description)
		if err != nil {
			return err
		}
		sd := sessionData{
			Session:     s,
			Place:       joinPlace(s.Room, s.Location),
			Description: desc,
		}
		for _, tag := range s.Tags {
			switch core.ClassifyTag(tag) {
			case core.KindSector:
				sd.Sectors = append(sd.Sectors, tag)
			case core.KindFormat:
				sd.Formats = append(sd.Formats, tag)
			default:
				sd.Thematics = append(sd.Thematics, tag)
			}
		}
		sessions = append(sessions, sd)
	}

	return r.tmpl.ExecuteTemplate(w, "page.html", pageData{
		Event:    l.Event,
		Shown:    len(l.Sessions),
		Total:    l.Total,
		Sessions: sessions,
	})
}

// renderDescription converts a cleaned description to HTML via goldmark.
func (r *Renderer) renderDescription(raw string) (template.HTML, error) {
	cleaned := core.CleanDescription(raw)
	if cleaned == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(cleaned), &buf); err != nil {
		return "", fmt.Errorf("goldmark convert: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func joinPlace(room, location string) string {
	var parts []string
	for _, p := range []string{room, location} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"join": strings.Join,
	}
}
