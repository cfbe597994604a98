// Package terminal renders session listings as ANSI-colored session cards.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/sonnes/sabha/core"
)

const defaultWidth = 100

// Renderer pretty-prints a session listing as cards to the terminal.
type Renderer struct {
	// Width overrides terminal width detection. Zero means auto-detect.
	Width int
}

// New creates a terminal Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes the listing as session cards to w.
func (r *Renderer) Render(w io.Writer, l *core.Listing) error {
	width := r.termWidth()

	writeHeader(w, l)

	for i := range l.Sessions {
		writeSession(w, &l.Sessions[i], width)
	}

	fmt.Fprintln(w)
	return nil
}

func (r *Renderer) termWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// writeHeader renders the event name and the showing/total counts.
func writeHeader(w io.Writer, l *core.Listing) {
	fmt.Fprintln(w, styleEvent.Render(l.Event))
	fmt.Fprintln(w, styleCount.Render(fmt.Sprintf("showing %d of %d sessions", len(l.Sessions), l.Total)))
}

// writeSeparator renders a horizontal rule.
func writeSeparator(w io.Writer, width int) {
	n := min(width, 72)
	fmt.Fprintln(w)
	fmt.Fprintln(w, styleSeparator.Render(strings.Repeat("─", n)))
}

// writeSession renders one session card: title, schedule line, speakers,
// topic badge plus tags, and a one-line description.
func writeSession(w io.Writer, s *core.Session, width int) {
	contentWidth := width - 4
	if contentWidth < 40 {
		contentWidth = 40
	}

	writeSeparator(w, width)
	fmt.Fprintln(w)

	fmt.Fprintln(w, " "+styleTitle.Render(truncate(s.Title, contentWidth)))

	var meta []string
	if s.Date != "" {
		meta = append(meta, s.Date)
	}
	if s.Time != "" {
		meta = append(meta, s.Time)
	}
	if place := joinPlace(s.Room, s.Location); place != "" {
		meta = append(meta, place)
	}
	if len(meta) > 0 {
		fmt.Fprintln(w, "  "+styleMeta.Render(strings.Join(meta, "  ·  ")))
	}

	if len(s.Speakers) > 0 {
		fmt.Fprintln(w, "  "+styleSpeaker.Render(truncate(strings.Join(s.Speakers, ", "), contentWidth)))
	}

	badges := []string{styleTopicBadge.Render(s.Topic)}
	for _, tag := range s.Tags {
		switch core.ClassifyTag(tag) {
		case core.KindSector:
			badges = append(badges, styleSectorTag.Render(tag))
		case core.KindFormat:
			badges = append(badges, styleFormatTag.Render(tag))
		default:
			badges = append(badges, styleThemeTag.Render(tag))
		}
	}
	fmt.Fprintln(w, "  "+strings.Join(badges, "  "))

	if desc := core.CleanDescription(s.Description); desc != "" {
		fmt.Fprintln(w, "  "+styleMeta.Render(truncate(desc, contentWidth)))
	}
}

// joinPlace joins room and venue, skipping empty parts.
func joinPlace(room, location string) string {
	var parts []string
	for _, p := range []string{room, location} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// truncate shortens text to maxWidth, appending "..." if needed.
// Multi-line text is reduced to the first line.
func truncate(s string, maxWidth int) string {
	if maxWidth < 4 {
		maxWidth = 4
	}
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
