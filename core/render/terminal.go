// Package render — terminal renderer.
// Renders the note's Markdown through glamour for a styled preview in the
// terminal. If glamour cannot render, plain Markdown is returned.
package render

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/gaurav-prasanna/notepipe/core"
)

// TermRenderer renders a note for terminal display.
type TermRenderer struct {
	Width int
	// Style is a glamour standard style name ("dark", "light", "notty", ...).
	// Empty means detect from the terminal.
	Style string
}

// NewTermRenderer creates a TermRenderer wrapping at width columns.
func NewTermRenderer(width int, style string) *TermRenderer {
	if width <= 0 {
		width = 80
	}
	return &TermRenderer{Width: width, Style: style}
}

// Render returns the styled preview.
func (r *TermRenderer) Render(doc core.Document) ([]byte, error) {
	md, err := ToMarkdown(doc.Blocks)
	if err != nil {
		return nil, err
	}
	if doc.Meta.Title != "" {
		md = "# " + doc.Meta.Title + "\n\n" + md
	}
	if strings.TrimSpace(md) == "" {
		return []byte{}, nil
	}

	styleOpt := glamour.WithAutoStyle()
	if r.Style != "" {
		styleOpt = glamour.WithStandardStyle(r.Style)
	}
	tr, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(r.Width))
	if err != nil {
		return []byte(md), nil
	}
	out, err := tr.Render(md)
	if err != nil {
		return []byte(md), nil
	}
	return []byte(out), nil
}

// Extension returns the file extension for terminal output.
func (r *TermRenderer) Extension() string {
	return ".txt"
}
