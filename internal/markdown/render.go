// Package markdown renders explanation text for terminal display.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer converts markdown to styled terminal output. A zero-width
// renderer falls back to a reasonable default width.
type Renderer struct {
	width int
}

// NewRenderer creates a Renderer that wraps output at the given width.
func NewRenderer(width int) *Renderer {
	if width <= 0 {
		width = 80
	}
	return &Renderer{width: width}
}

// Render converts markdown source to terminal output. If rendering fails
// the raw text is returned unchanged so explanations are never lost.
func (r *Renderer) Render(source string) string {
	if strings.TrimSpace(source) == "" {
		return ""
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(r.width),
	)
	if err != nil {
		return source
	}

	out, err := tr.Render(source)
	if err != nil {
		return source
	}
	return strings.TrimRight(out, "\n")
}
