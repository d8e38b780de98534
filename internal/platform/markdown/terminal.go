package markdown

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Styles accepted by RenderTerminal.
const (
	StyleDark  = "dark"
	StyleNoTTY = "notty"
)

// RenderTerminal renders a markdown body for display in a terminal,
// wrapped to width columns. Frontmatter must be stripped by the caller.
func RenderTerminal(body string, width int, style string) (string, error) {
	if width < 20 {
		width = 80
	}
	if style == "" {
		style = StyleDark
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("new markdown renderer: %w", err)
	}
	out, err := r.Render(body)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
