package out

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	reportout "focusflow/internal/modules/report/port/out"
)

const defaultWidth = 80

// GlamourRenderer styles Markdown for the terminal. Style is a glamour
// standard style name such as "dark", "light" or "notty".
type GlamourRenderer struct {
	style string
}

func NewGlamourRenderer(style string) reportout.TerminalRenderer {
	if style == "" {
		style = "dark"
	}
	return &GlamourRenderer{style: style}
}

func (g *GlamourRenderer) Render(markdown string, width int) (string, error) {
	if width <= 0 {
		width = defaultWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(g.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
