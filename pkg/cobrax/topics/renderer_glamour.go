package topics

import (
	"github.com/charmbracelet/glamour"
)

// Glamour renders markdown topics through the glamour library.
// Non-markdown bodies pass through untouched, and any rendering
// failure falls back to the raw body rather than losing the text.
type Glamour struct {
	// Style is a glamour style name or a path to a style json file.
	// Empty picks the style matching the terminal background.
	Style string

	// Width wraps output at the given column. Zero leaves wrapping to
	// glamour.
	Width int
}

func (g Glamour) Render(body string, format string) string {
	if format != ".md" {
		return body
	}

	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if g.Style != "" {
		opts = []glamour.TermRendererOption{glamour.WithStylePath(g.Style)}
	}
	if g.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(g.Width))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return body
	}
	rendered, err := renderer.Render(body)
	if err != nil {
		return body
	}
	return rendered
}
