package topics

import (
	"github.com/charmbracelet/glamour"
)

var standardStyles = map[string]bool{
	"ascii": true, "dark": true, "dracula": true, "light": true,
	"notty": true, "pink": true, "tokyo-night": true,
}

// GlamourRenderer renders markdown with glamour
type GlamourRenderer struct {
	Style string // "auto", a standard style name, or a path to a JSON style
	Width int    // word wrap width, 0 keeps glamour's default
}

// NewGlamourRenderer creates a markdown renderer that detects the
// terminal background
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown to terminal output. Other formats, and
// markdown glamour cannot render, come back unchanged.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}
	rendered, err := r.Markdown(content)
	if err != nil {
		return content
	}
	return rendered
}

// Markdown renders content regardless of its source format
func (r *GlamourRenderer) Markdown(content string) (string, error) {
	var options []glamour.TermRendererOption
	switch {
	case r.Style == "" || r.Style == "auto":
		options = append(options, glamour.WithAutoStyle())
	case standardStyles[r.Style]:
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", err
	}
	return renderer.Render(content)
}
