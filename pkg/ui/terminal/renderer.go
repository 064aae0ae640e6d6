// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/greetings/pkg/card"
	"github.com/arthur-debert/greetings/pkg/ui/lipbalm"
	"github.com/arthur-debert/greetings/pkg/ui/output/styles"
)

// PanelTitle heads every rendered card
const PanelTitle = "Your Greeting Card"

const cardTemplate = `<Title>{{ .Title }}</Title>
<Greeting>{{ .Greeting }}</Greeting>`

// Renderer draws cards inside a bordered panel
type Renderer struct {
	output io.Writer
	tags   lipbalm.StyleMap
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{
		output: w,
		tags:   styles.Tags(),
	}, nil
}

// RenderCard renders the card inside the panel, with the panel title
// centered above it
func (r *Renderer) RenderCard(c card.Content) error {
	panel, err := r.Panel(c)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, panel)
	return err
}

// Panel returns the styled card without writing it
func (r *Renderer) Panel(c card.Content) (string, error) {
	footer, err := lipbalm.Render(cardTemplate, struct{ Title, Greeting string }{
		Title:    lipbalm.Escape(c.Title),
		Greeting: lipbalm.Escape(c.Greeting),
	}, r.tags)
	if err != nil {
		return "", err
	}

	body := footer
	if art := strings.TrimRight(c.Art, "\n"); art != "" {
		body = art + "\n\n" + footer
	}

	box := styles.GetStyle("Panel").Render(body)
	title := styles.GetStyle("PanelTitle").Render(PanelTitle)
	header := lipgloss.PlaceHorizontal(lipgloss.Width(box), lipgloss.Center, title)
	return lipgloss.JoinVertical(lipgloss.Left, header, box), nil
}

// RenderError renders an error with the error style
func (r *Renderer) RenderError(err error) error {
	msg, _ := lipbalm.ExpandTags("<Error>Error:</Error> "+lipbalm.Escape(err.Error()), r.tags)
	_, writeErr := fmt.Fprintln(r.output, msg)
	return writeErr
}

// RenderMessage expands style tags in msg
func (r *Renderer) RenderMessage(msg string) error {
	expanded, err := lipbalm.ExpandTags(msg, r.tags)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, expanded)
	return err
}
