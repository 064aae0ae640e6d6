// Package card turns a provider's output into the content that is shown
// or exported: a title, the art and the greeting, with every piece passed
// through the sanitizer first.
package card

import (
	"github.com/arthur-debert/greetings/pkg/sanitize"
	"github.com/arthur-debert/greetings/pkg/types"
)

// Options controls how Compose treats remote art
type Options struct {
	// Color keeps SGR color sequences in remote art. Everything else is
	// always stripped.
	Color bool
}

// Content is a composed card ready for a renderer
type Content struct {
	Kind     types.Kind   `json:"kind"`
	Style    types.Style  `json:"style"`
	Source   types.Source `json:"source"`
	Title    string       `json:"title"`
	Art      string       `json:"art"`
	Greeting string       `json:"greeting"`
}

// Compose builds the card content for name. The greeting and title are
// always fully sanitized. Art is fully sanitized too, except remote art
// on a color output, which keeps its color sequences.
func Compose(kind types.Kind, style types.Style, name string, c types.Card, opts Options) Content {
	art := sanitize.Sanitize(c.Art)
	if c.Source == types.SourceRemote && opts.Color {
		art = sanitize.KeepColor(c.Art)
	}
	return Content{
		Kind:     kind,
		Style:    style,
		Source:   c.Source,
		Title:    Title(kind, name),
		Art:      art,
		Greeting: sanitize.Sanitize(c.Greeting),
	}
}

// Title is the headline shown between the art and the greeting
func Title(kind types.Kind, name string) string {
	name = sanitize.Name(name)
	switch kind {
	case types.KindBirthday:
		return "Happy Birthday, " + name + "!"
	case types.KindHoliday:
		return "Merry Christmas, " + name + "!"
	default:
		return "Hello, " + name + "!"
	}
}

// Text joins the parts: art, a blank line, title, greeting
func (c Content) Text() string {
	return c.Art + "\n\n" + c.Title + "\n" + c.Greeting
}

// Plain returns a copy with every escape sequence removed, for files and
// non-terminal output
func (c Content) Plain() Content {
	c.Art = sanitize.Sanitize(c.Art)
	c.Title = sanitize.Sanitize(c.Title)
	c.Greeting = sanitize.Sanitize(c.Greeting)
	return c
}
