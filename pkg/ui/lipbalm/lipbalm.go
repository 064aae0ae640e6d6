package lipbalm

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/beevik/etree"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// StyleMap maps tag names to styles
type StyleMap map[string]lipgloss.Style

// NoFormatTag wraps content that is only shown without color
const NoFormatTag = "no-format"

const rootTag = "lipbalm-root"

var defaultRenderer = lipgloss.DefaultRenderer()

// SetDefaultRenderer sets the renderer whose color profile decides whether
// styles are applied
func SetDefaultRenderer(r *lipgloss.Renderer) {
	defaultRenderer = r
}

// Render executes tmpl as a Go template with data, then expands style tags
func Render(tmpl string, data interface{}, styles StyleMap) (string, error) {
	t, err := template.New("lipbalm").Parse(tmpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return ExpandTags(buf.String(), styles)
}

// ExpandTags applies styles to tagged text. Unknown tags are dropped and
// their content kept. Input that is not well-formed markup is returned
// unchanged.
func ExpandTags(input string, styles StyleMap) (string, error) {
	if input == "" {
		return "", nil
	}
	root, ok := parse(input)
	if !ok {
		return input, nil
	}
	color := defaultRenderer.ColorProfile() != termenv.Ascii
	return expand(root, styles, color), nil
}

// StripTags removes all tags and keeps their text, no-format included
func StripTags(input string) string {
	if input == "" {
		return ""
	}
	root, ok := parse(input)
	if !ok {
		return input
	}
	var b strings.Builder
	collectText(root, &b)
	return b.String()
}

// Escape makes s safe to embed as text in a tagged template
func Escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func parse(input string) (*etree.Element, bool) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString("<" + rootTag + ">" + input + "</" + rootTag + ">"); err != nil {
		return nil, false
	}
	root := doc.Root()
	if root == nil {
		return nil, false
	}
	return root, true
}

func expand(el *etree.Element, styles StyleMap, color bool) string {
	var b strings.Builder
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			if t.Tag == NoFormatTag {
				if !color {
					b.WriteString(expand(t, styles, color))
				}
				continue
			}
			inner := expand(t, styles, color)
			if style, ok := styles[t.Tag]; ok && color {
				inner = style.Render(inner)
			}
			b.WriteString(inner)
		}
	}
	return b.String()
}

func collectText(el *etree.Element, b *strings.Builder) {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			collectText(t, b)
		}
	}
}
