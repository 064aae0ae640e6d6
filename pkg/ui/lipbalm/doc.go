/*
Package lipbalm renders tagged text with lipgloss styles.

A tag names a style, so "<Title>Hello, Ana!</Title>" renders the text with
the style registered as Title. Tags may nest. Unknown tags are dropped and
their text kept. When the default renderer has no color profile every tag is
dropped, which is how piped output stays plain.

	out, err := lipbalm.Render(
		"<Title>{{ .Title }}</Title>\n<Greeting>{{ .Greeting }}</Greeting>",
		data, styles.Tags())

Render runs text/template first, so values coming from users must go through
Escape before they are placed in the template. ExpandTags only expands tags
and StripTags returns the bare text.

Content inside <no-format> is shown only when color is off, for hints that
make sense in plain output.
*/
package lipbalm
