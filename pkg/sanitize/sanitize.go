// Package sanitize strips terminal control sequences from text before it
// reaches a terminal or a file.
//
// Every string headed for display passes through here: template output
// (the recipient name is user input) and remote-generated art alike.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	// escapePattern matches ESC followed by a single Fe byte, or a CSI
	// sequence: ESC [ parameter bytes, intermediate bytes, final byte.
	escapePattern = regexp.MustCompile(`\x1b(?:[@-Z\\\]^_]|\[[0-?]*[ -/]*[@-~])`)

	// controlPattern matches C0 controls and DEL, except tab, newline and
	// carriage return.
	controlPattern = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]`)

	// sgrPattern matches a complete Select Graphic Rendition sequence
	sgrPattern = regexp.MustCompile(`^\x1b\[[0-9;]*m$`)

	nameWhitespace = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ")
)

// Reset is the SGR sequence that clears all attributes
const Reset = "\x1b[0m"

// Sanitize removes escape sequences and control characters from text.
// Newlines, tabs and carriage returns survive. The result never contains
// an ESC byte, so Sanitize is idempotent.
func Sanitize(text string) string {
	if text == "" {
		return text
	}
	text = escapePattern.ReplaceAllString(text, "")
	return controlPattern.ReplaceAllString(text, "")
}

// KeepColor is Sanitize with one exception: well-formed SGR color
// sequences are kept. Every other escape sequence and control character
// is removed. If any color survives and the text does not already end
// with a reset, one is appended so colors cannot bleed past the text.
func KeepColor(text string) string {
	if text == "" {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	kept := false
	last := 0
	for _, loc := range escapePattern.FindAllStringIndex(text, -1) {
		b.WriteString(controlPattern.ReplaceAllString(text[last:loc[0]], ""))
		seq := text[loc[0]:loc[1]]
		if sgrPattern.MatchString(seq) {
			b.WriteString(seq)
			kept = true
		}
		last = loc[1]
	}
	b.WriteString(controlPattern.ReplaceAllString(text[last:], ""))

	out := b.String()
	if kept && !strings.HasSuffix(strings.TrimRight(out, " \n\t\r"), Reset) {
		out += Reset
	}
	return out
}

// Name sanitizes a user-supplied recipient name for single-line display:
// control sequences are removed, line breaks and tabs become spaces, and
// surrounding whitespace is trimmed.
func Name(name string) string {
	return strings.TrimSpace(nameWhitespace.Replace(Sanitize(name)))
}

// HasControl reports whether text holds anything Sanitize would remove
func HasControl(text string) bool {
	return escapePattern.MatchString(text) || controlPattern.MatchString(text)
}
