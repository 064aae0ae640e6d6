package sanitize_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/greetings/pkg/sanitize"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"removes color codes", "\x1b[31mRed\x1b[0m", "Red"},
		{"removes control characters", "Hello\x00World\x1f", "HelloWorld"},
		{"keeps newlines and tabs", "Hello\nWorld\tTest", "Hello\nWorld\tTest"},
		{"keeps carriage return", "line\r\n", "line\r\n"},
		{"clean text unchanged", "Happy Birthday, Alice! 🎂", "Happy Birthday, Alice! 🎂"},
		{"empty input", "", ""},
		{"cursor movement", "a\x1b[2Jb\x1b[10;5Hc", "abc"},
		{"private mode", "\x1b[?25lhidden\x1b[?25h", "hidden"},
		{"two byte escape", "x\x1bMy\x1b\\z", "xyz"},
		{"lone escape", "tail\x1b", "tail"},
		{"bell and backspace", "ding\x07\x08!", "ding!"},
		{"delete character", "del\x7f", "del"},
		{"vertical tab and form feed", "a\x0bb\x0cc", "abc"},
		{"title injection", "\x1b]0;pwned\x07Bob", "0;pwnedBob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitize.Sanitize(tt.input))
		})
	}
}

func TestSanitizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"\x1b[31mRed\x1b[0m",
		"\x1b\x00[31m",
		"\x1b\x1b[1mX",
		"Hello\x00World\x1f",
		"\x1b]0;title\x07",
		"plain",
		"",
		strings.Repeat("\x1b[", 5) + "m",
	}

	for _, in := range inputs {
		once := sanitize.Sanitize(in)
		assert.Equal(t, once, sanitize.Sanitize(once), "input %q", in)
		assert.False(t, sanitize.HasControl(once), "input %q left %q", in, once)
	}
}

func TestSanitizePreservesPrintable(t *testing.T) {
	var b strings.Builder
	for r := rune(0x20); r < 0x7f; r++ {
		b.WriteRune(r)
	}
	b.WriteString("\n\t\r äöü ✨ 🎄")
	text := b.String()

	assert.Equal(t, text, sanitize.Sanitize(text))
}

func TestSanitizeRemovesEveryControlCharacter(t *testing.T) {
	for c := 0; c < 0x20; c++ {
		if c == '\n' || c == '\t' || c == '\r' {
			continue
		}
		in := "a" + string(rune(c)) + "b"
		assert.Equal(t, "ab", sanitize.Sanitize(in), "control 0x%02x", c)
	}
}

func TestKeepColor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"keeps color", "\x1b[32m*\x1b[0m", "\x1b[32m*\x1b[0m"},
		{"appends reset", "\x1b[33mstar", "\x1b[33mstar\x1b[0m"},
		{"drops cursor movement", "\x1b[32m*\x1b[2J\x1b[0m", "\x1b[32m*\x1b[0m"},
		{"drops controls", "tree\x07\x00\x1b[0m", "tree\x1b[0m"},
		{"plain text untouched", "just art\n/\\", "just art\n/\\"},
		{"stray escape removed", "\x1bx", "x"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitize.KeepColor(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, sanitize.KeepColor(got), "KeepColor should be idempotent")
		})
	}
}

func TestKeepColorThenSanitize(t *testing.T) {
	colored := sanitize.KeepColor("\x1b[31mred\x1b[0m \x1b[34mblue")
	assert.Equal(t, "red blue", sanitize.Sanitize(colored))
}

func TestName(t *testing.T) {
	assert.Equal(t, "Alice", sanitize.Name("  Alice \n"))
	assert.Equal(t, "Bob Smith", sanitize.Name("Bob\nSmith"))
	assert.Equal(t, "Eve", sanitize.Name("\x1b[31mEve\x1b[0m"))
	assert.Equal(t, "", sanitize.Name("\x00\x1b[2J"))
}
