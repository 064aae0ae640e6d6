package provider

import (
	"strings"
)

// escapeLiterals turns the escape spellings models tend to emit as plain
// text into a real ESC byte
var escapeLiterals = strings.NewReplacer(
	`\033[`, "\x1b[",
	`\x1b[`, "\x1b[",
	`\x1B[`, "\x1b[",
	`\u001b[`, "\x1b[",
	`\u001B[`, "\x1b[",
	`\e[`, "\x1b[",
)

// cleanOutput post-processes raw generator text: escape literals are
// decoded, a surrounding Markdown code fence is removed, and blank lines
// at both ends are dropped. Leading spaces on the first line are art and
// are kept.
func cleanOutput(raw string) string {
	text := escapeLiterals.Replace(raw)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = stripFence(text)
	return trimBlankLines(text)
}

func stripFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return text
	}
	lines := strings.Split(trimmed, "\n")
	// opening fence, possibly with a language tag
	lines = lines[1:]
	if n := len(lines); n > 0 && strings.TrimSpace(lines[n-1]) == "```" {
		lines = lines[:n-1]
	}
	return strings.Join(lines, "\n")
}

func trimBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	for i := start; i < end; i++ {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	return strings.Join(lines[start:end], "\n")
}
