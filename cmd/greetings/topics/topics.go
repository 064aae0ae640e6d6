// Package topics holds the markdown pages served by `greetings help <topic>`.
package topics

import "embed"

// FS contains every topic page at its root
//
//go:embed *.md
var FS embed.FS
