// Package types holds the small value types shared across greetings:
// the card Kind, its rendering Style, the provider Source and the
// rendered Card itself.
//
// String inputs are parsed into these enums exactly once, at the edge
// (flags, config). Everything past that point switches on the enum values.
package types
