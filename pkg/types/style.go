package types

import (
	"strings"

	"github.com/arthur-debert/greetings/pkg/errors"
)

// Style is the rendering size of a card, orthogonal to Kind
type Style int

const (
	StyleUnknown Style = iota
	StyleBanner
	StyleSmall
	StyleSimple
)

// DefaultStyle is used when no style is requested
const DefaultStyle = StyleBanner

var styleNames = map[Style]string{
	StyleBanner: "banner",
	StyleSmall:  "small",
	StyleSimple: "simple",
}

// AllStyles returns every known style, largest first
func AllStyles() []Style {
	return []Style{StyleBanner, StyleSmall, StyleSimple}
}

// StyleNames returns the style names in AllStyles order
func StyleNames() []string {
	names := make([]string, 0, len(styleNames))
	for _, s := range AllStyles() {
		names = append(names, s.String())
	}
	return names
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the style by name
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseStyle parses a style name, case-insensitively
func ParseStyle(s string) (Style, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for st, n := range styleNames {
		if n == name {
			return st, nil
		}
	}
	return StyleUnknown, errors.Newf(errors.ErrUnknownStyle,
		"unknown style: %q (available: %s)", s, strings.Join(StyleNames(), ", ")).
		WithDetail("style", s)
}
