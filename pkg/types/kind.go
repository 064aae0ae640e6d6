package types

import (
	"strings"

	"github.com/arthur-debert/greetings/pkg/errors"
)

// Kind is the card category. It selects the template family and the
// greeting text.
type Kind int

const (
	KindUnknown Kind = iota
	KindBirthday
	KindGeneral
	KindHoliday
	KindMotivateMonday
	KindMotivateKeepGoing
	KindMotivateYouGotThis
	KindMotivateDeadline
	KindMotivateCoffee
)

// motivatePrefix joins a motivational theme to its kind name
const motivatePrefix = "motivate-"

var kindNames = map[Kind]string{
	KindBirthday:           "birthday",
	KindGeneral:            "general",
	KindHoliday:            "holiday",
	KindMotivateMonday:     motivatePrefix + "monday",
	KindMotivateKeepGoing:  motivatePrefix + "keepgoing",
	KindMotivateYouGotThis: motivatePrefix + "yougotthis",
	KindMotivateDeadline:   motivatePrefix + "deadline",
	KindMotivateCoffee:     motivatePrefix + "coffee",
}

var kindAliases = map[string]Kind{
	"xmas":      KindHoliday,
	"christmas": KindHoliday,
}

// AllKinds returns every known kind in declaration order
func AllKinds() []Kind {
	return []Kind{
		KindBirthday,
		KindGeneral,
		KindHoliday,
		KindMotivateMonday,
		KindMotivateKeepGoing,
		KindMotivateYouGotThis,
		KindMotivateDeadline,
		KindMotivateCoffee,
	}
}

// MotivationThemes returns the themes accepted by MotivationKind
func MotivationThemes() []string {
	var themes []string
	for _, k := range AllKinds() {
		if k.IsMotivational() {
			themes = append(themes, k.Theme())
		}
	}
	return themes
}

// String returns the canonical kind name
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the kind by name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsMotivational reports whether k is one of the motivate-<theme> kinds
func (k Kind) IsMotivational() bool {
	return k >= KindMotivateMonday && k <= KindMotivateCoffee
}

// Theme returns the motivational theme, or "" for other kinds
func (k Kind) Theme() string {
	if !k.IsMotivational() {
		return ""
	}
	return strings.TrimPrefix(k.String(), motivatePrefix)
}

// ParseKind parses a kind name. Holiday also answers to xmas and christmas.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return KindUnknown, errors.Newf(errors.ErrUnknownKind, "unknown kind: %q", s).
		WithDetail("kind", s)
}

// MotivationKind returns the motivational kind for theme
func MotivationKind(theme string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(theme))
	k, err := ParseKind(motivatePrefix + name)
	if err != nil || !k.IsMotivational() {
		return KindUnknown, errors.Newf(errors.ErrUnknownKind,
			"unknown motivation theme: %q (available: %s)", theme, strings.Join(MotivationThemes(), ", ")).
			WithDetail("theme", theme)
	}
	return k, nil
}
