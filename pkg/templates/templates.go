// Package templates holds the static card catalog.
//
// The catalog is an embedded YAML document with one family per card kind
// and one template per style inside each family. Every template has a
// single {name} slot, a display width the name is cut to, and an
// alignment. The catalog is validated when it is loaded, so a malformed
// template fails on first use instead of at render time.
package templates

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/greetings/pkg/errors"
	"github.com/arthur-debert/greetings/pkg/logging"
	"github.com/arthur-debert/greetings/pkg/sanitize"
	"github.com/arthur-debert/greetings/pkg/types"
)

// Slot is the substitution placeholder in art and greeting text
const Slot = "{name}"

const (
	MinWidth = 10
	MaxWidth = 15
)

// Align controls how a truncated name is placed in its slot
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// placeholderPattern finds anything that looks like a slot
var placeholderPattern = regexp.MustCompile(`\{[A-Za-z_][A-Za-z0-9_]*\}`)

// Template is one (kind, style) entry of the catalog
type Template struct {
	Art      string `yaml:"art"`
	Greeting string `yaml:"greeting"`
	Width    int    `yaml:"width"`
	Align    Align  `yaml:"align"`
}

// catalogFile is the on-disk shape of catalog.yaml
type catalogFile struct {
	Families map[string]map[string]Template `yaml:"families"`
}

// Store maps (kind, style) to a template. It is immutable after Load.
type Store struct {
	families map[types.Kind]map[types.Style]Template
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// Default returns the store built from the embedded catalog. The catalog is
// loaded on first use, after logging has been set up.
func Default() *Store {
	defaultOnce.Do(func() {
		defaultStore = mustLoad(embeddedCatalog)
	})
	return defaultStore
}

func mustLoad(data []byte) *Store {
	s, err := Load(data)
	if err != nil {
		panic(fmt.Sprintf("templates: embedded catalog is invalid: %v", err))
	}
	return s
}

// Load parses and validates a catalog document
func Load(data []byte) (*Store, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, errors.ErrTemplateInvalid, "failed to parse template catalog")
	}
	if len(file.Families) == 0 {
		return nil, errors.New(errors.ErrTemplateInvalid, "template catalog has no families")
	}

	s := &Store{families: make(map[types.Kind]map[types.Style]Template, len(file.Families))}
	for kindName, styles := range file.Families {
		kind, err := types.ParseKind(kindName)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrTemplateInvalid, "catalog family %q", kindName)
		}
		if _, dup := s.families[kind]; dup {
			return nil, errors.Newf(errors.ErrTemplateInvalid, "catalog family %q is declared twice", kindName)
		}
		family := make(map[types.Style]Template, len(styles))
		for styleName, tmpl := range styles {
			style, err := types.ParseStyle(styleName)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrTemplateInvalid, "catalog template %s/%s", kindName, styleName)
			}
			if tmpl.Align == "" {
				tmpl.Align = AlignLeft
			}
			if err := tmpl.validate(); err != nil {
				return nil, errors.Wrapf(err, errors.ErrTemplateInvalid, "catalog template %s/%s", kindName, styleName).
					WithDetail("kind", kindName).
					WithDetail("style", styleName)
			}
			family[style] = tmpl
		}
		s.families[kind] = family
	}

	logger := logging.GetLogger("templates")
	logger.Debug().
		Int("families", len(s.families)).
		Msg("Template catalog loaded")
	return s, nil
}

func (t Template) validate() error {
	switch {
	case strings.TrimSpace(t.Art) == "":
		return fmt.Errorf("art is empty")
	case strings.TrimSpace(t.Greeting) == "":
		return fmt.Errorf("greeting is empty")
	case strings.Count(t.Greeting, Slot) != 1:
		return fmt.Errorf("greeting must contain %s exactly once", Slot)
	case strings.Count(t.Art, Slot) > 1:
		return fmt.Errorf("art contains %s more than once", Slot)
	case t.Width < MinWidth || t.Width > MaxWidth:
		return fmt.Errorf("width %d is outside %d-%d", t.Width, MinWidth, MaxWidth)
	case t.Align != AlignLeft && t.Align != AlignCenter:
		return fmt.Errorf("unknown align %q", t.Align)
	}
	for _, text := range []string{t.Art, t.Greeting} {
		for _, ph := range placeholderPattern.FindAllString(text, -1) {
			if ph != Slot {
				return fmt.Errorf("unknown placeholder %s", ph)
			}
		}
	}
	return nil
}

// Template looks up the template for (kind, style)
func (s *Store) Template(kind types.Kind, style types.Style) (Template, error) {
	family, ok := s.families[kind]
	if !ok {
		return Template{}, errors.Newf(errors.ErrUnknownKind, "unknown kind: %s", kind).
			WithDetail("kind", kind.String())
	}
	tmpl, ok := family[style]
	if !ok {
		return Template{}, errors.Newf(errors.ErrUnknownStyle,
			"unknown style %s for %s (available: %s)", style, kind, joinStyles(s.Styles(kind))).
			WithDetail("kind", kind.String()).
			WithDetail("style", style.String())
	}
	return tmpl, nil
}

// Render substitutes name into the (kind, style) template. The name is
// stripped of control characters, cut to the template width and, for
// centered templates, padded to exactly that width.
func (s *Store) Render(kind types.Kind, style types.Style, name string) (types.Card, error) {
	tmpl, err := s.Template(kind, style)
	if err != nil {
		return types.Card{}, err
	}
	return tmpl.Render(name), nil
}

// Render fills the slot in art and greeting
func (t Template) Render(name string) types.Card {
	short := Truncate(sanitize.Name(name), t.Width)
	slot := short
	if t.Align == AlignCenter {
		slot = Center(short, t.Width)
	}
	return types.Card{
		Art:      strings.ReplaceAll(t.Art, Slot, slot),
		Greeting: strings.ReplaceAll(t.Greeting, Slot, short),
		Source:   types.SourceLocal,
	}
}

// Kinds returns the kinds with a family in the catalog, in AllKinds order
func (s *Store) Kinds() []types.Kind {
	var kinds []types.Kind
	for _, k := range types.AllKinds() {
		if _, ok := s.families[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Styles returns the styles available for kind, in AllStyles order
func (s *Store) Styles(kind types.Kind) []types.Style {
	family := s.families[kind]
	var styles []types.Style
	for _, st := range types.AllStyles() {
		if _, ok := family[st]; ok {
			styles = append(styles, st)
		}
	}
	return styles
}

// Truncate returns the longest prefix of s that fits in width display columns
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "")
}

// Center pads s with spaces on both sides to width display columns. Any
// odd column goes to the right.
func Center(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func joinStyles(styles []types.Style) string {
	names := make([]string, 0, len(styles))
	for _, s := range styles {
		names = append(names, s.String())
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
