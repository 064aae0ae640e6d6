package templates

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/greetings/pkg/errors"
	"github.com/arthur-debert/greetings/pkg/types"
)

func TestDefaultCatalogIsComplete(t *testing.T) {
	store := Default()
	assert.Equal(t, types.AllKinds(), store.Kinds())
	for _, kind := range types.AllKinds() {
		assert.Equal(t, types.AllStyles(), store.Styles(kind), "kind %s", kind)
		for _, style := range types.AllStyles() {
			tmpl, err := store.Template(kind, style)
			require.NoError(t, err)
			assert.NotEmpty(t, strings.TrimSpace(tmpl.Art), "%s/%s art", kind, style)
			assert.Contains(t, tmpl.Greeting, Slot, "%s/%s greeting", kind, style)
		}
	}
}

func TestRenderBirthdaySimple(t *testing.T) {
	card, err := Default().Render(types.KindBirthday, types.StyleSimple, "Alice")
	require.NoError(t, err)

	assert.Contains(t, card.Greeting, "Happy Birthday, Alice!")
	assert.NotEmpty(t, strings.TrimSpace(card.Art))
	assert.Equal(t, types.SourceLocal, card.Source)
}

func TestRenderHolidayBanner(t *testing.T) {
	card, err := Default().Render(types.KindHoliday, types.StyleBanner, "Santa")
	require.NoError(t, err)

	assert.Contains(t, card.Art, "Santa")
	assert.Contains(t, card.Greeting, "Christmas")
}

func TestRenderEveryTemplateContainsName(t *testing.T) {
	store := Default()
	for _, kind := range store.Kinds() {
		for _, style := range store.Styles(kind) {
			card, err := store.Render(kind, style, "Robin")
			require.NoError(t, err)
			assert.Contains(t, card.Greeting, "Robin", "%s/%s", kind, style)
			assert.NotContains(t, card.Art, Slot)
			assert.NotContains(t, card.Greeting, Slot)
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	a, err := Default().Render(types.KindMotivateCoffee, types.StyleSmall, "Jo")
	require.NoError(t, err)
	b, err := Default().Render(types.KindMotivateCoffee, types.StyleSmall, "Jo")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRenderTruncatesLongNames(t *testing.T) {
	name := "Bartholomew-Alexander"
	store := Default()
	for _, kind := range store.Kinds() {
		for _, style := range store.Styles(kind) {
			tmpl, err := store.Template(kind, style)
			require.NoError(t, err)

			card := tmpl.Render(name)
			want := name[:tmpl.Width]
			assert.Contains(t, card.Greeting, want)
			assert.NotContains(t, card.Greeting, name[:tmpl.Width+1], "%s/%s", kind, style)
		}
	}
}

func TestRenderCentersName(t *testing.T) {
	tmpl := Template{Art: "[{name}]", Greeting: "hi {name}", Width: 10, Align: AlignCenter}
	card := tmpl.Render("Ana")
	assert.Equal(t, "[   Ana    ]", card.Art)
	assert.Equal(t, "hi Ana", card.Greeting)
}

func TestRenderLeftAlignedNameIsNotPadded(t *testing.T) {
	tmpl := Template{Art: "[{name}]", Greeting: "hi {name}", Width: 10, Align: AlignLeft}
	card := tmpl.Render("Ana")
	assert.Equal(t, "[Ana]", card.Art)
}

func TestRenderStripsControlCharactersFromName(t *testing.T) {
	card, err := Default().Render(types.KindGeneral, types.StyleSimple, "\x1b[31mEve\x07")
	require.NoError(t, err)
	assert.Contains(t, card.Greeting, "Eve")
	assert.NotContains(t, card.Greeting, "\x1b")
	assert.NotContains(t, card.Greeting, "\x07")
}

func TestRenderUnknownCombinations(t *testing.T) {
	_, err := Default().Render(types.KindBirthday, types.StyleUnknown, "Alice")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownStyle))

	_, err = Default().Render(types.KindUnknown, types.StyleBanner, "Alice")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownKind))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "abcdefghij", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "", Truncate("", 10))
	// wide runes count as two columns
	assert.Equal(t, "日本", Truncate("日本語", 5))
}

func TestCenter(t *testing.T) {
	assert.Equal(t, " ab  ", Center("ab", 5))
	assert.Equal(t, "abcdef", Center("abcdef", 4))
	assert.Equal(t, "    ", Center("", 4))
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty document", ``},
		{"not yaml", "families: [\n"},
		{"unknown kind", `
families:
  anniversary:
    banner: {art: "x", greeting: "hi {name}", width: 12}
`},
		{"unknown style", `
families:
  birthday:
    huge: {art: "x", greeting: "hi {name}", width: 12}
`},
		{"empty art", `
families:
  birthday:
    banner: {art: "  ", greeting: "hi {name}", width: 12}
`},
		{"greeting without slot", `
families:
  birthday:
    banner: {art: "x", greeting: "hi there", width: 12}
`},
		{"width too small", `
families:
  birthday:
    banner: {art: "x", greeting: "hi {name}", width: 9}
`},
		{"width too large", `
families:
  birthday:
    banner: {art: "x", greeting: "hi {name}", width: 16}
`},
		{"bad align", `
families:
  birthday:
    banner: {art: "x", greeting: "hi {name}", width: 12, align: right}
`},
		{"foreign placeholder", `
families:
  birthday:
    banner: {art: "{date}", greeting: "hi {name}", width: 12}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateInvalid), "got %v", err)
		})
	}
}

func TestLoadMinimalCatalog(t *testing.T) {
	store, err := Load([]byte(`
families:
  xmas:
    small: {art: "*{name}*", greeting: "Merry Christmas, {name}", width: 10, align: center}
`))
	require.NoError(t, err)
	assert.Equal(t, []types.Kind{types.KindHoliday}, store.Kinds())
	assert.Equal(t, []types.Style{types.StyleSmall}, store.Styles(types.KindHoliday))

	_, err = store.Render(types.KindHoliday, types.StyleBanner, "Kim")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownStyle))
	_, err = store.Render(types.KindBirthday, types.StyleSmall, "Kim")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownKind))
}

func TestDefaultLoadsOnFirstUse(t *testing.T) {
	savedLogger, savedLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		defaultOnce = sync.Once{}
		defaultStore = nil
		log.Logger = savedLogger
		zerolog.SetGlobalLevel(savedLevel)
	})

	defaultOnce = sync.Once{}
	defaultStore = nil

	// The logger in place at first use is the one the load reports to
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	store := Default()
	require.NotNil(t, store)
	assert.Same(t, store, Default())
	assert.Empty(t, buf.String())

	defaultOnce = sync.Once{}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	Default()
	assert.Contains(t, buf.String(), "Template catalog loaded")
}
