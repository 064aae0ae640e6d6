package provider

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/greetings/pkg/ai"
	"github.com/arthur-debert/greetings/pkg/errors"
	"github.com/arthur-debert/greetings/pkg/templates"
	"github.com/arthur-debert/greetings/pkg/types"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(ctx context.Context, req ai.Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func TestLocalCard(t *testing.T) {
	p := NewLocal(templates.Default(), types.KindBirthday)
	assert.Equal(t, types.KindBirthday, p.Kind())

	card, err := p.Card(context.Background(), "Alice", types.StyleSimple)
	require.NoError(t, err)
	assert.Contains(t, card.Greeting, "Happy Birthday, Alice!")
	assert.Equal(t, types.SourceLocal, card.Source)
}

func TestLocalCardUnknownStyle(t *testing.T) {
	p := NewLocal(templates.Default(), types.KindGeneral)
	_, err := p.Card(context.Background(), "Alice", types.StyleUnknown)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownStyle))
}

func TestRemoteCardUsesGeneratedArt(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(req ai.Request) bool {
		return strings.Contains(req.System, "Max 60 chars wide") &&
			strings.Contains(req.User, "Include the recipient's name: Dana") &&
			strings.Contains(req.User, "Christmas tree") &&
			req.Model == "deploy-1"
	})).Return("```\n\\033[32m  *\\033[0m\n /|\\\n```", nil).Once()

	p := NewRemote(templates.Default(), types.KindHoliday, gen, RemoteOptions{Model: "deploy-1"})
	card, err := p.Card(context.Background(), "Dana", types.StyleBanner)
	require.NoError(t, err)

	local, err := NewLocal(templates.Default(), types.KindHoliday).Card(context.Background(), "Dana", types.StyleBanner)
	require.NoError(t, err)

	assert.Equal(t, types.SourceRemote, card.Source)
	assert.Equal(t, local.Greeting, card.Greeting)
	assert.True(t, strings.HasPrefix(card.Art, "\x1b[32m"), "art %q", card.Art)
	assert.NotContains(t, card.Art, "```")
	gen.AssertExpectations(t)
}

func TestRemoteCardThemeOverride(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(req ai.Request) bool {
		return strings.Contains(req.User, "a snowman surfing")
	})).Return("~ snowman ~", nil).Once()

	p := NewRemote(templates.Default(), types.KindHoliday, gen, RemoteOptions{})
	p.SetTheme("  a snowman surfing ")
	card, err := p.Card(context.Background(), "Lee", types.StyleSmall)
	require.NoError(t, err)
	assert.Equal(t, "~ snowman ~", card.Art)
	gen.AssertExpectations(t)
}

func TestRemoteFallsBackToLocal(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
	}{
		{"generator error", "", errors.New(errors.ErrGenerationFailed, "boom")},
		{"plain error", "", stderrors.New("connection refused")},
		{"empty output", "", nil},
		{"whitespace output", " \n\t\n", nil},
		{"only control sequences", "\\033[31m\x07\\033[0m", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &mockGenerator{}
			gen.On("Generate", mock.Anything, mock.Anything).Return(tt.reply, tt.err)

			var notified error
			p := NewRemote(templates.Default(), types.KindHoliday, gen, RemoteOptions{
				OnFallback: func(err error) { notified = err },
			})
			for _, style := range types.AllStyles() {
				got, err := p.Card(context.Background(), "Sam", style)
				require.NoError(t, err)

				want, err := NewLocal(templates.Default(), types.KindHoliday).Card(context.Background(), "Sam", style)
				require.NoError(t, err)
				assert.Equal(t, want, got, "style %s", style)
				assert.Error(t, notified)
				notified = nil
			}
			gen.AssertNumberOfCalls(t, "Generate", len(types.AllStyles()))
		})
	}
}

func TestRemoteUnavailableFallsBack(t *testing.T) {
	p := NewRemote(templates.Default(), types.KindBirthday, ai.Unavailable{Reason: "no endpoint"}, RemoteOptions{})
	got, err := p.Card(context.Background(), "Ana", types.StyleSmall)
	require.NoError(t, err)

	want, err := NewLocal(templates.Default(), types.KindBirthday).Card(context.Background(), "Ana", types.StyleSmall)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRemoteNilGenerator(t *testing.T) {
	p := NewRemote(templates.Default(), types.KindGeneral, nil, RemoteOptions{})
	card, err := p.Card(context.Background(), "Ana", types.StyleSimple)
	require.NoError(t, err)
	assert.Equal(t, types.SourceLocal, card.Source)
}

func TestRemoteUnknownStyleFailsWithoutGenerating(t *testing.T) {
	gen := &mockGenerator{}
	p := NewRemote(templates.Default(), types.KindHoliday, gen, RemoteOptions{})

	_, err := p.Card(context.Background(), "Sam", types.StyleUnknown)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownStyle))
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestRemoteUnknownKind(t *testing.T) {
	gen := &mockGenerator{}
	p := NewRemote(templates.Default(), types.KindUnknown, gen, RemoteOptions{})

	_, err := p.Card(context.Background(), "Sam", types.StyleBanner)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownKind))
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestPromptsCoverEveryKindAndStyle(t *testing.T) {
	for _, kind := range types.AllKinds() {
		for _, style := range types.AllStyles() {
			system, err := SystemPrompt(kind, style)
			require.NoError(t, err, "%s/%s", kind, style)
			assert.NotEmpty(t, system)

			user, err := UserPrompt(kind, style, "Kai", "")
			require.NoError(t, err, "%s/%s", kind, style)
			assert.Contains(t, user, "Kai")
		}
	}
}

func TestSystemPromptLimits(t *testing.T) {
	banner, err := SystemPrompt(types.KindHoliday, types.StyleBanner)
	require.NoError(t, err)
	assert.Contains(t, banner, "Max 60 chars wide, exactly 12 lines tall")
	assert.Contains(t, banner, `\033[32m=green`)

	small, err := SystemPrompt(types.KindHoliday, types.StyleSmall)
	require.NoError(t, err)
	assert.Contains(t, small, "Max 40 chars wide, 8-12 lines tall")

	simple, err := SystemPrompt(types.KindHoliday, types.StyleSimple)
	require.NoError(t, err)
	assert.Contains(t, simple, "single line Christmas greeting")

	_, err = SystemPrompt(types.KindHoliday, types.StyleUnknown)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownStyle))
}

func TestRemoteFallbackIsLoggedBelowWarn(t *testing.T) {
	savedLogger, savedLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = savedLogger
		zerolog.SetGlobalLevel(savedLevel)
	})
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	p := NewRemote(templates.Default(), types.KindHoliday, ai.Unavailable{Reason: "no endpoint"}, RemoteOptions{})

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	_, err := p.Card(context.Background(), "Sam", types.StyleSmall)
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	_, err = p.Card(context.Background(), "Sam", types.StyleSmall)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"level":"info"`)
	assert.Contains(t, buf.String(), "Remote generation failed")
	assert.Contains(t, buf.String(), "no endpoint")
}

func TestRemoteLogsEscapesInGeneratedArt(t *testing.T) {
	savedLogger, savedLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = savedLogger
		zerolog.SetGlobalLevel(savedLevel)
	})
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	colored := ai.GeneratorFunc(func(context.Context, ai.Request) (string, error) {
		return "\\033[31m*\\033[0m", nil
	})
	_, err := NewRemote(templates.Default(), types.KindHoliday, colored, RemoteOptions{}).
		Card(context.Background(), "Sam", types.StyleSimple)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"escapes":true`)

	buf.Reset()
	plain := ai.GeneratorFunc(func(context.Context, ai.Request) (string, error) {
		return "*", nil
	})
	_, err = NewRemote(templates.Default(), types.KindHoliday, plain, RemoteOptions{}).
		Card(context.Background(), "Sam", types.StyleSimple)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"escapes":false`)
}
