// Package provider produces cards for one kind.
//
// Local renders the static templates. Remote asks a text generator for the
// art and falls back to Local on any failure, so a remote provider only
// ever fails for the same reasons a local one does: an unknown kind or
// style.
package provider

import (
	"context"
	"strings"

	"github.com/arthur-debert/greetings/pkg/ai"
	"github.com/arthur-debert/greetings/pkg/errors"
	"github.com/arthur-debert/greetings/pkg/logging"
	"github.com/arthur-debert/greetings/pkg/sanitize"
	"github.com/arthur-debert/greetings/pkg/templates"
	"github.com/arthur-debert/greetings/pkg/types"
)

// Provider renders cards of a single kind
type Provider interface {
	Card(ctx context.Context, name string, style types.Style) (types.Card, error)
	Kind() types.Kind
}

// Local renders cards from the template store
type Local struct {
	kind  types.Kind
	store *templates.Store
}

var _ Provider = (*Local)(nil)

func NewLocal(store *templates.Store, kind types.Kind) *Local {
	return &Local{kind: kind, store: store}
}

func (l *Local) Kind() types.Kind { return l.kind }

// Card renders the (kind, style) template for name
func (l *Local) Card(_ context.Context, name string, style types.Style) (types.Card, error) {
	return l.store.Render(l.kind, style, name)
}

// RemoteOptions tunes a Remote provider. None of it affects Local.
type RemoteOptions struct {
	// Theme replaces the default creative theme for the style
	Theme string
	// Model overrides the generator's configured model
	Model string
	// OnFallback is called with the cause whenever the local card is
	// returned instead of generated art
	OnFallback func(err error)
}

// Remote renders art with a text generator
type Remote struct {
	local *Local
	gen   ai.Generator
	opts  RemoteOptions
}

var _ Provider = (*Remote)(nil)

func NewRemote(store *templates.Store, kind types.Kind, gen ai.Generator, opts RemoteOptions) *Remote {
	if gen == nil {
		gen = ai.Unavailable{}
	}
	return &Remote{local: NewLocal(store, kind), gen: gen, opts: opts}
}

func (r *Remote) Kind() types.Kind { return r.local.kind }

// SetTheme sets the creative theme used by later Card calls
func (r *Remote) SetTheme(theme string) {
	r.opts.Theme = strings.TrimSpace(theme)
}

// Card generates art for name. The greeting is always the local one. Any
// generation problem is logged and answered with the local card.
func (r *Remote) Card(ctx context.Context, name string, style types.Style) (types.Card, error) {
	local, err := r.local.Card(ctx, name, style)
	if err != nil {
		return types.Card{}, err
	}

	logger := logging.GetLogger("provider.remote").With().
		Str("kind", r.Kind().String()).
		Str("style", style.String()).
		Logger()

	done := logging.LogOperationStart(logger, "remote generation")
	art, err := r.generate(ctx, name, style)
	done()
	if err != nil {
		logger.Info().Err(err).Msg("Remote generation failed, using local template")
		if r.opts.OnFallback != nil {
			r.opts.OnFallback(err)
		}
		return local, nil
	}

	logger.Debug().
		Int("length", len(art)).
		Bool("escapes", sanitize.HasControl(art)).
		Msg("Remote art generated")
	return types.Card{
		Art:      art,
		Greeting: local.Greeting,
		Source:   types.SourceRemote,
	}, nil
}

func (r *Remote) generate(ctx context.Context, name string, style types.Style) (string, error) {
	system, err := SystemPrompt(r.Kind(), style)
	if err != nil {
		return "", err
	}
	user, err := UserPrompt(r.Kind(), style, sanitize.Name(name), r.opts.Theme)
	if err != nil {
		return "", err
	}

	raw, err := r.gen.Generate(ctx, ai.Request{System: system, User: user, Model: r.opts.Model})
	if err != nil {
		return "", err
	}

	art := cleanOutput(raw)
	if strings.TrimSpace(sanitize.Sanitize(art)) == "" {
		return "", errors.New(errors.ErrGenerationFailed, "generator returned no printable content")
	}
	return art, nil
}
