// Package dispatcher maps a (source, kind) request to a provider.
// It is the entry point from the CLI layer: commands never construct
// providers themselves.
package dispatcher

import (
	"github.com/arthur-debert/greetings/pkg/ai"
	"github.com/arthur-debert/greetings/pkg/errors"
	"github.com/arthur-debert/greetings/pkg/logging"
	"github.com/arthur-debert/greetings/pkg/provider"
	"github.com/arthur-debert/greetings/pkg/templates"
	"github.com/arthur-debert/greetings/pkg/types"
)

// Dispatcher holds what providers are built from. Each Select call
// returns a new provider; nothing is shared between requests except the
// read-only template store.
type Dispatcher struct {
	Store     *templates.Store
	Generator ai.Generator
	Remote    provider.RemoteOptions
}

// New returns a dispatcher over the embedded templates
func New(gen ai.Generator, opts provider.RemoteOptions) *Dispatcher {
	return &Dispatcher{Store: templates.Default(), Generator: gen, Remote: opts}
}

// Select returns the provider for source and kind
func (d *Dispatcher) Select(source types.Source, kind types.Kind) (provider.Provider, error) {
	logger := logging.GetLogger("dispatcher")
	logger.Debug().
		Str("source", source.String()).
		Str("kind", kind.String()).
		Msg("Selecting provider")

	if kind == types.KindUnknown {
		return nil, errors.New(errors.ErrUnknownKind, "unknown kind").
			WithDetail("kind", kind.String())
	}

	store := d.Store
	if store == nil {
		store = templates.Default()
	}

	switch source {
	case types.SourceLocal:
		return provider.NewLocal(store, kind), nil
	case types.SourceRemote:
		return provider.NewRemote(store, kind, d.Generator, d.Remote), nil
	default:
		return nil, errors.Newf(errors.ErrUnknownSource, "unknown source: %s", source).
			WithDetail("source", source.String())
	}
}

// SelectByName parses source and kind names before selecting
func (d *Dispatcher) SelectByName(source, kind string) (provider.Provider, error) {
	src, err := types.ParseSource(source)
	if err != nil {
		return nil, err
	}
	k, err := types.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	return d.Select(src, k)
}
