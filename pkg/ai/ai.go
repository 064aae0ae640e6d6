// Package ai talks to remote text generation services.
//
// A Generator turns a (system, user) instruction pair into text. Three
// bindings exist: OpenAI-compatible chat completions (OpenAI itself or
// Azure OpenAI) and a local Ollama host. When nothing is configured New
// returns Unavailable, which always fails, so callers fall back to their
// local path without special-casing missing configuration.
package ai

import (
	"context"

	"github.com/arthur-debert/greetings/pkg/errors"
)

// Request is one generation call
type Request struct {
	System string
	User   string
	// Model overrides the generator's configured model when set
	Model string
}

// Generator produces text for a request
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// GeneratorFunc adapts a function to Generator
type GeneratorFunc func(ctx context.Context, req Request) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// Unavailable is the generator bound when no backend is configured
type Unavailable struct {
	Reason string
}

var _ Generator = Unavailable{}

func (u Unavailable) Generate(context.Context, Request) (string, error) {
	reason := u.Reason
	if reason == "" {
		reason = "no generation backend configured"
	}
	return "", errors.New(errors.ErrGenerationFailed, reason)
}

// failed wraps a backend error as GENERATION_FAILED
func failed(err error, backend string) error {
	return errors.Wrapf(err, errors.ErrGenerationFailed, "%s generation failed", backend).
		WithDetail("backend", backend)
}
