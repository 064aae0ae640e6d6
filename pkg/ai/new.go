package ai

import (
	"github.com/arthur-debert/greetings/pkg/config"
	"github.com/arthur-debert/greetings/pkg/logging"
)

// New binds the generator selected by cfg.Backend. With "auto" the first
// backend that has what it needs wins: Azure (endpoint plus key or token),
// then OpenAI (key), then Ollama (host). Anything missing yields
// Unavailable with the reason.
func New(cfg config.Remote) Generator {
	logger := logging.GetLogger("ai")

	backend := cfg.Backend
	if backend == config.BackendAuto || backend == "" {
		backend = detectBackend(cfg)
	}
	logger.Debug().Str("configured", cfg.Backend).Str("backend", backend).Msg("Binding generator")

	switch backend {
	case config.BackendAzure:
		if cfg.Azure.Endpoint == "" {
			return Unavailable{Reason: "AZURE_OPENAI_ENDPOINT is not set"}
		}
		if cfg.Azure.APIKey == "" && cfg.Azure.ADToken == "" {
			return Unavailable{Reason: "neither AZURE_OPENAI_API_KEY nor AZURE_OPENAI_AD_TOKEN is set"}
		}
		return NewAzure(AzureOptions{
			Endpoint:   cfg.Azure.Endpoint,
			APIKey:     cfg.Azure.APIKey,
			ADToken:    cfg.Azure.ADToken,
			APIVersion: cfg.Azure.APIVersion,
			Model:      cfg.Model,
			Timeout:    cfg.Timeout,
		})
	case config.BackendOpenAI:
		if cfg.OpenAI.APIKey == "" {
			return Unavailable{Reason: "OPENAI_API_KEY is not set"}
		}
		return NewOpenAI(OpenAIOptions{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		})
	case config.BackendOllama:
		return NewOllama(cfg.Ollama.Host, cfg.Model, cfg.Timeout)
	case config.BackendNone:
		return Unavailable{Reason: "remote generation is disabled"}
	default:
		return Unavailable{Reason: "no generation backend configured (set AZURE_OPENAI_ENDPOINT, OPENAI_API_KEY or OLLAMA_HOST)"}
	}
}

func detectBackend(cfg config.Remote) string {
	switch {
	case cfg.Azure.Endpoint != "":
		return config.BackendAzure
	case cfg.OpenAI.APIKey != "":
		return config.BackendOpenAI
	case cfg.Ollama.Host != "":
		return config.BackendOllama
	}
	return ""
}
