package ai

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/arthur-debert/greetings/pkg/errors"
	"github.com/arthur-debert/greetings/pkg/logging"
)

// ChatGenerator calls an OpenAI-compatible chat completion endpoint
type ChatGenerator struct {
	client  *openai.Client
	model   string
	backend string
}

var _ Generator = (*ChatGenerator)(nil)

// OpenAIOptions configures NewOpenAI
type OpenAIOptions struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// NewOpenAI returns a generator for api.openai.com or any server speaking
// the same protocol at BaseURL
func NewOpenAI(opts OpenAIOptions) *ChatGenerator {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	}
	cfg.HTTPClient = &http.Client{Timeout: opts.Timeout}
	return &ChatGenerator{
		client:  openai.NewClientWithConfig(cfg),
		model:   opts.Model,
		backend: "openai",
	}
}

// AzureOptions configures NewAzure. Model is the deployment name.
type AzureOptions struct {
	Endpoint   string
	APIKey     string
	ADToken    string
	APIVersion string
	Model      string
	Timeout    time.Duration
}

// NewAzure returns a generator for an Azure OpenAI deployment. An API key
// is sent as api-key; without one the AD token is sent as a bearer token.
func NewAzure(opts AzureOptions) *ChatGenerator {
	cfg := openai.DefaultAzureConfig(opts.APIKey, opts.Endpoint)
	if opts.APIKey == "" {
		cfg = openai.DefaultAzureConfig(opts.ADToken, opts.Endpoint)
		cfg.APIType = openai.APITypeAzureAD
	}
	if opts.APIVersion != "" {
		cfg.APIVersion = opts.APIVersion
	}
	// deployment names are used verbatim
	cfg.AzureModelMapperFunc = func(model string) string { return model }
	cfg.HTTPClient = &http.Client{Timeout: opts.Timeout}
	return &ChatGenerator{
		client:  openai.NewClientWithConfig(cfg),
		model:   opts.Model,
		backend: "azure",
	}
}

// Generate sends the system and user instructions as a two-message chat
func (g *ChatGenerator) Generate(ctx context.Context, req Request) (string, error) {
	model := g.model
	if req.Model != "" {
		model = req.Model
	}
	logger := logging.GetLogger("ai." + g.backend)
	logger.Debug().Str("model", model).Msg("Requesting chat completion")

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		Temperature: 0.9,
	})
	if err != nil {
		return "", failed(err, g.backend)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New(errors.ErrGenerationFailed, "no choices returned").
			WithDetail("backend", g.backend)
	}

	content := resp.Choices[0].Message.Content
	logger.Debug().
		Str("model", resp.Model).
		Int("tokens", resp.Usage.TotalTokens).
		Int("length", len(content)).
		Msg("Chat completion received")
	return content, nil
}
