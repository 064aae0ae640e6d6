package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/arthur-debert/greetings/pkg/errors"
	"github.com/arthur-debert/greetings/pkg/logging"
)

// DefaultOllamaHost is used when OLLAMA_HOST is empty
const DefaultOllamaHost = "http://localhost:11434"

// OllamaGenerator calls the /api/chat endpoint of an Ollama host
type OllamaGenerator struct {
	Host  string
	Model string
	http  *http.Client
}

var _ Generator = (*OllamaGenerator)(nil)

func NewOllama(host, model string, timeout time.Duration) *OllamaGenerator {
	if host == "" {
		host = DefaultOllamaHost
	}
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}
	return &OllamaGenerator{
		Host:  strings.TrimRight(host, "/"),
		Model: model,
		http:  &http.Client{Timeout: timeout},
	}
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
	Error   string        `json:"error,omitempty"`
}

func (g *OllamaGenerator) Generate(ctx context.Context, req Request) (string, error) {
	model := g.Model
	if req.Model != "" {
		model = req.Model
	}
	logger := logging.GetLogger("ai.ollama")
	logger.Debug().
		Str("host", g.Host).
		Str("model", model).
		Msg("Requesting chat completion")

	payload, err := json.Marshal(ollamaChatRequest{
		Model: model,
		Messages: []ollamaMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
	})
	if err != nil {
		return "", failed(err, "ollama")
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.Host+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return "", failed(err, "ollama")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(httpReq)
	if err != nil {
		return "", failed(err, "ollama")
	}
	defer func() { _ = resp.Body.Close() }()

	var out ollamaChatResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&out)
	if resp.StatusCode/100 != 2 {
		msg := fmt.Sprintf("ollama status %d", resp.StatusCode)
		if decodeErr == nil && out.Error != "" {
			msg += ": " + out.Error
		}
		return "", errors.New(errors.ErrGenerationFailed, msg).
			WithDetail("backend", "ollama").
			WithDetail("status", resp.StatusCode)
	}
	if decodeErr != nil {
		return "", failed(decodeErr, "ollama")
	}
	return out.Message.Content, nil
}
