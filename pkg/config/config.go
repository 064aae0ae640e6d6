package config

import (
	"time"

	"github.com/knadh/koanf/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/greetings/pkg/errors"
)

// Config is the effective greetings configuration
type Config struct {
	Output Output `koanf:"output"`
	Export Export `koanf:"export"`
	Remote Remote `koanf:"remote"`

	// k keeps the merged layers for Show
	k *koanf.Koanf
}

// Output controls how cards are shown
type Output struct {
	Format       string        `koanf:"format"`
	AnimateDelay time.Duration `koanf:"animate_delay"`
}

// Export controls where exported cards go
type Export struct {
	Dir string `koanf:"dir"`
}

// Remote configures the text generation backend
type Remote struct {
	Backend string        `koanf:"backend"`
	Model   string        `koanf:"model"`
	Timeout time.Duration `koanf:"timeout"`
	Azure   Azure         `koanf:"azure"`
	OpenAI  OpenAI        `koanf:"openai"`
	Ollama  Ollama        `koanf:"ollama"`
}

type Azure struct {
	Endpoint   string `koanf:"endpoint"`
	APIKey     string `koanf:"api_key"`
	ADToken    string `koanf:"ad_token"`
	APIVersion string `koanf:"api_version"`
}

type OpenAI struct {
	APIKey  string `koanf:"api_key"`
	BaseURL string `koanf:"base_url"`
}

type Ollama struct {
	Host string `koanf:"host"`
}

// Backend names accepted in remote.backend
const (
	BackendAuto   = "auto"
	BackendAzure  = "azure"
	BackendOpenAI = "openai"
	BackendOllama = "ollama"
	BackendNone   = "none"
)

// secretKeys are masked by Show
var secretKeys = []string{
	"remote.azure.api_key",
	"remote.azure.ad_token",
	"remote.openai.api_key",
}

const mask = "********"

// Show renders the effective configuration as TOML with secrets masked
func (c *Config) Show() (string, error) {
	if c.k == nil {
		return "", errors.New(errors.ErrInternal, "configuration was not loaded")
	}
	k := c.k.Copy()
	for _, key := range secretKeys {
		if k.String(key) != "" {
			if err := k.Set(key, mask); err != nil {
				return "", errors.Wrapf(err, errors.ErrInternal, "failed to mask %s", key)
			}
		}
	}
	out, err := toml.Marshal(k.Raw())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return string(out), nil
}
