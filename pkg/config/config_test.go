package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/greetings/pkg/errors"
	"github.com/arthur-debert/greetings/pkg/filesystem"
)

// isolate clears every variable Load reads and returns options pointing at
// an empty config file and a missing .env inside a temp dir
func isolate(t *testing.T) (Options, string) {
	t.Helper()
	for name := range envAliases {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, EnvPrefix) {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}

	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgFile, nil, 0o644))
	return Options{ConfigFile: cfgFile, DotEnvFile: filepath.Join(dir, ".env")}, dir
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts, _ := isolate(t)
		cfg, err := Load(opts)
		require.NoError(t, err)

		assert.Equal(t, "auto", cfg.Output.Format)
		assert.Equal(t, 120*time.Millisecond, cfg.Output.AnimateDelay)
		assert.Equal(t, "exports", cfg.Export.Dir)
		assert.Equal(t, BackendAuto, cfg.Remote.Backend)
		assert.Equal(t, "gpt-4.1-mini", cfg.Remote.Model)
		assert.Equal(t, 60*time.Second, cfg.Remote.Timeout)
		assert.Equal(t, "2024-12-01-preview", cfg.Remote.Azure.APIVersion)
		assert.Empty(t, cfg.Remote.Azure.Endpoint)
	})

	t.Run("config_file_overrides_defaults", func(t *testing.T) {
		opts, _ := isolate(t)
		require.NoError(t, os.WriteFile(opts.ConfigFile, []byte(`
[remote]
backend = "ollama"
timeout = "5s"

[remote.ollama]
host = "http://gpu-box:11434"
`), 0o644))

		cfg, err := Load(opts)
		require.NoError(t, err)
		assert.Equal(t, BackendOllama, cfg.Remote.Backend)
		assert.Equal(t, 5*time.Second, cfg.Remote.Timeout)
		assert.Equal(t, "http://gpu-box:11434", cfg.Remote.Ollama.Host)
		assert.Equal(t, "gpt-4.1-mini", cfg.Remote.Model)
	})

	t.Run("dotenv_then_environment", func(t *testing.T) {
		opts, _ := isolate(t)
		require.NoError(t, os.WriteFile(opts.DotEnvFile, []byte(
			"AZURE_OPENAI_ENDPOINT=https://example.openai.azure.com\n"+
				"AI_MODEL=from-dotenv\n"+
				"UNRELATED=1\n"), 0o644))
		t.Setenv("AI_MODEL", "from-env")

		cfg, err := Load(opts)
		require.NoError(t, err)
		assert.Equal(t, "https://example.openai.azure.com", cfg.Remote.Azure.Endpoint)
		assert.Equal(t, "from-env", cfg.Remote.Model)
	})

	t.Run("prefixed_environment", func(t *testing.T) {
		opts, _ := isolate(t)
		t.Setenv("GREETINGS_REMOTE__BACKEND", "OpenAI")
		t.Setenv("GREETINGS_REMOTE__OPENAI__API_KEY", "sk-test")
		t.Setenv("GREETINGS_EXPORT__DIR", "/tmp/cards")
		// a section cannot be overwritten by a scalar
		t.Setenv("GREETINGS_REMOTE", "oops")

		cfg, err := Load(opts)
		require.NoError(t, err)
		assert.Equal(t, BackendOpenAI, cfg.Remote.Backend)
		assert.Equal(t, "sk-test", cfg.Remote.OpenAI.APIKey)
		assert.Equal(t, "/tmp/cards", cfg.Export.Dir)
	})

	t.Run("missing_explicit_file", func(t *testing.T) {
		opts, dir := isolate(t)
		opts.ConfigFile = filepath.Join(dir, "nope.toml")

		_, err := Load(opts)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("invalid_toml", func(t *testing.T) {
		opts, _ := isolate(t)
		require.NoError(t, os.WriteFile(opts.ConfigFile, []byte("[remote\nbackend ="), 0o644))

		_, err := Load(opts)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("unknown_backend", func(t *testing.T) {
		opts, _ := isolate(t)
		t.Setenv("GREETINGS_REMOTE__BACKEND", "carrier-pigeon")

		_, err := Load(opts)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "remote.azure.endpoint", envKey("AZURE_OPENAI_ENDPOINT"))
	assert.Equal(t, "remote.model", envKey("AI_MODEL"))
	assert.Equal(t, "remote.azure.api_key", envKey("GREETINGS_REMOTE__AZURE__API_KEY"))
	assert.Equal(t, "output.format", envKey("GREETINGS_OUTPUT__FORMAT"))
	assert.Equal(t, "", envKey("HOME"))
}

func TestShowMasksSecrets(t *testing.T) {
	opts, _ := isolate(t)
	t.Setenv("AZURE_OPENAI_API_KEY", "super-secret")

	cfg, err := Load(opts)
	require.NoError(t, err)

	out, err := cfg.Show()
	require.NoError(t, err)
	assert.NotContains(t, out, "super-secret")
	assert.Contains(t, out, mask)
	assert.Contains(t, out, "gpt-4.1-mini")
	assert.Contains(t, out, "[remote.azure]")

	// masking works on a copy
	assert.Equal(t, "super-secret", cfg.Remote.Azure.APIKey)
}

func TestShowWithoutLoad(t *testing.T) {
	_, err := (&Config{}).Show()
	assert.Error(t, err)
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, "[remote]")
	assert.Contains(t, content, "[remote.azure]")
	assert.Contains(t, content, `# backend = "auto"`)
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
			continue
		}
		t.Errorf("uncommented value line: %q", line)
	}
}

func TestWriteUserConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, WriteUserConfig(path, false))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, GenerateConfigContent(), string(data))

	err = WriteUserConfig(path, false)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))

	assert.NoError(t, WriteUserConfig(path, true))
}

func TestWriteUserConfigFS(t *testing.T) {
	fsys := filesystem.NewMemory()

	require.NoError(t, WriteUserConfigFS(fsys, "/home/u/.config/greetings/config.toml", false))
	data, err := fsys.ReadFile("/home/u/.config/greetings/config.toml")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "#"))

	err = WriteUserConfigFS(fsys, "/home/u/.config/greetings/config.toml", false)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
}
