package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/greetings/pkg/errors"
	"github.com/arthur-debert/greetings/pkg/logging"
)

const (
	// EnvPrefix namespaces environment overrides: GREETINGS_REMOTE__MODEL
	EnvPrefix = "GREETINGS_"

	// envNesting separates sections in prefixed variable names
	envNesting = "__"

	appName        = "greetings"
	configFileName = "config.toml"
)

// envAliases maps the conventional provider variables onto config keys
var envAliases = map[string]string{
	"AZURE_OPENAI_ENDPOINT": "remote.azure.endpoint",
	"AZURE_OPENAI_API_KEY":  "remote.azure.api_key",
	"AZURE_OPENAI_AD_TOKEN": "remote.azure.ad_token",
	"API_VERSION":           "remote.azure.api_version",
	"AI_MODEL":              "remote.model",
	"OPENAI_API_KEY":        "remote.openai.api_key",
	"OPENAI_BASE_URL":       "remote.openai.base_url",
	"OLLAMA_HOST":           "remote.ollama.host",
}

// Options selects the files Load reads. Empty fields use the defaults.
type Options struct {
	// ConfigFile replaces the user config path. It must exist when set.
	ConfigFile string

	// DotEnvFile is read if it exists. Defaults to .env in the working
	// directory.
	DotEnvFile string
}

// UserConfigPath is where `config init` writes and Load looks by default
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, configFileName)
}

// Load builds the effective configuration
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	known := k.Copy()
	keyFor := func(name string) string {
		key := envKey(name)
		if key == "" || !known.Exists(key) {
			return ""
		}
		// sections cannot be replaced by a scalar
		if _, section := known.Get(key).(map[string]interface{}); section {
			return ""
		}
		return key
	}

	// 2. User config file
	path, explicit := opts.ConfigFile, opts.ConfigFile != ""
	if !explicit {
		path = UserConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path).
			WithDetail("path", path)
	}

	// 3. .env file
	dotEnv := opts.DotEnvFile
	if dotEnv == "" {
		dotEnv = ".env"
	}
	if _, err := os.Stat(dotEnv); err == nil {
		vars, err := godotenv.Read(dotEnv)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to read %s", dotEnv).
				WithDetail("path", dotEnv)
		}
		values := make(map[string]interface{}, len(vars))
		for name, value := range vars {
			if key := keyFor(name); key != "" {
				values[key] = value
			}
		}
		if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load .env values")
		}
		logger.Debug().Str("path", dotEnv).Int("keys", len(values)).Msg("Loaded .env file")
	}

	// 4. Environment
	if err := k.Load(env.Provider("", ".", keyFor), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Unmarshal
	cfg := &Config{k: k}
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := postProcess(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps an environment variable name to a config key, or "" if the
// variable is not a greetings setting
func envKey(name string) string {
	if key, ok := envAliases[name]; ok {
		return key
	}
	if !strings.HasPrefix(name, EnvPrefix) {
		return ""
	}
	rest := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	return strings.ReplaceAll(rest, envNesting, ".")
}

func postProcess(cfg *Config) error {
	cfg.Remote.Backend = strings.ToLower(strings.TrimSpace(cfg.Remote.Backend))
	switch cfg.Remote.Backend {
	case "":
		cfg.Remote.Backend = BackendAuto
	case BackendAuto, BackendAzure, BackendOpenAI, BackendOllama, BackendNone:
	default:
		return errors.Newf(errors.ErrConfigParse, "unknown remote backend %q", cfg.Remote.Backend).
			WithDetail("backend", cfg.Remote.Backend)
	}
	if cfg.Remote.Timeout <= 0 {
		return errors.Newf(errors.ErrConfigParse, "remote timeout must be positive, got %s", cfg.Remote.Timeout)
	}
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	return nil
}
