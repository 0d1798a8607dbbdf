// Package config loads application settings from defaults, a config file,
// SHOWDOWN_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/showdown/internal/llm"
)

const (
	appName   = "showdown"
	envPrefix = "SHOWDOWN"

	BackendLexicon = "lexicon"
	BackendLLM     = "llm"
)

type Config struct {
	Classifier ClassifierConfig `mapstructure:"classifier"`
	LLM        llm.Config       `mapstructure:"llm"`
	Log        LogConfig        `mapstructure:"log"`
}

type ClassifierConfig struct {
	// Backend is "lexicon" (offline) or "llm".
	Backend string `mapstructure:"backend"`

	// LexiconPath replaces the built-in lexicon when set.
	LexiconPath string `mapstructure:"lexicon_path"`

	// Probe sends one classification at startup so a bad LLM setup is
	// reported as a load error instead of on every round.
	Probe bool `mapstructure:"probe"`
}

type LogConfig struct {
	// File is a path, "-" for stderr or "off".
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// ErrLLMConfig marks a Validate failure in the llm section. The game can
// still start; the classifier reports it as a load error.
var ErrLLMConfig = errors.New("llm backend misconfigured")

// Options controls where Load looks.
type Options struct {
	// File is an explicit config file. When empty the default location is
	// tried and a missing file is not an error.
	File string

	// Flags, when set, override every other source for the flags bound
	// in flagKeys.
	Flags *pflag.FlagSet
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"backend":   "classifier.backend",
	"log-file":  "log.file",
	"log-level": "log.level",
}

// Load builds the configuration. When the llm backend is selected without
// a provider, the usual provider API key variables are probed.
func Load(opts Options) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", opts.File, err)
		}
	} else if dir, err := DefaultDir(); err == nil {
		v.SetConfigName("config")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			f := opts.Flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Classifier.Backend = strings.ToLower(strings.TrimSpace(cfg.Classifier.Backend))
	if cfg.Classifier.Backend == BackendLLM && cfg.LLM.Provider == "" {
		if discovered, ok := llm.DiscoverConfig(cfg.LLM); ok {
			cfg.LLM = discovered
		}
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	l := llm.DefaultConfig()

	v.SetDefault("classifier.backend", BackendLexicon)
	v.SetDefault("classifier.lexicon_path", "")
	v.SetDefault("classifier.probe", true)

	// Every key needs a default so AutomaticEnv can see it on Unmarshal.
	v.SetDefault("llm.provider", l.Provider)
	v.SetDefault("llm.timeout", l.Timeout)
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", l.Anthropic.Model)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", l.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", l.Gemini.Model)
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", l.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", "")
	v.SetDefault("llm.retry.max_attempts", l.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", l.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", l.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", l.Retry.Multiplier)

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// Validate checks the settings that matter for the selected backend.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	switch c.Classifier.Backend {
	case BackendLexicon:
	case BackendLLM:
		if err := c.LLM.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrLLMConfig, err)
		}
	default:
		return fmt.Errorf("unknown classifier backend %q (want %s or %s)",
			c.Classifier.Backend, BackendLexicon, BackendLLM)
	}
	return nil
}

// DefaultDir is $XDG_CONFIG_HOME/showdown or its platform equivalent.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName), nil
}
