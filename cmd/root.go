package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/showdown/internal/config"
	"github.com/abhisek/showdown/internal/logging"
	"github.com/abhisek/showdown/internal/sentiment"
)

var rootCmd = &cobra.Command{
	Use:   "showdown",
	Short: "Try to fool a sentiment classifier with sarcasm",
	Long: `Sarcasm Showdown is a terminal game. Type a sarcastic sentence, let the
classifier label it, then say whether you were being sarcastic. Fool the
AI for +10 points; get caught and lose 5.

The classifier is an offline lexicon by default. Set --backend llm and an
API key (ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY or
OPENROUTER_API_KEY) to play against a language model instead.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default is $XDG_CONFIG_HOME/showdown/config.yaml)")
	pf.String("backend", "", "Classifier backend: lexicon or llm (overrides SHOWDOWN_CLASSIFIER_BACKEND)")
	pf.String("log-file", "", `Log destination: a file path, "-" for stderr or "off"`)
	pf.String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.Flags().Bool("skip-splash", false, "Start on the menu instead of the title screen")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and builds the logger. An llm misconfiguration
// is not fatal; it surfaces later as a model load error.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Options{File: file, Flags: cmd.Flags()})
	if err != nil {
		return nil, nil, err
	}

	if err := cfg.Validate(); err != nil && !errors.Is(err, config.ErrLLMConfig) {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// loadClassifier builds the configured backend. The returned service is
// always usable; err is a *sentiment.ModelLoadError when loading failed.
func loadClassifier(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*sentiment.Service, error) {
	var loader sentiment.Loader
	switch cfg.Classifier.Backend {
	case config.BackendLLM:
		if err := cfg.LLM.Validate(); err != nil {
			loader = func(context.Context) (sentiment.Model, error) { return nil, err }
		} else {
			loader = sentiment.LLMLoader(cfg.LLM, cfg.Classifier.Probe, logger)
		}
	default:
		loader = sentiment.LexiconLoader(cfg.Classifier.LexiconPath)
	}

	svc, err := sentiment.Load(ctx, loader, logger)
	if err != nil {
		var loadErr *sentiment.ModelLoadError
		if errors.As(err, &loadErr) && loadErr.Model == "" {
			loadErr.Model = cfg.Classifier.Backend
		}
	}
	return svc, err
}

func warn(args ...any) {
	fmt.Fprintln(os.Stderr, args...)
}
