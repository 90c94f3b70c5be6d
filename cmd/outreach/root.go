package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/outreachx/outreachx/internal/app"
)

var (
	configPath string
	verbose    bool

	llmBaseURL string
	llmModel   string
	llmKey     string
	llmTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "outreach",
	Short: "Generate personalized professional outreach messages",
	Long: `outreach turns a student profile and a target professional into a
personalized outreach message. With an API key it drafts via an LLM and
falls back to deterministic templates; without one the templates are
used directly, so the tool always produces a message.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zerolog.TimeFieldFormat = time.RFC3339
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&llmBaseURL, "llm.base", "", "OpenAI-compatible base URL")
	rootCmd.PersistentFlags().StringVar(&llmModel, "llm.model", "", "Model name override")
	rootCmd.PersistentFlags().StringVar(&llmKey, "llm.key", "", "API key (falls back to OPENAI_API_KEY)")
	rootCmd.PersistentFlags().DurationVar(&llmTimeout, "timeout", 0, "Per-call LLM timeout")
}

// loadConfig resolves configuration: environment values fill whatever an
// explicit config file leaves unset, and flags override both.
func loadConfig() (app.Config, error) {
	cfg := app.Config{}
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			return app.Config{}, err
		}
		cfg = fc.Apply(cfg)
	}
	cfg = cfg.FromEnv()
	if llmBaseURL != "" {
		cfg.LLMBaseURL = llmBaseURL
	}
	if llmModel != "" {
		cfg.LLMModel = llmModel
	}
	if llmKey != "" {
		cfg.LLMAPIKey = llmKey
	}
	if llmTimeout > 0 {
		cfg.Timeout = llmTimeout
	}
	cfg.Verbose = verbose
	return cfg, nil
}

func newApp() (*app.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return app.New(cfg), nil
}
