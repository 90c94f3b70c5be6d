package app

import (
	"os"
	"strings"
	"time"
)

// Config holds runtime configuration for the service.
type Config struct {
	// LLM collaborator. A blank APIKey disables the AI path entirely; every
	// operation then uses its deterministic fallback.
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// Timeout bounds each collaborator call.
	Timeout time.Duration

	// HTTP surface.
	HTTPAddr string
	// StoreTTL expires saved messages in the in-memory store; 0 keeps them
	// for the process lifetime.
	StoreTTL time.Duration

	Verbose bool
}

// AIEnabled reports whether an API credential is configured.
func (c Config) AIEnabled() bool {
	return strings.TrimSpace(c.LLMAPIKey) != ""
}

// FromEnv fills unset LLM fields from the environment, matching the
// reference deployment variables.
func (c Config) FromEnv() Config {
	if c.LLMAPIKey == "" {
		c.LLMAPIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.LLMBaseURL == "" {
		c.LLMBaseURL = os.Getenv("LLM_BASE_URL")
	}
	if c.LLMModel == "" {
		c.LLMModel = os.Getenv("LLM_MODEL")
	}
	return c
}
