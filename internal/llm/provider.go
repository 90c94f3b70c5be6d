package llm

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the minimal interface the generation and refinement components
// need to call a chat model. It mirrors the CreateChatCompletion method of
// the OpenAI client so that any OpenAI-compatible backend can be adapted,
// and so tests can inject deterministic fakes for both success and failure.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIProvider adapts *openai.Client to the Client interface.
type OpenAIProvider struct {
	Inner *openai.Client
}

func (p *OpenAIProvider) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return p.Inner.CreateChatCompletion(ctx, request)
}

// OpenRouter keys carry a recognizable prefix and need a different base URL
// and a provider-prefixed model name.
const (
	openRouterKeyPrefix = "sk-or-"
	openRouterBaseURL   = "https://openrouter.ai/api/v1"

	defaultModel           = "gpt-4o-mini"
	defaultOpenRouterModel = "openai/gpt-4o-mini"
)

// New builds a Client for the given credentials, or nil when apiKey is blank
// (AI disabled; callers use the deterministic path). A non-empty baseURL
// overrides provider routing entirely.
func New(apiKey, baseURL string) Client {
	if strings.TrimSpace(apiKey) == "" {
		return nil
	}
	cfg := openai.DefaultConfig(apiKey)
	switch {
	case baseURL != "":
		cfg.BaseURL = baseURL
	case strings.HasPrefix(apiKey, openRouterKeyPrefix):
		cfg.BaseURL = openRouterBaseURL
	}
	return &OpenAIProvider{Inner: openai.NewClientWithConfig(cfg)}
}

// ModelFor returns the model name to request: the explicit choice when set,
// otherwise the provider default matching the key's routing.
func ModelFor(apiKey, model string) string {
	if strings.TrimSpace(model) != "" {
		return model
	}
	if strings.HasPrefix(apiKey, openRouterKeyPrefix) {
		return defaultOpenRouterModel
	}
	return defaultModel
}
