// Package generate orchestrates message creation. The AI path is best
// effort: any transport error, timeout, or blank completion falls back
// silently to the deterministic template path, so a validated request always
// yields a message.
package generate

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/outreachx/outreachx/internal/llm"
	"github.com/outreachx/outreachx/internal/profile"
	"github.com/outreachx/outreachx/internal/template"
)

// DefaultTimeout bounds a single collaborator call. A timeout is an ordinary
// AI failure and triggers the fallback, never an error to the caller.
const DefaultTimeout = 15 * time.Second

const (
	generateMaxTokens = 500
	followUpMaxTokens = 300
	temperature       = 0.7
)

// Generator chooses between the AI-backed and template-backed paths.
// A zero Generator (no client) is valid and always uses templates.
type Generator struct {
	Client  llm.Client
	Model   string
	Timeout time.Duration
}

// Enabled reports whether the AI path is configured.
func (g *Generator) Enabled() bool {
	return g != nil && g.Client != nil && strings.TrimSpace(g.Model) != ""
}

// Generate produces the initial outreach message for an already validated
// request.
func (g *Generator) Generate(ctx context.Context, r profile.Request) profile.Message {
	if g.Enabled() {
		text, err := g.complete(ctx, generateSystemMessage, buildPrompt(r), generateMaxTokens)
		if err == nil && text != "" {
			return newMessage(text, profile.TypeAI)
		}
		if err != nil {
			log.Debug().Err(err).Msg("AI generation failed; using template")
		}
	}
	return newMessage(template.Render(r), profile.TypeTemplate)
}

// FollowUp produces a short follow-up referencing a previously sent message.
func (g *Generator) FollowUp(ctx context.Context, r profile.Request, previous string) profile.Message {
	if g.Enabled() {
		text, err := g.complete(ctx, followUpSystemMessage, buildFollowUpPrompt(r, previous), followUpMaxTokens)
		if err == nil && text != "" {
			return newMessage(text, profile.TypeAIFollowUp)
		}
		if err != nil {
			log.Debug().Err(err).Msg("AI follow-up failed; using fixed text")
		}
	}
	return newMessage(fallbackFollowUp(r), profile.TypeTemplateFollowUp)
}

// complete performs one chat completion under the configured timeout and
// returns the trimmed content, or "" when the model returned nothing usable.
func (g *Generator) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	timeout := g.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := g.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
		N:           1,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// fallbackFollowUp is the deterministic follow-up: greeting, reference to
// the prior outreach, reiterated interest, acknowledgment of the recipient's
// time, sign-off.
func fallbackFollowUp(r profile.Request) string {
	greeting := strings.TrimSpace(r.Target.Name)
	if greeting == "" {
		greeting = "there"
	}
	var b strings.Builder
	b.WriteString("Hi ")
	b.WriteString(greeting)
	b.WriteString(",\n\n")
	b.WriteString("I wanted to follow up on my previous message. I remain very interested in connecting and learning more about opportunities at ")
	b.WriteString(r.Target.Company)
	b.WriteString(".\n\n")
	b.WriteString("I completely understand you're busy, and I appreciate any time you might have. Even a brief 10-minute conversation would be incredibly valuable to me.\n\n")
	b.WriteString("Thank you for your consideration.\n\n")
	b.WriteString("Best regards,\n")
	b.WriteString(r.Student.Name)
	return b.String()
}

func newMessage(text, generationType string) profile.Message {
	return profile.Message{
		ID:             uuid.NewString(),
		Text:           text,
		GenerationType: generationType,
	}
}
