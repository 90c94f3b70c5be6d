// Package refine transforms an existing message. Each operation has an AI
// rewrite path and, where a deterministic rule exists, a rule-based fallback
// applied when the AI is unavailable or fails. An unrecognized operation is
// the identity transform: refinement never discards content.
package refine

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/outreachx/outreachx/internal/llm"
)

// Op is a canonical refinement operation. The user-facing labels and their
// legacy aliases map onto these via Lookup.
type Op int

const (
	OpUnknown Op = iota
	OpEmpathy
	OpShorten
	OpFormalize
	OpSpecifics
	// Friendly and Confident have no deterministic rule; they are honored on
	// the AI path only and fall back to the identity transform.
	OpFriendly
	OpConfident
)

const refineSystemMessage = "You are an expert at refining professional networking messages. Make targeted improvements while preserving the core message and intent."

var opAliases = map[string]Op{
	"more empathy":   OpEmpathy,
	"empathy":        OpEmpathy,
	"shorter":        OpShorten,
	"more formal":    OpFormalize,
	"formal":         OpFormalize,
	"add specifics":  OpSpecifics,
	"specific":       OpSpecifics,
	"more friendly":  OpFriendly,
	"friendly":       OpFriendly,
	"more confident": OpConfident,
	"confident":      OpConfident,
}

var opInstructions = map[Op]string{
	OpEmpathy:   "Make this message more empathetic and emotionally intelligent while maintaining professionalism. Show genuine care about the recipient's time.",
	OpShorten:   "Make this message much more concise (aim for 50-75 words) while keeping the key points and maintaining impact. Remove all filler words.",
	OpFormalize: "Make this message more formal and business-like. Use proper professional language suitable for executive-level communication.",
	OpSpecifics: "Add more specific details and make the message more personalized. Include concrete examples where appropriate.",
	OpFriendly:  "Make this message warmer and more approachable while maintaining professionalism.",
	OpConfident: "Make this message more confident and assertive while remaining respectful.",
}

// Lookup resolves a user-supplied refinement label, current or legacy,
// case-insensitively.
func Lookup(refinementType string) Op {
	return opAliases[strings.ToLower(strings.TrimSpace(refinementType))]
}

// Refiner applies refinement operations. A zero Refiner (no client) uses the
// rule-based path only.
type Refiner struct {
	Client  llm.Client
	Model   string
	Timeout time.Duration
}

// Enabled reports whether the AI rewrite path is configured.
func (rf *Refiner) Enabled() bool {
	return rf != nil && rf.Client != nil && strings.TrimSpace(rf.Model) != ""
}

// Refine returns a refined copy of message. The AI rewrite is attempted
// first when configured; any error or blank completion falls back to the
// deterministic rule for the operation, and operations without a rule return
// the message unchanged.
func (rf *Refiner) Refine(ctx context.Context, message, refinementType string) string {
	op := Lookup(refinementType)
	if rf.Enabled() {
		instruction, ok := opInstructions[op]
		if !ok {
			instruction = "Improve this message."
		}
		out, err := rf.rewrite(ctx, instruction, message)
		if err == nil && out != "" {
			return out
		}
		if err != nil {
			log.Debug().Err(err).Str("op", refinementType).Msg("AI refinement failed; using rule")
		}
	}
	return Apply(op, message)
}

func (rf *Refiner) rewrite(ctx context.Context, instruction, message string) (string, error) {
	timeout := rf.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := rf.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: rf.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: refineSystemMessage},
			{Role: openai.ChatMessageRoleUser, Content: instruction + "\n\nOriginal message:\n" + message + "\n\nReturn only the refined message, no explanations."},
		},
		Temperature: 0.7,
		MaxTokens:   500,
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
