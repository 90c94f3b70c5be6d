// Package app wires the engine components behind a small facade consumed by
// the CLI and the HTTP surface. All operations are call-scoped: the facade
// holds configuration and the LLM client, never request state.
package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	yaml "gopkg.in/yaml.v3"

	"github.com/outreachx/outreachx/internal/detect"
	"github.com/outreachx/outreachx/internal/generate"
	"github.com/outreachx/outreachx/internal/llm"
	"github.com/outreachx/outreachx/internal/profile"
	"github.com/outreachx/outreachx/internal/refine"
	"github.com/outreachx/outreachx/internal/validate"
)

type App struct {
	cfg Config
	gen *generate.Generator
	ref *refine.Refiner
}

// New builds the facade. When no credential is configured the generator and
// refiner run in deterministic mode; that is a supported configuration, not
// an error.
func New(cfg Config) *App {
	client := llm.New(cfg.LLMAPIKey, cfg.LLMBaseURL)
	model := ""
	if client != nil {
		model = llm.ModelFor(cfg.LLMAPIKey, cfg.LLMModel)
		log.Debug().Str("model", model).Msg("AI generation enabled")
	} else {
		log.Debug().Msg("no API key configured; template generation only")
	}
	return &App{
		cfg: cfg,
		gen: &generate.Generator{Client: client, Model: model, Timeout: cfg.Timeout},
		ref: &refine.Refiner{Client: client, Model: model, Timeout: cfg.Timeout},
	}
}

// AIEnabled reports whether the AI path is configured.
func (a *App) AIEnabled() bool { return a.gen.Enabled() }

// GenerateResult is the caller-facing outcome of Generate. Errors are
// populated, and the message omitted, when validation fails.
type GenerateResult struct {
	Success        bool     `json:"success"`
	Message        string   `json:"message,omitempty"`
	MessageID      string   `json:"messageId,omitempty"`
	GenerationType string   `json:"generationType,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
	Errors         []string `json:"errors,omitempty"`
}

// FollowUpResult is the outcome of GenerateFollowUp. Follow-up has no
// validation stage; it always succeeds.
type FollowUpResult struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	MessageID      string `json:"messageId"`
	GenerationType string `json:"generationType"`
}

// RefineResult is the outcome of Refine. Message is never blank: at worst
// it is the original input.
type RefineResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ValidationResult mirrors the standalone validation utility for stepwise
// form checks.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Generate validates the request and produces the initial outreach message.
// A request that fails validation never reaches generation. A request that
// passes always yields a message, degrading silently from AI to template,
// plus zero or more advisory warnings.
func (a *App) Generate(ctx context.Context, req profile.Request) GenerateResult {
	req = profile.Normalize(req)
	if errs := validate.Request(req); len(errs) > 0 {
		return GenerateResult{Errors: errs}
	}
	warnings := detect.Warnings(req.Student)
	msg := a.gen.Generate(ctx, req)
	msg.Warnings = warnings
	return GenerateResult{
		Success:        true,
		Message:        msg.Text,
		MessageID:      msg.ID,
		GenerationType: msg.GenerationType,
		Warnings:       warnings,
	}
}

// GenerateMessage is Generate for callers that want the message value
// itself, e.g. to save it in a store. The boolean is false when validation
// failed and errs carries the violations.
func (a *App) GenerateMessage(ctx context.Context, req profile.Request) (profile.Message, []string, bool) {
	req = profile.Normalize(req)
	if errs := validate.Request(req); len(errs) > 0 {
		return profile.Message{}, errs, false
	}
	msg := a.gen.Generate(ctx, req)
	msg.Warnings = detect.Warnings(req.Student)
	return msg, nil, true
}

// GenerateFollowUp produces a follow-up to a previously sent message.
func (a *App) GenerateFollowUp(ctx context.Context, req profile.Request, previous string) FollowUpResult {
	msg := a.gen.FollowUp(ctx, profile.Normalize(req), previous)
	return FollowUpResult{
		Success:        true,
		Message:        msg.Text,
		MessageID:      msg.ID,
		GenerationType: msg.GenerationType,
	}
}

// Refine applies a refinement operation to an existing message. It must
// never hard-fail on a collaborator error and never return empty text; the
// original message is the floor.
func (a *App) Refine(ctx context.Context, message, refinementType string, req profile.Request) RefineResult {
	_ = req // profile context is reserved for future operation rules
	out := a.ref.Refine(ctx, message, refinementType)
	if strings.TrimSpace(out) == "" {
		out = message
	}
	return RefineResult{Success: true, Message: out}
}

// Validate exposes form validation as a pure utility for progressive UI
// checks.
func (a *App) Validate(req profile.Request) ValidationResult {
	errs := validate.Request(profile.Normalize(req))
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// DetectWarnings exposes the advisory scan as a pure utility.
func (a *App) DetectWarnings(p profile.StudentProfile) []string {
	return detect.Warnings(p)
}

// LoadRequestFile reads an outreach request from a YAML (or JSON, which
// YAML subsumes) file, for the CLI surface.
func LoadRequestFile(path string) (profile.Request, error) {
	var req profile.Request
	b, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("read request: %w", err)
	}
	if err := yaml.Unmarshal(b, &req); err != nil {
		return req, fmt.Errorf("parse request: %w", err)
	}
	return req, nil
}
