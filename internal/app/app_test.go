package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/outreachx/outreachx/internal/generate"
	"github.com/outreachx/outreachx/internal/profile"
	"github.com/outreachx/outreachx/internal/refine"
)

type stubClient struct {
	content string
	err     error
}

func (c *stubClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if c.err != nil {
		return openai.ChatCompletionResponse{}, c.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: c.content},
		}},
	}, nil
}

func validRequest() profile.Request {
	return profile.Request{
		Student: profile.StudentProfile{
			Name:       "Ava Chen",
			Email:      "ava@example.com",
			University: "MIT",
			Major:      "Computer Science",
			Skills:     "Go, distributed systems",
			Experience: "Two summers building backend services",
		},
		Target: profile.TargetProfessional{
			Name:     "Jordan Lee",
			Title:    "Engineering Manager",
			Company:  "Acme Corp",
			Industry: "Software",
		},
		Intent: "Mentorship",
		Tone:   "Professional",
		Length: "Standard",
	}
}

func TestGenerate_InvalidRequestReturnsErrorsOnly(t *testing.T) {
	a := New(Config{})
	res := a.Generate(context.Background(), profile.Request{})
	if res.Success {
		t.Fatalf("expected failure for empty request")
	}
	if len(res.Errors) != 9 {
		t.Fatalf("expected 9 errors, got %d: %v", len(res.Errors), res.Errors)
	}
	if res.Message != "" || res.MessageID != "" {
		t.Fatalf("no message should be produced on validation failure: %+v", res)
	}
}

func TestGenerate_TemplatePathWithoutCredential(t *testing.T) {
	a := New(Config{})
	res := a.Generate(context.Background(), validRequest())
	if !res.Success {
		t.Fatalf("expected success, got errors %v", res.Errors)
	}
	if res.GenerationType != profile.TypeTemplate {
		t.Fatalf("expected template generation, got %q", res.GenerationType)
	}
	if !strings.Contains(res.Message, "Ava Chen") {
		t.Fatalf("message missing sender:\n%s", res.Message)
	}
	if res.MessageID == "" {
		t.Fatalf("expected a message id")
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("credible profile should produce no warnings, got %v", res.Warnings)
	}
}

func TestGenerate_EndToEndTemplateScenario(t *testing.T) {
	a := New(Config{})
	req := profile.Request{
		Student: profile.StudentProfile{
			Name:       "Ava Chen",
			Email:      "ava@x.edu",
			University: "MIT",
			Major:      "CS",
			Skills:     "Python, ML",
			Experience: "Built a recommender system",
		},
		Target: profile.TargetProfessional{Company: "Acme", Industry: "Technology"},
		Intent: "networking",
		Tone:   "professional",
		Length: "concise",
	}

	if v := a.Validate(req); !v.Valid {
		t.Fatalf("expected valid request, got %v", v.Errors)
	}
	res := a.Generate(context.Background(), req)
	if !res.Success || res.GenerationType != profile.TypeTemplate {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !strings.HasPrefix(res.Message, "Dear Acme Team,") {
		t.Fatalf("expected team salutation, got:\n%s", res.Message)
	}
	if !strings.HasSuffix(res.Message, "Ava Chen") {
		t.Fatalf("expected sender signature last, got:\n%s", res.Message)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", res.Warnings)
	}
}

func TestGenerate_WarningsAttachedButNonBlocking(t *testing.T) {
	a := New(Config{})
	req := validRequest()
	req.Student.Name = "John Doe"
	res := a.Generate(context.Background(), req)
	if !res.Success {
		t.Fatalf("warnings must not block generation: %v", res.Errors)
	}
	if len(res.Warnings) != 1 || res.Warnings[0] != "Profile name appears to be a placeholder" {
		t.Fatalf("expected placeholder warning, got %v", res.Warnings)
	}

	req = validRequest()
	req.Student.Skills = "ab"
	res = a.Generate(context.Background(), req)
	if !res.Success {
		t.Fatalf("short skills must not block generation: %v", res.Errors)
	}
	if len(res.Warnings) != 1 || res.Warnings[0] != "Skills section seems incomplete" {
		t.Fatalf("expected skills warning, got %v", res.Warnings)
	}
}

func TestGenerate_AIPath(t *testing.T) {
	a := New(Config{})
	a.gen = &generate.Generator{Client: &stubClient{content: "model draft"}, Model: "test-model"}

	res := a.Generate(context.Background(), validRequest())
	if res.GenerationType != profile.TypeAI || res.Message != "model draft" {
		t.Fatalf("expected AI result, got %+v", res)
	}
}

func TestGenerate_NormalizesBeforeValidating(t *testing.T) {
	a := New(Config{})
	req := validRequest()
	req.Student.Email = "  ava@example.com  "
	req.Intent = "  MENTORSHIP  "
	res := a.Generate(context.Background(), req)
	if !res.Success {
		t.Fatalf("normalized request should validate, got %v", res.Errors)
	}
}

func TestGenerateMessage_ReturnsStorableValue(t *testing.T) {
	a := New(Config{})
	msg, errs, ok := a.GenerateMessage(context.Background(), validRequest())
	if !ok || len(errs) != 0 {
		t.Fatalf("expected success, got %v", errs)
	}
	if msg.ID == "" || msg.Text == "" {
		t.Fatalf("incomplete message: %+v", msg)
	}
}

func TestGenerateFollowUp_AlwaysSucceeds(t *testing.T) {
	a := New(Config{})
	res := a.GenerateFollowUp(context.Background(), validRequest(), "earlier outreach")
	if !res.Success {
		t.Fatalf("follow-up must not fail")
	}
	if res.GenerationType != profile.TypeTemplateFollowUp {
		t.Fatalf("expected template follow-up, got %q", res.GenerationType)
	}
	if !strings.Contains(res.Message, "Acme Corp") {
		t.Fatalf("expected company reference:\n%s", res.Message)
	}
}

func TestRefine_NeverReturnsEmpty(t *testing.T) {
	a := New(Config{})
	a.ref = &refine.Refiner{Client: &stubClient{err: errors.New("down")}, Model: "test-model"}

	original := "Hi Jordan, quick note!"
	res := a.Refine(context.Background(), original, "made-up-op", profile.Request{})
	if !res.Success {
		t.Fatalf("refine must not fail")
	}
	if res.Message != original {
		t.Fatalf("unknown op with failed AI must return the original, got %q", res.Message)
	}
}

func TestRefine_RuleFallback(t *testing.T) {
	a := New(Config{})
	res := a.Refine(context.Background(), "One. Two. Three. Four. Five.", "shorter", profile.Request{})
	if res.Message != "One. Two. Three." {
		t.Fatalf("expected rule-based shorten, got %q", res.Message)
	}
}

func TestValidate_Facade(t *testing.T) {
	a := New(Config{})
	res := a.Validate(validRequest())
	if !res.Valid || len(res.Errors) != 0 {
		t.Fatalf("expected valid, got %v", res.Errors)
	}

	res = a.Validate(profile.Request{})
	if res.Valid || len(res.Errors) != 9 {
		t.Fatalf("expected 9 errors, got %v", res.Errors)
	}
}

func TestLoadRequestFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request.yaml")
	data := `
studentProfile:
  name: Ava Chen
  email: ava@example.com
  university: MIT
  major: Computer Science
  skills: Go
  experience: Backend services
targetProfessional:
  company: Acme Corp
  industry: Software
intent: mentorship
tone: friendly
length: concise
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	req, err := LoadRequestFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if req.Student.Name != "Ava Chen" || req.Target.Company != "Acme Corp" || req.Intent != "mentorship" {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestLoadRequestFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request.json")
	data := `{"studentProfile":{"name":"Ava Chen"},"targetProfessional":{"company":"Acme Corp"},"intent":"advice"}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	req, err := LoadRequestFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if req.Student.Name != "Ava Chen" || req.Intent != "advice" {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestLoadRequestFile_Missing(t *testing.T) {
	if _, err := LoadRequestFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
