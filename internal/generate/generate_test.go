package generate

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/outreachx/outreachx/internal/profile"
	"github.com/outreachx/outreachx/internal/template"
)

type stubClient struct {
	lastReq openai.ChatCompletionRequest
	content string
	err     error
}

func (c *stubClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	c.lastReq = req
	if c.err != nil {
		return openai.ChatCompletionResponse{}, c.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: c.content},
		}},
	}, nil
}

func sampleRequest() profile.Request {
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
		Intent: "mentorship",
		Tone:   "professional",
		Length: "standard",
	}
}

func TestGenerate_UsesAIWhenAvailable(t *testing.T) {
	sc := &stubClient{content: "  Dear Jordan, draft from the model.  "}
	g := &Generator{Client: sc, Model: "test-model"}

	msg := g.Generate(context.Background(), sampleRequest())
	if msg.GenerationType != profile.TypeAI {
		t.Fatalf("expected %q, got %q", profile.TypeAI, msg.GenerationType)
	}
	if msg.Text != "Dear Jordan, draft from the model." {
		t.Fatalf("expected trimmed model output, got %q", msg.Text)
	}
	if msg.ID == "" {
		t.Fatalf("expected a message id")
	}
	if sc.lastReq.Model != "test-model" {
		t.Fatalf("model not forwarded: %q", sc.lastReq.Model)
	}
	if len(sc.lastReq.Messages) != 2 || sc.lastReq.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Fatalf("expected system+user messages, got %+v", sc.lastReq.Messages)
	}
	if !strings.Contains(sc.lastReq.Messages[1].Content, "Jordan Lee") {
		t.Fatalf("prompt missing recipient: %s", sc.lastReq.Messages[1].Content)
	}
}

func TestGenerate_FallsBackOnError(t *testing.T) {
	r := sampleRequest()
	g := &Generator{Client: &stubClient{err: errors.New("boom")}, Model: "test-model"}

	msg := g.Generate(context.Background(), r)
	if msg.GenerationType != profile.TypeTemplate {
		t.Fatalf("expected template fallback, got %q", msg.GenerationType)
	}
	if msg.Text != template.Render(r) {
		t.Fatalf("fallback should match the template output")
	}
}

func TestGenerate_FallsBackOnBlankCompletion(t *testing.T) {
	g := &Generator{Client: &stubClient{content: "   "}, Model: "test-model"}
	msg := g.Generate(context.Background(), sampleRequest())
	if msg.GenerationType != profile.TypeTemplate {
		t.Fatalf("expected template fallback for blank completion, got %q", msg.GenerationType)
	}
	if msg.Text == "" {
		t.Fatalf("fallback message must not be empty")
	}
}

type blockingClient struct{}

func (blockingClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	<-ctx.Done()
	return openai.ChatCompletionResponse{}, ctx.Err()
}

func TestGenerate_TimeoutFallsBack(t *testing.T) {
	g := &Generator{Client: blockingClient{}, Model: "test-model", Timeout: 10 * time.Millisecond}
	msg := g.Generate(context.Background(), sampleRequest())
	if msg.GenerationType != profile.TypeTemplate {
		t.Fatalf("expected template fallback on timeout, got %q", msg.GenerationType)
	}
	if msg.Text == "" {
		t.Fatalf("fallback message must not be empty")
	}
}

func TestGenerate_ZeroGeneratorUsesTemplates(t *testing.T) {
	var g Generator
	msg := g.Generate(context.Background(), sampleRequest())
	if msg.GenerationType != profile.TypeTemplate {
		t.Fatalf("expected template path, got %q", msg.GenerationType)
	}
}

func TestFollowUp_UsesAIWhenAvailable(t *testing.T) {
	sc := &stubClient{content: "Following up briefly."}
	g := &Generator{Client: sc, Model: "test-model"}

	msg := g.FollowUp(context.Background(), sampleRequest(), "original outreach text")
	if msg.GenerationType != profile.TypeAIFollowUp {
		t.Fatalf("expected %q, got %q", profile.TypeAIFollowUp, msg.GenerationType)
	}
	if !strings.Contains(sc.lastReq.Messages[1].Content, "original outreach text") {
		t.Fatalf("prompt missing previous message: %s", sc.lastReq.Messages[1].Content)
	}
	if sc.lastReq.MaxTokens != followUpMaxTokens {
		t.Fatalf("expected follow-up token cap %d, got %d", followUpMaxTokens, sc.lastReq.MaxTokens)
	}
}

func TestFollowUp_FallbackText(t *testing.T) {
	g := &Generator{Client: &stubClient{err: errors.New("down")}, Model: "test-model"}
	r := sampleRequest()

	msg := g.FollowUp(context.Background(), r, "earlier message")
	if msg.GenerationType != profile.TypeTemplateFollowUp {
		t.Fatalf("expected %q, got %q", profile.TypeTemplateFollowUp, msg.GenerationType)
	}
	if !strings.HasPrefix(msg.Text, "Hi Jordan Lee,") {
		t.Fatalf("expected greeting with recipient name, got:\n%s", msg.Text)
	}
	if !strings.Contains(msg.Text, "Acme Corp") {
		t.Fatalf("expected company reference, got:\n%s", msg.Text)
	}
	if !strings.HasSuffix(msg.Text, "Best regards,\nAva Chen") {
		t.Fatalf("expected signature, got:\n%s", msg.Text)
	}
}

func TestFollowUp_FallbackGreetingWithoutName(t *testing.T) {
	r := sampleRequest()
	r.Target.Name = ""
	var g Generator

	msg := g.FollowUp(context.Background(), r, "earlier message")
	if !strings.HasPrefix(msg.Text, "Hi there,") {
		t.Fatalf("expected neutral greeting, got:\n%s", msg.Text)
	}
}

func TestBuildPrompt_UnknownRecipient(t *testing.T) {
	r := sampleRequest()
	r.Target.Name = ""
	p := buildPrompt(r)
	if !strings.Contains(p, "(Unknown - address to team/company)") {
		t.Fatalf("expected unknown-recipient marker, got:\n%s", p)
	}
}
