package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_FlagBeatsFileBeatsEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("LLM_MODEL", "env-model")
	t.Setenv("LLM_BASE_URL", "https://env.example/v1")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "llm:\n  model: file-model\n  key: sk-file\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	configPath = path
	llmModel = "flag-model"
	defer func() { configPath, llmModel = "", "" }()

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.LLMModel != "flag-model" {
		t.Fatalf("flag should win, got %q", cfg.LLMModel)
	}
	if cfg.LLMAPIKey != "sk-file" {
		t.Fatalf("file should beat env, got %q", cfg.LLMAPIKey)
	}
	if cfg.LLMBaseURL != "https://env.example/v1" {
		t.Fatalf("env should fill what file leaves unset, got %q", cfg.LLMBaseURL)
	}
}

func TestReadMessage_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "message.txt")
	if err := os.WriteFile(path, []byte("draft text"), 0o600); err != nil {
		t.Fatalf("write message: %v", err)
	}
	got, err := readMessage(path)
	if err != nil {
		t.Fatalf("readMessage: %v", err)
	}
	if got != "draft text" {
		t.Fatalf("readMessage = %q", got)
	}
}

func TestReadMessage_MissingFile(t *testing.T) {
	if _, err := readMessage(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
