package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_FromEnvFillsBlanks(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("LLM_BASE_URL", "https://env.example/v1")
	t.Setenv("LLM_MODEL", "env-model")

	cfg := Config{}.FromEnv()
	if cfg.LLMAPIKey != "sk-env" || cfg.LLMBaseURL != "https://env.example/v1" || cfg.LLMModel != "env-model" {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestConfig_FromEnvKeepsExplicitValues(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("LLM_MODEL", "env-model")

	cfg := Config{LLMAPIKey: "sk-explicit", LLMModel: "explicit-model"}.FromEnv()
	if cfg.LLMAPIKey != "sk-explicit" || cfg.LLMModel != "explicit-model" {
		t.Fatalf("explicit values overwritten: %+v", cfg)
	}
}

func TestConfig_AIEnabled(t *testing.T) {
	if (Config{}).AIEnabled() {
		t.Fatalf("blank key must disable AI")
	}
	if (Config{LLMAPIKey: "   "}).AIEnabled() {
		t.Fatalf("whitespace key must disable AI")
	}
	if !(Config{LLMAPIKey: "sk-x"}).AIEnabled() {
		t.Fatalf("configured key must enable AI")
	}
}

func TestLoadConfigFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
llm:
  base: https://file.example/v1
  model: file-model
  key: sk-file
server:
  addr: ":9090"
verbose: true
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := fc.Apply(Config{})
	if cfg.LLMBaseURL != "https://file.example/v1" || cfg.LLMModel != "file-model" || cfg.LLMAPIKey != "sk-file" {
		t.Fatalf("llm section not applied: %+v", cfg)
	}
	if cfg.HTTPAddr != ":9090" || !cfg.Verbose {
		t.Fatalf("server section not applied: %+v", cfg)
	}
}

func TestLoadConfigFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"llm":{"model":"json-model"},"server":{"storeTTL":3600000000000}}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := fc.Apply(Config{})
	if cfg.LLMModel != "json-model" {
		t.Fatalf("json llm section not applied: %+v", cfg)
	}
	if cfg.StoreTTL != time.Hour {
		t.Fatalf("storeTTL = %v, want 1h", cfg.StoreTTL)
	}
}

func TestFileConfig_ApplyLeavesUnsetFieldsAlone(t *testing.T) {
	base := Config{LLMModel: "keep-me", HTTPAddr: ":8080"}
	var fc FileConfig
	fc.LLM.APIKey = "sk-file"

	cfg := fc.Apply(base)
	if cfg.LLMModel != "keep-me" || cfg.HTTPAddr != ":8080" {
		t.Fatalf("unset file fields clobbered base: %+v", cfg)
	}
	if cfg.LLMAPIKey != "sk-file" {
		t.Fatalf("set file field not applied: %+v", cfg)
	}
}
