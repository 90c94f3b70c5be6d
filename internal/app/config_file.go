package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Nested sections map
// naturally onto flags and environment variables.
type FileConfig struct {
	LLM struct {
		BaseURL string `yaml:"base" json:"base"`
		Model   string `yaml:"model" json:"model"`
		APIKey  string `yaml:"key" json:"key"`
		Timeout time.Duration `yaml:"timeout" json:"timeout"`
	} `yaml:"llm" json:"llm"`

	Server struct {
		Addr     string        `yaml:"addr" json:"addr"`
		StoreTTL time.Duration `yaml:"storeTTL" json:"storeTTL"`
	} `yaml:"server" json:"server"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig, chosen by extension.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse config json: %w", err)
		}
		return fc, nil
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse config yaml: %w", err)
	}
	return fc, nil
}

// Apply overlays the file values onto cfg. File values win only where set,
// so flags and env retain their defaults elsewhere.
func (fc FileConfig) Apply(cfg Config) Config {
	if fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if fc.LLM.Timeout > 0 {
		cfg.Timeout = fc.LLM.Timeout
	}
	if fc.Server.Addr != "" {
		cfg.HTTPAddr = fc.Server.Addr
	}
	if fc.Server.StoreTTL > 0 {
		cfg.StoreTTL = fc.Server.StoreTTL
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
	return cfg
}
