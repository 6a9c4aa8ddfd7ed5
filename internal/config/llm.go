package config

import (
	"os"
	"strings"
	"sync"
	"time"
)

const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderAnthropic  = "anthropic"
)

// LLMConfig selects the text-generation provider used by both pipelines.
type LLMConfig struct {
	Provider string
	Model    string
	Timeout  time.Duration
}

var (
	llmConfig *LLMConfig
	llmOnce   sync.Once
)

func LoadLLMConfig() *LLMConfig {
	llmOnce.Do(func() {
		provider := strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER")))
		if provider == "" {
			provider = ProviderOpenRouter
		}
		llmConfig = &LLMConfig{
			Provider: provider,
			Model:    os.Getenv("LLM_MODEL"),
			Timeout:  time.Duration(envInt64("LLM_TIMEOUT_SECONDS", 90)) * time.Second,
		}
	})
	return llmConfig
}
