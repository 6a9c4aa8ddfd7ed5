package config

import (
	"os"
	"sync"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

type GeminiConfig struct {
	APIKey string
}

type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
}

type AnthropicConfig struct {
	APIKey string
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once

	openRouterConfig *OpenRouterConfig
	openRouterOnce   sync.Once

	anthropicConfig *AnthropicConfig
	anthropicOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		geminiConfig = &GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
		}
	})
	return geminiConfig
}

func LoadOpenRouterConfig() *OpenRouterConfig {
	openRouterOnce.Do(func() {
		baseURL := os.Getenv("OPENROUTER_BASE_URL")
		if baseURL == "" {
			baseURL = defaultOpenRouterBaseURL
		}
		openRouterConfig = &OpenRouterConfig{
			APIKey:  os.Getenv("OPENROUTER_API_KEY"),
			BaseURL: baseURL,
		}
	})
	return openRouterConfig
}

func LoadAnthropicConfig() *AnthropicConfig {
	anthropicOnce.Do(func() {
		anthropicConfig = &AnthropicConfig{
			APIKey: os.Getenv("ANTHROPIC_API_KEY"),
		}
	})
	return anthropicConfig
}
