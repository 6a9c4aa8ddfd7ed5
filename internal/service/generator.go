package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/job-assistant/internal/config"
)

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerationRequest is one prompt sent to a text-generation provider.
type GenerationRequest struct {
	Model       string
	Messages    []Message
	Temperature float32
	// JSONMode asks the provider to constrain output to a single JSON object.
	JSONMode bool
}

// TextGenerator is implemented by every model provider. Failures are
// returned as *GenerationError.
type TextGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// NewTextGenerator builds the provider selected by cfg. It is called once at
// startup and the result is shared by every request.
func NewTextGenerator(ctx context.Context, cfg *config.LLMConfig) (TextGenerator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiService(ctx, config.LoadGeminiConfig().APIKey, cfg)
	case config.ProviderAnthropic:
		return NewAnthropicService(config.LoadAnthropicConfig().APIKey, cfg)
	case config.ProviderOpenRouter:
		orCfg := config.LoadOpenRouterConfig()
		return NewOpenRouterService(orCfg.APIKey, orCfg.BaseURL, cfg)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}

func splitMessages(msgs []Message) (system string, user []Message) {
	var sys []string
	for _, m := range msgs {
		if m.Role == RoleSystem {
			sys = append(sys, m.Content)
			continue
		}
		user = append(user, m)
	}
	return strings.Join(sys, "\n\n"), user
}

func modelOrDefault(requested, configured, fallback string) string {
	if requested != "" {
		return requested
	}
	if configured != "" {
		return configured
	}
	return fallback
}
