package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fadilmartias/job-assistant/internal/config"
	"github.com/fadilmartias/job-assistant/internal/util"
	"github.com/sirupsen/logrus"
)

const (
	defaultAnthropicModel = "claude-sonnet-4-20250514"
	anthropicMaxTokens    = 4096
	jsonOnlyInstruction   = "Respond with a single JSON object and nothing else."
)

type AnthropicService struct {
	client  anthropic.Client
	Model   string
	Timeout time.Duration
}

func NewAnthropicService(apiKey string, cfg *config.LLMConfig) (*AnthropicService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY not set")
	}
	return &AnthropicService{
		client:  anthropic.NewClient(option.WithAPIKey(apiKey)),
		Model:   modelOrDefault("", cfg.Model, defaultAnthropicModel),
		Timeout: cfg.Timeout,
	}, nil
}

func (s *AnthropicService) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	system, msgs := splitMessages(req.Messages)
	if len(msgs) == 0 {
		return "", &GenerationError{Provider: "anthropic", Kind: FailureGeneric, Err: errors.New("prompt cannot be empty")}
	}
	// No native JSON mode; the constraint goes into the system prompt.
	if req.JSONMode {
		system = strings.TrimSpace(system + "\n\n" + jsonOnlyInstruction)
	}
	model := modelOrDefault(req.Model, s.Model, defaultAnthropicModel)

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   anthropicMaxTokens,
		Temperature: anthropic.Float(float64(req.Temperature)),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}
	for _, m := range msgs {
		params.Messages = append(params.Messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
	}

	start := time.Now()
	resp, err := s.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", newGenerationError("anthropic", apiErr.StatusCode, err)
		}
		return "", newGenerationError("anthropic", 0, err)
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	util.Logger().WithFields(logrus.Fields{
		"provider": "anthropic",
		"model":    model,
		"chars":    b.Len(),
		"elapsed":  time.Since(start),
	}).Debug("generation completed")
	return b.String(), nil
}
