package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/job-assistant/internal/config"
	"github.com/fadilmartias/job-assistant/internal/util"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const defaultOpenRouterModel = "openai/gpt-4o-mini"

// OpenRouterService talks to any OpenAI-compatible chat completions API.
type OpenRouterService struct {
	APIKey string
	Model  string
	client *resty.Client
}

func NewOpenRouterService(apiKey, baseURL string, cfg *config.LLMConfig) (*OpenRouterService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY not set")
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	return &OpenRouterService{
		APIKey: apiKey,
		Model:  modelOrDefault("", cfg.Model, defaultOpenRouterModel),
		client: client,
	}, nil
}

func (s *OpenRouterService) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	if len(req.Messages) == 0 {
		return "", &GenerationError{Provider: "openrouter", Kind: FailureGeneric, Err: errors.New("prompt cannot be empty")}
	}
	model := modelOrDefault(req.Model, s.Model, defaultOpenRouterModel)

	payload := map[string]any{
		"model":       model,
		"messages":    req.Messages,
		"temperature": req.Temperature,
	}
	if req.JSONMode {
		payload["response_format"] = map[string]string{"type": "json_object"}
	}

	start := time.Now()
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/chat/completions")
	if err != nil {
		return "", newGenerationError("openrouter", 0, err)
	}

	body := resp.String()
	if resp.IsError() {
		detail := gjson.Get(body, "error.message").String()
		if code := gjson.Get(body, "error.code").String(); code != "" {
			detail = code + ": " + detail
		}
		if detail == "" {
			detail = body
		}
		return "", newGenerationError("openrouter", resp.StatusCode(), errors.New(detail))
	}

	if msg := gjson.Get(body, "error.message"); msg.Exists() {
		return "", newGenerationError("openrouter", int(gjson.Get(body, "error.code").Int()), errors.New(msg.String()))
	}

	content := gjson.Get(body, "choices.0.message.content")
	if !content.Exists() {
		return "", &GenerationError{Provider: "openrouter", Kind: FailureGeneric, StatusCode: resp.StatusCode(), Err: errors.New("no choices in response")}
	}

	util.Logger().WithFields(logrus.Fields{
		"provider": "openrouter",
		"model":    model,
		"chars":    len(content.String()),
		"elapsed":  time.Since(start),
	}).Debug("generation completed")
	return content.String(), nil
}
