package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fadilmartias/job-assistant/internal/config"
	"github.com/fadilmartias/job-assistant/internal/util"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

type GeminiService struct {
	Client         *genai.Client
	Model          string
	RequestTimeout time.Duration
}

func NewGeminiService(ctx context.Context, apiKey string, cfg *config.LLMConfig) (*GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiService{
		Client:         client,
		Model:          modelOrDefault("", cfg.Model, defaultGeminiModel),
		RequestTimeout: cfg.Timeout,
	}, nil
}

func (s *GeminiService) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	system, msgs := splitMessages(req.Messages)
	if len(msgs) == 0 {
		return "", &GenerationError{Provider: "gemini", Kind: FailureGeneric, Err: errors.New("prompt cannot be empty")}
	}
	model := modelOrDefault(req.Model, s.Model, defaultGeminiModel)

	if s.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.RequestTimeout)
		defer cancel()
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if system != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	if req.JSONMode {
		genConfig.ResponseMIMEType = "application/json"
	}

	contents := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
	}

	start := time.Now()
	result, err := s.Client.Models.GenerateContent(ctx, model, contents, genConfig)
	if err != nil {
		return "", geminiError(err)
	}
	if err := validateGenerateResponse(result); err != nil {
		return "", &GenerationError{Provider: "gemini", Kind: FailureGeneric, Err: err}
	}

	text := result.Text()
	util.Logger().WithFields(logrus.Fields{
		"provider": "gemini",
		"model":    model,
		"chars":    len(text),
		"elapsed":  time.Since(start),
	}).Debug("generation completed")
	return text, nil
}

func geminiError(err error) *GenerationError {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		return newGenerationError("gemini", apiErr.Code, fmt.Errorf("%s: %s: %w", apiErr.Status, apiErr.Message, err))
	}
	return newGenerationError("gemini", 0, err)
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}

	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}

	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}

	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}

	return nil
}
