package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/fadilmartias/job-assistant/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestSplitMessages(t *testing.T) {
	system, user := splitMessages([]Message{
		{Role: RoleSystem, Content: "a"},
		{Role: RoleUser, Content: "u"},
		{Role: RoleSystem, Content: "b"},
	})
	assert.Equal(t, "a\n\nb", system)
	assert.Equal(t, []Message{{Role: RoleUser, Content: "u"}}, user)
}

func TestModelOrDefault(t *testing.T) {
	assert.Equal(t, "req", modelOrDefault("req", "cfg", "def"))
	assert.Equal(t, "cfg", modelOrDefault("", "cfg", "def"))
	assert.Equal(t, "def", modelOrDefault("", "", "def"))
}

func TestNewTextGenerator_UnknownProvider(t *testing.T) {
	_, err := NewTextGenerator(context.Background(), &config.LLMConfig{Provider: "carrier-pigeon"})
	assert.Error(t, err)
}

func TestClassifyFailure(t *testing.T) {
	assert.Equal(t, FailureQuotaExceeded, classifyFailure(http.StatusPaymentRequired, ""))
	assert.Equal(t, FailureQuotaExceeded, classifyFailure(429, "Error 429, Status: RESOURCE_EXHAUSTED"))
	assert.Equal(t, FailureInvalidCredentials, classifyFailure(http.StatusForbidden, ""))
	assert.Equal(t, FailureInvalidCredentials, classifyFailure(400, "API key not valid. Please pass a valid API key."))
	assert.Equal(t, FailureGeneric, classifyFailure(429, "rate limited"))
	assert.Equal(t, FailureGeneric, classifyFailure(0, "connection refused"))
}

func TestGenerationErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := newGenerationError("gemini", 500, cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "status 500")
}
