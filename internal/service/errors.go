package service

import (
	"fmt"
	"net/http"
	"strings"
)

type FailureKind string

const (
	FailureQuotaExceeded      FailureKind = "insufficient_quota"
	FailureInvalidCredentials FailureKind = "invalid_credentials"
	FailureGeneric            FailureKind = "generic"
)

// GenerationError is returned by providers when the model call fails.
type GenerationError struct {
	Provider   string
	Kind       FailureKind
	StatusCode int
	Err        error
}

func (e *GenerationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s generation failed (%s, status %d): %v", e.Provider, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s generation failed (%s): %v", e.Provider, e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// classifyFailure maps a provider status code and error text to a kind.
func classifyFailure(status int, detail string) FailureKind {
	lower := strings.ToLower(detail)
	switch {
	case status == http.StatusPaymentRequired:
		return FailureQuotaExceeded
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return FailureInvalidCredentials
	case strings.Contains(lower, "insufficient_quota"),
		strings.Contains(lower, "quota"),
		strings.Contains(lower, "resource_exhausted"),
		strings.Contains(lower, "credit balance"):
		return FailureQuotaExceeded
	case strings.Contains(lower, "invalid_api_key"),
		strings.Contains(lower, "api key not valid"),
		strings.Contains(lower, "invalid x-api-key"):
		return FailureInvalidCredentials
	}
	return FailureGeneric
}

func newGenerationError(provider string, status int, err error) *GenerationError {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	return &GenerationError{
		Provider:   provider,
		Kind:       classifyFailure(status, detail),
		StatusCode: status,
		Err:        err,
	}
}
