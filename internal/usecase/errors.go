package usecase

import (
	"errors"
	"fmt"

	"github.com/fadilmartias/job-assistant/internal/repository"
	"github.com/fadilmartias/job-assistant/internal/service"
)

type ErrorKind string

const (
	KindValidationFailed      ErrorKind = "validation_failed"
	KindExtractionFailed      ErrorKind = "extraction_failed"
	KindNoExperiencesSelected ErrorKind = "no_experiences_selected"
	KindModelServiceFailure   ErrorKind = "model_service_failure"
	KindProfileConflict       ErrorKind = "profile_conflict"
	KindNotFound              ErrorKind = "not_found"
	KindInternal              ErrorKind = "internal"

	// KindMalformedModelOutput is only ever logged; both pipelines recover
	// from it with empty defaults.
	KindMalformedModelOutput ErrorKind = "malformed_model_output"
)

// Error is the failure type returned by every usecase.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of a usecase error, or KindInternal.
func KindOf(err error) ErrorKind {
	var ucErr *Error
	if errors.As(err, &ucErr) {
		return ucErr.Kind
	}
	return KindInternal
}

func modelFailure(err error) *Error {
	msg := "text generation failed"
	var genErr *service.GenerationError
	if errors.As(err, &genErr) {
		switch genErr.Kind {
		case service.FailureQuotaExceeded:
			msg = "text generation quota exceeded"
		case service.FailureInvalidCredentials:
			msg = "text generation credentials are invalid"
		}
	}
	return newError(KindModelServiceFailure, msg, err)
}

func storeFailure(err error) *Error {
	switch {
	case errors.Is(err, repository.ErrProfileNotFound):
		return newError(KindNotFound, "user not found", err)
	case errors.Is(err, repository.ErrVersionConflict):
		return newError(KindProfileConflict, "profile was updated by another request, reload and try again", err)
	}
	return newError(KindInternal, "profile storage failed", err)
}
