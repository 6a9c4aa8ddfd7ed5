package handler

import (
	"errors"

	"github.com/fadilmartias/job-assistant/internal/service"
	"github.com/fadilmartias/job-assistant/internal/usecase"
	"github.com/fadilmartias/job-assistant/internal/util"
	"github.com/gofiber/fiber/v2"
)

// StatusFor maps a usecase error to its HTTP status.
func StatusFor(err error) int {
	switch usecase.KindOf(err) {
	case usecase.KindValidationFailed, usecase.KindNoExperiencesSelected:
		return fiber.StatusBadRequest
	case usecase.KindExtractionFailed:
		return fiber.StatusUnprocessableEntity
	case usecase.KindProfileConflict:
		return fiber.StatusConflict
	case usecase.KindNotFound:
		return fiber.StatusNotFound
	case usecase.KindModelServiceFailure:
		var genErr *service.GenerationError
		if errors.As(err, &genErr) {
			switch genErr.Kind {
			case service.FailureQuotaExceeded:
				return fiber.StatusPaymentRequired
			case service.FailureInvalidCredentials:
				return fiber.StatusUnauthorized
			}
		}
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}

func usecaseError(c *fiber.Ctx, err error) error {
	message := "Internal server error"
	var ucErr *usecase.Error
	if errors.As(err, &ucErr) && ucErr.Kind != usecase.KindInternal {
		message = ucErr.Message
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    StatusFor(err),
		Message: message,
	}, err)
}

func badRequest(c *fiber.Ctx, message string, err error) error {
	params := util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Message: message,
	}
	var formErr *util.FormError
	if errors.As(err, &formErr) && formErr.Errors != nil {
		params.Message = formErr.Message
		params.Details = formErr.Errors
	}
	return util.ErrorResponse(c, params, err)
}
