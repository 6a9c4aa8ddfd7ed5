package handler

import (
	"github.com/fadilmartias/job-assistant/internal/dto"
	"github.com/fadilmartias/job-assistant/internal/middleware"
	"github.com/fadilmartias/job-assistant/internal/usecase"
	"github.com/fadilmartias/job-assistant/internal/util"
	"github.com/gofiber/fiber/v2"
)

type TailorHandler struct {
	uc *usecase.TailorUsecase
}

func NewTailorHandler(uc *usecase.TailorUsecase) *TailorHandler {
	return &TailorHandler{uc: uc}
}

// Tailor handles POST /api/tailor.
func (h *TailorHandler) Tailor(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var req dto.TailorRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, "Invalid request", util.FormErrorFromValidation(err))
	}

	results, err := h.uc.Tailor(c.UserContext(), userID, usecase.TailorInput{
		Company:        req.Company,
		JobDescription: req.JobDescription,
		ExperienceIDs:  req.IDs(),
	})
	if err != nil {
		return usecaseError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Bullets tailored",
		Data:    dto.TailorResponse{Results: results},
	})
}
