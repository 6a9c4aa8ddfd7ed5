package handler

import (
	"github.com/fadilmartias/job-assistant/internal/dto"
	"github.com/fadilmartias/job-assistant/internal/middleware"
	"github.com/fadilmartias/job-assistant/internal/usecase"
	"github.com/fadilmartias/job-assistant/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	uc *usecase.ProfileUsecase
}

func NewProfileHandler(uc *usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	profile, err := h.uc.Get(c.UserContext(), userID)
	if err != nil {
		return usecaseError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get profile",
		Data:    profile,
	})
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, "Invalid request", util.FormErrorFromValidation(err))
	}

	profile, err := h.uc.Update(c.UserContext(), userID, req.ToUpdate(), req.Version)
	if err != nil {
		return usecaseError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Profile updated",
		Data:    profile,
	})
}
