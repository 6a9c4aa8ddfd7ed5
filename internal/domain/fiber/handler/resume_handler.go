package handler

import (
	"fmt"
	"io"

	"github.com/fadilmartias/job-assistant/internal/middleware"
	"github.com/fadilmartias/job-assistant/internal/usecase"
	"github.com/fadilmartias/job-assistant/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ResumeHandler struct {
	uc       *usecase.ResumeUsecase
	maxBytes int64
}

func NewResumeHandler(uc *usecase.ResumeUsecase, maxBytes int64) *ResumeHandler {
	return &ResumeHandler{uc: uc, maxBytes: maxBytes}
}

// Parse handles POST /api/profile/resume.
func (h *ResumeHandler) Parse(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "File is required", err)
	}
	if file.Size > h.maxBytes {
		return badRequest(c, fmt.Sprintf("File too large (max %dMB)", h.maxBytes/(1024*1024)), nil)
	}

	f, err := file.Open()
	if err != nil {
		return badRequest(c, "Cannot read uploaded file", err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
	if err != nil {
		return badRequest(c, "Cannot read uploaded file", err)
	}

	extraction, err := h.uc.ParseResume(c.UserContext(), userID, data, file.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return usecaseError(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Resume parsed",
		Data:    extraction,
	})
}
