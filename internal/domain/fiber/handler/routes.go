package handler

import (
	"time"

	"github.com/fadilmartias/job-assistant/internal/config"
	"github.com/fadilmartias/job-assistant/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Resume  *ResumeHandler
	Tailor  *TailorHandler
	Profile *ProfileHandler
}

func (h Handlers) RegisterRoutes(app *fiber.App, authCfg *config.AuthConfig) {
	api := app.Group("/api", middleware.Auth(authCfg))

	// Both routes make a model call per request.
	generate := middleware.UserRateLimiter(10, time.Minute)

	api.Get("/profile", h.Profile.Get)
	api.Put("/profile", h.Profile.Update)
	api.Post("/profile/resume", generate, h.Resume.Parse)
	api.Post("/tailor", generate, h.Tailor.Tailor)
}
