package api

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"marketai/internal/config"
	"marketai/internal/models"
)

// HealthHandler reports service metadata.
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new API health handler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Health returns the service name, version and model in use.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:    "healthy",
		Service:   h.cfg.AppName,
		Version:   h.cfg.AppVersion,
		AIModel:   h.cfg.AIModelName,
		Timestamp: time.Now(),
	})
}
