package handlers

import (
	"github.com/gofiber/fiber/v3"

	"marketai/internal/activity"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	log *activity.Log
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(log *activity.Log) *ProbeHandler {
	return &ProbeHandler{log: log}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if the activity store is reachable.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if err := h.log.Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "activity store unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
