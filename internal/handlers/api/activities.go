package api

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"marketai/internal/activity"
	"marketai/internal/middleware"
)

// ActivityHandler exposes the session's activity log.
type ActivityHandler struct {
	log    *activity.Log
	logger *zap.Logger
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(log *activity.Log, logger *zap.Logger) *ActivityHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityHandler{log: log, logger: logger}
}

// List returns every entry of the current session, newest first.
func (h *ActivityHandler) List(c fiber.Ctx) error {
	entries, err := h.log.List(c.Context(), middleware.SessionID(c), 0)
	if err != nil {
		h.logger.Error("failed to list activities", zap.Error(err))
		return jsonFailure(c, err)
	}
	return c.JSON(entries)
}
