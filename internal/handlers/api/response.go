package api

import (
	"github.com/gofiber/fiber/v3"

	"marketai/internal/models"
)

// jsonFailure reports a failed generation with a server-error status.
func jsonFailure(c fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(models.FailureResponse{
		Success: false,
		Error:   err.Error(),
	})
}
