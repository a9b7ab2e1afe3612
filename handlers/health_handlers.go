package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports service liveness for monitoring.
// GET /health
func (h *ApplicationHandler) HealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "healthy",
	})
}
