package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"ytinsight/models"
)

// HealthCheck handles GET /api/health.
func HealthCheck(version string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(models.HealthResponse{
			Status:    "healthy",
			Version:   version,
			Timestamp: time.Now().Format(time.RFC3339),
		})
	}
}
