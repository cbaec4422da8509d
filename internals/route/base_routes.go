package route

import (
	"time"

	"github.com/gofiber/fiber/v2"

	database "yugamki_backend/internals/databases"
)

var startedAt = time.Now()

func BaseRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "up"
		status := fiber.StatusOK
		if err := database.Ping(); err != nil {
			dbStatus = "down"
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"status":   dbStatus,
			"uptime_s": int(time.Since(startedAt).Seconds()),
		})
	})
}
