package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"campushub_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the global middleware chain. Order matters:
// recovery first so panics anywhere below become 500s.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
