package routes

import (
	"runtime"

	"github.com/gofiber/fiber/v2"

	helpers "campushub_backend/internals/helpers"
)

// BaseRoutes: unauthenticated service endpoints.
func BaseRoutes(app *fiber.App) {
	app.Get("/version", func(c *fiber.Ctx) error {
		return helpers.Success(c, "OK", fiber.Map{
			"service": "campushub-backend",
			"go":      runtime.Version(),
		})
	})

	// Exercises the recovery middleware end to end.
	app.Get("/test-panic", func(c *fiber.Ctx) error {
		panic("intentional test panic")
	})
}
