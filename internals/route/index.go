package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/route/details"
)

// SetupRoutes wires every feature router under /api. Auth and role guards
// are attached inside each details file.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)

	api := app.Group("/api")

	details.AuthRoutes(api, db)
	details.UserRoutes(api, db)
	details.CourseRoutes(api, db)
	details.PaymentRoutes(api, db)
	details.ExamRoutes(api, db)
	details.AdmissionRoutes(api, db)
	details.AcademicRoutes(api, db)
	details.PeopleRoutes(api, db)
	details.VisitorRoutes(api, db)
	details.FeeRoutes(api, db)
}
