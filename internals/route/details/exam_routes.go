package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	examController "campushub_backend/internals/features/exams/controller"
	authMw "campushub_backend/internals/middlewares/auth"
)

func ExamRoutes(api fiber.Router, db *gorm.DB) {
	sessions := examController.NewExamSessionController(db)
	results := examController.NewResultController(db)

	auth := authMw.AuthMiddleware(db)
	staffOnly := authMw.OnlyRoles(db,
		constants.RoleErrorStaff("exam administration"), constants.StaffAndAbove...)
	instructorOnly := authMw.OnlyRoles(db,
		constants.RoleErrorInstructor("result submission"), constants.InstructorAndAbove...)

	exams := api.Group("/exam-sessions", auth)
	exams.Get("/", sessions.List)
	exams.Post("/", staffOnly, sessions.Create)
	exams.Put("/:id", staffOnly, sessions.Update)
	exams.Delete("/:id", staffOnly, sessions.Delete)

	res := api.Group("/results", auth)
	res.Get("/mine", results.Mine)
	res.Get("/", instructorOnly, results.List)
	res.Post("/", instructorOnly, results.Submit)
	res.Delete("/:id", instructorOnly, results.Delete)
}
