package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	courseController "campushub_backend/internals/features/courses/course/controller"
	progressController "campushub_backend/internals/features/courses/progress/controller"
	authMw "campushub_backend/internals/middlewares/auth"
)

func CourseRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)
	progress := progressController.NewProgressController(db)

	// Public catalog.
	api.Get("/courses", ctrl.List)

	auth := authMw.AuthMiddleware(db)
	instructorOnly := authMw.OnlyRoles(db,
		constants.RoleErrorInstructor("course management"), constants.InstructorAndAbove...)

	courses := api.Group("/courses")
	courses.Get("/mine", auth, instructorOnly, ctrl.Mine)
	courses.Get("/:id", ctrl.Detail)

	courses.Post("/", auth, instructorOnly, ctrl.Create)
	courses.Put("/:id", auth, instructorOnly, ctrl.Update)
	courses.Delete("/:id", auth, instructorOnly, ctrl.Delete)
	courses.Post("/:id/thumbnail", auth, instructorOnly, ctrl.UploadThumbnail)
	courses.Post("/:id/sections", auth, instructorOnly, ctrl.CreateSection)

	sections := api.Group("/sections", auth, instructorOnly)
	sections.Put("/:sectionId", ctrl.UpdateSection)
	sections.Delete("/:sectionId", ctrl.DeleteSection)
	sections.Post("/:sectionId/subsections", ctrl.CreateSubsection)

	subsections := api.Group("/subsections", auth, instructorOnly)
	subsections.Delete("/:subsectionId", ctrl.DeleteSubsection)

	// Progress, authenticated students.
	prog := api.Group("/progress", auth)
	prog.Get("/:courseId", progress.Get)
	prog.Post("/:courseId/complete", progress.MarkComplete)
}
