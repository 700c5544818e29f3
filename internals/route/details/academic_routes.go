package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	academicController "campushub_backend/internals/features/academics/controller"
	authMw "campushub_backend/internals/middlewares/auth"
)

// AcademicRoutes wires the reference-data CRUD. Reads are open to any
// authenticated user; writes are staff and above.
func AcademicRoutes(api fiber.Router, db *gorm.DB) {
	departments := academicController.NewDepartmentController(db)
	schools := academicController.NewSchoolController(db)
	sessions := academicController.NewSessionController(db)
	subjects := academicController.NewSubjectController(db)
	batches := academicController.NewBatchController(db)
	ugpg := academicController.NewUGPGCourseController(db)
	languages := academicController.NewLanguageController(db)
	timetables := academicController.NewTimetableController(db)

	auth := authMw.AuthMiddleware(db)
	staffOnly := authMw.OnlyRoles(db,
		constants.RoleErrorStaff("academic administration"), constants.StaffAndAbove...)

	dept := api.Group("/departments", auth)
	dept.Get("/", departments.List)
	dept.Get("/:id", departments.Detail)
	dept.Post("/", staffOnly, departments.Create)
	dept.Put("/:id", staffOnly, departments.Update)
	dept.Delete("/:id", staffOnly, departments.Delete)

	sch := api.Group("/schools", auth)
	sch.Get("/", schools.List)
	sch.Post("/", staffOnly, schools.Create)
	sch.Put("/:id", staffOnly, schools.Update)
	sch.Delete("/:id", staffOnly, schools.Delete)

	ses := api.Group("/sessions", auth)
	ses.Get("/", sessions.List)
	ses.Post("/", staffOnly, sessions.Create)
	ses.Put("/:id", staffOnly, sessions.Update)
	ses.Delete("/:id", staffOnly, sessions.Delete)

	sub := api.Group("/subjects", auth)
	sub.Get("/", subjects.List)
	sub.Post("/", staffOnly, subjects.Create)
	sub.Put("/:id", staffOnly, subjects.Update)
	sub.Delete("/:id", staffOnly, subjects.Delete)

	bat := api.Group("/batches", auth)
	bat.Get("/", batches.List)
	bat.Get("/export", staffOnly, batches.ExportCSV)
	bat.Post("/", staffOnly, batches.Create)
	bat.Put("/:id", staffOnly, batches.Update)
	bat.Delete("/:id", staffOnly, batches.Delete)

	ug := api.Group("/ugpg-courses", auth)
	ug.Get("/", ugpg.List)
	ug.Post("/", staffOnly, ugpg.Create)
	ug.Put("/:id", staffOnly, ugpg.Update)
	ug.Delete("/:id", staffOnly, ugpg.Delete)

	lang := api.Group("/languages", auth)
	lang.Get("/", languages.List)
	lang.Post("/", staffOnly, languages.Create)
	lang.Put("/:id", staffOnly, languages.Update)
	lang.Delete("/:id", staffOnly, languages.Delete)

	tt := api.Group("/timetables", auth)
	tt.Get("/", timetables.List)
	tt.Post("/", staffOnly, timetables.Create)
	tt.Put("/:id", staffOnly, timetables.Update)
	tt.Delete("/:id", staffOnly, timetables.Delete)
}
