package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	admissionController "campushub_backend/internals/features/admissions/controller"
	authMw "campushub_backend/internals/middlewares/auth"
)

func AdmissionRoutes(api fiber.Router, db *gorm.DB) {
	enquiries := admissionController.NewEnquiryController(db)
	registrations := admissionController.NewRegistrationController(db)

	// Applicants are not authenticated yet.
	api.Post("/enquiries", enquiries.Create)
	api.Post("/registrations", registrations.Create)
	api.Post("/registrations/:id/documents", registrations.UploadDocument)

	auth := authMw.AuthMiddleware(db)
	staffOnly := authMw.OnlyRoles(db,
		constants.RoleErrorStaff("admission administration"), constants.StaffAndAbove...)

	adminEnq := api.Group("/admin/enquiries", auth, staffOnly)
	adminEnq.Get("/", enquiries.List)
	adminEnq.Put("/:id/handled", enquiries.MarkHandled)
	adminEnq.Delete("/:id", enquiries.Delete)

	adminReg := api.Group("/admin/registrations", auth, staffOnly)
	adminReg.Get("/", registrations.List)
	adminReg.Get("/:id", registrations.Detail)
	adminReg.Put("/:id/verify", registrations.VerifySections)
	adminReg.Post("/:id/approve", registrations.Approve)
	adminReg.Post("/:id/reject", registrations.Reject)

	api.Get("/admin/enrolled-students", auth, staffOnly, registrations.ListEnrolled)
}
