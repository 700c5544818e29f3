package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	feeController "campushub_backend/internals/features/fees/controller"
	authMw "campushub_backend/internals/middlewares/auth"
)

func FeeRoutes(api fiber.Router, db *gorm.DB) {
	feeTypes := feeController.NewFeeTypeController(db)
	assignments := feeController.NewFeeAssignmentController(db)
	payments := feeController.NewFeePaymentController(db)

	auth := authMw.AuthMiddleware(db)
	staffOnly := authMw.OnlyRoles(db,
		constants.RoleErrorStaff("fee administration"), constants.StaffAndAbove...)

	ft := api.Group("/fee-types", auth)
	ft.Get("/", feeTypes.List)
	ft.Post("/", staffOnly, feeTypes.Create)
	ft.Put("/:id", staffOnly, feeTypes.Update)
	ft.Delete("/:id", staffOnly, feeTypes.Delete)

	fa := api.Group("/fee-assignments", auth)
	fa.Get("/", assignments.List)
	fa.Post("/", staffOnly, assignments.Create)
	fa.Put("/:id", staffOnly, assignments.Update)
	fa.Delete("/:id", staffOnly, assignments.Delete)

	fp := api.Group("/fee-payments", auth, staffOnly)
	fp.Get("/", payments.List)
	fp.Get("/outstanding", payments.Outstanding)
	fp.Post("/", payments.Record)
}
