package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	visitorController "campushub_backend/internals/features/visitors/controller"
	authMw "campushub_backend/internals/middlewares/auth"
)

func VisitorRoutes(api fiber.Router, db *gorm.DB) {
	meetingTypes := visitorController.NewMeetingTypeController(db)
	purposes := visitorController.NewVisitPurposeController(db)
	logs := visitorController.NewVisitorLogController(db)

	auth := authMw.AuthMiddleware(db)
	staffOnly := authMw.OnlyRoles(db,
		constants.RoleErrorStaff("visitor management"), constants.StaffAndAbove...)

	mt := api.Group("/meeting-types", auth)
	mt.Get("/", meetingTypes.List)
	mt.Post("/", staffOnly, meetingTypes.Create)
	mt.Put("/:id", staffOnly, meetingTypes.Update)
	mt.Delete("/:id", staffOnly, meetingTypes.Delete)

	vp := api.Group("/visit-purposes", auth)
	vp.Get("/", purposes.List)
	vp.Post("/", staffOnly, purposes.Create)
	vp.Put("/:id", staffOnly, purposes.Update)
	vp.Delete("/:id", staffOnly, purposes.Delete)

	vl := api.Group("/visitor-logs", auth, staffOnly)
	vl.Get("/", logs.List)
	vl.Post("/", logs.CheckIn)
	vl.Put("/:id/checkout", logs.CheckOut)
	vl.Delete("/:id", logs.Delete)
}
