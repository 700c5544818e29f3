package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	paymentController "campushub_backend/internals/features/payments/controller"
	authMw "campushub_backend/internals/middlewares/auth"
)

func PaymentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	// Gateway webhook, unauthenticated.
	api.Post("/payments/notification", ctrl.Notification)

	auth := authMw.AuthMiddleware(db)
	payments := api.Group("/payments", auth)
	payments.Post("/capture", ctrl.Capture)
	payments.Post("/enrollment-fee", ctrl.CaptureEnrollmentFee)
	payments.Post("/verify", ctrl.Verify)
	payments.Get("/mine", ctrl.Mine)

	admin := api.Group("/admin/payments",
		auth,
		authMw.OnlyRoles(db, constants.RoleErrorAdmin("payment records"), constants.AdminOnly...),
	)
	admin.Get("/", ctrl.ListAll)
}
