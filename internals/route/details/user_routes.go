package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	userController "campushub_backend/internals/features/users/user/controller"
	authMw "campushub_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	// Own profile, any authenticated role.
	me := api.Group("/users", authMw.AuthMiddleware(db))
	me.Put("/profile", ctrl.UpdateProfile)

	admin := api.Group("/admin/users",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(db, constants.RoleErrorAdmin("user administration"), constants.AdminOnly...),
	)
	admin.Get("/", ctrl.List)
	admin.Get("/:id", ctrl.Detail)
	admin.Post("/:id/approve", ctrl.Approve)
	admin.Put("/:id/active", ctrl.SetActive)
	admin.Put("/:id/capabilities", ctrl.SetCapabilities)
	admin.Post("/bulk-upload", ctrl.BulkUploadStudents)
}
