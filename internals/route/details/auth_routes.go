package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "campushub_backend/internals/features/users/auth/controller"
	"campushub_backend/internals/middlewares"
	authMw "campushub_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/send-otp", middlewares.OtpRateLimiter(), ctrl.SendOtp)
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	protected := auth.Group("", authMw.AuthMiddleware(db))
	protected.Get("/me", ctrl.Me)
	protected.Post("/logout", ctrl.Logout)
	protected.Post("/change-password", ctrl.ChangePassword)
}
