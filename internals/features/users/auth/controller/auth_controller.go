package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/features/users/auth/service"
	userModel "campushub_backend/internals/features/users/user/model"
	helpers "campushub_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	var profile userModel.UserProfileModel
	_ = ac.DB.Where("user_id = ?", user.ID).First(&profile).Error

	return helpers.Success(c, "OK", fiber.Map{
		"user":    user,
		"profile": profile,
	})
}

func (ac *AuthController) SendOtp(c *fiber.Ctx) error {
	return service.SendOtp(ac.DB, c)
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return service.ChangePassword(ac.DB, c)
}
