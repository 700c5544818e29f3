package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	userModel "campushub_backend/internals/features/users/user/model"
)

// OnlyRoles re-fetches the account behind the token and checks its current
// role against the allow-list. The DB is the authority, not the claim: role
// changes and instructor un-approval take effect immediately.
func OnlyRoles(db *gorm.DB, customForbiddenMessage string, allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := c.Locals("user_email").(string)
		if !ok || email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Unauthorized: missing identity information",
			})
		}

		var user userModel.UserModel
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"success": false,
					"message": "Unauthorized: account not found",
				})
			}
			return fiber.NewError(fiber.StatusInternalServerError, "DB error")
		}

		for _, allowed := range allowedRoles {
			if user.Role != allowed {
				continue
			}
			// Unapproved instructors are locked out of instructor routes.
			if user.Role == constants.RoleInstructor && !user.IsApproved {
				return forbidden(c, "Instructor account awaiting approval")
			}
			c.Locals("account", &user)
			return c.Next()
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return forbidden(c, customForbiddenMessage)
	}
}

// OnlyContentManagers passes admins, plus staff whose capability record
// grants is_content_manager. Role enum first, capability flags as extension.
func OnlyContentManagers(db *gorm.DB) fiber.Handler {
	return capabilityGuard(db, func(cap *userModel.UserCapabilityModel) bool {
		return cap.IsContentManager
	}, "Forbidden: content manager access required")
}

// OnlyTrainerManagers passes admins, plus staff with is_trainer_manager.
func OnlyTrainerManagers(db *gorm.DB) fiber.Handler {
	return capabilityGuard(db, func(cap *userModel.UserCapabilityModel) bool {
		return cap.IsTrainerManager
	}, "Forbidden: trainer manager access required")
}

func capabilityGuard(db *gorm.DB, pass func(*userModel.UserCapabilityModel) bool, msg string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := c.Locals("user_email").(string)
		if !ok || email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Unauthorized: missing identity information",
			})
		}

		var user userModel.UserModel
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Unauthorized: account not found",
			})
		}
		if user.Role == constants.RoleAdmin {
			c.Locals("account", &user)
			return c.Next()
		}
		if user.Role == constants.RoleStaff {
			var cap userModel.UserCapabilityModel
			if err := db.Where("user_id = ?", user.ID).First(&cap).Error; err == nil && pass(&cap) {
				c.Locals("account", &user)
				return c.Next()
			}
		}
		return forbidden(c, msg)
	}
}

func forbidden(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"success": false,
		"code":    constants.CodeForbidden,
		"message": msg,
	})
}
