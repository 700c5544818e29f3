package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserUUID reads the authenticated user id set by the auth middleware.
func GetUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	idStr, ok := c.Locals("user_id").(string)
	if !ok || idStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Missing user ID in token")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
	}
	return id, nil
}

// GetUserEmail reads the authenticated email set by the auth middleware.
func GetUserEmail(c *fiber.Ctx) (string, error) {
	email, ok := c.Locals("user_email").(string)
	if !ok || email == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Missing email in token")
	}
	return email, nil
}

// GetUserRole reads the role claim set by the auth middleware.
func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals("user_role").(string)
	return role
}
