package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"campushub_backend/internals/configs"
	userModel "campushub_backend/internals/features/users/user/model"
)

const AccessTokenTTL = 24 * time.Hour

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

// IssueAccessToken signs an HS256 token embedding id/email/role.
func IssueAccessToken(u *userModel.UserModel, now time.Time) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	claims := jwt.MapClaims{
		"sub":   u.ID.String(),
		"email": u.Email,
		"role":  u.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(AccessTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
