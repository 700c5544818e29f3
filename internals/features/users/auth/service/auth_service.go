package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	authModel "campushub_backend/internals/features/users/auth/model"
	userModel "campushub_backend/internals/features/users/user/model"
	helpers "campushub_backend/internals/helpers"
	mailer "campushub_backend/internals/helpers/mailer"
)

var validate = validator.New()

func nowUTC() time.Time { return time.Now().UTC() }

/* ==========================
   SEND OTP
========================== */

type sendOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// POST /api/auth/send-otp
func SendOtp(db *gorm.DB, c *fiber.Ctx) error {
	var req sendOtpRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var existing userModel.UserModel
	if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict, "Email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.Error(c, fiber.StatusInternalServerError, "DB error")
	}

	otp, err := IssueOtp(db, req.Email)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to issue code")
	}

	mailer.SendOTP(req.Email, otp.Code)
	return helpers.Success(c, "Verification code sent", fiber.Map{"email": req.Email})
}

/* ==========================
   REGISTER
========================== */

type registerRequest struct {
	FullName string `json:"full_name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=student instructor staff"`
	Phone    string `json:"phone"`
	Otp      string `json:"otp" validate:"required,len=6"`
}

// POST /api/auth/register
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Role == "" {
		req.Role = constants.RoleStudent
	}

	// OTP must match the most recently issued, unexpired code.
	latest, err := LatestOtp(db, req.Email)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "DB error")
	}
	if err := ValidateOtp(latest, req.Otp, nowUTC()); err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusBadRequest, constants.CodeInvalidOtp, "Invalid or expired OTP")
	}

	var existing userModel.UserModel
	if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict, "Email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.Error(c, fiber.StatusInternalServerError, "DB error")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		FullName: req.FullName,
		Email:    req.Email,
		Password: string(hash),
		Role:     req.Role,
		IsActive: true,
		// Role-dependent defaults: instructors wait for approval,
		// students owe the enrollment fee, staff are ready to go.
		IsApproved:        req.Role != constants.RoleInstructor,
		EnrollmentFeePaid: req.Role != constants.RoleStudent,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := userModel.UserProfileModel{
			UserID: user.ID,
			Phone:  req.Phone,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		// consume the code so it cannot be replayed
		return tx.Where("email = ?", req.Email).Delete(&authModel.OtpModel{}).Error
	})
	if err != nil {
		log.Printf("[AUTH] register tx failed for %s: %v", req.Email, err)
		return helpers.Error(c, fiber.StatusInternalServerError, "Registration failed")
	}

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Account created", fiber.Map{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	})
}

/* ==========================
   LOGIN
========================== */

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	var user userModel.UserModel
	err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// same answer as a wrong password: don't leak which emails exist
		return helpers.ErrorWithCode(c, fiber.StatusUnauthorized, constants.CodeUnauthorized, "Invalid credentials")
	}
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "DB error")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return helpers.ErrorWithCode(c, fiber.StatusUnauthorized, constants.CodeUnauthorized, "Invalid credentials")
	}
	if !user.IsActive {
		return helpers.ErrorWithCode(c, fiber.StatusForbidden, constants.CodeForbidden, "Account is deactivated")
	}

	token, err := IssueAccessToken(&user, nowUTC())
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  nowUTC().Add(AccessTokenTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
	})

	return helpers.Success(c, "Login successful", fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":        user.ID,
			"full_name": user.FullName,
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}

/* ==========================
   LOGOUT
========================== */

// POST /api/auth/logout — blacklist the presented token until it expires.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString, _ := c.Locals("token_string").(string)
	if tokenString == "" {
		return helpers.ErrorWithCode(c, fiber.StatusUnauthorized, constants.CodeUnauthorized, "No token presented")
	}

	entry := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiresAt: nowUTC().Add(AccessTokenTTL),
	}
	if err := db.Create(&entry).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Logout failed")
	}

	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: nowUTC().Add(-time.Hour), HTTPOnly: true})
	return helpers.Success(c, "Logged out", nil)
}

/* ==========================
   CHANGE PASSWORD
========================== */

type changePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// POST /api/auth/change-password
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "User not found")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)) != nil {
		return helpers.ErrorWithCode(c, fiber.StatusUnauthorized, constants.CodeUnauthorized, "Old password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := db.Model(&user).Update("password", string(hash)).Error; err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helpers.Success(c, "Password changed", nil)
}
