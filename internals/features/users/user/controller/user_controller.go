package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	userModel "campushub_backend/internals/features/users/user/model"
	helpers "campushub_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/admin/users?role=&active=&q=
func (uc *UserController) List(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "created_at", "desc", helpers.AdminOpts)

	q := uc.DB.Model(&userModel.UserModel{})
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("role = ?", role)
	}
	if active := c.Query("active"); active != "" {
		q = q.Where("is_active = ?", active == "true")
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	order, err := p.SafeOrderClause(map[string]string{
		"created_at": "created_at",
		"full_name":  "full_name",
		"email":      "email",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var users []userModel.UserModel
	if err := q.Order(order).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&users).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	return helpers.Success(c, "OK", fiber.Map{
		"users": users,
		"meta":  helpers.BuildMeta(total, p),
	})
}

// GET /api/admin/users/:id
func (uc *UserController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}
	var user userModel.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "User not found")
	}
	var profile userModel.UserProfileModel
	_ = uc.DB.Where("user_id = ?", id).First(&profile).Error
	var capability userModel.UserCapabilityModel
	_ = uc.DB.Where("user_id = ?", id).First(&capability).Error

	return helpers.Success(c, "OK", fiber.Map{
		"user":       user,
		"profile":    profile,
		"capability": capability,
	})
}

// PATCH /api/admin/users/:id/approve — instructor approval
func (uc *UserController) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}
	var user userModel.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "User not found")
	}
	if user.Role != constants.RoleInstructor {
		return fiber.NewError(fiber.StatusBadRequest, "Only instructor accounts need approval")
	}
	if err := uc.DB.Model(&user).Update("is_approved", true).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to approve")
	}
	return helpers.Success(c, "Instructor approved", fiber.Map{"id": user.ID})
}

// PATCH /api/admin/users/:id/active — soft activate/deactivate
func (uc *UserController) SetActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}
	var req struct {
		Active *bool `json:"active" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	res := uc.DB.Model(&userModel.UserModel{}).Where("id = ?", id).Update("is_active", *req.Active)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update")
	}
	if res.RowsAffected == 0 {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "User not found")
	}
	return helpers.Success(c, "User updated", fiber.Map{"id": id, "active": *req.Active})
}

// PUT /api/admin/users/:id/capabilities — upsert the capability record
func (uc *UserController) SetCapabilities(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}
	var req struct {
		IsContentManager bool `json:"is_content_manager"`
		IsTrainerManager bool `json:"is_trainer_manager"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var user userModel.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "User not found")
	}

	var capability userModel.UserCapabilityModel
	err = uc.DB.Where("user_id = ?", id).First(&capability).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		capability = userModel.UserCapabilityModel{UserID: id}
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	capability.IsContentManager = req.IsContentManager
	capability.IsTrainerManager = req.IsTrainerManager
	if err := uc.DB.Save(&capability).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save capabilities")
	}
	return helpers.Success(c, "Capabilities updated", capability)
}

// PUT /api/users/profile — owner updates their own profile
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}
	var req struct {
		Phone   string `json:"phone" validate:"omitempty,max=20"`
		Gender  string `json:"gender" validate:"omitempty,oneof=male female other"`
		Address string `json:"address" validate:"omitempty,max=255"`
		About   string `json:"about" validate:"omitempty,max=500"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	var profile userModel.UserProfileModel
	err = uc.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = userModel.UserProfileModel{UserID: userID}
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	profile.Phone = req.Phone
	profile.Gender = req.Gender
	profile.Address = req.Address
	profile.About = req.About
	if err := uc.DB.Save(&profile).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save profile")
	}
	return helpers.Success(c, "Profile updated", profile)
}
