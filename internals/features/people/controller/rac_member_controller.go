package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/people/model"
	helpers "campushub_backend/internals/helpers"
)

type RACMemberController struct {
	DB *gorm.DB
}

func NewRACMemberController(db *gorm.DB) *RACMemberController {
	return &RACMemberController{DB: db}
}

type racMemberRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=150"`
	Email        string `json:"email" validate:"required,email"`
	Role         string `json:"role"`
	DepartmentID string `json:"department_id" validate:"omitempty,uuid"`
	Status       *bool  `json:"status"`
}

func (rc *RACMemberController) Create(c *fiber.Ctx) error {
	var req racMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var count int64
	rc.DB.Model(&model.RACMemberModel{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"RAC member already exists with this email")
	}

	creatorID, _ := helpers.GetUserUUID(c)
	member := model.RACMemberModel{
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Role:      req.Role,
		Status:    true,
		CreatorID: creatorID,
	}
	if req.DepartmentID != "" {
		deptID, _ := uuid.Parse(req.DepartmentID)
		member.DepartmentID = &deptID
	}
	if req.Status != nil {
		member.Status = *req.Status
	}
	if err := rc.DB.Create(&member).Error; err != nil {
		if duplicateErr(err) {
			return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
				"RAC member already exists with this email")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create RAC member")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "RAC member created", member)
}

func (rc *RACMemberController) List(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "created_at", "desc", helpers.AdminOpts)

	q := rc.DB.Model(&model.RACMemberModel{})
	if d := c.Query("department_id"); d != "" {
		q = q.Where("department_id = ?", d)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	var members []model.RACMemberModel
	if err := q.Order("name ASC").Limit(p.Limit()).Offset(p.Offset()).Find(&members).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", fiber.Map{
		"members": members,
		"meta":    helpers.BuildMeta(total, p),
	})
}

func (rc *RACMemberController) Update(c *fiber.Ctx) error {
	var member model.RACMemberModel
	if err := rc.DB.First(&member, "id = ?", c.Params("id")).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "RAC member not found")
	}

	var req racMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	updates := map[string]interface{}{}
	if name := strings.TrimSpace(req.Name); name != "" {
		updates["name"] = name
	}
	if req.Role != "" {
		updates["role"] = req.Role
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) > 0 {
		if err := rc.DB.Model(&member).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update RAC member")
		}
	}
	return helpers.Success(c, "RAC member updated", member)
}

func (rc *RACMemberController) Delete(c *fiber.Ctx) error {
	res := rc.DB.Delete(&model.RACMemberModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete RAC member")
	}
	if res.RowsAffected == 0 {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "RAC member not found")
	}
	return helpers.Success(c, "RAC member deleted", nil)
}
