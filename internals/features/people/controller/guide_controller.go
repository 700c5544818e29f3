package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/people/model"
	helpers "campushub_backend/internals/helpers"
)

var validate = validator.New()

type GuideController struct {
	DB *gorm.DB
}

func NewGuideController(db *gorm.DB) *GuideController {
	return &GuideController{DB: db}
}

type guideRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=150"`
	Email        string `json:"email" validate:"required,email"`
	Designation  string `json:"designation"`
	DepartmentID string `json:"department_id" validate:"omitempty,uuid"`
	Status       *bool  `json:"status"`
}

func (gc *GuideController) Create(c *fiber.Ctx) error {
	var req guideRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var count int64
	gc.DB.Model(&model.GuideModel{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"Guide already exists with this email")
	}

	creatorID, _ := helpers.GetUserUUID(c)
	guide := model.GuideModel{
		Name:        strings.TrimSpace(req.Name),
		Email:       email,
		Designation: req.Designation,
		Status:      true,
		CreatorID:   creatorID,
	}
	if req.DepartmentID != "" {
		deptID, _ := uuid.Parse(req.DepartmentID)
		guide.DepartmentID = &deptID
	}
	if req.Status != nil {
		guide.Status = *req.Status
	}
	if err := gc.DB.Create(&guide).Error; err != nil {
		if duplicateErr(err) {
			return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
				"Guide already exists with this email")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create guide")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Guide created", guide)
}

func (gc *GuideController) List(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "created_at", "desc", helpers.AdminOpts)

	q := gc.DB.Model(&model.GuideModel{})
	if d := c.Query("department_id"); d != "" {
		q = q.Where("department_id = ?", d)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	var guides []model.GuideModel
	if err := q.Order("name ASC").Limit(p.Limit()).Offset(p.Offset()).Find(&guides).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", fiber.Map{
		"guides": guides,
		"meta":   helpers.BuildMeta(total, p),
	})
}

func (gc *GuideController) Update(c *fiber.Ctx) error {
	var guide model.GuideModel
	if err := gc.DB.First(&guide, "id = ?", c.Params("id")).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Guide not found")
	}

	var req guideRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	updates := map[string]interface{}{}
	if name := strings.TrimSpace(req.Name); name != "" {
		updates["name"] = name
	}
	if req.Designation != "" {
		updates["designation"] = req.Designation
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) > 0 {
		if err := gc.DB.Model(&guide).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update guide")
		}
	}
	return helpers.Success(c, "Guide updated", guide)
}

func (gc *GuideController) Delete(c *fiber.Ctx) error {
	res := gc.DB.Delete(&model.GuideModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete guide")
	}
	if res.RowsAffected == 0 {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Guide not found")
	}
	return helpers.Success(c, "Guide deleted", nil)
}

func duplicateErr(err error) bool {
	if err == nil {
		return false
	}
	return err == gorm.ErrDuplicatedKey ||
		strings.Contains(err.Error(), "duplicate key value") ||
		strings.Contains(err.Error(), "SQLSTATE 23505")
}
