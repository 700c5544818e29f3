package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/model"
	helpers "campushub_backend/internals/helpers"
)

type UGPGCourseController struct {
	DB *gorm.DB
}

func NewUGPGCourseController(db *gorm.DB) *UGPGCourseController {
	return &UGPGCourseController{DB: db}
}

type ugpgCourseRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=150"`
	Level        string `json:"level" validate:"omitempty,oneof=ug pg"`
	DepartmentID string `json:"department_id" validate:"omitempty,uuid"`
	Semesters    int    `json:"semesters" validate:"omitempty,min=1,max=12"`
	Status       *bool  `json:"status"`
}

func (uc *UGPGCourseController) Create(c *fiber.Ctx) error {
	var req ugpgCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	name := strings.TrimSpace(req.Name)
	var count int64
	uc.DB.Model(&model.UGPGCourseModel{}).Where("LOWER(name) = LOWER(?)", name).Count(&count)
	if count > 0 {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"Course already exists")
	}

	creatorID, _ := helpers.GetUserUUID(c)
	course := model.UGPGCourseModel{
		Name:      name,
		Level:     "ug",
		Semesters: 6,
		Status:    true,
		CreatorID: creatorID,
	}
	if req.Level != "" {
		course.Level = req.Level
	}
	if req.Semesters > 0 {
		course.Semesters = req.Semesters
	}
	if req.DepartmentID != "" {
		deptID, _ := uuid.Parse(req.DepartmentID)
		course.DepartmentID = &deptID
	}
	if req.Status != nil {
		course.Status = *req.Status
	}
	if err := uc.DB.Create(&course).Error; err != nil {
		if isUniqueViolation(err) {
			return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
				"Course already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create course")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Course created", course)
}

func (uc *UGPGCourseController) List(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "created_at", "desc", helpers.AdminOpts)

	q := uc.DB.Model(&model.UGPGCourseModel{})
	if l := c.Query("level"); l != "" {
		q = q.Where("level = ?", l)
	}
	if d := c.Query("department_id"); d != "" {
		q = q.Where("department_id = ?", d)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	var courses []model.UGPGCourseModel
	if err := q.Order("created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&courses).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", fiber.Map{
		"courses": courses,
		"meta":    helpers.BuildMeta(total, p),
	})
}

func (uc *UGPGCourseController) Update(c *fiber.Ctx) error {
	var course model.UGPGCourseModel
	if err := uc.DB.First(&course, "id = ?", c.Params("id")).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Course not found")
	}

	var req ugpgCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	updates := map[string]interface{}{}
	if name := strings.TrimSpace(req.Name); name != "" {
		updates["name"] = name
	}
	if req.Level != "" {
		updates["level"] = req.Level
	}
	if req.Semesters > 0 {
		updates["semesters"] = req.Semesters
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) > 0 {
		if err := uc.DB.Model(&course).Updates(updates).Error; err != nil {
			if isUniqueViolation(err) {
				return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
					"Course already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update course")
		}
	}
	return helpers.Success(c, "Course updated", course)
}

func (uc *UGPGCourseController) Delete(c *fiber.Ctx) error {
	res := uc.DB.Delete(&model.UGPGCourseModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete course")
	}
	if res.RowsAffected == 0 {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Course not found")
	}
	return helpers.Success(c, "Course deleted", nil)
}
