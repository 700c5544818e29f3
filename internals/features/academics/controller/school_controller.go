package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/model"
	helpers "campushub_backend/internals/helpers"
)

type SchoolController struct {
	DB *gorm.DB
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db}
}

type schoolRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=200"`
	Address string `json:"address"`
	Status  *bool  `json:"status"`
}

func (sc *SchoolController) Create(c *fiber.Ctx) error {
	var req schoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	name := strings.TrimSpace(req.Name)
	var count int64
	sc.DB.Model(&model.SchoolModel{}).Where("LOWER(name) = LOWER(?)", name).Count(&count)
	if count > 0 {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"School already exists")
	}

	creatorID, _ := helpers.GetUserUUID(c)
	school := model.SchoolModel{Name: name, Address: req.Address, Status: true, CreatorID: creatorID}
	if req.Status != nil {
		school.Status = *req.Status
	}
	if err := sc.DB.Create(&school).Error; err != nil {
		if isUniqueViolation(err) {
			return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
				"School already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create school")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "School created", school)
}

func (sc *SchoolController) List(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "created_at", "desc", helpers.AdminOpts)

	q := sc.DB.Model(&model.SchoolModel{})
	if s := c.Query("q"); s != "" {
		q = q.Where("name ILIKE ?", "%"+s+"%")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	var schools []model.SchoolModel
	if err := q.Order("created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&schools).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", fiber.Map{
		"schools": schools,
		"meta":    helpers.BuildMeta(total, p),
	})
}

func (sc *SchoolController) Update(c *fiber.Ctx) error {
	var school model.SchoolModel
	if err := sc.DB.First(&school, "id = ?", c.Params("id")).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "School not found")
	}

	var req schoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	updates := map[string]interface{}{}
	if name := strings.TrimSpace(req.Name); name != "" {
		updates["name"] = name
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) > 0 {
		if err := sc.DB.Model(&school).Updates(updates).Error; err != nil {
			if isUniqueViolation(err) {
				return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
					"School already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update school")
		}
	}
	return helpers.Success(c, "School updated", school)
}

func (sc *SchoolController) Delete(c *fiber.Ctx) error {
	res := sc.DB.Delete(&model.SchoolModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete school")
	}
	if res.RowsAffected == 0 {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "School not found")
	}
	return helpers.Success(c, "School deleted", nil)
}
