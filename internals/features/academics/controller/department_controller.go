package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/model"
	helpers "campushub_backend/internals/helpers"
)

var validate = validator.New()

type DepartmentController struct {
	DB *gorm.DB
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: db}
}

type departmentRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=150"`
	Status *bool  `json:"status"`
}

func (dc *DepartmentController) Create(c *fiber.Ctx) error {
	var req departmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	name := strings.TrimSpace(req.Name)
	var count int64
	dc.DB.Model(&model.DepartmentModel{}).Where("LOWER(name) = LOWER(?)", name).Count(&count)
	if count > 0 {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"Department already exists")
	}

	creatorID, _ := helpers.GetUserUUID(c)
	dept := model.DepartmentModel{Name: name, Status: true, CreatorID: creatorID}
	if req.Status != nil {
		dept.Status = *req.Status
	}
	if err := dc.DB.Create(&dept).Error; err != nil {
		// The unique index is the backstop for concurrent creates.
		if isUniqueViolation(err) {
			return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
				"Department already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create department")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Department created", dept)
}

func (dc *DepartmentController) List(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "created_at", "desc", helpers.AdminOpts)

	q := dc.DB.Model(&model.DepartmentModel{})
	if s := c.Query("q"); s != "" {
		q = q.Where("name ILIKE ?", "%"+s+"%")
	}
	if a := c.Query("active"); a != "" {
		q = q.Where("status = ?", a == "true")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	order, err := p.SafeOrderClause(map[string]string{
		"created_at": "created_at",
		"name":       "name",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	var depts []model.DepartmentModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&depts).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", fiber.Map{
		"departments": depts,
		"meta":        helpers.BuildMeta(total, p),
	})
}

func (dc *DepartmentController) Detail(c *fiber.Ctx) error {
	var dept model.DepartmentModel
	if err := dc.DB.First(&dept, "id = ?", c.Params("id")).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Department not found")
	}
	return helpers.Success(c, "OK", dept)
}

func (dc *DepartmentController) Update(c *fiber.Ctx) error {
	var dept model.DepartmentModel
	if err := dc.DB.First(&dept, "id = ?", c.Params("id")).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Department not found")
	}

	var req departmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	updates := map[string]interface{}{}
	if name := strings.TrimSpace(req.Name); name != "" && !strings.EqualFold(name, dept.Name) {
		var count int64
		dc.DB.Model(&model.DepartmentModel{}).
			Where("LOWER(name) = LOWER(?) AND id <> ?", name, dept.ID).Count(&count)
		if count > 0 {
			return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
				"Department already exists")
		}
		updates["name"] = name
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) > 0 {
		if err := dc.DB.Model(&dept).Updates(updates).Error; err != nil {
			if isUniqueViolation(err) {
				return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
					"Department already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update department")
		}
	}
	return helpers.Success(c, "Department updated", dept)
}

func (dc *DepartmentController) Delete(c *fiber.Ctx) error {
	res := dc.DB.Delete(&model.DepartmentModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete department")
	}
	if res.RowsAffected == 0 {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Department not found")
	}
	return helpers.Success(c, "Department deleted", nil)
}

// isUniqueViolation matches Postgres unique-index errors surfaced by GORM.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return err == gorm.ErrDuplicatedKey ||
		strings.Contains(err.Error(), "duplicate key value") ||
		strings.Contains(err.Error(), "SQLSTATE 23505")
}
