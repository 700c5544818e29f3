package controller

import (
	"bytes"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/model"
	"campushub_backend/internals/features/academics/service"
	helpers "campushub_backend/internals/helpers"
)

type BatchController struct {
	DB *gorm.DB
}

func NewBatchController(db *gorm.DB) *BatchController {
	return &BatchController{DB: db}
}

type batchRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	DepartmentID string `json:"department_id" validate:"required,uuid"`
	Status       *bool  `json:"status"`
}

func (bc *BatchController) Create(c *fiber.Ctx) error {
	var req batchRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	deptID, _ := uuid.Parse(req.DepartmentID)
	var dept model.DepartmentModel
	if err := bc.DB.First(&dept, "id = ?", deptID).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Department not found")
	}

	name := strings.TrimSpace(req.Name)
	var count int64
	bc.DB.Model(&model.BatchModel{}).
		Where("department_id = ? AND LOWER(name) = LOWER(?)", deptID, name).Count(&count)
	if count > 0 {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"Batch already exists in this department")
	}

	creatorID, _ := helpers.GetUserUUID(c)
	batch := model.BatchModel{Name: name, DepartmentID: deptID, Status: true, CreatorID: creatorID}
	if req.Status != nil {
		batch.Status = *req.Status
	}
	if err := bc.DB.Create(&batch).Error; err != nil {
		if isUniqueViolation(err) {
			return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
				"Batch already exists in this department")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create batch")
	}
	batch.Department = &dept
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Batch created", batch)
}

func (bc *BatchController) List(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "created_at", "desc", helpers.AdminOpts)

	q := bc.DB.Model(&model.BatchModel{}).Preload("Department")
	if d := c.Query("department_id"); d != "" {
		q = q.Where("department_id = ?", d)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	var batches []model.BatchModel
	if err := q.Order("created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&batches).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", fiber.Map{
		"batches": batches,
		"meta":    helpers.BuildMeta(total, p),
	})
}

// GET /api/admin/batches/export — CSV download for the admin office.
func (bc *BatchController) ExportCSV(c *fiber.Ctx) error {
	var batches []model.BatchModel
	if err := bc.DB.Preload("Department").Order("created_at ASC").Find(&batches).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	var buf bytes.Buffer
	if err := service.WriteBatchCSV(&buf, batches); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to render CSV")
	}

	filename := "batches-" + time.Now().Format("20060102") + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

func (bc *BatchController) Update(c *fiber.Ctx) error {
	var batch model.BatchModel
	if err := bc.DB.First(&batch, "id = ?", c.Params("id")).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Batch not found")
	}

	var req batchRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	updates := map[string]interface{}{}
	if name := strings.TrimSpace(req.Name); name != "" {
		updates["name"] = name
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) > 0 {
		if err := bc.DB.Model(&batch).Updates(updates).Error; err != nil {
			if isUniqueViolation(err) {
				return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
					"Batch already exists in this department")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update batch")
		}
	}
	return helpers.Success(c, "Batch updated", batch)
}

func (bc *BatchController) Delete(c *fiber.Ctx) error {
	res := bc.DB.Delete(&model.BatchModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete batch")
	}
	if res.RowsAffected == 0 {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Batch not found")
	}
	return helpers.Success(c, "Batch deleted", nil)
}
