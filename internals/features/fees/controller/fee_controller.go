package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/fees/model"
	"campushub_backend/internals/features/fees/service"
	helpers "campushub_backend/internals/helpers"
)

var validate = validator.New()

/* =========================================================
   Fee types
========================================================= */

type FeeTypeController struct {
	DB *gorm.DB
}

func NewFeeTypeController(db *gorm.DB) *FeeTypeController {
	return &FeeTypeController{DB: db}
}

type feeTypeRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=100"`
	Status *bool  `json:"status"`
}

func (fc *FeeTypeController) Create(c *fiber.Ctx) error {
	var req feeTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	name := strings.TrimSpace(req.Name)
	var count int64
	fc.DB.Model(&model.FeeTypeModel{}).Where("LOWER(name) = LOWER(?)", name).Count(&count)
	if count > 0 {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"Fee type already exists")
	}

	creatorID, _ := helpers.GetUserUUID(c)
	ft := model.FeeTypeModel{Name: name, Status: true, CreatorID: creatorID}
	if req.Status != nil {
		ft.Status = *req.Status
	}
	if err := fc.DB.Create(&ft).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create fee type")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Fee type created", ft)
}

func (fc *FeeTypeController) List(c *fiber.Ctx) error {
	var types []model.FeeTypeModel
	if err := fc.DB.Order("name ASC").Find(&types).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", types)
}

func (fc *FeeTypeController) Update(c *fiber.Ctx) error {
	var ft model.FeeTypeModel
	if err := fc.DB.First(&ft, "id = ?", c.Params("id")).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Fee type not found")
	}
	var req feeTypeRequest
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
		if err := fc.DB.Model(&ft).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update fee type")
		}
	}
	return helpers.Success(c, "Fee type updated", ft)
}

func (fc *FeeTypeController) Delete(c *fiber.Ctx) error {
	res := fc.DB.Delete(&model.FeeTypeModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete fee type")
	}
	if res.RowsAffected == 0 {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Fee type not found")
	}
	return helpers.Success(c, "Fee type deleted", nil)
}

/* =========================================================
   Fee assignments
========================================================= */

type FeeAssignmentController struct {
	DB *gorm.DB
}

func NewFeeAssignmentController(db *gorm.DB) *FeeAssignmentController {
	return &FeeAssignmentController{DB: db}
}

type feeAssignmentRequest struct {
	FeeTypeID string     `json:"fee_type_id" validate:"required,uuid"`
	CourseID  string     `json:"course_id" validate:"required,uuid"`
	SessionID string     `json:"session_id" validate:"required,uuid"`
	Semester  int        `json:"semester" validate:"required,min=1,max=12"`
	Amount    float64    `json:"amount" validate:"required,gt=0"`
	DueDate   *time.Time `json:"due_date"`
	Status    *bool      `json:"status"`
}

func (fc *FeeAssignmentController) Create(c *fiber.Ctx) error {
	var req feeAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	feeTypeID, _ := uuid.Parse(req.FeeTypeID)
	courseID, _ := uuid.Parse(req.CourseID)
	sessionID, _ := uuid.Parse(req.SessionID)

	var feeType model.FeeTypeModel
	if err := fc.DB.First(&feeType, "id = ?", feeTypeID).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Fee type not found")
	}

	var count int64
	fc.DB.Model(&model.FeeAssignmentModel{}).
		Where("fee_type_id = ? AND course_id = ? AND session_id = ? AND semester = ?",
			feeTypeID, courseID, sessionID, req.Semester).Count(&count)
	if count > 0 {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"Fee assignment already exists for this scope")
	}

	creatorID, _ := helpers.GetUserUUID(c)
	fa := model.FeeAssignmentModel{
		FeeTypeID: feeTypeID,
		CourseID:  courseID,
		SessionID: sessionID,
		Semester:  req.Semester,
		Amount:    req.Amount,
		DueDate:   req.DueDate,
		Status:    true,
		CreatorID: creatorID,
	}
	if req.Status != nil {
		fa.Status = *req.Status
	}
	if err := fc.DB.Create(&fa).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create fee assignment")
	}
	fa.FeeType = &feeType
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Fee assignment created", fa)
}

func (fc *FeeAssignmentController) List(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "created_at", "desc", helpers.AdminOpts)

	q := fc.DB.Model(&model.FeeAssignmentModel{}).Preload("FeeType")
	if cid := c.Query("course_id"); cid != "" {
		q = q.Where("course_id = ?", cid)
	}
	if sid := c.Query("session_id"); sid != "" {
		q = q.Where("session_id = ?", sid)
	}
	if sem := c.QueryInt("semester"); sem > 0 {
		q = q.Where("semester = ?", sem)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	var assignments []model.FeeAssignmentModel
	if err := q.Order("created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&assignments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", fiber.Map{
		"assignments": assignments,
		"meta":        helpers.BuildMeta(total, p),
	})
}

func (fc *FeeAssignmentController) Update(c *fiber.Ctx) error {
	var fa model.FeeAssignmentModel
	if err := fc.DB.First(&fa, "id = ?", c.Params("id")).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Fee assignment not found")
	}
	var req feeAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	updates := map[string]interface{}{}
	if req.Amount > 0 {
		updates["amount"] = req.Amount
	}
	if req.DueDate != nil {
		updates["due_date"] = req.DueDate
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) > 0 {
		if err := fc.DB.Model(&fa).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update fee assignment")
		}
	}
	return helpers.Success(c, "Fee assignment updated", fa)
}

func (fc *FeeAssignmentController) Delete(c *fiber.Ctx) error {
	res := fc.DB.Delete(&model.FeeAssignmentModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete fee assignment")
	}
	if res.RowsAffected == 0 {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Fee assignment not found")
	}
	return helpers.Success(c, "Fee assignment deleted", nil)
}

/* =========================================================
   Fee payments
========================================================= */

type FeePaymentController struct {
	DB *gorm.DB
}

func NewFeePaymentController(db *gorm.DB) *FeePaymentController {
	return &FeePaymentController{DB: db}
}

type feePaymentRequest struct {
	AssignmentID string  `json:"assignment_id" validate:"required,uuid"`
	StudentID    string  `json:"student_id" validate:"required,uuid"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	Mode         string  `json:"mode" validate:"omitempty,oneof=cash card upi transfer"`
	Note         string  `json:"note" validate:"max=2000"`
}

func (fc *FeePaymentController) Record(c *fiber.Ctx) error {
	var req feePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	assignmentID, _ := uuid.Parse(req.AssignmentID)
	studentID, _ := uuid.Parse(req.StudentID)

	var assignment model.FeeAssignmentModel
	if err := fc.DB.First(&assignment, "id = ?", assignmentID).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Fee assignment not found")
	}

	mode := req.Mode
	if mode == "" {
		mode = "cash"
	}
	receivedBy, _ := helpers.GetUserUUID(c)

	payment, err := service.RecordPayment(fc.DB, &assignment, studentID, req.Amount, mode, req.Note, receivedBy, time.Now())
	switch {
	case errors.Is(err, service.ErrOverpayment):
		return helpers.ErrorWithCode(c, fiber.StatusBadRequest, constants.CodeValidationError,
			"Payment exceeds the outstanding balance")
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment")
	}

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Payment recorded", payment)
}

// Outstanding reports the unpaid remainder for a student on an assignment.
func (fc *FeePaymentController) Outstanding(c *fiber.Ctx) error {
	assignmentID := c.Query("assignment_id")
	studentID := c.Query("student_id")
	if assignmentID == "" || studentID == "" {
		return helpers.ErrorWithCode(c, fiber.StatusBadRequest, constants.CodeMissingRequiredFields,
			"assignment_id and student_id are required")
	}

	var assignment model.FeeAssignmentModel
	if err := fc.DB.First(&assignment, "id = ?", assignmentID).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Fee assignment not found")
	}
	sid, err := uuid.Parse(studentID)
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "student_id must be a UUID")
	}
	due, err := service.Outstanding(fc.DB, &assignment, sid)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", fiber.Map{
		"assignment_id": assignment.ID,
		"student_id":    sid,
		"total":         assignment.Amount,
		"outstanding":   due,
	})
}

func (fc *FeePaymentController) List(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "created_at", "desc", helpers.AdminOpts)

	q := fc.DB.Model(&model.FeePaymentModel{}).Preload("Assignment").Preload("Assignment.FeeType")
	if sid := c.Query("student_id"); sid != "" {
		q = q.Where("student_id = ?", sid)
	}
	if aid := c.Query("assignment_id"); aid != "" {
		q = q.Where("assignment_id = ?", aid)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	var payments []model.FeePaymentModel
	if err := q.Order("created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&payments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", fiber.Map{
		"payments": payments,
		"meta":     helpers.BuildMeta(total, p),
	})
}
