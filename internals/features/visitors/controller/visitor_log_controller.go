package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/visitors/model"
	helpers "campushub_backend/internals/helpers"
)

type VisitorLogController struct {
	DB *gorm.DB
}

func NewVisitorLogController(db *gorm.DB) *VisitorLogController {
	return &VisitorLogController{DB: db}
}

type visitorLogRequest struct {
	VisitorName string `json:"visitor_name" validate:"required,min=2,max=150"`
	Phone       string `json:"phone"`
	PurposeID   string `json:"purpose_id" validate:"omitempty,uuid"`
	MeetingID   string `json:"meeting_type_id" validate:"omitempty,uuid"`
	WhomToMeet  string `json:"whom_to_meet"`
	Note        string `json:"note" validate:"max=2000"`
}

// CheckIn opens a visit; check-in time is server-side.
func (vc *VisitorLogController) CheckIn(c *fiber.Ctx) error {
	var req visitorLogRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	creatorID, _ := helpers.GetUserUUID(c)
	entry := model.VisitorLogModel{
		VisitorName: strings.TrimSpace(req.VisitorName),
		Phone:       strings.TrimSpace(req.Phone),
		WhomToMeet:  strings.TrimSpace(req.WhomToMeet),
		Note:        req.Note,
		CheckInAt:   time.Now(),
		CreatorID:   creatorID,
	}
	if req.PurposeID != "" {
		pid, _ := uuid.Parse(req.PurposeID)
		entry.PurposeID = &pid
	}
	if req.MeetingID != "" {
		mid, _ := uuid.Parse(req.MeetingID)
		entry.MeetingID = &mid
	}
	if err := vc.DB.Create(&entry).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record visit")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Visitor checked in", entry)
}

// CheckOut closes an open visit. Idempotent check: closing twice is a 409.
func (vc *VisitorLogController) CheckOut(c *fiber.Ctx) error {
	var entry model.VisitorLogModel
	if err := vc.DB.First(&entry, "id = ?", c.Params("id")).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Visit not found")
	}
	if entry.CheckOutAt != nil {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"Visitor already checked out")
	}
	now := time.Now()
	if err := vc.DB.Model(&entry).Update("check_out_at", now).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record check-out")
	}
	entry.CheckOutAt = &now
	return helpers.Success(c, "Visitor checked out", entry)
}

func (vc *VisitorLogController) List(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "check_in_at", "desc", helpers.AdminOpts)

	q := vc.DB.Model(&model.VisitorLogModel{}).Preload("Purpose").Preload("MeetingType")
	if d := c.Query("date"); d != "" {
		day, err := time.Parse("2006-01-02", d)
		if err != nil {
			return helpers.Error(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		q = q.Where("check_in_at >= ? AND check_in_at < ?", day, day.AddDate(0, 0, 1))
	}
	if c.Query("open") == "true" {
		q = q.Where("check_out_at IS NULL")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	var entries []model.VisitorLogModel
	if err := q.Order("check_in_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&entries).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", fiber.Map{
		"visits": entries,
		"meta":   helpers.BuildMeta(total, p),
	})
}

func (vc *VisitorLogController) Delete(c *fiber.Ctx) error {
	res := vc.DB.Delete(&model.VisitorLogModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete visit")
	}
	if res.RowsAffected == 0 {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Visit not found")
	}
	return helpers.Success(c, "Visit deleted", nil)
}
