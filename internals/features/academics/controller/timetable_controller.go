package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/model"
	helpers "campushub_backend/internals/helpers"
)

type TimetableController struct {
	DB *gorm.DB
}

func NewTimetableController(db *gorm.DB) *TimetableController {
	return &TimetableController{DB: db}
}

type timetableRequest struct {
	CourseID  string         `json:"course_id" validate:"required,uuid"`
	Semester  int            `json:"semester" validate:"required,min=1,max=12"`
	SessionID string         `json:"session_id" validate:"required,uuid"`
	Slots     datatypes.JSON `json:"slots" validate:"required"`
	Status    *bool          `json:"status"`
}

func (tc *TimetableController) Create(c *fiber.Ctx) error {
	var req timetableRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	courseID, _ := uuid.Parse(req.CourseID)
	sessionID, _ := uuid.Parse(req.SessionID)

	var count int64
	tc.DB.Model(&model.TimetableModel{}).
		Where("course_id = ? AND semester = ? AND session_id = ?", courseID, req.Semester, sessionID).
		Count(&count)
	if count > 0 {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"Timetable already exists for this course, semester and session")
	}

	creatorID, _ := helpers.GetUserUUID(c)
	tt := model.TimetableModel{
		CourseID:  courseID,
		Semester:  req.Semester,
		SessionID: sessionID,
		Slots:     req.Slots,
		Status:    true,
		CreatorID: creatorID,
	}
	if req.Status != nil {
		tt.Status = *req.Status
	}
	if err := tc.DB.Create(&tt).Error; err != nil {
		if isUniqueViolation(err) {
			return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
				"Timetable already exists for this course, semester and session")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create timetable")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Timetable created", tt)
}

func (tc *TimetableController) List(c *fiber.Ctx) error {
	q := tc.DB.Model(&model.TimetableModel{})
	if cid := c.Query("course_id"); cid != "" {
		q = q.Where("course_id = ?", cid)
	}
	if sem := c.QueryInt("semester"); sem > 0 {
		q = q.Where("semester = ?", sem)
	}
	if sid := c.Query("session_id"); sid != "" {
		q = q.Where("session_id = ?", sid)
	}
	var timetables []model.TimetableModel
	if err := q.Order("created_at DESC").Find(&timetables).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", timetables)
}

func (tc *TimetableController) Update(c *fiber.Ctx) error {
	var tt model.TimetableModel
	if err := tc.DB.First(&tt, "id = ?", c.Params("id")).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Timetable not found")
	}

	var req timetableRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	updates := map[string]interface{}{}
	if len(req.Slots) > 0 {
		updates["slots"] = req.Slots
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) > 0 {
		if err := tc.DB.Model(&tt).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update timetable")
		}
	}
	return helpers.Success(c, "Timetable updated", tt)
}

func (tc *TimetableController) Delete(c *fiber.Ctx) error {
	res := tc.DB.Delete(&model.TimetableModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete timetable")
	}
	if res.RowsAffected == 0 {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Timetable not found")
	}
	return helpers.Success(c, "Timetable deleted", nil)
}
