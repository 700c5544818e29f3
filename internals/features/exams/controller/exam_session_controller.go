package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	academicModel "campushub_backend/internals/features/academics/model"
	"campushub_backend/internals/features/exams/model"
	helpers "campushub_backend/internals/helpers"
)

var validate = validator.New()

type ExamSessionController struct {
	DB *gorm.DB
}

func NewExamSessionController(db *gorm.DB) *ExamSessionController {
	return &ExamSessionController{DB: db}
}

type examSessionRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=150"`
	SubjectID string `json:"subject_id" validate:"required,uuid"`
	ExamDate  string `json:"exam_date" validate:"required"` // YYYY-MM-DD
	ExamType  string `json:"exam_type" validate:"omitempty,oneof=regular supplementary"`
	Status    *bool  `json:"status"`
}

func (ec *ExamSessionController) Create(c *fiber.Ctx) error {
	var req examSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	examDate, err := time.Parse("2006-01-02", req.ExamDate)
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "exam_date must be YYYY-MM-DD")
	}

	subjectID, _ := uuid.Parse(req.SubjectID)
	var subject academicModel.SubjectModel
	if err := ec.DB.First(&subject, "id = ?", subjectID).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Subject not found")
	}

	// One session per subject per day.
	var count int64
	ec.DB.Model(&model.ExamSessionModel{}).
		Where("subject_id = ? AND exam_date = ?", subjectID, examDate).Count(&count)
	if count > 0 {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"Exam session already exists for this subject and date")
	}

	creatorID, _ := helpers.GetUserUUID(c)
	session := model.ExamSessionModel{
		Name:      strings.TrimSpace(req.Name),
		SubjectID: subjectID,
		CourseID:  subject.CourseID,
		Semester:  subject.Semester,
		ExamDate:  examDate,
		ExamType:  "regular",
		Status:    true,
		CreatorID: creatorID,
	}
	if req.ExamType != "" {
		session.ExamType = req.ExamType
	}
	if req.Status != nil {
		session.Status = *req.Status
	}
	if err := ec.DB.Create(&session).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value") || strings.Contains(err.Error(), "SQLSTATE 23505") {
			return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
				"Exam session already exists for this subject and date")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create exam session")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Exam session created", session)
}

func (ec *ExamSessionController) List(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "exam_date", "desc", helpers.AdminOpts)

	q := ec.DB.Model(&model.ExamSessionModel{})
	if sid := c.Query("subject_id"); sid != "" {
		q = q.Where("subject_id = ?", sid)
	}
	if cid := c.Query("course_id"); cid != "" {
		q = q.Where("course_id = ?", cid)
	}
	if sem := c.QueryInt("semester"); sem > 0 {
		q = q.Where("semester = ?", sem)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	var sessions []model.ExamSessionModel
	if err := q.Order("exam_date DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&sessions).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", fiber.Map{
		"exam_sessions": sessions,
		"meta":          helpers.BuildMeta(total, p),
	})
}

func (ec *ExamSessionController) Update(c *fiber.Ctx) error {
	var session model.ExamSessionModel
	if err := ec.DB.First(&session, "id = ?", c.Params("id")).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Exam session not found")
	}

	var req examSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	updates := map[string]interface{}{}
	if name := strings.TrimSpace(req.Name); name != "" {
		updates["name"] = name
	}
	if req.ExamDate != "" {
		examDate, err := time.Parse("2006-01-02", req.ExamDate)
		if err != nil {
			return helpers.Error(c, fiber.StatusBadRequest, "exam_date must be YYYY-MM-DD")
		}
		var count int64
		ec.DB.Model(&model.ExamSessionModel{}).
			Where("subject_id = ? AND exam_date = ? AND id <> ?", session.SubjectID, examDate, session.ID).
			Count(&count)
		if count > 0 {
			return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
				"Exam session already exists for this subject and date")
		}
		updates["exam_date"] = examDate
	}
	if req.ExamType != "" {
		updates["exam_type"] = req.ExamType
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) > 0 {
		if err := ec.DB.Model(&session).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update exam session")
		}
	}
	return helpers.Success(c, "Exam session updated", session)
}

func (ec *ExamSessionController) Delete(c *fiber.Ctx) error {
	res := ec.DB.Delete(&model.ExamSessionModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete exam session")
	}
	if res.RowsAffected == 0 {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Exam session not found")
	}
	return helpers.Success(c, "Exam session deleted", nil)
}
