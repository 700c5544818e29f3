package controller

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	academicModel "campushub_backend/internals/features/academics/model"
	"campushub_backend/internals/features/exams/model"
	"campushub_backend/internals/features/exams/service"
	helpers "campushub_backend/internals/helpers"
)

type ResultController struct {
	DB *gorm.DB
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{DB: db}
}

type markEntry struct {
	SubjectID string  `json:"subject_id" validate:"required,uuid"`
	Obtained  float64 `json:"obtained" validate:"gte=0"`
}

type resultRequest struct {
	StudentID     string      `json:"student_id" validate:"required,uuid"`
	ExamSessionID string      `json:"exam_session_id" validate:"required,uuid"`
	Marks         []markEntry `json:"marks" validate:"required,min=1,dive"`
}

// Submit grades and stores a result. The (student, course, semester,
// exam session) scope is an upsert: resubmission replaces the earlier
// grading.
func (rc *ResultController) Submit(c *fiber.Ctx) error {
	var req resultRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	sessionID, _ := uuid.Parse(req.ExamSessionID)
	var session model.ExamSessionModel
	if err := rc.DB.First(&session, "id = ?", sessionID).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Exam session not found")
	}

	graded := make([]service.SubjectResult, 0, len(req.Marks))
	for _, m := range req.Marks {
		var subject academicModel.SubjectModel
		if err := rc.DB.First(&subject, "id = ?", m.SubjectID).Error; err != nil {
			return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound,
				"Subject not found: "+m.SubjectID)
		}
		cfg := service.SubjectConfig{
			SubjectID:    subject.ID.String(),
			Name:         subject.Name,
			MaxMarks:     subject.MaxMarks,
			PassingMarks: subject.PassingMarks,
		}
		// Marks for the session's exam type: supplementary exams may carry
		// a different max/passing pair than the regular one.
		if len(subject.ExamTypeMarks) > 0 {
			var overrides map[string]service.MarksOverride
			if err := sonic.Unmarshal(subject.ExamTypeMarks, &overrides); err == nil {
				cfg = cfg.ForExamType(overrides, session.ExamType)
			}
		}
		if m.Obtained > cfg.MaxMarks {
			return helpers.Error(c, fiber.StatusBadRequest,
				"Obtained marks exceed max marks for "+subject.Name)
		}
		graded = append(graded, service.GradeSubject(cfg, m.Obtained))
	}
	agg := service.AggregateResults(graded)

	subjectsJSON, err := sonic.Marshal(graded)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to encode result")
	}

	studentID, _ := uuid.Parse(req.StudentID)
	creatorID, _ := helpers.GetUserUUID(c)

	result := model.ResultModel{
		StudentID:     studentID,
		CourseID:      session.CourseID,
		Semester:      session.Semester,
		ExamSessionID: session.ID,
		Subjects:      datatypes.JSON(subjectsJSON),
		TotalObtained: agg.TotalObtained,
		TotalMax:      agg.TotalMax,
		Percentage:    agg.Percentage,
		Grade:         agg.Grade,
		IsPassed:      agg.IsPassed,
		CreatorID:     creatorID,
	}

	status := fiber.StatusCreated
	err = rc.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.ResultModel
		found := tx.Where("student_id = ? AND course_id = ? AND semester = ? AND exam_session_id = ?",
			studentID, session.CourseID, session.Semester, session.ID).
			First(&existing).Error
		if found == nil {
			status = fiber.StatusOK
			result.ID = existing.ID
			result.CreatedAt = existing.CreatedAt
			return tx.Save(&result).Error
		}
		if found != gorm.ErrRecordNotFound {
			return found
		}
		return tx.Create(&result).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to store result")
	}

	msg := "Result created"
	if status == fiber.StatusOK {
		msg = "Result updated"
	}
	return helpers.SuccessWithCode(c, status, msg, result)
}

func (rc *ResultController) List(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "created_at", "desc", helpers.AdminOpts)

	q := rc.DB.Model(&model.ResultModel{})
	if sid := c.Query("student_id"); sid != "" {
		q = q.Where("student_id = ?", sid)
	}
	if cid := c.Query("course_id"); cid != "" {
		q = q.Where("course_id = ?", cid)
	}
	if sem := c.QueryInt("semester"); sem > 0 {
		q = q.Where("semester = ?", sem)
	}
	if es := c.Query("exam_session_id"); es != "" {
		q = q.Where("exam_session_id = ?", es)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	var results []model.ResultModel
	if err := q.Order("created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&results).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", fiber.Map{
		"results": results,
		"meta":    helpers.BuildMeta(total, p),
	})
}

// Mine returns the authenticated student's own results.
func (rc *ResultController) Mine(c *fiber.Ctx) error {
	studentID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}
	var results []model.ResultModel
	if err := rc.DB.Where("student_id = ?", studentID).
		Order("created_at DESC").Find(&results).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", results)
}

func (rc *ResultController) Delete(c *fiber.Ctx) error {
	res := rc.DB.Delete(&model.ResultModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete result")
	}
	if res.RowsAffected == 0 {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Result not found")
	}
	return helpers.Success(c, "Result deleted", nil)
}
