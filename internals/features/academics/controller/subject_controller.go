package controller

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/model"
	helpers "campushub_backend/internals/helpers"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

type examTypeMarksEntry struct {
	MaxMarks     float64 `json:"max_marks" validate:"gte=0"`
	PassingMarks float64 `json:"passing_marks" validate:"gte=0"`
}

type subjectRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=150"`
	Code         string   `json:"code"`
	CourseID     string   `json:"course_id" validate:"required,uuid"`
	Semester     int      `json:"semester" validate:"required,min=1,max=12"`
	MaxMarks     *float64 `json:"max_marks" validate:"omitempty,gt=0"`
	PassingMarks *float64 `json:"passing_marks" validate:"omitempty,gte=0"`
	// Optional overrides keyed by exam type (regular | supplementary).
	ExamTypeMarks map[string]examTypeMarksEntry `json:"exam_type_marks" validate:"omitempty,dive"`
	Status        *bool                         `json:"status"`
}

// encodeExamTypeMarks validates and serializes the override map. A nil
// map means the field was absent from the request.
func encodeExamTypeMarks(m map[string]examTypeMarksEntry) (datatypes.JSON, string) {
	for examType, entry := range m {
		if entry.MaxMarks > 0 && entry.PassingMarks > entry.MaxMarks {
			return nil, "passing_marks cannot exceed max_marks for exam type " + examType
		}
	}
	raw, err := sonic.Marshal(m)
	if err != nil {
		return nil, "invalid exam_type_marks"
	}
	return datatypes.JSON(raw), ""
}

func (sc *SubjectController) Create(c *fiber.Ctx) error {
	var req subjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	courseID, _ := uuid.Parse(req.CourseID)
	name := strings.TrimSpace(req.Name)

	// A subject name may repeat across courses or semesters, never within
	// the same course+semester.
	var count int64
	sc.DB.Model(&model.SubjectModel{}).
		Where("course_id = ? AND semester = ? AND LOWER(name) = LOWER(?)", courseID, req.Semester, name).
		Count(&count)
	if count > 0 {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"Subject already exists for this course and semester")
	}

	creatorID, _ := helpers.GetUserUUID(c)
	subject := model.SubjectModel{
		Name:      name,
		NameKey:   strings.ToLower(name),
		Code:      strings.TrimSpace(req.Code),
		CourseID:  courseID,
		Semester:  req.Semester,
		MaxMarks:  100,
		Status:    true,
		CreatorID: creatorID,
	}
	if req.MaxMarks != nil {
		subject.MaxMarks = *req.MaxMarks
	}
	if req.PassingMarks != nil {
		if *req.PassingMarks > subject.MaxMarks {
			return helpers.Error(c, fiber.StatusBadRequest, "passing_marks cannot exceed max_marks")
		}
		subject.PassingMarks = *req.PassingMarks
	}
	if req.ExamTypeMarks != nil {
		encoded, msg := encodeExamTypeMarks(req.ExamTypeMarks)
		if msg != "" {
			return helpers.Error(c, fiber.StatusBadRequest, msg)
		}
		subject.ExamTypeMarks = encoded
	}
	if req.Status != nil {
		subject.Status = *req.Status
	}
	if err := sc.DB.Create(&subject).Error; err != nil {
		if isUniqueViolation(err) {
			return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
				"Subject already exists for this course and semester")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create subject")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Subject created", subject)
}

func (sc *SubjectController) List(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "created_at", "desc", helpers.AdminOpts)

	q := sc.DB.Model(&model.SubjectModel{})
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
	var subjects []model.SubjectModel
	if err := q.Order("semester ASC, name ASC").Limit(p.Limit()).Offset(p.Offset()).Find(&subjects).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", fiber.Map{
		"subjects": subjects,
		"meta":     helpers.BuildMeta(total, p),
	})
}

func (sc *SubjectController) Update(c *fiber.Ctx) error {
	var subject model.SubjectModel
	if err := sc.DB.First(&subject, "id = ?", c.Params("id")).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Subject not found")
	}

	var req subjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	updates := map[string]interface{}{}
	if name := strings.TrimSpace(req.Name); name != "" && !strings.EqualFold(name, subject.Name) {
		var count int64
		sc.DB.Model(&model.SubjectModel{}).
			Where("course_id = ? AND semester = ? AND LOWER(name) = LOWER(?) AND id <> ?",
				subject.CourseID, subject.Semester, name, subject.ID).
			Count(&count)
		if count > 0 {
			return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
				"Subject already exists for this course and semester")
		}
		updates["name"] = name
		updates["name_key"] = strings.ToLower(name)
	}
	if req.Code != "" {
		updates["code"] = strings.TrimSpace(req.Code)
	}
	if req.MaxMarks != nil {
		updates["max_marks"] = *req.MaxMarks
	}
	if req.PassingMarks != nil {
		updates["passing_marks"] = *req.PassingMarks
	}
	if req.ExamTypeMarks != nil {
		encoded, msg := encodeExamTypeMarks(req.ExamTypeMarks)
		if msg != "" {
			return helpers.Error(c, fiber.StatusBadRequest, msg)
		}
		updates["exam_type_marks"] = encoded
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) > 0 {
		if err := sc.DB.Model(&subject).Updates(updates).Error; err != nil {
			if isUniqueViolation(err) {
				return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
					"Subject already exists for this course and semester")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update subject")
		}
	}
	return helpers.Success(c, "Subject updated", subject)
}

func (sc *SubjectController) Delete(c *fiber.Ctx) error {
	res := sc.DB.Delete(&model.SubjectModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete subject")
	}
	if res.RowsAffected == 0 {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Subject not found")
	}
	return helpers.Success(c, "Subject deleted", nil)
}
