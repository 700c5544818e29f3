package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	courseModel "campushub_backend/internals/features/courses/course/model"
	progressModel "campushub_backend/internals/features/courses/progress/model"
	helpers "campushub_backend/internals/helpers"
)

var validate = validator.New()

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

type courseRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=200"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Category    string   `json:"category" validate:"omitempty,max=100"`
	Language    string   `json:"language" validate:"omitempty,max=50"`
	Tags        []string `json:"tags"`
}

// POST /api/courses
func (cc *CourseController) Create(c *fiber.Ctx) error {
	creatorID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}

	var req courseRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	var existing courseModel.CourseModel
	if err := cc.DB.Where("title = ?", req.Title).First(&existing).Error; err == nil {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"Course with this title already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	course := courseModel.CourseModel{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Language:    req.Language,
		Tags:        req.Tags,
		Status:      courseModel.StatusDraft,
		CreatorID:   creatorID,
	}
	if err := cc.DB.Create(&course).Error; err != nil {
		// unique index backstop for concurrent writes
		if isUniqueViolation(err) {
			return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
				"Course with this title already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create course")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Course created", course)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return err == gorm.ErrDuplicatedKey ||
		strings.Contains(err.Error(), "duplicate key value") ||
		strings.Contains(err.Error(), "SQLSTATE 23505")
}

// GET /api/courses — published catalog with filters + pagination
func (cc *CourseController) List(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "created_at", "desc", helpers.DefaultOpts)

	q := cc.DB.Model(&courseModel.CourseModel{}).Where("status = ?", courseModel.StatusPublished)
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		q = q.Where("category = ?", cat)
	}
	if lang := strings.TrimSpace(c.Query("language")); lang != "" {
		q = q.Where("language = ?", lang)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	var courses []courseModel.CourseModel
	if err := q.Order("created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&courses).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	return helpers.Success(c, "OK", fiber.Map{
		"courses": courses,
		"meta":    helpers.BuildMeta(total, p),
	})
}

// GET /api/courses/mine — the instructor's own courses, with computed stats
func (cc *CourseController) Mine(c *fiber.Ctx) error {
	creatorID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}
	var courses []courseModel.CourseModel
	if err := cc.DB.Where("creator_id = ?", creatorID).Order("created_at DESC").Find(&courses).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	type withStats struct {
		courseModel.CourseModel
		EnrolledCount int     `json:"enrolled_count"`
		Revenue       float64 `json:"revenue"`
	}
	out := make([]withStats, 0, len(courses))
	for _, crs := range courses {
		n := len(crs.EnrolledUserIDs)
		out = append(out, withStats{
			CourseModel:   crs,
			EnrolledCount: n,
			Revenue:       float64(n) * crs.Price,
		})
	}
	return helpers.Success(c, "OK", out)
}

// GET /api/courses/:id — full content tree + total duration
func (cc *CourseController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course id")
	}

	var course courseModel.CourseModel
	if err := cc.DB.First(&course, "id = ?", id).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Course not found")
	}

	var sections []courseModel.SectionModel
	if err := cc.DB.Where("course_id = ?", id).Order("position ASC").Find(&sections).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	type sectionTree struct {
		courseModel.SectionModel
		Subsections []courseModel.SubsectionModel `json:"subsections"`
	}
	tree := make([]sectionTree, 0, len(sections))
	totalDuration := 0
	for _, sec := range sections {
		var subs []courseModel.SubsectionModel
		if err := cc.DB.Where("section_id = ?", sec.ID).Order("position ASC").Find(&subs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "DB error")
		}
		for _, s := range subs {
			totalDuration += s.DurationSec
		}
		tree = append(tree, sectionTree{SectionModel: sec, Subsections: subs})
	}

	return helpers.Success(c, "OK", fiber.Map{
		"course":             course,
		"sections":           tree,
		"total_duration_sec": totalDuration,
		"enrolled_count":     len(course.EnrolledUserIDs),
	})
}

// PUT /api/courses/:id
func (cc *CourseController) Update(c *fiber.Ctx) error {
	course, err := cc.ownedCourse(c)
	if err != nil {
		return err
	}

	var req struct {
		Title       *string  `json:"title" validate:"omitempty,min=3,max=200"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price" validate:"omitempty,gte=0"`
		Category    *string  `json:"category"`
		Language    *string  `json:"language"`
		Status      *string  `json:"status" validate:"omitempty,oneof=draft published"`
		Tags        []string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	if req.Title != nil {
		var dup courseModel.CourseModel
		if err := cc.DB.Where("title = ? AND id <> ?", *req.Title, course.ID).First(&dup).Error; err == nil {
			return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
				"Course with this title already exists")
		}
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.Category != nil {
		course.Category = *req.Category
	}
	if req.Language != nil {
		course.Language = *req.Language
	}
	if req.Status != nil {
		course.Status = *req.Status
	}
	if req.Tags != nil {
		course.Tags = req.Tags
	}

	if err := cc.DB.Save(course).Error; err != nil {
		if isUniqueViolation(err) {
			return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
				"Course with this title already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update course")
	}
	return helpers.Success(c, "Course updated", course)
}

// DELETE /api/courses/:id — cascades the content tree, unenrolls every user
// and removes progress rows in one transaction.
func (cc *CourseController) Delete(c *fiber.Ctx) error {
	course, err := cc.ownedCourse(c)
	if err != nil {
		return err
	}

	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		return deleteCourseCascade(tx, course)
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete course")
	}
	return helpers.Success(c, "Course deleted", fiber.Map{"id": course.ID})
}

// deleteCourseCascade removes the course's content tree, its progress rows
// and every pointer users hold to them. Runs inside the caller's
// transaction; users' progress_ids must be cleaned before the progress rows
// themselves are deleted.
func deleteCourseCascade(tx *gorm.DB, course *courseModel.CourseModel) error {
	if err := tx.Where("section_id IN (?)",
		tx.Model(&courseModel.SectionModel{}).Select("id").Where("course_id = ?", course.ID),
	).Delete(&courseModel.SubsectionModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("course_id = ?", course.ID).Delete(&courseModel.SectionModel{}).Error; err != nil {
		return err
	}
	if err := tx.Exec(
		`UPDATE users SET progress_ids = array_remove(users.progress_ids, course_progress.id::text)
		 FROM course_progress
		 WHERE course_progress.course_id = ? AND users.id = course_progress.user_id`,
		course.ID,
	).Error; err != nil {
		return err
	}
	if err := tx.Where("course_id = ?", course.ID).Delete(&progressModel.ProgressModel{}).Error; err != nil {
		return err
	}
	// pull the course id out of every enrolled account's list
	if err := tx.Exec(
		`UPDATE users SET course_ids = array_remove(course_ids, ?) WHERE ? = ANY(course_ids)`,
		course.ID.String(), course.ID.String(),
	).Error; err != nil {
		return err
	}
	return tx.Delete(course).Error
}

// ownedCourse loads :id and enforces creator-or-admin access.
func (cc *CourseController) ownedCourse(c *fiber.Ctx) (*courseModel.CourseModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid course id")
	}
	var course courseModel.CourseModel
	if err := cc.DB.First(&course, "id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Course not found")
	}

	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return nil, err
	}
	if course.CreatorID != userID && helpers.GetUserRole(c) != constants.RoleAdmin {
		return nil, fiber.NewError(fiber.StatusForbidden, "You do not own this course")
	}
	return &course, nil
}
