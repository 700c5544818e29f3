package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "campushub_backend/internals/features/courses/course/model"
	progressModel "campushub_backend/internals/features/courses/progress/model"
	helpers "campushub_backend/internals/helpers"
)

var validate = validator.New()

type ProgressController struct {
	DB *gorm.DB
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{DB: db}
}

// GET /api/progress/:courseId — the caller's progress in one course
func (pc *ProgressController) Get(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course id")
	}

	var progress progressModel.ProgressModel
	if err := pc.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&progress).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Not enrolled in this course")
	}

	// completion percentage against the course's subsection count
	var totalItems int64
	pc.DB.Model(&courseModel.SubsectionModel{}).
		Where("section_id IN (?)", pc.DB.Model(&courseModel.SectionModel{}).Select("id").Where("course_id = ?", courseID)).
		Count(&totalItems)

	return helpers.Success(c, "OK", fiber.Map{
		"progress":         progress,
		"total_items":      totalItems,
		"percent_complete": completionPercent(len(progress.CompletedMedia), totalItems),
	})
}

// completionPercent clamps to 100 so stale ids left behind by content edits
// can never report more than full completion.
func completionPercent(done int, total int64) float64 {
	if total <= 0 {
		return 0
	}
	percent := float64(done) / float64(total) * 100
	if percent > 100 {
		return 100
	}
	return percent
}

// POST /api/progress/:courseId/complete — mark one subsection done
func (pc *ProgressController) MarkComplete(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid course id")
	}

	var req struct {
		SubsectionID string `json:"subsection_id" validate:"required,uuid"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	var progress progressModel.ProgressModel
	if err := pc.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&progress).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Not enrolled in this course")
	}

	for _, done := range progress.CompletedMedia {
		if done == req.SubsectionID {
			return helpers.Success(c, "Already completed", progress)
		}
	}

	// the subsection must belong to this course, not just be a valid uuid
	var owned int64
	pc.DB.Model(&courseModel.SubsectionModel{}).
		Where("id = ? AND section_id IN (?)", req.SubsectionID,
			pc.DB.Model(&courseModel.SectionModel{}).Select("id").Where("course_id = ?", courseID)).
		Count(&owned)
	if owned == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Subsection not found in this course")
	}

	if err := pc.DB.Model(&progress).
		Update("completed_media", gorm.Expr("array_append(completed_media, ?)", req.SubsectionID)).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update progress")
	}
	progress.CompletedMedia = append(progress.CompletedMedia, req.SubsectionID)
	return helpers.Success(c, "Marked complete", progress)
}
