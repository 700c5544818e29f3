package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	courseModel "campushub_backend/internals/features/courses/course/model"
	helpers "campushub_backend/internals/helpers"
)

// POST /api/courses/:id/sections
func (cc *CourseController) CreateSection(c *fiber.Ctx) error {
	course, err := cc.ownedCourse(c)
	if err != nil {
		return err
	}

	var req struct {
		Title    string `json:"title" validate:"required,min=1,max=200"`
		Position int    `json:"position" validate:"gte=0"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	section := courseModel.SectionModel{
		CourseID: course.ID,
		Title:    req.Title,
		Position: req.Position,
	}
	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&section).Error; err != nil {
			return err
		}
		return tx.Model(course).
			Update("section_ids", gorm.Expr("array_append(section_ids, ?)", section.ID.String())).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create section")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Section created", section)
}

// PUT /api/sections/:sectionId
func (cc *CourseController) UpdateSection(c *fiber.Ctx) error {
	section, err := cc.ownedSection(c)
	if err != nil {
		return err
	}

	var req struct {
		Title    *string `json:"title" validate:"omitempty,min=1,max=200"`
		Position *int    `json:"position" validate:"omitempty,gte=0"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}
	if req.Title != nil {
		section.Title = *req.Title
	}
	if req.Position != nil {
		section.Position = *req.Position
	}
	if err := cc.DB.Save(section).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update section")
	}
	return helpers.Success(c, "Section updated", section)
}

// DELETE /api/sections/:sectionId — removes children and the parent ref
func (cc *CourseController) DeleteSection(c *fiber.Ctx) error {
	section, err := cc.ownedSection(c)
	if err != nil {
		return err
	}

	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("section_id = ?", section.ID).Delete(&courseModel.SubsectionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&courseModel.CourseModel{}).
			Where("id = ?", section.CourseID).
			Update("section_ids", gorm.Expr("array_remove(section_ids, ?)", section.ID.String())).Error; err != nil {
			return err
		}
		return tx.Delete(section).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete section")
	}
	return helpers.Success(c, "Section deleted", fiber.Map{"id": section.ID})
}

// ownedSection loads :sectionId and checks course ownership via the parent.
func (cc *CourseController) ownedSection(c *fiber.Ctx) (*courseModel.SectionModel, error) {
	id, err := uuid.Parse(c.Params("sectionId"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid section id")
	}
	var section courseModel.SectionModel
	if err := cc.DB.First(&section, "id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Section not found")
	}
	if err := cc.checkCourseOwnership(c, section.CourseID); err != nil {
		return nil, err
	}
	return &section, nil
}

func (cc *CourseController) checkCourseOwnership(c *fiber.Ctx, courseID uuid.UUID) error {
	var course courseModel.CourseModel
	if err := cc.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}
	if course.CreatorID != userID && helpers.GetUserRole(c) != constants.RoleAdmin {
		return fiber.NewError(fiber.StatusForbidden, "You do not own this course")
	}
	return nil
}
