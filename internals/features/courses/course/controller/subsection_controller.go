package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "campushub_backend/internals/features/courses/course/model"
	helpers "campushub_backend/internals/helpers"
	ossHelper "campushub_backend/internals/helpers/oss"
)

// POST /api/sections/:sectionId/subsections — JSON body or multipart with a
// media file; uploaded media goes to object storage and the returned URL is
// persisted.
func (cc *CourseController) CreateSubsection(c *fiber.Ctx) error {
	section, err := cc.ownedSection(c)
	if err != nil {
		return err
	}

	var req struct {
		Title       string `json:"title" form:"title" validate:"required,min=1,max=200"`
		Description string `json:"description" form:"description"`
		MediaURL    string `json:"media_url" form:"media_url"`
		DurationSec int    `json:"duration_sec" form:"duration_sec" validate:"gte=0"`
		Position    int    `json:"position" form:"position" validate:"gte=0"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	if ossHelper.IsMultipart(c) {
		if fh, err := c.FormFile("media"); err == nil && fh != nil {
			svc, err := ossHelper.NewOSSServiceFromEnv("courses")
			if err != nil {
				log.Printf("[OSS] init failed: %v", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Object storage unavailable")
			}
			url, _, err := svc.UploadRaw(c.UserContext(), fh, "media/"+section.CourseID.String())
			if err != nil {
				return fiber.NewError(fiber.StatusBadGateway, "Failed to upload media")
			}
			req.MediaURL = url
		}
	}

	sub := courseModel.SubsectionModel{
		SectionID:   section.ID,
		Title:       req.Title,
		Description: req.Description,
		MediaURL:    req.MediaURL,
		DurationSec: req.DurationSec,
		Position:    req.Position,
	}
	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}
		return tx.Model(section).
			Update("subsection_ids", gorm.Expr("array_append(subsection_ids, ?)", sub.ID.String())).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create subsection")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Subsection created", sub)
}

// DELETE /api/subsections/:subsectionId
func (cc *CourseController) DeleteSubsection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("subsectionId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid subsection id")
	}
	var sub courseModel.SubsectionModel
	if err := cc.DB.First(&sub, "id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Subsection not found")
	}

	var section courseModel.SectionModel
	if err := cc.DB.First(&section, "id = ?", sub.SectionID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Section not found")
	}
	if err := cc.checkCourseOwnership(c, section.CourseID); err != nil {
		return err
	}

	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&section).
			Update("subsection_ids", gorm.Expr("array_remove(subsection_ids, ?)", sub.ID.String())).Error; err != nil {
			return err
		}
		return tx.Delete(&sub).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete subsection")
	}
	return helpers.Success(c, "Subsection deleted", fiber.Map{"id": sub.ID})
}

// POST /api/courses/:id/thumbnail — multipart image, re-encoded to WebP.
func (cc *CourseController) UploadThumbnail(c *fiber.Ctx) error {
	course, err := cc.ownedCourse(c)
	if err != nil {
		return err
	}
	fh, err := ossHelper.GetImageFile(c, "thumbnail", "image", "file")
	if err != nil {
		return err
	}

	svc, err := ossHelper.NewOSSServiceFromEnv("courses")
	if err != nil {
		log.Printf("[OSS] init failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Object storage unavailable")
	}
	url, _, err := svc.UploadAsWebP(c.UserContext(), fh, "thumbnails")
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Failed to upload thumbnail")
	}

	old := course.ThumbnailURL
	if err := cc.DB.Model(course).Update("thumbnail_url", url).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save thumbnail")
	}
	if old != "" {
		if err := svc.DeleteByPublicURL(c.UserContext(), old); err != nil {
			log.Printf("[OSS] old thumbnail delete failed: %v", err)
		}
	}
	return helpers.Success(c, "Thumbnail uploaded", fiber.Map{"thumbnail_url": url})
}
