package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/admissions/model"
	helpers "campushub_backend/internals/helpers"
)

var validate = validator.New()

type EnquiryController struct {
	DB *gorm.DB
}

func NewEnquiryController(db *gorm.DB) *EnquiryController {
	return &EnquiryController{DB: db}
}

type enquiryRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	CourseID string `json:"course_id" validate:"omitempty,uuid"`
	Message  string `json:"message" validate:"max=2000"`
}

// Create is public: prospective students are not authenticated yet.
func (ec *EnquiryController) Create(c *fiber.Ctx) error {
	var req enquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var count int64
	ec.DB.Model(&model.EnquiryModel{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"Enquiry already exists for this email")
	}

	enquiry := model.EnquiryModel{
		Name:    strings.TrimSpace(req.Name),
		Email:   email,
		Phone:   strings.TrimSpace(req.Phone),
		Message: req.Message,
	}
	if req.CourseID != "" {
		cid, _ := uuid.Parse(req.CourseID)
		enquiry.CourseID = &cid
	}
	if err := ec.DB.Create(&enquiry).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value") || strings.Contains(err.Error(), "SQLSTATE 23505") {
			return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
				"Enquiry already exists for this email")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create enquiry")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Enquiry received", enquiry)
}

func (ec *EnquiryController) List(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "created_at", "desc", helpers.AdminOpts)

	q := ec.DB.Model(&model.EnquiryModel{})
	if h := c.Query("handled"); h != "" {
		q = q.Where("handled = ?", h == "true")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	var enquiries []model.EnquiryModel
	if err := q.Order("created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&enquiries).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", fiber.Map{
		"enquiries": enquiries,
		"meta":      helpers.BuildMeta(total, p),
	})
}

func (ec *EnquiryController) MarkHandled(c *fiber.Ctx) error {
	res := ec.DB.Model(&model.EnquiryModel{}).
		Where("id = ?", c.Params("id")).Update("handled", true)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update enquiry")
	}
	if res.RowsAffected == 0 {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Enquiry not found")
	}
	return helpers.Success(c, "Enquiry marked handled", nil)
}

func (ec *EnquiryController) Delete(c *fiber.Ctx) error {
	res := ec.DB.Delete(&model.EnquiryModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete enquiry")
	}
	if res.RowsAffected == 0 {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Enquiry not found")
	}
	return helpers.Success(c, "Enquiry deleted", nil)
}
