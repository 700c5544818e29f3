package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/admissions/model"
	"campushub_backend/internals/features/admissions/service"
	helpers "campushub_backend/internals/helpers"
	"campushub_backend/internals/helpers/oss"
)

type RegistrationController struct {
	DB *gorm.DB
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{DB: db}
}

type registrationRequest struct {
	Email           string         `json:"email" validate:"required,email"`
	PersonalDetails datatypes.JSON `json:"personal_details" validate:"required"`
	AcademicDetails datatypes.JSON `json:"academic_details" validate:"required"`
	ParentDetails   datatypes.JSON `json:"parent_details" validate:"required"`
}

// Create submits a new admission application. One application per email.
func (rc *RegistrationController) Create(c *fiber.Ctx) error {
	var req registrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var count int64
	rc.DB.Model(&model.RegisteredStudentModel{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"Registration already exists for this email")
	}

	reg := model.RegisteredStudentModel{
		Email:           email,
		PersonalDetails: req.PersonalDetails,
		AcademicDetails: req.AcademicDetails,
		ParentDetails:   req.ParentDetails,
		Status:          model.RegistrationPending,
	}
	if err := rc.DB.Create(&reg).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value") || strings.Contains(err.Error(), "SQLSTATE 23505") {
			return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
				"Registration already exists for this email")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create registration")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Registration submitted", reg)
}

func (rc *RegistrationController) List(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "created_at", "desc", helpers.AdminOpts)

	q := rc.DB.Model(&model.RegisteredStudentModel{})
	if s := c.Query("status"); s != "" {
		q = q.Where("status = ?", s)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	var regs []model.RegisteredStudentModel
	if err := q.Order("created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&regs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", fiber.Map{
		"registrations": regs,
		"meta":          helpers.BuildMeta(total, p),
	})
}

func (rc *RegistrationController) Detail(c *fiber.Ctx) error {
	var reg model.RegisteredStudentModel
	if err := rc.DB.First(&reg, "id = ?", c.Params("id")).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Registration not found")
	}
	return helpers.Success(c, "OK", reg)
}

// UploadDocument receives the applicant's photo or signature. The kind
// comes from the multipart field name (photo | signature).
func (rc *RegistrationController) UploadDocument(c *fiber.Ctx) error {
	var reg model.RegisteredStudentModel
	if err := rc.DB.First(&reg, "id = ?", c.Params("id")).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Registration not found")
	}
	if reg.Status != model.RegistrationPending {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"Registration has already been decided")
	}

	column := ""
	field := ""
	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		column, field = "photo_url", "photo"
	} else if fh, err := c.FormFile("signature"); err == nil && fh != nil {
		column, field = "signature_url", "signature"
	} else {
		return helpers.ErrorWithCode(c, fiber.StatusBadRequest, constants.CodeMissingRequiredFields,
			"A photo or signature file is required")
	}

	fh, err := oss.GetImageFile(c, field)
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, err.Error())
	}

	svc, err := oss.NewOSSServiceFromEnv("admissions")
	if err != nil {
		log.Printf("[ADMISSION] OSS unavailable: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Storage unavailable")
	}

	publicURL, _, err := svc.UploadAsWebP(c.UserContext(), fh, reg.ID.String())
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, err.Error())
	}

	old := reg.PhotoURL
	if column == "signature_url" {
		old = reg.SignatureURL
	}
	if err := rc.DB.Model(&reg).Update(column, publicURL).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save document URL")
	}
	if old != "" {
		if err := svc.DeleteByPublicURL(c.UserContext(), old); err != nil {
			log.Printf("[ADMISSION] stale document cleanup failed: %v", err)
		}
	}
	return helpers.Success(c, "Document uploaded", fiber.Map{"url": publicURL, "kind": field})
}

type verifySectionRequest struct {
	Personal *bool `json:"personal"`
	Academic *bool `json:"academic"`
	Parent   *bool `json:"parent"`
}

// VerifySections toggles the per-section check flags.
func (rc *RegistrationController) VerifySections(c *fiber.Ctx) error {
	var reg model.RegisteredStudentModel
	if err := rc.DB.First(&reg, "id = ?", c.Params("id")).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Registration not found")
	}

	var req verifySectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	updates := map[string]interface{}{}
	if req.Personal != nil {
		updates["personal_verified"] = *req.Personal
	}
	if req.Academic != nil {
		updates["academic_verified"] = *req.Academic
	}
	if req.Parent != nil {
		updates["parent_verified"] = *req.Parent
	}
	if len(updates) == 0 {
		return helpers.Error(c, fiber.StatusBadRequest, "No section flags given")
	}
	if err := rc.DB.Model(&reg).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update verification flags")
	}
	return helpers.Success(c, "Verification flags updated", reg)
}

type decisionRequest struct {
	Note string `json:"note" validate:"max=2000"`
}

// Approve finalizes a pending registration: enrolled-student record and
// student numbers are created atomically.
func (rc *RegistrationController) Approve(c *fiber.Ctx) error {
	var reg model.RegisteredStudentModel
	if err := rc.DB.First(&reg, "id = ?", c.Params("id")).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Registration not found")
	}

	var req decisionRequest
	_ = c.BodyParser(&req)

	reviewerID, _ := helpers.GetUserUUID(c)
	enrolled, err := service.Approve(rc.DB, &reg, reviewerID, req.Note, time.Now())
	switch {
	case errors.Is(err, service.ErrMissingDocuments):
		return helpers.ErrorWithCode(c, fiber.StatusBadRequest, constants.CodeMissingRequiredFields,
			"Photo and signature must be uploaded before approval")
	case errors.Is(err, service.ErrAlreadyDecided):
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"Registration has already been decided")
	case err != nil:
		log.Printf("[ADMISSION] approval failed id=%s: %v", reg.ID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Approval failed")
	}

	return helpers.Success(c, "Registration approved", fiber.Map{
		"registration_no": enrolled.RegistrationNo,
		"roll_no":         enrolled.RollNo,
		"admission_year":  enrolled.AdmissionYear,
	})
}

func (rc *RegistrationController) Reject(c *fiber.Ctx) error {
	var reg model.RegisteredStudentModel
	if err := rc.DB.First(&reg, "id = ?", c.Params("id")).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Registration not found")
	}

	var req decisionRequest
	_ = c.BodyParser(&req)

	reviewerID, _ := helpers.GetUserUUID(c)
	err := service.Reject(rc.DB, &reg, reviewerID, req.Note, time.Now())
	switch {
	case errors.Is(err, service.ErrAlreadyDecided):
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"Registration has already been decided")
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "Rejection failed")
	}
	return helpers.Success(c, "Registration rejected", nil)
}

// ListEnrolled exposes the minted student records.
func (rc *RegistrationController) ListEnrolled(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "created_at", "desc", helpers.AdminOpts)

	q := rc.DB.Model(&model.EnrolledStudentModel{})
	if y := c.QueryInt("year"); y > 0 {
		q = q.Where("admission_year = ?", y)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	var students []model.EnrolledStudentModel
	if err := q.Order("registration_no ASC").Limit(p.Limit()).Offset(p.Offset()).Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", fiber.Map{
		"enrolled_students": students,
		"meta":              helpers.BuildMeta(total, p),
	})
}
