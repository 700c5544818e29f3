package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/people/model"
	helpers "campushub_backend/internals/helpers"
)

type ExternalExpertController struct {
	DB *gorm.DB
}

func NewExternalExpertController(db *gorm.DB) *ExternalExpertController {
	return &ExternalExpertController{DB: db}
}

type expertRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=150"`
	Email        string `json:"email" validate:"required,email"`
	Organization string `json:"organization"`
	Expertise    string `json:"expertise"`
	Status       *bool  `json:"status"`
}

func (ec *ExternalExpertController) Create(c *fiber.Ctx) error {
	var req expertRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var count int64
	ec.DB.Model(&model.ExternalExpertModel{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"External expert already exists with this email")
	}

	creatorID, _ := helpers.GetUserUUID(c)
	expert := model.ExternalExpertModel{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Organization: req.Organization,
		Expertise:    req.Expertise,
		Status:       true,
		CreatorID:    creatorID,
	}
	if req.Status != nil {
		expert.Status = *req.Status
	}
	if err := ec.DB.Create(&expert).Error; err != nil {
		if duplicateErr(err) {
			return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
				"External expert already exists with this email")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create external expert")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "External expert created", expert)
}

func (ec *ExternalExpertController) List(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "created_at", "desc", helpers.AdminOpts)

	q := ec.DB.Model(&model.ExternalExpertModel{})
	if s := c.Query("q"); s != "" {
		q = q.Where("name ILIKE ? OR organization ILIKE ?", "%"+s+"%", "%"+s+"%")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	var experts []model.ExternalExpertModel
	if err := q.Order("name ASC").Limit(p.Limit()).Offset(p.Offset()).Find(&experts).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", fiber.Map{
		"experts": experts,
		"meta":    helpers.BuildMeta(total, p),
	})
}

func (ec *ExternalExpertController) Update(c *fiber.Ctx) error {
	var expert model.ExternalExpertModel
	if err := ec.DB.First(&expert, "id = ?", c.Params("id")).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "External expert not found")
	}

	var req expertRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	updates := map[string]interface{}{}
	if name := strings.TrimSpace(req.Name); name != "" {
		updates["name"] = name
	}
	if req.Organization != "" {
		updates["organization"] = req.Organization
	}
	if req.Expertise != "" {
		updates["expertise"] = req.Expertise
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) > 0 {
		if err := ec.DB.Model(&expert).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update external expert")
		}
	}
	return helpers.Success(c, "External expert updated", expert)
}

func (ec *ExternalExpertController) Delete(c *fiber.Ctx) error {
	res := ec.DB.Delete(&model.ExternalExpertModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete external expert")
	}
	if res.RowsAffected == 0 {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "External expert not found")
	}
	return helpers.Success(c, "External expert deleted", nil)
}
