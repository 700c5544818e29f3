package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/model"
	helpers "campushub_backend/internals/helpers"
)

type LanguageController struct {
	DB *gorm.DB
}

func NewLanguageController(db *gorm.DB) *LanguageController {
	return &LanguageController{DB: db}
}

type languageRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=80"`
	Status *bool  `json:"status"`
}

func (lc *LanguageController) Create(c *fiber.Ctx) error {
	var req languageRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	name := strings.TrimSpace(req.Name)
	var count int64
	lc.DB.Model(&model.LanguageModel{}).Where("LOWER(name) = LOWER(?)", name).Count(&count)
	if count > 0 {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"Language already exists")
	}

	creatorID, _ := helpers.GetUserUUID(c)
	lang := model.LanguageModel{Name: name, Status: true, CreatorID: creatorID}
	if req.Status != nil {
		lang.Status = *req.Status
	}
	if err := lc.DB.Create(&lang).Error; err != nil {
		if isUniqueViolation(err) {
			return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
				"Language already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create language")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Language created", lang)
}

func (lc *LanguageController) List(c *fiber.Ctx) error {
	var langs []model.LanguageModel
	if err := lc.DB.Order("name ASC").Find(&langs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", langs)
}

func (lc *LanguageController) Update(c *fiber.Ctx) error {
	var lang model.LanguageModel
	if err := lc.DB.First(&lang, "id = ?", c.Params("id")).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Language not found")
	}

	var req languageRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	updates := map[string]interface{}{}
	if name := strings.TrimSpace(req.Name); name != "" {
		updates["name"] = name
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) > 0 {
		if err := lc.DB.Model(&lang).Updates(updates).Error; err != nil {
			if isUniqueViolation(err) {
				return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
					"Language already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update language")
		}
	}
	return helpers.Success(c, "Language updated", lang)
}

func (lc *LanguageController) Delete(c *fiber.Ctx) error {
	res := lc.DB.Delete(&model.LanguageModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete language")
	}
	if res.RowsAffected == 0 {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Language not found")
	}
	return helpers.Success(c, "Language deleted", nil)
}
