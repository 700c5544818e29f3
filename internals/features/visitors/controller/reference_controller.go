package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/visitors/model"
	helpers "campushub_backend/internals/helpers"
)

var validate = validator.New()

// Meeting types and visit purposes share the same flat name/status shape;
// both controllers live here.

type MeetingTypeController struct {
	DB *gorm.DB
}

func NewMeetingTypeController(db *gorm.DB) *MeetingTypeController {
	return &MeetingTypeController{DB: db}
}

type nameStatusRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=100"`
	Status *bool  `json:"status"`
}

func (mc *MeetingTypeController) Create(c *fiber.Ctx) error {
	var req nameStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	name := strings.TrimSpace(req.Name)
	var count int64
	mc.DB.Model(&model.MeetingTypeModel{}).Where("LOWER(name) = LOWER(?)", name).Count(&count)
	if count > 0 {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"Meeting type already exists")
	}

	creatorID, _ := helpers.GetUserUUID(c)
	mt := model.MeetingTypeModel{Name: name, Status: true, CreatorID: creatorID}
	if req.Status != nil {
		mt.Status = *req.Status
	}
	if err := mc.DB.Create(&mt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create meeting type")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Meeting type created", mt)
}

func (mc *MeetingTypeController) List(c *fiber.Ctx) error {
	var types []model.MeetingTypeModel
	if err := mc.DB.Order("name ASC").Find(&types).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", types)
}

func (mc *MeetingTypeController) Update(c *fiber.Ctx) error {
	var mt model.MeetingTypeModel
	if err := mc.DB.First(&mt, "id = ?", c.Params("id")).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Meeting type not found")
	}
	var req nameStatusRequest
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
		if err := mc.DB.Model(&mt).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update meeting type")
		}
	}
	return helpers.Success(c, "Meeting type updated", mt)
}

func (mc *MeetingTypeController) Delete(c *fiber.Ctx) error {
	res := mc.DB.Delete(&model.MeetingTypeModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete meeting type")
	}
	if res.RowsAffected == 0 {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Meeting type not found")
	}
	return helpers.Success(c, "Meeting type deleted", nil)
}

type VisitPurposeController struct {
	DB *gorm.DB
}

func NewVisitPurposeController(db *gorm.DB) *VisitPurposeController {
	return &VisitPurposeController{DB: db}
}

func (vc *VisitPurposeController) Create(c *fiber.Ctx) error {
	var req nameStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	name := strings.TrimSpace(req.Name)
	var count int64
	vc.DB.Model(&model.VisitPurposeModel{}).Where("LOWER(name) = LOWER(?)", name).Count(&count)
	if count > 0 {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"Visit purpose already exists")
	}

	creatorID, _ := helpers.GetUserUUID(c)
	vp := model.VisitPurposeModel{Name: name, Status: true, CreatorID: creatorID}
	if req.Status != nil {
		vp.Status = *req.Status
	}
	if err := vc.DB.Create(&vp).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create visit purpose")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Visit purpose created", vp)
}

func (vc *VisitPurposeController) List(c *fiber.Ctx) error {
	var purposes []model.VisitPurposeModel
	if err := vc.DB.Order("name ASC").Find(&purposes).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", purposes)
}

func (vc *VisitPurposeController) Update(c *fiber.Ctx) error {
	var vp model.VisitPurposeModel
	if err := vc.DB.First(&vp, "id = ?", c.Params("id")).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Visit purpose not found")
	}
	var req nameStatusRequest
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
		if err := vc.DB.Model(&vp).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update visit purpose")
		}
	}
	return helpers.Success(c, "Visit purpose updated", vp)
}

func (vc *VisitPurposeController) Delete(c *fiber.Ctx) error {
	res := vc.DB.Delete(&model.VisitPurposeModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete visit purpose")
	}
	if res.RowsAffected == 0 {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Visit purpose not found")
	}
	return helpers.Success(c, "Visit purpose deleted", nil)
}
