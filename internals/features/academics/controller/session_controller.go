package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	"campushub_backend/internals/features/academics/model"
	helpers "campushub_backend/internals/helpers"
)

type SessionController struct {
	DB *gorm.DB
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db}
}

type sessionRequest struct {
	Name      string     `json:"name" validate:"required,min=2,max=100"`
	Variant   string     `json:"variant"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Status    *bool      `json:"status"`
}

func (sc *SessionController) Create(c *fiber.Ctx) error {
	var req sessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	variant := strings.ToLower(strings.TrimSpace(req.Variant))
	if variant == "" {
		variant = model.SessionVariantGeneral
	}
	if !model.ValidSessionVariant(variant) {
		return helpers.Error(c, fiber.StatusBadRequest, "Unknown session variant")
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return helpers.Error(c, fiber.StatusBadRequest, "end_date must be after start_date")
	}

	name := strings.TrimSpace(req.Name)
	var count int64
	sc.DB.Model(&model.SessionModel{}).
		Where("LOWER(name) = LOWER(?) AND variant = ?", name, variant).Count(&count)
	if count > 0 {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"Session already exists")
	}

	creatorID, _ := helpers.GetUserUUID(c)
	session := model.SessionModel{
		Name:      name,
		Variant:   variant,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    true,
		CreatorID: creatorID,
	}
	if req.Status != nil {
		session.Status = *req.Status
	}
	if err := sc.DB.Create(&session).Error; err != nil {
		if isUniqueViolation(err) {
			return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
				"Session already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create session")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Session created", session)
}

func (sc *SessionController) List(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "created_at", "desc", helpers.AdminOpts)

	q := sc.DB.Model(&model.SessionModel{})
	if v := strings.ToLower(c.Query("variant")); v != "" {
		if !model.ValidSessionVariant(v) {
			return helpers.Error(c, fiber.StatusBadRequest, "Unknown session variant")
		}
		q = q.Where("variant = ?", v)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	var sessions []model.SessionModel
	if err := q.Order("created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&sessions).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", fiber.Map{
		"sessions": sessions,
		"meta":     helpers.BuildMeta(total, p),
	})
}

func (sc *SessionController) Update(c *fiber.Ctx) error {
	var session model.SessionModel
	if err := sc.DB.First(&session, "id = ?", c.Params("id")).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Session not found")
	}

	var req sessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	updates := map[string]interface{}{}
	if name := strings.TrimSpace(req.Name); name != "" {
		updates["name"] = name
	}
	if req.StartDate != nil {
		updates["start_date"] = req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = req.EndDate
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) > 0 {
		if err := sc.DB.Model(&session).Updates(updates).Error; err != nil {
			if isUniqueViolation(err) {
				return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
					"Session already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update session")
		}
	}
	return helpers.Success(c, "Session updated", session)
}

func (sc *SessionController) Delete(c *fiber.Ctx) error {
	res := sc.DB.Delete(&model.SessionModel{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete session")
	}
	if res.RowsAffected == 0 {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Session not found")
	}
	return helpers.Success(c, "Session deleted", nil)
}
