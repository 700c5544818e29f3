package controller

import (
	"fmt"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/configs"
	"campushub_backend/internals/constants"
	courseModel "campushub_backend/internals/features/courses/course/model"
	paymentModel "campushub_backend/internals/features/payments/model"
	"campushub_backend/internals/features/payments/service"
	userModel "campushub_backend/internals/features/users/user/model"
	helpers "campushub_backend/internals/helpers"
	mailer "campushub_backend/internals/helpers/mailer"
)

var validate = validator.New()

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

/* =========================================================
   1) Order creation
========================================================= */

type captureRequest struct {
	CourseIDs []string `json:"course_ids" validate:"required,min=1,dive,uuid"`
}

// POST /api/payments/capture
func (pc *PaymentController) Capture(c *fiber.Ctx) error {
	user, err := pc.currentUser(c)
	if err != nil {
		return err
	}

	var req captureRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	// Students owe the flat enrollment fee before buying courses.
	if user.Role == constants.RoleStudent && !user.EnrollmentFeePaid {
		return helpers.ErrorWithCode(c, fiber.StatusForbidden, constants.CodeForbidden,
			"Enrollment fee has not been paid")
	}

	var total float64
	itemName := ""
	for _, cid := range req.CourseIDs {
		if service.IsEnrolled(user, cid) {
			return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
				"Already enrolled in course "+cid)
		}
		var course courseModel.CourseModel
		if err := pc.DB.First(&course, "id = ? AND status = ?", cid, courseModel.StatusPublished).Error; err != nil {
			return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound,
				"Course not found or not published: "+cid)
		}
		total += course.Price
		if itemName == "" {
			itemName = course.Title
		}
	}
	if len(req.CourseIDs) > 1 {
		itemName = fmt.Sprintf("%s +%d more", itemName, len(req.CourseIDs)-1)
	}

	orderID := "ORD-" + uuid.New().String()
	token, redirectURL, err := service.CreateOrder(orderID, int64(total), itemName, service.CustomerInput{
		Name:  user.FullName,
		Email: user.Email,
	})
	if err != nil {
		log.Printf("[PAYMENT] gateway order failed user=%s: %v", user.ID, err)
		return helpers.ErrorWithCode(c, fiber.StatusBadGateway, constants.CodePaymentGatewayError,
			"Payment gateway error")
	}

	payment := paymentModel.PaymentModel{
		UserID:    user.ID,
		OrderID:   orderID,
		Kind:      paymentModel.KindCourse,
		CourseIDs: req.CourseIDs,
		Amount:    total,
		Status:    paymentModel.StatusPending,
		SnapToken: token,
	}
	if err := pc.DB.Create(&payment).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment")
	}

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Order created", fiber.Map{
		"order_id":     orderID,
		"amount":       total,
		"snap_token":   token,
		"redirect_url": redirectURL,
	})
}

/* =========================================================
   2) Signature verification + 3) enrollment side-effects
========================================================= */

type verifyRequest struct {
	OrderID   string `json:"order_id" validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

// POST /api/payments/verify
func (pc *PaymentController) Verify(c *fiber.Ctx) error {
	user, err := pc.currentUser(c)
	if err != nil {
		return err
	}

	var req verifyRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	if !service.VerifySignature(req.OrderID, req.PaymentID, req.Signature, configs.PaymentServerKey) {
		return helpers.ErrorWithCode(c, fiber.StatusBadRequest, constants.CodePaymentVerificationFailed,
			"Payment verification failed")
	}

	var payment paymentModel.PaymentModel
	if err := pc.DB.Where("order_id = ? AND user_id = ?", req.OrderID, user.ID).First(&payment).Error; err != nil {
		return helpers.ErrorWithCode(c, fiber.StatusNotFound, constants.CodeNotFound, "Order not found")
	}
	// Replaying an already-verified payment must not enroll twice.
	if payment.Status == paymentModel.StatusPaid {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"Payment already verified")
	}

	payment.PaymentID = req.PaymentID
	payment.Signature = req.Signature
	if err := pc.DB.Model(&payment).Updates(map[string]interface{}{
		"payment_id": req.PaymentID,
		"signature":  req.Signature,
	}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record verification")
	}

	switch payment.Kind {
	case paymentModel.KindEnrollmentFee:
		err = pc.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(user).Update("enrollment_fee_paid", true).Error; err != nil {
				return err
			}
			return tx.Model(&payment).Update("status", paymentModel.StatusPaid).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to apply payment")
		}
		mailer.Send(user.FullName, user.Email, "Enrollment fee received",
			"Your enrollment fee payment "+payment.OrderID+" has been verified.", "")
		return helpers.Success(c, "Enrollment fee paid", fiber.Map{"order_id": payment.OrderID})

	default:
		if err := service.EnrollCourses(pc.DB, &payment, user); err != nil {
			log.Printf("[PAYMENT] enrollment tx failed order=%s: %v", payment.OrderID, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Enrollment failed")
		}
		service.PostEnrollmentEffects(pc.DB, &payment, user)
		return helpers.Success(c, "Payment verified, enrollment complete", fiber.Map{
			"order_id":   payment.OrderID,
			"course_ids": payment.CourseIDs,
		})
	}
}

/* =========================================================
   Enrollment fee order (students)
========================================================= */

// POST /api/payments/enrollment-fee
func (pc *PaymentController) CaptureEnrollmentFee(c *fiber.Ctx) error {
	user, err := pc.currentUser(c)
	if err != nil {
		return err
	}
	if user.Role != constants.RoleStudent {
		return helpers.ErrorWithCode(c, fiber.StatusForbidden, constants.CodeForbidden,
			"Only students pay the enrollment fee")
	}
	if user.EnrollmentFeePaid {
		return helpers.ErrorWithCode(c, fiber.StatusConflict, constants.CodeConflict,
			"Enrollment fee already paid")
	}

	fee, _ := strconv.ParseFloat(configs.GetEnv("ENROLLMENT_FEE", "500"), 64)
	orderID := "FEE-" + uuid.New().String()
	token, redirectURL, err := service.CreateOrder(orderID, int64(fee), "Enrollment fee", service.CustomerInput{
		Name:  user.FullName,
		Email: user.Email,
	})
	if err != nil {
		log.Printf("[PAYMENT] gateway order failed user=%s: %v", user.ID, err)
		return helpers.ErrorWithCode(c, fiber.StatusBadGateway, constants.CodePaymentGatewayError,
			"Payment gateway error")
	}

	payment := paymentModel.PaymentModel{
		UserID:    user.ID,
		OrderID:   orderID,
		Kind:      paymentModel.KindEnrollmentFee,
		Amount:    fee,
		Status:    paymentModel.StatusPending,
		SnapToken: token,
	}
	if err := pc.DB.Create(&payment).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment")
	}

	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Order created", fiber.Map{
		"order_id":     orderID,
		"amount":       fee,
		"snap_token":   token,
		"redirect_url": redirectURL,
	})
}

/* =========================================================
   Listings
========================================================= */

// GET /api/payments/mine
func (pc *PaymentController) Mine(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}
	var payments []paymentModel.PaymentModel
	if err := pc.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&payments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", payments)
}

// GET /api/admin/payments
func (pc *PaymentController) ListAll(c *fiber.Ctx) error {
	p := helpers.ParseFiber(c, "created_at", "desc", helpers.AdminOpts)

	q := pc.DB.Model(&paymentModel.PaymentModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	var payments []paymentModel.PaymentModel
	if err := q.Order("created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&payments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return helpers.Success(c, "OK", fiber.Map{
		"payments": payments,
		"meta":     helpers.BuildMeta(total, p),
	})
}

/* =========================================================
   Gateway webhook
========================================================= */

type notificationPayload struct {
	OrderID           string `json:"order_id"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	SignatureKey      string `json:"signature_key"`
}

// POST /api/payments/notification
// Unauthenticated; the gateway calls it. Only downgrades to failed are
// applied here — upgrades to paid go through Verify so the signature
// check and enrollment transaction cannot be bypassed.
func (pc *PaymentController) Notification(c *fiber.Ctx) error {
	var n notificationPayload
	if err := c.BodyParser(&n); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid notification body")
	}
	if n.OrderID == "" {
		return helpers.Error(c, fiber.StatusBadRequest, "Missing order_id")
	}

	var payment paymentModel.PaymentModel
	if err := pc.DB.Where("order_id = ?", n.OrderID).First(&payment).Error; err != nil {
		// Unknown orders are acked so the gateway stops retrying.
		return helpers.Success(c, "OK", nil)
	}

	switch n.TransactionStatus {
	case "deny", "cancel", "expire":
		if payment.Status == paymentModel.StatusPending {
			if err := pc.DB.Model(&payment).Update("status", paymentModel.StatusFailed).Error; err != nil {
				log.Printf("[PAYMENT] notification update failed order=%s: %v", n.OrderID, err)
			}
		}
	default:
		log.Printf("[PAYMENT] notification order=%s status=%s", n.OrderID, n.TransactionStatus)
	}
	return helpers.Success(c, "OK", nil)
}

func (pc *PaymentController) currentUser(c *fiber.Ctx) (*userModel.UserModel, error) {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return nil, err
	}
	var user userModel.UserModel
	if err := pc.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Account not found")
	}
	return &user, nil
}
