package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
)

// ErrorHandler is the app-wide Fiber error handler. Controllers return
// fiber.NewError (or plain errors) and this converts them to the JSON
// envelope, so status/shape stays uniform across controllers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		status = fiber.StatusNotFound
	}

	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		log.Printf("[ERROR] reqid=%v %s %s: %v", c.Locals("reqid"), c.Method(), c.OriginalURL(), err)
		msg = "Internal server error"
		return ErrorWithCode(c, status, constants.CodeInternalError, msg)
	}

	return Error(c, status, msg)
}
