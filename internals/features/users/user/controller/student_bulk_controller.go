package controller

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	userModel "campushub_backend/internals/features/users/user/model"
	"campushub_backend/internals/features/users/user/service"
	helpers "campushub_backend/internals/helpers"
)

// POST /api/admin/users/bulk-upload — multipart CSV or XLSX of students.
// Columns: name,email,phone,enrollmentFeePaid. Bad lines are reported in
// errors; good lines become student accounts with a random initial password.
func (uc *UserController) BulkUploadStudents(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "file is required")
	}

	f, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to open upload")
	}
	defer f.Close()

	var rows []service.BulkRow
	var errs []string
	switch strings.ToLower(filepath.Ext(fh.Filename)) {
	case ".xlsx":
		rows, errs, err = service.ParseStudentXLSX(f)
		if err != nil {
			return helpers.Error(c, fiber.StatusBadRequest, "Unreadable XLSX file")
		}
	default:
		rows, errs = service.ParseStudentCSV(f)
	}

	created := 0
	for _, row := range rows {
		var existing userModel.UserModel
		if err := uc.DB.Where("email = ?", row.Email).First(&existing).Error; err == nil {
			errs = append(errs, fmt.Sprintf("Line %d: Email already exists", row.Line))
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(uuid.New().String()), bcrypt.DefaultCost)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Line %d: Internal error", row.Line))
			continue
		}

		user := userModel.UserModel{
			FullName:          row.Name,
			Email:             row.Email,
			Password:          string(hash),
			Role:              constants.RoleStudent,
			IsActive:          true,
			IsApproved:        true,
			EnrollmentFeePaid: row.EnrollmentFeePaid,
		}
		err = uc.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			return tx.Create(&userModel.UserProfileModel{UserID: user.ID, Phone: row.Phone}).Error
		})
		if err != nil {
			log.Printf("[BULK] create failed line %d (%s): %v", row.Line, row.Email, err)
			errs = append(errs, fmt.Sprintf("Line %d: Failed to create account", row.Line))
			continue
		}
		created++
	}

	if errs == nil {
		errs = []string{}
	}
	return helpers.Success(c, "Bulk upload processed", fiber.Map{
		"created": created,
		"errors":  errs,
	})
}
