package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/admissions/model"
	mailer "campushub_backend/internals/helpers/mailer"
)

var (
	// ErrMissingDocuments blocks approval until both uploads exist. The
	// registration status is left untouched.
	ErrMissingDocuments = errors.New("photo and signature are required before approval")
	ErrAlreadyDecided   = errors.New("registration has already been decided")
)

// Approve flips a pending registration to approved and mints the enrolled
// student record with its registration/roll numbers, all in one
// transaction. The per-year sequence is the count of students already
// enrolled this year plus one, counted inside the same transaction.
func Approve(db *gorm.DB, reg *model.RegisteredStudentModel, reviewerID uuid.UUID, note string, now time.Time) (*model.EnrolledStudentModel, error) {
	if reg.Status != model.RegistrationPending {
		return nil, ErrAlreadyDecided
	}
	if reg.PhotoURL == "" || reg.SignatureURL == "" {
		return nil, ErrMissingDocuments
	}

	year := AdmissionYear(now)
	var enrolled model.EnrolledStudentModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var seq int64
		if err := tx.Model(&model.EnrolledStudentModel{}).
			Where("admission_year = ?", year).Count(&seq).Error; err != nil {
			return err
		}

		enrolled = model.EnrolledStudentModel{
			RegistrationID:  reg.ID,
			Email:           reg.Email,
			Name:            applicantName(reg),
			PersonalDetails: reg.PersonalDetails,
			AcademicDetails: reg.AcademicDetails,
			ParentDetails:   reg.ParentDetails,
			RegistrationNo:  FormatRegistrationNo(year, int(seq)+1),
			RollNo:          FormatRollNo(year, int(seq)+1),
			AdmissionYear:   year,
		}
		if err := tx.Create(&enrolled).Error; err != nil {
			return err
		}

		return tx.Model(reg).Updates(map[string]interface{}{
			"status":      model.RegistrationApproved,
			"review_note": note,
			"reviewed_by": reviewerID,
			"reviewed_at": now,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	mailer.Send(enrolled.Name, enrolled.Email, "Admission approved",
		fmt.Sprintf("Your admission is approved. Registration number: %s, roll number: %s.",
			enrolled.RegistrationNo, enrolled.RollNo), "")
	return &enrolled, nil
}

// Reject marks a pending registration rejected. No numbers are minted.
func Reject(db *gorm.DB, reg *model.RegisteredStudentModel, reviewerID uuid.UUID, note string, now time.Time) error {
	if reg.Status != model.RegistrationPending {
		return ErrAlreadyDecided
	}
	if err := db.Model(reg).Updates(map[string]interface{}{
		"status":      model.RegistrationRejected,
		"review_note": note,
		"reviewed_by": reviewerID,
		"reviewed_at": now,
	}).Error; err != nil {
		return err
	}
	mailer.Send(applicantName(reg), reg.Email, "Admission decision",
		"Your admission application was not approved. "+note, "")
	return nil
}

// applicantName digs the name out of the personal details section, falling
// back to the email when the form omitted it.
func applicantName(reg *model.RegisteredStudentModel) string {
	var personal struct {
		Name string `json:"name"`
	}
	if len(reg.PersonalDetails) > 0 {
		if err := sonic.Unmarshal(reg.PersonalDetails, &personal); err == nil && personal.Name != "" {
			return personal.Name
		}
	}
	return reg.Email
}
