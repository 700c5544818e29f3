package service

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "campushub_backend/internals/features/courses/course/model"
	progressModel "campushub_backend/internals/features/courses/progress/model"
	paymentModel "campushub_backend/internals/features/payments/model"
	userModel "campushub_backend/internals/features/users/user/model"
	mailer "campushub_backend/internals/helpers/mailer"
)

// EnrollCourses applies every enrollment side-effect for a verified payment
// in ONE transaction: a crash can no longer leave a user half-enrolled.
// Per course: push user onto the course's enrolled list, create the progress
// record, push course+progress ids onto the user. Finally the payment is
// marked paid.
func EnrollCourses(db *gorm.DB, payment *paymentModel.PaymentModel, user *userModel.UserModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, cid := range payment.CourseIDs {
			courseID, err := uuid.Parse(cid)
			if err != nil {
				return fmt.Errorf("bad course id %q on payment: %w", cid, err)
			}

			var course courseModel.CourseModel
			if err := tx.First(&course, "id = ?", courseID).Error; err != nil {
				return fmt.Errorf("course %s: %w", cid, err)
			}

			if err := tx.Model(&course).
				Update("enrolled_user_ids", gorm.Expr("array_append(enrolled_user_ids, ?)", user.ID.String())).Error; err != nil {
				return err
			}

			progress := progressModel.ProgressModel{
				UserID:   user.ID,
				CourseID: courseID,
			}
			if err := tx.Create(&progress).Error; err != nil {
				return err
			}

			if err := tx.Model(user).Updates(map[string]interface{}{
				"course_ids":   gorm.Expr("array_append(course_ids, ?)", courseID.String()),
				"progress_ids": gorm.Expr("array_append(progress_ids, ?)", progress.ID.String()),
			}).Error; err != nil {
				return err
			}
		}

		return tx.Model(payment).Updates(map[string]interface{}{
			"status": paymentModel.StatusPaid,
		}).Error
	})
}

// PostEnrollmentEffects runs after commit: confirmation mail and the
// admission audit rows. Both best-effort; failures are logged, never
// surfaced.
func PostEnrollmentEffects(db *gorm.DB, payment *paymentModel.PaymentModel, user *userModel.UserModel) {
	mailer.Send(user.FullName, user.Email,
		"Enrollment confirmed",
		fmt.Sprintf("Your payment %s was verified and you are now enrolled in %d course(s).",
			payment.OrderID, len(payment.CourseIDs)),
		"")

	for _, cid := range payment.CourseIDs {
		courseID, err := uuid.Parse(cid)
		if err != nil {
			continue
		}
		audit := paymentModel.AdmissionAuditModel{
			UserID:    user.ID,
			CourseID:  courseID,
			PaymentID: payment.ID,
			Note:      "enrollment confirmed via payment " + payment.OrderID,
		}
		if err := db.Create(&audit).Error; err != nil {
			log.Printf("[PAYMENT] audit record failed for %s/%s: %v", user.ID, cid, err)
		}
	}
}

// IsEnrolled reports whether the user's course list already has courseID.
func IsEnrolled(user *userModel.UserModel, courseID string) bool {
	for _, cid := range user.CourseIDs {
		if cid == courseID {
			return true
		}
	}
	return false
}
