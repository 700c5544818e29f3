package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/fees/model"
	userModel "campushub_backend/internals/features/users/user/model"
	mailer "campushub_backend/internals/helpers/mailer"
)

var ErrOverpayment = errors.New("payment exceeds the outstanding balance")

// Outstanding returns the unpaid remainder on an assignment for one
// student.
func Outstanding(db *gorm.DB, assignment *model.FeeAssignmentModel, studentID uuid.UUID) (float64, error) {
	var paid float64
	err := db.Model(&model.FeePaymentModel{}).
		Where("assignment_id = ? AND student_id = ?", assignment.ID, studentID).
		Select("COALESCE(SUM(amount), 0)").Scan(&paid).Error
	if err != nil {
		return 0, err
	}
	return assignment.Amount - paid, nil
}

// RecordPayment writes a fee payment in one transaction: the balance is
// re-checked inside, the receipt number is minted from the payment count,
// and the row is inserted. Partial state can never survive a failure.
func RecordPayment(db *gorm.DB, assignment *model.FeeAssignmentModel, studentID uuid.UUID,
	amount float64, mode, note string, receivedBy uuid.UUID, now time.Time) (*model.FeePaymentModel, error) {

	var payment model.FeePaymentModel
	err := db.Transaction(func(tx *gorm.DB) error {
		var paid float64
		if err := tx.Model(&model.FeePaymentModel{}).
			Where("assignment_id = ? AND student_id = ?", assignment.ID, studentID).
			Select("COALESCE(SUM(amount), 0)").Scan(&paid).Error; err != nil {
			return err
		}
		if paid+amount > assignment.Amount {
			return ErrOverpayment
		}

		var seq int64
		if err := tx.Model(&model.FeePaymentModel{}).
			Where("EXTRACT(YEAR FROM created_at) = ?", now.Year()).
			Count(&seq).Error; err != nil {
			return err
		}

		payment = model.FeePaymentModel{
			AssignmentID: assignment.ID,
			StudentID:    studentID,
			Amount:       amount,
			Mode:         mode,
			ReceiptNo:    fmt.Sprintf("RCPT-%d-%06d", now.Year(), seq+1),
			Note:         note,
			ReceivedBy:   receivedBy,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, err
	}

	// Receipt mail after commit, best-effort.
	var student userModel.UserModel
	if err := db.Select("full_name", "email").First(&student, "id = ?", studentID).Error; err == nil {
		mailer.Send(student.FullName, student.Email, "Fee payment received",
			fmt.Sprintf("We received %.2f. Receipt number: %s.", amount, payment.ReceiptNo), "")
	}
	return &payment, nil
}
