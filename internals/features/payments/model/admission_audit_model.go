package model

import (
	"time"

	"github.com/google/uuid"
)

// AdmissionAuditModel is the best-effort audit record written after a
// successful enrollment. Its failure never fails the enrollment.
type AdmissionAuditModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`
	PaymentID uuid.UUID `gorm:"type:uuid;not null" json:"payment_id"`
	Note      string    `gorm:"size:255" json:"note"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AdmissionAuditModel) TableName() string {
	return "admission_audits"
}
