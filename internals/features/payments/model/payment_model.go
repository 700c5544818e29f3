package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusFailed  = "failed"

	KindCourse        = "course"
	KindEnrollmentFee = "enrollment_fee"
	KindSemesterFee   = "semester_fee"
)

// PaymentModel is one payment attempt against the gateway. OrderID is ours
// (sent to the gateway), PaymentID and Signature arrive with the callback.
type PaymentModel struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	OrderID   string `gorm:"size:100;not null;uniqueIndex" json:"order_id"`
	PaymentID string `gorm:"size:100" json:"payment_id"`
	Signature string `gorm:"size:200" json:"-"`

	Kind      string         `gorm:"type:varchar(20);not null" json:"kind"`
	CourseIDs pq.StringArray `gorm:"type:text[]" json:"course_ids"`
	Amount    float64        `gorm:"not null" json:"amount"`
	Status    string         `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	SnapToken string         `gorm:"size:200" json:"snap_token,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
