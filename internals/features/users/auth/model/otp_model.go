package model

import (
	"time"

	"github.com/google/uuid"
)

// OtpModel stores issued one-time codes. Only the most recently issued code
// per email is honored at registration time.
type OtpModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	Code      string    `gorm:"size:6;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (OtpModel) TableName() string {
	return "otps"
}
