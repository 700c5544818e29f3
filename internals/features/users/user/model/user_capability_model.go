package model

import (
	"time"

	"github.com/google/uuid"
)

// UserCapabilityModel is the optional per-user capability record. The fixed
// role enum stays authoritative; these flags only extend what staff may do.
type UserCapabilityModel struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	IsContentManager bool      `gorm:"not null;default:false" json:"is_content_manager"`
	IsTrainerManager bool      `gorm:"not null;default:false" json:"is_trainer_manager"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserCapabilityModel) TableName() string {
	return "user_capabilities"
}
