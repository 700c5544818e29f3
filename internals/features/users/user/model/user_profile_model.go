package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProfileModel holds the profile sub-record created at signup.
type UserProfileModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Phone       string     `gorm:"size:20" json:"phone"`
	Gender      string     `gorm:"size:10" json:"gender"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Address     string     `gorm:"size:255" json:"address"`
	About       string     `gorm:"size:500" json:"about"`
	AvatarURL   string     `gorm:"size:500" json:"avatar_url"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserProfileModel) TableName() string {
	return "user_profiles"
}
