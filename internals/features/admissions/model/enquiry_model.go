package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnquiryModel is a prospective student's first contact. One enquiry per
// email address.
type EnquiryModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string         `gorm:"type:varchar(150);not null" json:"name"`
	Email     string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_enquiries_email,where:deleted_at IS NULL" json:"email"`
	Phone     string         `gorm:"type:varchar(30)" json:"phone"`
	CourseID  *uuid.UUID     `gorm:"type:uuid" json:"course_id,omitempty"`
	Message   string         `gorm:"type:text" json:"message"`
	Handled   bool           `gorm:"default:false" json:"handled"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (EnquiryModel) TableName() string { return "enquiries" }
