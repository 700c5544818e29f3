package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// UserModel represents the users table. One row per account: students,
// instructors, staff and admins share the table, differentiated by Role.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName string    `gorm:"size:100;not null" json:"full_name" validate:"required,min=3,max=100"`
	Email    string    `gorm:"size:255;not null;uniqueIndex:idx_users_email,where:deleted_at IS NULL" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=8"`
	Role     string    `gorm:"type:varchar(20);not null;default:'student'" json:"role"`

	// Instructors start unapproved; an admin flips this.
	IsApproved bool `gorm:"not null;default:false" json:"is_approved"`
	// Soft on/off switch instead of hard deletes.
	IsActive bool `gorm:"not null;default:true" json:"is_active"`
	// Students must pay the flat enrollment fee before buying courses.
	EnrollmentFeePaid bool `gorm:"not null;default:false" json:"enrollment_fee_paid"`

	// Enrolled course ids + progress record ids, maintained by the
	// payment/enrollment flow.
	CourseIDs   pq.StringArray `gorm:"type:text[]" json:"course_ids"`
	ProgressIDs pq.StringArray `gorm:"type:text[]" json:"progress_ids"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = "student"
	}
}
