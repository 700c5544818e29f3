package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Registration review statuses.
const (
	RegistrationPending  = "pending"
	RegistrationApproved = "approved"
	RegistrationRejected = "rejected"
)

// RegisteredStudentModel is an admission application under review. The
// three form sections are stored as submitted; the verification booleans
// track which sections staff have checked.
type RegisteredStudentModel struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_registered_students_email,where:deleted_at IS NULL" json:"email"`

	PersonalDetails datatypes.JSON `gorm:"type:jsonb" json:"personal_details"`
	AcademicDetails datatypes.JSON `gorm:"type:jsonb" json:"academic_details"`
	ParentDetails   datatypes.JSON `gorm:"type:jsonb" json:"parent_details"`

	PhotoURL     string `gorm:"type:text" json:"photo_url"`
	SignatureURL string `gorm:"type:text" json:"signature_url"`

	PersonalVerified bool `gorm:"default:false" json:"personal_verified"`
	AcademicVerified bool `gorm:"default:false" json:"academic_verified"`
	ParentVerified   bool `gorm:"default:false" json:"parent_verified"`

	Status     string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ReviewNote string     `gorm:"type:text" json:"review_note"`
	ReviewedBy *uuid.UUID `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (RegisteredStudentModel) TableName() string { return "registered_students" }

// EnrolledStudentModel is created exactly once per approved registration.
// RegistrationNo and RollNo are derived from the admission year and a
// per-year sequence.
type EnrolledStudentModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RegistrationID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_enrolled_students_registration,where:deleted_at IS NULL" json:"registration_id"`
	Email          string         `gorm:"type:varchar(255);not null" json:"email"`
	Name           string         `gorm:"type:varchar(150)" json:"name"`

	// Form sections copied as-is from the approved registration.
	PersonalDetails datatypes.JSON `gorm:"type:jsonb" json:"personal_details"`
	AcademicDetails datatypes.JSON `gorm:"type:jsonb" json:"academic_details"`
	ParentDetails   datatypes.JSON `gorm:"type:jsonb" json:"parent_details"`

	RegistrationNo string         `gorm:"type:varchar(20);not null;uniqueIndex:idx_enrolled_students_regno,where:deleted_at IS NULL" json:"registration_no"`
	RollNo         string         `gorm:"type:varchar(10);not null;uniqueIndex:idx_enrolled_students_rollno,where:deleted_at IS NULL" json:"roll_no"`
	AdmissionYear  int            `gorm:"not null" json:"admission_year"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (EnrolledStudentModel) TableName() string { return "enrolled_students" }
