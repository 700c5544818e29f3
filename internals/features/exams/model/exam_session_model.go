package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExamSessionModel schedules one exam for a subject. Only one session may
// exist per subject+date.
type ExamSessionModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string         `gorm:"type:varchar(150);not null" json:"name"`
	SubjectID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_exam_sessions_subject_date,where:deleted_at IS NULL" json:"subject_id"`
	CourseID  uuid.UUID      `gorm:"type:uuid;not null" json:"course_id"`
	Semester  int            `gorm:"not null" json:"semester"`
	ExamDate  time.Time      `gorm:"type:date;not null;uniqueIndex:idx_exam_sessions_subject_date" json:"exam_date"`
	ExamType  string         `gorm:"type:varchar(30);default:'regular'" json:"exam_type"`
	Status    bool           `gorm:"default:true" json:"status"`
	CreatorID uuid.UUID      `gorm:"type:uuid" json:"creator_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ExamSessionModel) TableName() string { return "exam_sessions" }
