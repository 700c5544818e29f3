package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ResultModel holds the graded marks for one student in one exam session.
// Resubmitting for the same (student, course, semester, exam session)
// replaces the previous row.
//
// Subjects is the serialized []SubjectResult; the aggregate columns are
// computed at write time from the subject configuration, never accepted
// from the client.
type ResultModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_results_scope,where:deleted_at IS NULL" json:"student_id"`
	CourseID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_results_scope" json:"course_id"`
	Semester      int            `gorm:"not null;uniqueIndex:idx_results_scope" json:"semester"`
	ExamSessionID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_results_scope" json:"exam_session_id"`
	Subjects      datatypes.JSON `gorm:"type:jsonb;not null" json:"subjects"`
	TotalObtained float64        `gorm:"not null" json:"total_obtained"`
	TotalMax      float64        `gorm:"not null" json:"total_max"`
	Percentage    float64        `gorm:"not null" json:"percentage"`
	Grade         string         `gorm:"type:varchar(3);not null" json:"grade"`
	IsPassed      bool           `gorm:"not null" json:"is_passed"`
	CreatorID     uuid.UUID      `gorm:"type:uuid" json:"creator_id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ResultModel) TableName() string { return "results" }
