package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubjectModel is the marks configuration authority: result submissions
// look up MaxMarks/PassingMarks here at write time. ExamTypeMarks holds
// optional per-exam-type overrides, e.g.
// {"supplementary": {"max_marks": 50, "passing_marks": 20}}; exam types
// without an entry fall back to the base pair.
type SubjectModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string         `gorm:"type:varchar(150);not null" json:"name"`
	Code          string         `gorm:"type:varchar(30)" json:"code"`
	CourseID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_subjects_course_sem_name,where:deleted_at IS NULL" json:"course_id"`
	Semester      int            `gorm:"not null;uniqueIndex:idx_subjects_course_sem_name" json:"semester"`
	NameKey       string         `gorm:"type:varchar(150);not null;uniqueIndex:idx_subjects_course_sem_name;column:name_key" json:"-"`
	MaxMarks      float64        `gorm:"not null;default:100" json:"max_marks"`
	PassingMarks  float64        `gorm:"default:0" json:"passing_marks"`
	ExamTypeMarks datatypes.JSON `gorm:"type:jsonb" json:"exam_type_marks,omitempty"`
	Status        bool           `gorm:"default:true" json:"status"`
	CreatorID     uuid.UUID      `gorm:"type:uuid" json:"creator_id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SubjectModel) TableName() string { return "subjects" }
