package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SectionModel groups subsections inside a course.
type SectionModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseID uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	Title    string    `gorm:"size:200;not null" json:"title" validate:"required,min=1,max=200"`
	Position int       `gorm:"not null;default:0" json:"position"`

	SubsectionIDs pq.StringArray `gorm:"type:text[]" json:"subsection_ids"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SectionModel) TableName() string {
	return "course_sections"
}
