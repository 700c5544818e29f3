package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProgressModel tracks completion per (user, course) pair. Created by the
// payment/enrollment flow; completed_media grows as the learner finishes
// subsections.
type ProgressModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index:idx_progress_user_course,unique" json:"user_id"`
	CourseID uuid.UUID `gorm:"type:uuid;not null;index:idx_progress_user_course,unique" json:"course_id"`

	CompletedMedia pq.StringArray `gorm:"type:text[]" json:"completed_media"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ProgressModel) TableName() string {
	return "course_progress"
}
