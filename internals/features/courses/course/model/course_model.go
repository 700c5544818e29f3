package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// CourseModel is the catalog entry. Content lives in sections/subsections
// referenced by id arrays; enrollment is the user-id array maintained by the
// payment flow.
type CourseModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title        string    `gorm:"size:200;not null;uniqueIndex:idx_courses_title,where:deleted_at IS NULL" json:"title" validate:"required,min=3,max=200"`
	Description  string    `gorm:"type:text" json:"description"`
	Price        float64   `gorm:"not null;default:0" json:"price" validate:"gte=0"`
	ThumbnailURL string    `gorm:"size:500" json:"thumbnail_url"`
	Status       string    `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	Category     string    `gorm:"size:100" json:"category"`
	Language     string    `gorm:"size:50" json:"language"`
	CreatorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"creator_id"`

	Tags            pq.StringArray `gorm:"type:text[]" json:"tags"`
	SectionIDs      pq.StringArray `gorm:"type:text[]" json:"section_ids"`
	EnrolledUserIDs pq.StringArray `gorm:"type:text[]" json:"enrolled_user_ids"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (CourseModel) TableName() string {
	return "courses"
}
