package model

import (
	"time"

	"github.com/google/uuid"
)

// SubsectionModel is a single content item: one media URL plus its duration.
type SubsectionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SectionID   uuid.UUID `gorm:"type:uuid;not null;index" json:"section_id"`
	Title       string    `gorm:"size:200;not null" json:"title" validate:"required,min=1,max=200"`
	Description string    `gorm:"type:text" json:"description"`
	MediaURL    string    `gorm:"size:500" json:"media_url"`
	DurationSec int       `gorm:"not null;default:0" json:"duration_sec" validate:"gte=0"`
	Position    int       `gorm:"not null;default:0" json:"position"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SubsectionModel) TableName() string {
	return "course_subsections"
}
