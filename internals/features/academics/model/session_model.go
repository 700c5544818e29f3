package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session variants. One table serves all three academic calendars.
const (
	SessionVariantGeneral = "general"
	SessionVariantUGPG    = "ugpg"
	SessionVariantPhD     = "phd"
)

type SessionModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_sessions_name_variant,where:deleted_at IS NULL" json:"name"`
	Variant   string         `gorm:"type:varchar(20);not null;default:'general';uniqueIndex:idx_sessions_name_variant" json:"variant"`
	StartDate *time.Time     `json:"start_date,omitempty"`
	EndDate   *time.Time     `json:"end_date,omitempty"`
	Status    bool           `gorm:"default:true" json:"status"`
	CreatorID uuid.UUID      `gorm:"type:uuid" json:"creator_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SessionModel) TableName() string { return "academic_sessions" }

func ValidSessionVariant(v string) bool {
	switch v {
	case SessionVariantGeneral, SessionVariantUGPG, SessionVariantPhD:
		return true
	}
	return false
}
