package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UGPGCourseModel is the administrative degree-program record (B.Sc, M.Sc,
// ...), distinct from the e-learning catalog course.
type UGPGCourseModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string         `gorm:"type:varchar(150);not null;uniqueIndex:idx_ugpg_courses_name,where:deleted_at IS NULL" json:"name"`
	Level        string         `gorm:"type:varchar(10);not null;default:'ug'" json:"level"` // ug | pg
	DepartmentID *uuid.UUID     `gorm:"type:uuid" json:"department_id,omitempty"`
	Semesters    int            `gorm:"default:6" json:"semesters"`
	Status       bool           `gorm:"default:true" json:"status"`
	CreatorID    uuid.UUID      `gorm:"type:uuid" json:"creator_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UGPGCourseModel) TableName() string { return "ugpg_courses" }

type LanguageModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string         `gorm:"type:varchar(80);not null;uniqueIndex:idx_languages_name,where:deleted_at IS NULL" json:"name"`
	Status    bool           `gorm:"default:true" json:"status"`
	CreatorID uuid.UUID      `gorm:"type:uuid" json:"creator_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (LanguageModel) TableName() string { return "languages" }
