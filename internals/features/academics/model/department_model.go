package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DepartmentModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string         `gorm:"type:varchar(150);not null;uniqueIndex:idx_departments_name,where:deleted_at IS NULL" json:"name"`
	Status    bool           `gorm:"default:true" json:"status"`
	CreatorID uuid.UUID      `gorm:"type:uuid" json:"creator_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (DepartmentModel) TableName() string { return "departments" }

type SchoolModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string         `gorm:"type:varchar(200);not null;uniqueIndex:idx_schools_name,where:deleted_at IS NULL" json:"name"`
	Address   string         `gorm:"type:text" json:"address"`
	Status    bool           `gorm:"default:true" json:"status"`
	CreatorID uuid.UUID      `gorm:"type:uuid" json:"creator_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SchoolModel) TableName() string { return "schools" }
