package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BatchModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_batches_dept_name,where:deleted_at IS NULL" json:"name"`
	DepartmentID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_batches_dept_name" json:"department_id"`
	Department   *DepartmentModel `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Status       bool           `gorm:"default:true" json:"status"`
	CreatorID    uuid.UUID      `gorm:"type:uuid" json:"creator_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (BatchModel) TableName() string { return "batches" }
