package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Research and supervision personnel registries. Flat reference schemas
// managed by admin staff.

type GuideModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string         `gorm:"type:varchar(150);not null" json:"name"`
	Email        string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_guides_email,where:deleted_at IS NULL" json:"email"`
	Designation  string         `gorm:"type:varchar(150)" json:"designation"`
	DepartmentID *uuid.UUID     `gorm:"type:uuid" json:"department_id,omitempty"`
	Status       bool           `gorm:"default:true" json:"status"`
	CreatorID    uuid.UUID      `gorm:"type:uuid" json:"creator_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (GuideModel) TableName() string { return "guides" }

type ExternalExpertModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string         `gorm:"type:varchar(150);not null" json:"name"`
	Email        string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_external_experts_email,where:deleted_at IS NULL" json:"email"`
	Organization string         `gorm:"type:varchar(200)" json:"organization"`
	Expertise    string         `gorm:"type:varchar(200)" json:"expertise"`
	Status       bool           `gorm:"default:true" json:"status"`
	CreatorID    uuid.UUID      `gorm:"type:uuid" json:"creator_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ExternalExpertModel) TableName() string { return "external_experts" }

// RACMemberModel is a research advisory committee member.
type RACMemberModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string         `gorm:"type:varchar(150);not null" json:"name"`
	Email        string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_rac_members_email,where:deleted_at IS NULL" json:"email"`
	Role         string         `gorm:"type:varchar(100)" json:"role"`
	DepartmentID *uuid.UUID     `gorm:"type:uuid" json:"department_id,omitempty"`
	Status       bool           `gorm:"default:true" json:"status"`
	CreatorID    uuid.UUID      `gorm:"type:uuid" json:"creator_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (RACMemberModel) TableName() string { return "rac_members" }
