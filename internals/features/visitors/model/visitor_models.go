package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MeetingTypeModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_meeting_types_name,where:deleted_at IS NULL" json:"name"`
	Status    bool           `gorm:"default:true" json:"status"`
	CreatorID uuid.UUID      `gorm:"type:uuid" json:"creator_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (MeetingTypeModel) TableName() string { return "meeting_types" }

type VisitPurposeModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_visit_purposes_name,where:deleted_at IS NULL" json:"name"`
	Status    bool           `gorm:"default:true" json:"status"`
	CreatorID uuid.UUID      `gorm:"type:uuid" json:"creator_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (VisitPurposeModel) TableName() string { return "visit_purposes" }

// VisitorLogModel records one front-desk visit. CheckOutAt stays nil
// until the visitor leaves.
type VisitorLogModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VisitorName string         `gorm:"type:varchar(150);not null" json:"visitor_name"`
	Phone       string         `gorm:"type:varchar(30)" json:"phone"`
	PurposeID   *uuid.UUID     `gorm:"type:uuid" json:"purpose_id,omitempty"`
	Purpose     *VisitPurposeModel `gorm:"foreignKey:PurposeID" json:"purpose,omitempty"`
	MeetingID   *uuid.UUID     `gorm:"type:uuid" json:"meeting_type_id,omitempty"`
	MeetingType *MeetingTypeModel `gorm:"foreignKey:MeetingID" json:"meeting_type,omitempty"`
	WhomToMeet  string         `gorm:"type:varchar(150)" json:"whom_to_meet"`
	Note        string         `gorm:"type:text" json:"note"`
	CheckInAt   time.Time      `gorm:"not null" json:"check_in_at"`
	CheckOutAt  *time.Time     `json:"check_out_at,omitempty"`
	CreatorID   uuid.UUID      `gorm:"type:uuid" json:"creator_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (VisitorLogModel) TableName() string { return "visitor_logs" }
