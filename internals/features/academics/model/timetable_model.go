package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TimetableModel stores one weekly grid per course+semester+session.
// Slots is a JSON array of {day, start, end, subject_id, room}.
type TimetableModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CourseID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_timetables_scope,where:deleted_at IS NULL" json:"course_id"`
	Semester  int            `gorm:"not null;uniqueIndex:idx_timetables_scope" json:"semester"`
	SessionID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_timetables_scope" json:"session_id"`
	Slots     datatypes.JSON `gorm:"type:jsonb" json:"slots"`
	Status    bool           `gorm:"default:true" json:"status"`
	CreatorID uuid.UUID      `gorm:"type:uuid" json:"creator_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (TimetableModel) TableName() string { return "timetables" }
