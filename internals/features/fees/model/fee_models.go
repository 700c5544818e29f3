package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeeTypeModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_fee_types_name,where:deleted_at IS NULL" json:"name"`
	Status    bool           `gorm:"default:true" json:"status"`
	CreatorID uuid.UUID      `gorm:"type:uuid" json:"creator_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (FeeTypeModel) TableName() string { return "fee_types" }

// FeeAssignmentModel links a fee type to a course/session/semester scope
// with the amount owed by each student in that scope.
type FeeAssignmentModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FeeTypeID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_fee_assignments_scope,where:deleted_at IS NULL" json:"fee_type_id"`
	FeeType   *FeeTypeModel  `gorm:"foreignKey:FeeTypeID" json:"fee_type,omitempty"`
	CourseID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_fee_assignments_scope" json:"course_id"`
	SessionID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_fee_assignments_scope" json:"session_id"`
	Semester  int            `gorm:"not null;uniqueIndex:idx_fee_assignments_scope" json:"semester"`
	Amount    float64        `gorm:"not null" json:"amount"`
	DueDate   *time.Time     `json:"due_date,omitempty"`
	Status    bool           `gorm:"default:true" json:"status"`
	CreatorID uuid.UUID      `gorm:"type:uuid" json:"creator_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (FeeAssignmentModel) TableName() string { return "fee_assignments" }

// FeePaymentModel records money received against an assignment. ReceiptNo
// is minted at write time inside the recording transaction.
type FeePaymentModel struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AssignmentID uuid.UUID           `gorm:"type:uuid;not null" json:"assignment_id"`
	Assignment   *FeeAssignmentModel `gorm:"foreignKey:AssignmentID" json:"assignment,omitempty"`
	StudentID    uuid.UUID           `gorm:"type:uuid;not null" json:"student_id"`
	Amount       float64             `gorm:"not null" json:"amount"`
	Mode         string              `gorm:"type:varchar(20);not null;default:'cash'" json:"mode"`
	ReceiptNo    string              `gorm:"type:varchar(30);not null;uniqueIndex:idx_fee_payments_receipt,where:deleted_at IS NULL" json:"receipt_no"`
	Note         string              `gorm:"type:text" json:"note"`
	ReceivedBy   uuid.UUID           `gorm:"type:uuid" json:"received_by"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	DeletedAt    gorm.DeletedAt      `gorm:"index" json:"-"`
}

func (FeePaymentModel) TableName() string { return "fee_payments" }
