package model

import (
	"time"

	"github.com/google/uuid"
)

// InternshipModel mirrors the 'internships' table.
type InternshipModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StudentID   uuid.UUID `gorm:"type:uuid;not null;index"`
	TeacherID   uuid.UUID `gorm:"type:uuid;not null;index"`
	WorkplaceID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'"`
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (InternshipModel) TableName() string {
	return "internships"
}
