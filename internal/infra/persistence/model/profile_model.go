package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminProfileModel mirrors the 'admin_profiles' table.
type AdminProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;unique;not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Username  string    `gorm:"type:varchar(100)"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminProfileModel) TableName() string {
	return "admin_profiles"
}

// TeacherProfileModel mirrors the 'teacher_profiles' table.
type TeacherProfileModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;unique;not null"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Email      string    `gorm:"type:varchar(255);unique;not null"`
	Phone      string    `gorm:"type:varchar(20)"`
	Department string    `gorm:"type:varchar(100);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (TeacherProfileModel) TableName() string {
	return "teacher_profiles"
}

// StudentProfileModel mirrors the 'student_profiles' table.
// StudentNumber is the school-assigned natural key and doubles as the
// account's login username.
type StudentProfileModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;unique;not null"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Email         string    `gorm:"type:varchar(255);unique;not null"`
	Phone         string    `gorm:"type:varchar(20)"`
	StudentNumber string    `gorm:"type:varchar(50);unique;not null"`
	Level         string    `gorm:"type:varchar(10);not null"`
	Year          int       `gorm:"not null"`
	Department    string    `gorm:"type:varchar(100);not null"`
	Classroom     string    `gorm:"type:varchar(50)"`
	TeacherID     uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (StudentProfileModel) TableName() string {
	return "student_profiles"
}

// WorkplaceProfileModel mirrors the 'workplace_profiles' table.
type WorkplaceProfileModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;unique;not null"`
	CompanyName     string    `gorm:"type:varchar(200);not null"`
	BranchName      string    `gorm:"type:varchar(200)"`
	ContactName     string    `gorm:"type:varchar(100);not null"`
	ContactEmail    string    `gorm:"type:varchar(255)"`
	ContactPhone    string    `gorm:"type:varchar(20)"`
	ContactPosition string    `gorm:"type:varchar(100)"`
	Address         string    `gorm:"type:text"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending'"`
	Notes           string    `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkplaceProfileModel) TableName() string {
	return "workplace_profiles"
}
