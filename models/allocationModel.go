package models

import (
	"time"
)

// Assignment binds a patient to a responsible staff member and an allocated
// bed. Rows are written only by the assignment engine and the admin
// reassignment override.
type Assignment struct {
	ID             int64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID      string        `gorm:"not null;index;column:patient_id" json:"patient_id"`
	Patient        *Patient      `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	ResourceID     int64         `gorm:"not null;index;column:resource_id" json:"resource_id"`
	Resource       *Resource     `gorm:"foreignKey:ResourceID;references:ID" json:"resource,omitempty"`
	UserID         int64         `gorm:"not null;index;column:user_id" json:"user_id"`
	User           *User         `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	AllocationDate time.Time     `gorm:"column:allocation_date;autoCreateTime" json:"allocation_date"`
	AssignmentTime time.Duration `gorm:"column:assignment_time" json:"assignment_time"` // admission to assignment
	CreatedAt      time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Assignment) TableName() string {
	return "assignment"
}

// Shift model
type Shift struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	StaffID    int64     `gorm:"not null;index;column:staff_id" json:"staff_id"`
	Staff      *User     `gorm:"foreignKey:StaffID;references:ID" json:"staff,omitempty"`
	StartTime  time.Time `gorm:"not null;index;column:start_time" json:"start_time"`
	EndTime    time.Time `gorm:"not null;column:end_time" json:"end_time"`
	Location   string    `gorm:"size:100;column:location" json:"location"`
	HospitalID int64     `gorm:"not null;index;column:hospital_id" json:"hospital_id"`
	Hospital   *Hospital `gorm:"foreignKey:HospitalID;references:ID" json:"-"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Shift) TableName() string {
	return "shift"
}
