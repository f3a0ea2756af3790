package models

import (
	"time"
)

// Hospital model
type Hospital struct {
	ID          int64      `gorm:"primaryKey;column:id" json:"id"`
	Name        string     `gorm:"size:100;not null;index;column:name" json:"name"`
	Address     string     `gorm:"type:text;column:address" json:"address"`
	Beds        int        `gorm:"not null;default:0;column:beds" json:"beds"`
	OTs         int        `gorm:"not null;default:0;column:ots" json:"ots"` // Operating Theaters
	Specialties string     `gorm:"type:text;column:specialties" json:"specialties"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Resources   []Resource `gorm:"foreignKey:HospitalID;references:ID" json:"-"`
}

func (Hospital) TableName() string {
	return "hospital"
}

// Resource types tracked per hospital.
const (
	ResourceBed       = "Bed"
	ResourceStaff     = "Staff"
	ResourceEquipment = "Equipment"
)

// ValidResourceType reports whether t is a recognized resource type.
func ValidResourceType(t string) bool {
	switch t {
	case ResourceBed, ResourceStaff, ResourceEquipment:
		return true
	}
	return false
}

// Resource model. Beds are the unit the assignment engine allocates; a bed
// with availability=false is occupied by exactly one active assignment.
type Resource struct {
	ID           int64     `gorm:"primaryKey;column:id" json:"id"`
	Name         string    `gorm:"size:100;not null;column:name" json:"name"`
	Type         string    `gorm:"size:50;not null;check:type IN ('Bed', 'Staff', 'Equipment');index;column:type" json:"type"`
	Availability bool      `gorm:"not null;default:true;index;column:availability" json:"availability"`
	HospitalID   int64     `gorm:"not null;index;column:hospital_id" json:"hospital_id"`
	Hospital     Hospital  `gorm:"foreignKey:HospitalID;references:ID" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Resource) TableName() string {
	return "resource"
}
