package models

import (
	"time"
)

// Roles recognized by the system. Capability checks are a static lookup on
// these values; there is no attribute-based policy layer.
const (
	RoleAdmin        = "admin"
	RoleDoctor       = "doctor"
	RoleNurse        = "nurse"
	RoleReceptionist = "receptionist"
)

// Roles lists every valid role value.
func Roles() []string {
	return []string{RoleAdmin, RoleDoctor, RoleNurse, RoleReceptionist}
}

// ValidRole reports whether role is one of the recognized role values.
func ValidRole(role string) bool {
	for _, r := range Roles() {
		if r == role {
			return true
		}
	}
	return false
}

// User represents a staff account. Accounts are created in a pending state
// (approved=false, active=false) and must be approved by an admin before the
// user can log in.
type User struct {
	ID           int64     `gorm:"primaryKey;column:id" json:"id"`
	Email        string    `gorm:"size:255;not null;unique;index;column:email" json:"email"`
	FirstName    string    `gorm:"size:150;column:first_name" json:"first_name"`
	LastName     string    `gorm:"size:150;column:last_name" json:"last_name"`
	Password     string    `gorm:"size:255;not null;column:password" json:"-"`
	Role         string    `gorm:"size:20;not null;check:role IN ('admin', 'doctor', 'nurse', 'receptionist');index;column:role" json:"role"`
	Specialty    string    `gorm:"size:100;column:specialty" json:"specialty"`
	HospitalID   *int64    `gorm:"index;column:hospital_id" json:"hospital_id"`
	Hospital     *Hospital `gorm:"foreignKey:HospitalID;references:ID" json:"hospital,omitempty"`
	Approved     bool      `gorm:"not null;default:false;column:approved" json:"approved"`
	Active       bool      `gorm:"not null;default:false;column:active" json:"active"`
	Available    bool      `gorm:"not null;default:true;column:available" json:"available"`
	DateJoined   time.Time `gorm:"autoCreateTime;column:date_joined" json:"date_joined"`
	Assignments  []Assignment `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// FullName returns the display name, falling back to the email address.
func (u *User) FullName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		return u.Email
	}
	return name
}

// CanLogin reports whether the account has passed admin approval and has not
// been deactivated.
func (u *User) CanLogin() bool {
	return u.Approved && u.Active
}

// IsClinical reports whether the role carries a clinical scope (assigned
// patients, vitals, notes).
func IsClinical(role string) bool {
	return role == RoleDoctor || role == RoleNurse
}

// CanManageHospitals reports whether the role may create, update or delete
// hospitals and their resources.
func CanManageHospitals(role string) bool {
	return role == RoleAdmin
}

// CanManageUsers reports whether the role may approve, reject, activate or
// deactivate accounts and manage the staff roster.
func CanManageUsers(role string) bool {
	return role == RoleAdmin
}

// CanCreatePatients reports whether the role may register new patients.
// Doctors and nurses are excluded: intake is a front-desk function and
// assignment is decided by the system, not the clinician.
func CanCreatePatients(role string) bool {
	return role == RoleAdmin || role == RoleReceptionist
}

// CanEditPatients reports whether the role may update patient records at all.
// Receptionists get read-only access to the queue.
func CanEditPatients(role string) bool {
	return role == RoleAdmin || role == RoleDoctor || role == RoleNurse
}

// CanViewAllPatients reports whether the role sees every patient in scope
// rather than only assigned ones.
func CanViewAllPatients(role string) bool {
	return role == RoleAdmin || role == RoleReceptionist
}

// CanAssignStaff reports whether the role may override the automatic
// assignment engine. Only admins hold the emergency override.
func CanAssignStaff(role string) bool {
	return role == RoleAdmin
}

// NurseEditableFields lists the only patient columns a nurse update may touch.
func NurseEditableFields() []string {
	return []string{"symptoms", "severity", "status"}
}
