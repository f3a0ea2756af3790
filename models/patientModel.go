package models

import (
	"strings"
	"time"
)

// Priority levels, ordered by urgency.
const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

// Patient workflow statuses. This is the canonical vocabulary; a missing
// status is treated as StatusWaiting.
const (
	StatusWaiting     = "Waiting"
	StatusInTreatment = "In Treatment"
	StatusDischarged  = "Discharged"
)

// ValidPriority reports whether p is one of the four defined priority levels.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the defined workflow statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusWaiting, StatusInTreatment, StatusDischarged:
		return true
	}
	return false
}

// HighUrgency reports whether the priority routes the patient to a doctor
// before a nurse.
func HighUrgency(priority string) bool {
	return priority == PriorityHigh || priority == PriorityCritical
}

// PriorityBadge maps a priority value to its display category. Unrecognized
// values fall back to the neutral category; it never fails.
func PriorityBadge(priority string) string {
	switch priority {
	case PriorityCritical:
		return "critical-red"
	case PriorityHigh:
		return "high-orange"
	case PriorityMedium:
		return "medium-yellow"
	case PriorityLow:
		return "low-green"
	}
	return "neutral-gray"
}

// PriorityLabel returns the human label for a priority, uppercased for badge
// display. Unknown or empty values label as UNKNOWN.
func PriorityLabel(priority string) string {
	if !ValidPriority(priority) {
		return "UNKNOWN"
	}
	return strings.ToUpper(priority)
}

// StatusBadge maps a workflow status to its display category with the same
// fallback contract as PriorityBadge.
func StatusBadge(status string) string {
	switch status {
	case StatusWaiting:
		return "waiting-amber"
	case StatusInTreatment:
		return "treatment-blue"
	case StatusDischarged:
		return "discharged-green"
	}
	return "neutral-gray"
}

// StatusLabel returns the display label for a status. An absent or
// unrecognized status renders as Waiting.
func StatusLabel(status string) string {
	if !ValidStatus(status) {
		return StatusWaiting
	}
	return status
}

// Patient model
type Patient struct {
	ID               string       `gorm:"primaryKey;column:id" json:"id"`
	Name             string       `gorm:"size:100;not null;index;column:name" json:"name"`
	Age              int          `gorm:"not null;default:0;column:age" json:"age"`
	AdmissionDate    time.Time    `gorm:"column:admission_date;autoCreateTime" json:"admission_date"`
	Severity         string       `gorm:"size:50;default:'Unknown';column:severity" json:"severity"`
	Priority         string       `gorm:"size:20;not null;default:'Low';check:priority IN ('Low', 'Medium', 'High', 'Critical');column:priority" json:"priority"`
	Status           string       `gorm:"size:20;not null;default:'Waiting';check:status IN ('Waiting', 'In Treatment', 'Discharged');index;column:status" json:"status"`
	Telephone        string       `gorm:"size:15;column:telephone" json:"telephone"`
	EmergencyContact string       `gorm:"size:100;column:emergency_contact" json:"emergency_contact"`
	Symptoms         string       `gorm:"type:text;column:symptoms" json:"symptoms"`
	AISuggestion     string       `gorm:"type:text;column:ai_suggestion" json:"ai_suggestion"`
	HospitalID       int64        `gorm:"not null;index;column:hospital_id" json:"hospital_id"`
	Hospital         Hospital     `gorm:"foreignKey:HospitalID;references:ID" json:"-"`
	CreatedByID      *int64       `gorm:"column:created_by_id" json:"created_by_id"`
	CreatedBy        *User        `gorm:"foreignKey:CreatedByID;references:ID" json:"-"`
	Assignments      []Assignment `gorm:"foreignKey:PatientID;references:ID" json:"assignments,omitempty"`
	Notes            []Note       `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Observations     []Observation `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}

// CurrentAssignment returns the active assignment, if any. A patient holds at
// most one.
func (p *Patient) CurrentAssignment() *Assignment {
	if len(p.Assignments) == 0 {
		return nil
	}
	return &p.Assignments[0]
}

// AssigneeLabel names the assigned staff member for display, or the
// unassigned indicator when no assignment exists.
func (p *Patient) AssigneeLabel() string {
	a := p.CurrentAssignment()
	if a == nil || a.User == nil {
		return "Unassigned"
	}
	return a.User.FullName()
}
