package models

import (
	"time"
)

// Note types.
const (
	NoteGeneral   = "general"
	NoteMedical   = "medical"
	NoteTreatment = "treatment"
	NoteLab       = "lab"
	NoteDischarge = "discharge"
)

// ValidNoteType reports whether t is a recognized note type.
func ValidNoteType(t string) bool {
	switch t {
	case NoteGeneral, NoteMedical, NoteTreatment, NoteLab, NoteDischarge:
		return true
	}
	return false
}

// Note model
type Note struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID   string    `gorm:"not null;index;column:patient_id" json:"patient_id"`
	Patient     *Patient  `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	CreatedByID int64     `gorm:"not null;index;column:created_by_id" json:"created_by_id"`
	CreatedBy   *User     `gorm:"foreignKey:CreatedByID;references:ID" json:"created_by,omitempty"`
	NoteType    string    `gorm:"size:20;not null;default:'general';check:note_type IN ('general', 'medical', 'treatment', 'lab', 'discharge');column:note_type" json:"note_type"`
	Text        string    `gorm:"type:text;not null;column:text" json:"text"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Note) TableName() string {
	return "note"
}

// LabReport model. Doctors only; nurses are denied the whole resource.
type LabReport struct {
	ID           int64      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID    string     `gorm:"not null;index;column:patient_id" json:"patient_id"`
	Patient      *Patient   `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	DoctorID     int64      `gorm:"not null;index;column:doctor_id" json:"doctor_id"`
	Doctor       *User      `gorm:"foreignKey:DoctorID;references:ID" json:"doctor,omitempty"`
	Diagnosis    string     `gorm:"type:text;not null;column:diagnosis" json:"diagnosis"`
	CheckInTime  time.Time  `gorm:"column:check_in_time;autoCreateTime" json:"check_in_time"`
	ResponseTime *time.Time `gorm:"column:response_time" json:"response_time"`
}

func (LabReport) TableName() string {
	return "lab_report"
}

// Observation holds vital signs recorded by a nurse. Rows are immutable after
// creation; there is no update or delete path.
type Observation struct {
	ID                     int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID              string    `gorm:"not null;index:idx_obs_patient_ts;column:patient_id" json:"patient_id"`
	Patient                *Patient  `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	NurseID                int64     `gorm:"not null;index;column:nurse_id" json:"nurse_id"`
	Nurse                  *User     `gorm:"foreignKey:NurseID;references:ID" json:"nurse,omitempty"`
	Timestamp              time.Time `gorm:"column:timestamp;autoCreateTime;index:idx_obs_patient_ts" json:"timestamp"`
	BloodPressureSystolic  *int      `gorm:"column:blood_pressure_systolic" json:"blood_pressure_systolic"`   // mmHg
	BloodPressureDiastolic *int      `gorm:"column:blood_pressure_diastolic" json:"blood_pressure_diastolic"` // mmHg
	Temperature            *float64  `gorm:"column:temperature" json:"temperature"`                           // °C
	Pulse                  *int      `gorm:"column:pulse" json:"pulse"`                                       // bpm
	RespiratoryRate        *int      `gorm:"column:respiratory_rate" json:"respiratory_rate"`                 // breaths/min
	OxygenSaturation       *int      `gorm:"column:oxygen_saturation" json:"oxygen_saturation"`               // SpO2 %
	Notes                  string    `gorm:"type:text;column:notes" json:"notes"`
}

func (Observation) TableName() string {
	return "observation"
}

// Diagnosis recorded by a doctor. Immutable after creation.
type Diagnosis struct {
	ID            int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID     string    `gorm:"not null;index;column:patient_id" json:"patient_id"`
	Patient       *Patient  `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	DoctorID      int64     `gorm:"not null;index;column:doctor_id" json:"doctor_id"`
	Doctor        *User     `gorm:"foreignKey:DoctorID;references:ID" json:"doctor,omitempty"`
	DiagnosisText string    `gorm:"type:text;not null;column:diagnosis_text" json:"diagnosis_text"`
	Timestamp     time.Time `gorm:"column:timestamp;autoCreateTime" json:"timestamp"`
}

func (Diagnosis) TableName() string {
	return "diagnosis"
}

// Test order statuses.
const (
	TestOrdered   = "ordered"
	TestPending   = "pending"
	TestResulted  = "resulted"
	TestCancelled = "cancelled"
)

// ValidTestStatus reports whether s is a recognized test order status.
func ValidTestStatus(s string) bool {
	switch s {
	case TestOrdered, TestPending, TestResulted, TestCancelled:
		return true
	}
	return false
}

// TestOrder model
type TestOrder struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID string    `gorm:"not null;index;column:patient_id" json:"patient_id"`
	Patient   *Patient  `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	DoctorID  int64     `gorm:"not null;index;column:doctor_id" json:"doctor_id"`
	Doctor    *User     `gorm:"foreignKey:DoctorID;references:ID" json:"doctor,omitempty"`
	TestType  string    `gorm:"size:200;not null;column:test_type" json:"test_type"`
	Status    string    `gorm:"size:20;not null;default:'ordered';check:status IN ('ordered', 'pending', 'resulted', 'cancelled');index;column:status" json:"status"`
	Notes     string    `gorm:"type:text;column:notes" json:"notes"`
	OrderedAt time.Time `gorm:"column:ordered_at;autoCreateTime" json:"ordered_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TestOrder) TableName() string {
	return "test_order"
}

// Prescription recorded by a doctor. Immutable after creation.
type Prescription struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID    string    `gorm:"not null;index;column:patient_id" json:"patient_id"`
	Patient      *Patient  `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	DoctorID     int64     `gorm:"not null;index;column:doctor_id" json:"doctor_id"`
	Doctor       *User     `gorm:"foreignKey:DoctorID;references:ID" json:"doctor,omitempty"`
	Medication   string    `gorm:"size:200;not null;column:medication" json:"medication"`
	Dosage       string    `gorm:"size:100;not null;column:dosage" json:"dosage"`
	Frequency    string    `gorm:"size:100;not null;column:frequency" json:"frequency"`
	Duration     string    `gorm:"size:100;column:duration" json:"duration"`
	Instructions string    `gorm:"type:text;column:instructions" json:"instructions"`
	PrescribedAt time.Time `gorm:"column:prescribed_at;autoCreateTime" json:"prescribed_at"`
}

func (Prescription) TableName() string {
	return "prescription"
}
