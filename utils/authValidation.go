package utils

import (
	"HRAS/models"
	"errors"
	"log"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validation errors
var (
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordNotComplex = errors.New("password must include at least one uppercase letter, one lowercase letter, one digit, and one special character")
	ErrInvalidResetCode   = errors.New("invalid reset code")
	ErrInvalidRole        = errors.New("role must be one of admin, doctor, nurse, receptionist")
	ErrInvalidPriority    = errors.New("priority must be one of Low, Medium, High, Critical")
	ErrInvalidStatus      = errors.New("status must be one of Waiting, In Treatment, Discharged")
	ErrInvalidNoteType    = errors.New("note type must be one of general, medical, treatment, lab, discharge")
)

// ValidateUserData validates a registration payload using ozzo-validation.
func ValidateUserData(user models.User) error {
	err := validation.ValidateStruct(&user,
		validation.Field(&user.Email, validation.Required, is.Email),
		validation.Field(&user.FirstName, validation.Required, validation.Length(1, 150)),
		validation.Field(&user.LastName, validation.Required, validation.Length(1, 150)),
		validation.Field(&user.Role, validation.Required, validation.By(validateRole)),
		// Ensure password is required and follows the custom validation
		validation.Field(&user.Password, validation.Required.Error("password cannot be blank"), validation.By(validatePassword)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidatePatientData validates a patient intake payload.
func ValidatePatientData(patient models.Patient) error {
	err := validation.ValidateStruct(&patient,
		validation.Field(&patient.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&patient.Age, validation.Min(0), validation.Max(150)),
		validation.Field(&patient.Telephone, validation.Length(0, 15)),
		validation.Field(&patient.Priority, validation.By(validatePriority)),
		validation.Field(&patient.Status, validation.By(validateStatus)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateObservationData validates a vitals payload recorded by a nurse.
func ValidateObservationData(obs models.Observation) error {
	err := validation.ValidateStruct(&obs,
		validation.Field(&obs.BloodPressureSystolic, validation.Min(0), validation.Max(400)),
		validation.Field(&obs.BloodPressureDiastolic, validation.Min(0), validation.Max(300)),
		validation.Field(&obs.Temperature, validation.Min(20.0), validation.Max(45.0)),
		validation.Field(&obs.Pulse, validation.Min(0), validation.Max(400)),
		validation.Field(&obs.RespiratoryRate, validation.Min(0), validation.Max(120)),
		validation.Field(&obs.OxygenSaturation, validation.Min(0), validation.Max(100)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateShiftData validates a shift scheduling payload.
func ValidateShiftData(shift models.Shift) error {
	err := validation.ValidateStruct(&shift,
		validation.Field(&shift.StaffID, validation.Required),
		validation.Field(&shift.StartTime, validation.Required),
		validation.Field(&shift.EndTime, validation.Required, validation.By(func(value interface{}) error {
			if !shift.EndTime.After(shift.StartTime) {
				return errors.New("end time must be after start time")
			}
			return nil
		})),
		validation.Field(&shift.Location, validation.Length(0, 100)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidatePasswordReset validates the reset code and new password.
func ValidatePasswordReset(resetCode, newPassword string) error {
	err := validation.Errors{
		"resetCode": validation.Validate(resetCode, validation.Required.Error("invalid reset code")),
		"password":  validation.Validate(newPassword, validation.Required, validation.By(validatePassword)),
	}.Filter()
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

func validateRole(value interface{}) error {
	role, _ := value.(string)
	if !models.ValidRole(role) {
		return ErrInvalidRole
	}
	return nil
}

func validatePriority(value interface{}) error {
	priority, _ := value.(string)
	if priority == "" {
		return nil // defaults to Low
	}
	if !models.ValidPriority(priority) {
		return ErrInvalidPriority
	}
	return nil
}

func validateStatus(value interface{}) error {
	status, _ := value.(string)
	if status == "" {
		return nil // defaults to Waiting
	}
	if !models.ValidStatus(status) {
		return ErrInvalidStatus
	}
	return nil
}

// validatePassword checks the password for length and complexity.
func validatePassword(value interface{}) error {
	password, _ := value.(string)

	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	// Check complexity with regex
	var (
		lowercaseRegex = regexp.MustCompile(`[a-z]`)
		uppercaseRegex = regexp.MustCompile(`[A-Z]`)
		digitRegex     = regexp.MustCompile(`\d`)
		specialRegex   = regexp.MustCompile(`[@$!%*?&]`)
	)

	if !lowercaseRegex.MatchString(password) ||
		!uppercaseRegex.MatchString(password) ||
		!digitRegex.MatchString(password) ||
		!specialRegex.MatchString(password) {
		return ErrPasswordNotComplex
	}

	return nil
}
