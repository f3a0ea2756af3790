package utils

import (
	"HRAS/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validUser() models.User {
	return models.User{
		Email:     "staff@example.com",
		FirstName: "Thandi",
		LastName:  "Dlamini",
		Role:      models.RoleNurse,
		Password:  "Str0ng!pass",
	}
}

func TestValidateUserData(t *testing.T) {
	assert.NoError(t, ValidateUserData(validUser()))

	bad := validUser()
	bad.Email = "not-an-email"
	assert.Error(t, ValidateUserData(bad))

	bad = validUser()
	bad.Role = "janitor"
	assert.Error(t, ValidateUserData(bad))

	bad = validUser()
	bad.Password = "short"
	assert.Error(t, ValidateUserData(bad))

	bad = validUser()
	bad.Password = "alllowercase1!"
	assert.Error(t, ValidateUserData(bad))
}

func TestValidatePatientData(t *testing.T) {
	ok := models.Patient{Name: "John Mokoena", Age: 42}
	assert.NoError(t, ValidatePatientData(ok))

	// Priority and status may be empty (they default) but not invalid.
	ok.Priority = models.PriorityHigh
	ok.Status = models.StatusWaiting
	assert.NoError(t, ValidatePatientData(ok))

	bad := models.Patient{Name: "", Age: 30}
	assert.Error(t, ValidatePatientData(bad))

	bad = models.Patient{Name: "X", Age: 200}
	assert.Error(t, ValidatePatientData(bad))

	bad = models.Patient{Name: "X", Age: 30, Priority: "Urgent"}
	assert.Error(t, ValidatePatientData(bad))

	bad = models.Patient{Name: "X", Age: 30, Status: "Admitted"}
	assert.Error(t, ValidatePatientData(bad))
}

func TestValidateObservationData(t *testing.T) {
	systolic := 120
	temp := 37.2
	ok := models.Observation{BloodPressureSystolic: &systolic, Temperature: &temp}
	assert.NoError(t, ValidateObservationData(ok))

	highTemp := 60.0
	bad := models.Observation{Temperature: &highTemp}
	assert.Error(t, ValidateObservationData(bad))

	spo2 := 150
	bad = models.Observation{OxygenSaturation: &spo2}
	assert.Error(t, ValidateObservationData(bad))
}

func TestValidateShiftData(t *testing.T) {
	start := time.Now()
	ok := models.Shift{StaffID: 1, StartTime: start, EndTime: start.Add(8 * time.Hour)}
	assert.NoError(t, ValidateShiftData(ok))

	bad := models.Shift{StaffID: 1, StartTime: start, EndTime: start.Add(-time.Hour)}
	assert.Error(t, ValidateShiftData(bad))
}

func TestValidatePasswordReset(t *testing.T) {
	assert.NoError(t, ValidatePasswordReset("123456", "Str0ng!pass"))
	assert.Error(t, ValidatePasswordReset("", "Str0ng!pass"))
	assert.Error(t, ValidatePasswordReset("123456", "weak"))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass")
	assert.NoError(t, err)
	assert.NotEqual(t, "Str0ng!pass", hash)
	assert.True(t, CheckPassword(hash, "Str0ng!pass"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
