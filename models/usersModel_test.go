package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleCapabilities(t *testing.T) {
	tests := []struct {
		role              string
		clinical          bool
		manageHospitals   bool
		createPatients    bool
		editPatients      bool
		viewAllPatients   bool
		assignStaff       bool
	}{
		{role: RoleAdmin, clinical: false, manageHospitals: true, createPatients: true, editPatients: true, viewAllPatients: true, assignStaff: true},
		{role: RoleDoctor, clinical: true, manageHospitals: false, createPatients: false, editPatients: true, viewAllPatients: false, assignStaff: false},
		{role: RoleNurse, clinical: true, manageHospitals: false, createPatients: false, editPatients: true, viewAllPatients: false, assignStaff: false},
		{role: RoleReceptionist, clinical: false, manageHospitals: false, createPatients: true, editPatients: false, viewAllPatients: true, assignStaff: false},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			assert.Equal(t, tt.clinical, IsClinical(tt.role))
			assert.Equal(t, tt.manageHospitals, CanManageHospitals(tt.role))
			assert.Equal(t, tt.createPatients, CanCreatePatients(tt.role))
			assert.Equal(t, tt.editPatients, CanEditPatients(tt.role))
			assert.Equal(t, tt.viewAllPatients, CanViewAllPatients(tt.role))
			assert.Equal(t, tt.assignStaff, CanAssignStaff(tt.role))
		})
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range Roles() {
		assert.True(t, ValidRole(role))
	}
	assert.False(t, ValidRole("patient"))
	assert.False(t, ValidRole(""))
	assert.False(t, ValidRole("Admin")) // role values are lowercase
}

func TestCanLogin(t *testing.T) {
	assert.True(t, (&User{Approved: true, Active: true}).CanLogin())
	assert.False(t, (&User{Approved: false, Active: true}).CanLogin())
	assert.False(t, (&User{Approved: true, Active: false}).CanLogin())
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Jo Mbeki", (&User{FirstName: "Jo", LastName: "Mbeki"}).FullName())
	assert.Equal(t, "Jo", (&User{FirstName: "Jo"}).FullName())
	assert.Equal(t, "jo@example.com", (&User{Email: "jo@example.com"}).FullName())
}

func TestNurseEditableFields(t *testing.T) {
	fields := NurseEditableFields()
	assert.ElementsMatch(t, []string{"symptoms", "severity", "status"}, fields)
	assert.NotContains(t, fields, "priority")
}
