package services

import (
	"HRAS/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAssignmentDeadline(t *testing.T) {
	// AutoAssign derives its context from this deadline and hands that
	// context to every staff query and bed transaction it issues.
	assert.Equal(t, 10*time.Second, AssignmentDeadline)
}

func TestPreferredRoles(t *testing.T) {
	tests := []struct {
		name     string
		priority string
		expected []string
	}{
		{
			name:     "critical goes to a doctor first",
			priority: models.PriorityCritical,
			expected: []string{models.RoleDoctor, models.RoleNurse},
		},
		{
			name:     "high goes to a doctor first",
			priority: models.PriorityHigh,
			expected: []string{models.RoleDoctor, models.RoleNurse},
		},
		{
			name:     "medium goes to a nurse first",
			priority: models.PriorityMedium,
			expected: []string{models.RoleNurse, models.RoleDoctor},
		},
		{
			name:     "low goes to a nurse first",
			priority: models.PriorityLow,
			expected: []string{models.RoleNurse, models.RoleDoctor},
		},
		{
			name:     "unknown priority treated as routine",
			priority: "",
			expected: []string{models.RoleNurse, models.RoleDoctor},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PreferredRoles(tt.priority))
		})
	}
}

func TestPreferredRolesAlwaysCoverBothRoles(t *testing.T) {
	// Every priority must eventually try both clinical roles so a patient
	// is never skipped just because one role has no staff on duty.
	for _, p := range []string{models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityCritical} {
		roles := PreferredRoles(p)
		assert.Len(t, roles, 2)
		assert.Contains(t, roles, models.RoleDoctor)
		assert.Contains(t, roles, models.RoleNurse)
	}
}
