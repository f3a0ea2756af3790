package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityBadge(t *testing.T) {
	tests := []struct {
		name     string
		priority string
		expected string
	}{
		{name: "critical", priority: PriorityCritical, expected: "critical-red"},
		{name: "high", priority: PriorityHigh, expected: "high-orange"},
		{name: "medium", priority: PriorityMedium, expected: "medium-yellow"},
		{name: "low", priority: PriorityLow, expected: "low-green"},
		{name: "unknown value falls back", priority: "Urgent", expected: "neutral-gray"},
		{name: "empty value falls back", priority: "", expected: "neutral-gray"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PriorityBadge(tt.priority))
		})
	}
}

func TestPriorityBadgeDistinct(t *testing.T) {
	// Each defined priority must map to its own category.
	seen := map[string]string{}
	for _, p := range []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical} {
		badge := PriorityBadge(p)
		assert.NotEqual(t, "neutral-gray", badge)
		prev, dup := seen[badge]
		assert.False(t, dup, "priority %s shares a badge with %s", p, prev)
		seen[badge] = p
	}
}

func TestPriorityLabel(t *testing.T) {
	assert.Equal(t, "CRITICAL", PriorityLabel(PriorityCritical))
	assert.Equal(t, "LOW", PriorityLabel(PriorityLow))
	assert.Equal(t, "UNKNOWN", PriorityLabel(""))
	assert.Equal(t, "UNKNOWN", PriorityLabel("bogus"))
}

func TestStatusBadge(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		expected string
	}{
		{name: "waiting", status: StatusWaiting, expected: "waiting-amber"},
		{name: "in treatment", status: StatusInTreatment, expected: "treatment-blue"},
		{name: "discharged", status: StatusDischarged, expected: "discharged-green"},
		{name: "unknown value falls back", status: "Admitted", expected: "neutral-gray"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusBadge(tt.status))
		})
	}
}

func TestStatusLabelFallsBackToWaiting(t *testing.T) {
	assert.Equal(t, StatusWaiting, StatusLabel(""))
	assert.Equal(t, StatusWaiting, StatusLabel("nonsense"))
	assert.Equal(t, StatusDischarged, StatusLabel(StatusDischarged))
}

func TestHighUrgency(t *testing.T) {
	assert.True(t, HighUrgency(PriorityCritical))
	assert.True(t, HighUrgency(PriorityHigh))
	assert.False(t, HighUrgency(PriorityMedium))
	assert.False(t, HighUrgency(PriorityLow))
	assert.False(t, HighUrgency(""))
}

func TestAssigneeLabel(t *testing.T) {
	unassigned := Patient{ID: "HP-000001"}
	assert.Equal(t, "Unassigned", unassigned.AssigneeLabel())

	assigned := Patient{
		ID: "HP-000002",
		Assignments: []Assignment{
			{User: &User{FirstName: "Ada", LastName: "Nkosi"}},
		},
	}
	assert.Equal(t, "Ada Nkosi", assigned.AssigneeLabel())
}
