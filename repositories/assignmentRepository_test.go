package repositories

import (
	"HRAS/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(id, load int64, approved, active bool) staffLoad {
	return staffLoad{
		User: models.User{
			ID:       id,
			Role:     models.RoleNurse,
			Approved: approved,
			Active:   active,
		},
		ActiveAssignments: load,
	}
}

func TestPickLeastLoaded(t *testing.T) {
	tests := []struct {
		name       string
		candidates []staffLoad
		expectedID int64
	}{
		{
			name: "fewest assignments wins",
			candidates: []staffLoad{
				candidate(1, 3, true, true),
				candidate(2, 0, true, true),
				candidate(3, 5, true, true),
			},
			expectedID: 2,
		},
		{
			name: "tie breaks to the lower user id",
			candidates: []staffLoad{
				candidate(9, 2, true, true),
				candidate(4, 2, true, true),
			},
			expectedID: 4,
		},
		{
			name: "unapproved staff are skipped even when idle",
			candidates: []staffLoad{
				candidate(1, 0, false, true),
				candidate(2, 4, true, true),
			},
			expectedID: 2,
		},
		{
			name: "deactivated staff are skipped even when idle",
			candidates: []staffLoad{
				candidate(1, 0, true, false),
				candidate(2, 4, true, true),
			},
			expectedID: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			picked := pickLeastLoaded(tt.candidates)
			require.NotNil(t, picked)
			assert.Equal(t, tt.expectedID, picked.ID)
		})
	}
}

func TestPickLeastLoadedWithNoEligibleStaff(t *testing.T) {
	assert.Nil(t, pickLeastLoaded(nil))
	assert.Nil(t, pickLeastLoaded([]staffLoad{
		candidate(1, 0, false, false),
		candidate(2, 1, false, true),
		candidate(3, 2, true, false),
	}))
}
