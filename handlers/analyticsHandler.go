package handlers

import (
	"HRAS/services"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves the admin dashboard metrics.
type AnalyticsHandler struct {
	Assignments *services.AssignmentService
}

func NewAnalyticsHandler(assignments *services.AssignmentService) *AnalyticsHandler {
	return &AnalyticsHandler{Assignments: assignments}
}

// AverageAssignmentTime reports the mean admission-to-assignment duration.
// Admin only, enforced by the router.
func (h *AnalyticsHandler) AverageAssignmentTime(c *gin.Context) {
	avg, err := h.Assignments.AverageAssignmentTime(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	if avg == nil {
		c.JSON(200, gin.H{
			"average_assignment_time": nil,
			"message":                 "No assignments recorded yet",
		})
		return
	}
	c.JSON(200, gin.H{
		"average_assignment_time":         avg.String(),
		"average_assignment_time_seconds": avg.Seconds(),
	})
}
