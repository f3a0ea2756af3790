package handlers

import (
	"HRAS/services"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler serves the read-only assignment views. Rows are written
// only by the engine and the admin override on the patient routes.
type AssignmentHandler struct {
	Assignments *services.AssignmentService
}

func NewAssignmentHandler(assignments *services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{Assignments: assignments}
}

func (h *AssignmentHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	assignments, err := h.Assignments.List(c.Request.Context(), actor)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, assignments)
}

func (h *AssignmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	assignment, err := h.Assignments.Get(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	if assignment == nil {
		c.JSON(404, gin.H{"error": "Assignment not found"})
		return
	}
	c.JSON(200, assignment)
}
