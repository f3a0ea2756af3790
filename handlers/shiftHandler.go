package handlers

import (
	"HRAS/models"
	"HRAS/services"

	"github.com/gin-gonic/gin"
)

type ShiftHandler struct {
	Shifts *services.ShiftService
}

func NewShiftHandler(shifts *services.ShiftService) *ShiftHandler {
	return &ShiftHandler{Shifts: shifts}
}

func (h *ShiftHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	shifts, err := h.Shifts.List(c.Request.Context(), actor)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, shifts)
}

func (h *ShiftHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	shift, err := h.Shifts.Get(c.Request.Context(), actor, id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, shift)
}

func (h *ShiftHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var shift models.Shift
	if err := c.ShouldBindJSON(&shift); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.Shifts.Create(c.Request.Context(), actor, &shift); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(201, shift)
}

func (h *ShiftHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var shift models.Shift
	if err := c.ShouldBindJSON(&shift); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	shift.ID = id

	if err := h.Shifts.Update(c.Request.Context(), actor, &shift); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, shift)
}

func (h *ShiftHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Shifts.Delete(c.Request.Context(), actor, id); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(204)
}
