package handlers

import (
	"HRAS/models"
	"HRAS/services"

	"github.com/gin-gonic/gin"
)

type HospitalHandler struct {
	Hospitals *services.HospitalService
}

func NewHospitalHandler(hospitals *services.HospitalService) *HospitalHandler {
	return &HospitalHandler{Hospitals: hospitals}
}

func (h *HospitalHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	hospitals, err := h.Hospitals.List(c.Request.Context(), actor)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, hospitals)
}

func (h *HospitalHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	hospital, err := h.Hospitals.Get(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, hospital)
}

func (h *HospitalHandler) Create(c *gin.Context) {
	var hospital models.Hospital
	if err := c.ShouldBindJSON(&hospital); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.Hospitals.Create(c.Request.Context(), &hospital); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, hospital)
}

func (h *HospitalHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var hospital models.Hospital
	if err := c.ShouldBindJSON(&hospital); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	hospital.ID = id
	if err := h.Hospitals.Update(c.Request.Context(), &hospital); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, hospital)
}

func (h *HospitalHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Hospitals.Delete(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(204)
}
