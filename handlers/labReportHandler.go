package handlers

import (
	"HRAS/models"
	"HRAS/services"

	"github.com/gin-gonic/gin"
)

// LabReportHandler serves lab reports. Nurses are denied the whole surface at
// the router; the service re-checks.
type LabReportHandler struct {
	Reports *services.LabReportService
}

func NewLabReportHandler(reports *services.LabReportService) *LabReportHandler {
	return &LabReportHandler{Reports: reports}
}

func (h *LabReportHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	reports, err := h.Reports.List(c.Request.Context(), actor)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, reports)
}

func (h *LabReportHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	report, err := h.Reports.Get(c.Request.Context(), actor, id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, report)
}

func (h *LabReportHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var report models.LabReport
	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if report.PatientID == "" {
		c.JSON(400, gin.H{"error": "patient_id is required"})
		return
	}

	if err := h.Reports.Create(c.Request.Context(), actor, &report); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(201, report)
}

func (h *LabReportHandler) ListByPatient(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	reports, err := h.Reports.ListByPatient(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, reports)
}

func (h *LabReportHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Reports.Delete(c.Request.Context(), actor, id); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(204)
}
