package handlers

import (
	"HRAS/models"
	"HRAS/services"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	Patients *services.PatientService
}

func NewPatientHandler(patients *services.PatientService) *PatientHandler {
	return &PatientHandler{Patients: patients}
}

func (h *PatientHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	patients, err := h.Patients.List(c.Request.Context(), actor)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, patients)
}

func (h *PatientHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	patient, err := h.Patients.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, patient)
}

// Create registers a patient. Intake is a front-desk function: receptionists
// and admins only, enforced in the service.
func (h *PatientHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if patient.HospitalID == 0 && actor.HospitalID == 0 {
		c.JSON(400, gin.H{"error": "hospital_id is required"})
		return
	}

	created, err := h.Patients.Create(c.Request.Context(), actor, &patient)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(201, created)
}

// Update edits a patient record. Assignment fields are not editable here for
// anyone; non-admins get an explicit rejection if they try.
func (h *PatientHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var raw map[string]json.RawMessage
	body, err := c.GetRawData()
	if err != nil || json.Unmarshal(body, &raw) != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if _, present := raw["assignments"]; present && actor.Role != models.RoleAdmin {
		c.JSON(403, gin.H{"error": "Assignments are managed by the system and the admin override"})
		return
	}

	var patient models.Patient
	if err := json.Unmarshal(body, &patient); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	updated, err := h.Patients.Update(c.Request.Context(), actor, c.Param("id"), &patient)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, updated)
}

func (h *PatientHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if err := h.Patients.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(204)
}

// Reassign is the admin-only override of the automatic assignment engine.
func (h *PatientHandler) Reassign(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var payload struct {
		StaffID int64 `json:"staff_id"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || payload.StaffID == 0 {
		c.JSON(400, gin.H{"error": "staff_id is required"})
		return
	}

	patient, err := h.Patients.Reassign(c.Request.Context(), actor, c.Param("id"), payload.StaffID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, patient)
}
