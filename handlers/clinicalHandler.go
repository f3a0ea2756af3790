package handlers

import (
	"HRAS/models"
	"HRAS/services"

	"github.com/gin-gonic/gin"
)

// ClinicalHandler serves the per-patient clinical subresources. All routes
// are nested under /patients/:id.
type ClinicalHandler struct {
	Clinical *services.ClinicalService
}

func NewClinicalHandler(clinical *services.ClinicalService) *ClinicalHandler {
	return &ClinicalHandler{Clinical: clinical}
}

func (h *ClinicalHandler) CreateObservation(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var obs models.Observation
	if err := c.ShouldBindJSON(&obs); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	obs.PatientID = c.Param("id")

	if err := h.Clinical.CreateObservation(c.Request.Context(), actor, &obs); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(201, obs)
}

func (h *ClinicalHandler) ListObservations(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	observations, err := h.Clinical.ListObservations(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, observations)
}

func (h *ClinicalHandler) CreateDiagnosis(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var diagnosis models.Diagnosis
	if err := c.ShouldBindJSON(&diagnosis); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	diagnosis.PatientID = c.Param("id")

	if err := h.Clinical.CreateDiagnosis(c.Request.Context(), actor, &diagnosis); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(201, diagnosis)
}

func (h *ClinicalHandler) ListDiagnoses(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	diagnoses, err := h.Clinical.ListDiagnoses(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, diagnoses)
}

func (h *ClinicalHandler) CreateTestOrder(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var order models.TestOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	order.PatientID = c.Param("id")

	if err := h.Clinical.CreateTestOrder(c.Request.Context(), actor, &order); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(201, order)
}

func (h *ClinicalHandler) ListTestOrders(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	orders, err := h.Clinical.ListTestOrders(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, orders)
}

// AdvanceTestOrder moves a test order through its status workflow.
func (h *ClinicalHandler) AdvanceTestOrder(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Status == "" {
		c.JSON(400, gin.H{"error": "status is required"})
		return
	}

	order, err := h.Clinical.AdvanceTestOrder(c.Request.Context(), actor, orderID, payload.Status)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, order)
}

func (h *ClinicalHandler) CreatePrescription(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var prescription models.Prescription
	if err := c.ShouldBindJSON(&prescription); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	prescription.PatientID = c.Param("id")

	if err := h.Clinical.CreatePrescription(c.Request.Context(), actor, &prescription); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(201, prescription)
}

func (h *ClinicalHandler) ListPrescriptions(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	prescriptions, err := h.Clinical.ListPrescriptions(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, prescriptions)
}
