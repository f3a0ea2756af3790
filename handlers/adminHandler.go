package handlers

import (
	"HRAS/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler covers account administration: approval lifecycle, activation,
// hospital assignment and role changes. Every route is admin-gated by the
// router.
type AdminHandler struct {
	Users *services.UsersService
}

func NewAdminHandler(users *services.UsersService) *AdminHandler {
	return &AdminHandler{Users: users}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, users)
}

func (h *AdminHandler) ListPendingUsers(c *gin.Context) {
	users, err := h.Users.ListPending(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, users)
}

// ListStaff returns the doctor and nurse roster for the reassignment picker.
func (h *AdminHandler) ListStaff(c *gin.Context) {
	staff, err := h.Users.ListStaff(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, staff)
}

func (h *AdminHandler) ApproveUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Users.Approve(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Account approved"})
}

func (h *AdminHandler) RejectUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Users.Reject(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Account rejected"})
}

func (h *AdminHandler) ActivateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Users.SetActive(c.Request.Context(), id, true); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Account activated"})
}

func (h *AdminHandler) DeactivateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Users.SetActive(c.Request.Context(), id, false); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Account deactivated"})
}

func (h *AdminHandler) AssignHospital(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload struct {
		HospitalID int64 `json:"hospital_id"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || payload.HospitalID == 0 {
		c.JSON(400, gin.H{"error": "hospital_id is required"})
		return
	}
	if err := h.Users.AssignHospital(c.Request.Context(), id, payload.HospitalID); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Hospital assigned"})
}

func (h *AdminHandler) ChangeRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Role == "" {
		c.JSON(400, gin.H{"error": "role is required"})
		return
	}
	if err := h.Users.ChangeRole(c.Request.Context(), id, payload.Role); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Role updated"})
}
