package handlers

import (
	"HRAS/models"
	"HRAS/services"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	Resources *services.ResourceService
}

func NewResourceHandler(resources *services.ResourceService) *ResourceHandler {
	return &ResourceHandler{Resources: resources}
}

func (h *ResourceHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	resources, err := h.Resources.List(c.Request.Context(), actor)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, resources)
}

// ListAvailable returns only resources currently free, for the dashboard's
// availability panel.
func (h *ResourceHandler) ListAvailable(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	resources, err := h.Resources.ListAvailable(c.Request.Context(), actor)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, resources)
}

func (h *ResourceHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resource, err := h.Resources.Get(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, resource)
}

func (h *ResourceHandler) Create(c *gin.Context) {
	var resource models.Resource
	if err := c.ShouldBindJSON(&resource); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.Resources.Create(c.Request.Context(), &resource); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, resource)
}

func (h *ResourceHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var resource models.Resource
	if err := c.ShouldBindJSON(&resource); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	resource.ID = id
	if err := h.Resources.Update(c.Request.Context(), &resource); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, resource)
}

func (h *ResourceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Resources.Delete(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(204)
}
