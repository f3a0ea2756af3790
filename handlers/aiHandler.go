package handlers

import (
	"HRAS/services"
	"strings"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	AI *services.AIService
}

func NewAIHandler(ai *services.AIService) *AIHandler {
	return &AIHandler{AI: ai}
}

// Triage returns an advisory priority suggestion for a set of symptoms. The
// result never overrides clinical judgment; callers decide what to do with it.
func (h *AIHandler) Triage(c *gin.Context) {
	var payload struct {
		Symptoms string `json:"symptoms"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Symptoms) == "" {
		c.JSON(400, gin.H{"error": "symptoms are required"})
		return
	}

	result, err := h.AI.Triage(c.Request.Context(), payload.Symptoms)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, result)
}

// Chat answers a staff question with conversation history as context.
func (h *AIHandler) Chat(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var payload struct {
		ConversationID string `json:"conversation_id"`
		Message        string `json:"message"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Message) == "" {
		c.JSON(400, gin.H{"error": "message is required"})
		return
	}
	if payload.ConversationID == "" {
		c.JSON(400, gin.H{"error": "conversation_id is required"})
		return
	}

	exchange, err := h.AI.Chat(c.Request.Context(), actor.UserID, payload.ConversationID, payload.Message)
	if err != nil {
		c.JSON(502, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, exchange)
}

// Status reports whether the AI backend is configured and the per-feature
// usage counters.
func (h *AIHandler) Status(c *gin.Context) {
	usage, err := h.AI.Usage(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, gin.H{
		"enabled": h.AI.Enabled(),
		"usage":   usage,
	})
}
