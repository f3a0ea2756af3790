package handlers

import (
	"HRAS/models"
	"HRAS/services"

	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	Notes *services.NoteService
}

func NewNoteHandler(notes *services.NoteService) *NoteHandler {
	return &NoteHandler{Notes: notes}
}

func (h *NoteHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var note models.Note
	if err := c.ShouldBindJSON(&note); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	note.PatientID = c.Param("id")

	if err := h.Notes.Create(c.Request.Context(), actor, &note); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(201, note)
}

func (h *NoteHandler) ListByPatient(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	notes, err := h.Notes.ListByPatient(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, notes)
}

func (h *NoteHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	noteID, ok := pathID(c, "noteId")
	if !ok {
		return
	}

	var payload struct {
		NoteType string `json:"note_type"`
		Text     string `json:"text"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	note, err := h.Notes.Update(c.Request.Context(), actor, noteID, payload.NoteType, payload.Text)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, note)
}

func (h *NoteHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	noteID, ok := pathID(c, "noteId")
	if !ok {
		return
	}
	if err := h.Notes.Delete(c.Request.Context(), actor, noteID); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(204)
}
