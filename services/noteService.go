package services

import (
	"HRAS/models"
	"HRAS/repositories"
	"HRAS/utils"
	"context"

	"github.com/pkg/errors"
)

type NoteService struct {
	notes    *repositories.NoteRepository
	patients *PatientService
}

func NewNoteService(notes *repositories.NoteRepository, patients *PatientService) *NoteService {
	return &NoteService{notes: notes, patients: patients}
}

// Create attaches a note to a patient. Receptionists are denied the whole
// notes surface; clinicians must be assigned to the patient.
func (s *NoteService) Create(ctx context.Context, actor models.Actor, note *models.Note) error {
	if actor.Role == models.RoleReceptionist {
		return ErrForbidden
	}
	if note.NoteType == "" {
		note.NoteType = models.NoteGeneral
	}
	if !models.ValidNoteType(note.NoteType) {
		return utils.ErrInvalidNoteType
	}
	if note.Text == "" {
		return errors.New("note text is required")
	}
	if _, err := s.patients.AuthorizeClinicalAccess(ctx, actor, note.PatientID); err != nil {
		return err
	}
	note.CreatedByID = actor.UserID
	return s.notes.Create(ctx, note)
}

func (s *NoteService) ListByPatient(ctx context.Context, actor models.Actor, patientID string) ([]models.Note, error) {
	if actor.Role == models.RoleReceptionist {
		return nil, ErrForbidden
	}
	if _, err := s.patients.AuthorizeClinicalAccess(ctx, actor, patientID); err != nil {
		return nil, err
	}
	return s.notes.ListByPatient(ctx, patientID)
}

// Update lets the author or an admin edit a note.
func (s *NoteService) Update(ctx context.Context, actor models.Actor, id int64, noteType, text string) (*models.Note, error) {
	if actor.Role == models.RoleReceptionist {
		return nil, ErrForbidden
	}
	note, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNotFound
	}
	if actor.Role != models.RoleAdmin && note.CreatedByID != actor.UserID {
		return nil, ErrForbidden
	}
	if noteType != "" {
		if !models.ValidNoteType(noteType) {
			return nil, utils.ErrInvalidNoteType
		}
		note.NoteType = noteType
	}
	if text != "" {
		note.Text = text
	}
	if err := s.notes.Update(ctx, note); err != nil {
		return nil, err
	}
	return s.notes.GetByID(ctx, id)
}

func (s *NoteService) Delete(ctx context.Context, actor models.Actor, id int64) error {
	if actor.Role == models.RoleReceptionist {
		return ErrForbidden
	}
	note, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if note == nil {
		return ErrNotFound
	}
	if actor.Role != models.RoleAdmin && note.CreatedByID != actor.UserID {
		return ErrForbidden
	}
	return s.notes.Delete(ctx, id)
}
