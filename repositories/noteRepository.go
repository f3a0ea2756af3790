package repositories

import (
	"HRAS/database"
	"HRAS/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type NoteRepository struct{}

func NewNoteRepository() *NoteRepository {
	return &NoteRepository{}
}

func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	if err := database.DB.Create(note).Error; err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

func (r *NoteRepository) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	var note models.Note
	err := database.DB.
		Preload("CreatedBy", func(db *gorm.DB) *gorm.DB {
			return db.Omit("password")
		}).
		First(&note, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return &note, nil
}

func (r *NoteRepository) ListByPatient(ctx context.Context, patientID string) ([]models.Note, error) {
	var notes []models.Note
	err := database.DB.
		Preload("CreatedBy", func(db *gorm.DB) *gorm.DB {
			return db.Omit("password")
		}).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

func (r *NoteRepository) Update(ctx context.Context, note *models.Note) error {
	if err := database.DB.Model(&models.Note{}).Where("id = ?", note.ID).
		Updates(map[string]interface{}{
			"note_type": note.NoteType,
			"text":      note.Text,
		}).Error; err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id int64) error {
	if err := database.DB.Delete(&models.Note{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}
