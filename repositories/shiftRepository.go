package repositories

import (
	"HRAS/database"
	"HRAS/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type ShiftRepository struct{}

func NewShiftRepository() *ShiftRepository {
	return &ShiftRepository{}
}

func (r *ShiftRepository) Create(ctx context.Context, shift *models.Shift) error {
	if err := database.DB.Create(shift).Error; err != nil {
		return fmt.Errorf("failed to create shift: %w", err)
	}
	return nil
}

func (r *ShiftRepository) GetByID(ctx context.Context, id int64) (*models.Shift, error) {
	var shift models.Shift
	err := database.DB.
		Preload("Staff", func(db *gorm.DB) *gorm.DB {
			return db.Omit("password")
		}).
		First(&shift, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return &shift, nil
}

// ListForActor returns the full roster for admins and receptionists and only
// the actor's own shifts for doctors and nurses.
func (r *ShiftRepository) ListForActor(ctx context.Context, actor models.Actor) ([]models.Shift, error) {
	query := database.DB.
		Preload("Staff", func(db *gorm.DB) *gorm.DB {
			return db.Omit("password")
		}).
		Order("start_time DESC")

	switch actor.Role {
	case models.RoleAdmin:
		// no scoping
	case models.RoleReceptionist:
		query = query.Where("hospital_id = ?", actor.HospitalID)
	default:
		query = query.Where("staff_id = ?", actor.UserID)
	}

	var shifts []models.Shift
	if err := query.Find(&shifts).Error; err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return shifts, nil
}

func (r *ShiftRepository) Update(ctx context.Context, shift *models.Shift) error {
	if err := database.DB.Model(&models.Shift{}).Where("id = ?", shift.ID).
		Updates(map[string]interface{}{
			"staff_id":    shift.StaffID,
			"start_time":  shift.StartTime,
			"end_time":    shift.EndTime,
			"location":    shift.Location,
			"hospital_id": shift.HospitalID,
		}).Error; err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	return nil
}

func (r *ShiftRepository) Delete(ctx context.Context, id int64) error {
	if err := database.DB.Delete(&models.Shift{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}
