package repositories

import (
	"HRAS/database"
	"HRAS/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type LabReportRepository struct{}

func NewLabReportRepository() *LabReportRepository {
	return &LabReportRepository{}
}

func (r *LabReportRepository) Create(ctx context.Context, report *models.LabReport) error {
	if err := database.DB.Create(report).Error; err != nil {
		return fmt.Errorf("failed to create lab report: %w", err)
	}
	return nil
}

func (r *LabReportRepository) GetByID(ctx context.Context, id int64) (*models.LabReport, error) {
	var report models.LabReport
	err := database.DB.
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Omit("password")
		}).
		First(&report, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lab report: %w", err)
	}
	return &report, nil
}

func (r *LabReportRepository) ListByPatient(ctx context.Context, patientID string) ([]models.LabReport, error) {
	var reports []models.LabReport
	err := database.DB.
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Omit("password")
		}).
		Where("patient_id = ?", patientID).
		Order("check_in_time DESC").
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list lab reports: %w", err)
	}
	return reports, nil
}

// ListForActor returns every lab report for admins and only the doctor's own
// reports otherwise.
func (r *LabReportRepository) ListForActor(ctx context.Context, actor models.Actor) ([]models.LabReport, error) {
	query := database.DB.
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Omit("password")
		}).
		Order("check_in_time DESC")
	if actor.Role == models.RoleDoctor {
		query = query.Where("doctor_id = ?", actor.UserID)
	}

	var reports []models.LabReport
	if err := query.Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to list lab reports: %w", err)
	}
	return reports, nil
}

func (r *LabReportRepository) Delete(ctx context.Context, id int64) error {
	if err := database.DB.Delete(&models.LabReport{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete lab report: %w", err)
	}
	return nil
}
