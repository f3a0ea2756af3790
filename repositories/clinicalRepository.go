package repositories

import (
	"HRAS/database"
	"HRAS/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ClinicalRepository covers the immutable clinical records attached to a
// patient: observations, diagnoses, test orders and prescriptions. Only test
// orders have a mutable column (status).
type ClinicalRepository struct{}

func NewClinicalRepository() *ClinicalRepository {
	return &ClinicalRepository{}
}

func (r *ClinicalRepository) CreateObservation(ctx context.Context, obs *models.Observation) error {
	if err := database.DB.Create(obs).Error; err != nil {
		return fmt.Errorf("failed to create observation: %w", err)
	}
	return nil
}

func (r *ClinicalRepository) ListObservations(ctx context.Context, patientID string) ([]models.Observation, error) {
	var observations []models.Observation
	err := database.DB.
		Preload("Nurse", func(db *gorm.DB) *gorm.DB {
			return db.Omit("password")
		}).
		Where("patient_id = ?", patientID).
		Order("timestamp DESC").
		Find(&observations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list observations: %w", err)
	}
	return observations, nil
}

func (r *ClinicalRepository) CreateDiagnosis(ctx context.Context, diagnosis *models.Diagnosis) error {
	if err := database.DB.Create(diagnosis).Error; err != nil {
		return fmt.Errorf("failed to create diagnosis: %w", err)
	}
	return nil
}

func (r *ClinicalRepository) ListDiagnoses(ctx context.Context, patientID string) ([]models.Diagnosis, error) {
	var diagnoses []models.Diagnosis
	err := database.DB.
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Omit("password")
		}).
		Where("patient_id = ?", patientID).
		Order("timestamp DESC").
		Find(&diagnoses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list diagnoses: %w", err)
	}
	return diagnoses, nil
}

func (r *ClinicalRepository) CreateTestOrder(ctx context.Context, order *models.TestOrder) error {
	if err := database.DB.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create test order: %w", err)
	}
	return nil
}

func (r *ClinicalRepository) GetTestOrder(ctx context.Context, id int64) (*models.TestOrder, error) {
	var order models.TestOrder
	err := database.DB.
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Omit("password")
		}).
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get test order: %w", err)
	}
	return &order, nil
}

func (r *ClinicalRepository) ListTestOrders(ctx context.Context, patientID string) ([]models.TestOrder, error) {
	var orders []models.TestOrder
	err := database.DB.
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Omit("password")
		}).
		Where("patient_id = ?", patientID).
		Order("ordered_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list test orders: %w", err)
	}
	return orders, nil
}

// UpdateTestOrderStatus moves a test order through its workflow. Status is the
// only mutable column on the row.
func (r *ClinicalRepository) UpdateTestOrderStatus(ctx context.Context, id int64, status string) error {
	if !models.ValidTestStatus(status) {
		return fmt.Errorf("invalid test order status: %s", status)
	}
	if err := database.DB.Model(&models.TestOrder{}).Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return fmt.Errorf("failed to update test order status: %w", err)
	}
	return nil
}

func (r *ClinicalRepository) CreatePrescription(ctx context.Context, prescription *models.Prescription) error {
	if err := database.DB.Create(prescription).Error; err != nil {
		return fmt.Errorf("failed to create prescription: %w", err)
	}
	return nil
}

func (r *ClinicalRepository) ListPrescriptions(ctx context.Context, patientID string) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := database.DB.
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Omit("password")
		}).
		Where("patient_id = ?", patientID).
		Order("prescribed_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list prescriptions: %w", err)
	}
	return prescriptions, nil
}
