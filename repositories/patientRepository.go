package repositories

import (
	"HRAS/cache"
	"HRAS/database"
	"HRAS/logging"
	"HRAS/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PatientCacheExpiry = 24 * time.Hour
)

type PatientRepository struct {
	cache *cache.Cache
}

func NewPatientRepository(cache *cache.Cache) *PatientRepository {
	return &PatientRepository{cache: cache}
}

func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	lockKey := fmt.Sprintf("patient_lock:%s_%s", patient.Name, patient.Telephone)
	lockValue := uuid.New().String()

	locked, err := acquireLockWithRetry(ctx, lockKey, lockValue)
	if !locked {
		return fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	defer releaseLock(ctx, lockKey, lockValue)

	// Check if a record with the same identifying fields already exists and
	// has not been discharged
	var existing models.Patient
	if err := database.DB.Where("name = ? AND telephone = ? AND status <> ?",
		patient.Name, patient.Telephone, models.StatusDischarged).First(&existing).Error; err == nil {
		return errors.New("patient with the same details is already admitted")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for existing patient: %w", err)
	}

	// Obtain the next sequence value
	var nextID string
	if err := database.DB.Raw("SELECT 'HP-' || LPAD(nextval('patient_id_seq')::TEXT, 6, '0')").Scan(&nextID).Error; err != nil {
		return fmt.Errorf("failed to obtain next sequence value: %w", err)
	}
	patient.ID = nextID

	if patient.Priority == "" {
		patient.Priority = models.PriorityLow
	}
	if patient.Status == "" {
		patient.Status = models.StatusWaiting
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(patient).Error; err != nil {
			return fmt.Errorf("failed to create patient: %w", err)
		}
		if err := r.cache.Delete(ctx, r.getPatientCacheKey(patient.ID)); err != nil {
			return fmt.Errorf("failed to delete patient cache: %w", err)
		}
		return r.cache.DeleteAll(ctx, "patients_cache*")
	})
}

func (r *PatientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getPatientCacheKey(id)
	cachedPatient, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedPatient != "" {
		var patient models.Patient
		if err := json.Unmarshal([]byte(cachedPatient), &patient); err == nil {
			return &patient, nil
		}
	} else if err != nil && err != redis.Nil {
		logging.Log.Warnw("failed to get patient from cache", "error", err)
	}

	var patient models.Patient
	err = database.DB.
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Assignments.User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, email, first_name, last_name, role, specialty, hospital_id, approved, active, available, date_joined")
		}).
		Preload("Assignments.Resource").
		First(&patient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	patientJSON, err := json.Marshal(patient)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patient: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, patientJSON, PatientCacheExpiry); err != nil {
		logging.Log.Warnw("failed to set patient in cache", "error", err)
	}

	return &patient, nil
}

// ListForActor returns the patients the actor may see: admins every patient,
// receptionists their hospital's queue, doctors and nurses only patients
// assigned to them.
func (r *PatientRepository) ListForActor(ctx context.Context, actor models.Actor) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := fmt.Sprintf("patients_cache:%s:%d", actor.Role, actor.UserID)
	cachedPatients, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedPatients != "" {
		var patients []models.Patient
		if err := json.Unmarshal([]byte(cachedPatients), &patients); err == nil {
			return patients, nil
		}
	} else if err != nil && err != redis.Nil {
		logging.Log.Warnw("failed to get patients from cache", "error", err)
	}

	query := database.DB.
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Assignments.User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, email, first_name, last_name, role, specialty, hospital_id, approved, active, available, date_joined")
		}).
		Order("admission_date DESC")

	switch actor.Role {
	case models.RoleAdmin:
		// no scoping
	case models.RoleReceptionist:
		query = query.Where("hospital_id = ?", actor.HospitalID)
	case models.RoleDoctor, models.RoleNurse:
		query = query.
			Joins("JOIN assignment ON assignment.patient_id = patient.id").
			Where("assignment.user_id = ?", actor.UserID).
			Distinct()
	default:
		return []models.Patient{}, nil
	}

	var patients []models.Patient
	if err := query.Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	patientsJSON, err := json.Marshal(patients)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patients: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, patientsJSON, PatientCacheExpiry); err != nil {
		logging.Log.Warnw("failed to set patients in cache", "error", err)
	}

	return patients, nil
}

// ListWaitingUnassigned returns patients still waiting with no assignment.
// Used by the scheduler's assignment retry pass.
func (r *PatientRepository) ListWaitingUnassigned(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	err := database.DB.
		Where("status = ?", models.StatusWaiting).
		Where("NOT EXISTS (SELECT 1 FROM assignment WHERE assignment.patient_id = patient.id)").
		Order("admission_date").
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list waiting patients: %w", err)
	}
	return patients, nil
}

func (r *PatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	lockKey := fmt.Sprintf("patient_lock:%s", patient.ID)
	lockValue := uuid.New().String()

	locked, err := acquireLockWithRetry(ctx, lockKey, lockValue)
	if !locked {
		return fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	defer releaseLock(ctx, lockKey, lockValue)

	if err := database.DB.Model(&models.Patient{}).Where("id = ?", patient.ID).
		Updates(map[string]interface{}{
			"name":              patient.Name,
			"age":               patient.Age,
			"severity":          patient.Severity,
			"priority":          patient.Priority,
			"status":            patient.Status,
			"telephone":         patient.Telephone,
			"emergency_contact": patient.EmergencyContact,
			"symptoms":          patient.Symptoms,
			"ai_suggestion":     patient.AISuggestion,
		}).Error; err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	return r.invalidate(ctx, patient.ID)
}

// UpdateFields applies a restricted column set. Nurse updates go through here
// so priority and assignment columns stay untouched.
func (r *PatientRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	if err := database.DB.Model(&models.Patient{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return fmt.Errorf("failed to update patient fields: %w", err)
	}
	return r.invalidate(ctx, id)
}

func (r *PatientRepository) Delete(ctx context.Context, id string) error {
	if err := database.DB.Delete(&models.Patient{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return r.invalidate(ctx, id)
}

// Invalidate drops the cached copies of one patient and every scoped list.
func (r *PatientRepository) Invalidate(ctx context.Context, id string) error {
	return r.invalidate(ctx, id)
}

func (r *PatientRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.getPatientCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete patient cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "patients_cache*")
}

func (r *PatientRepository) getPatientCacheKey(id string) string {
	return fmt.Sprintf("patient_cache:%s", id)
}
