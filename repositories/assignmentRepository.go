package repositories

import (
	"HRAS/cache"
	"HRAS/database"
	"HRAS/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNoBedAvailable is returned when a hospital has no free bed to allocate.
var ErrNoBedAvailable = errors.New("no beds available")

type AssignmentRepository struct {
	cache *cache.Cache
}

func NewAssignmentRepository(cache *cache.Cache) *AssignmentRepository {
	return &AssignmentRepository{cache: cache}
}

// staffLoad pairs a staff member with their current assignment count.
type staffLoad struct {
	models.User
	ActiveAssignments int64
}

// FindLeastLoadedStaff returns the approved, active staff member of the given
// role at the hospital carrying the fewest active assignments, or nil when
// none is available.
func (r *AssignmentRepository) FindLeastLoadedStaff(ctx context.Context, hospitalID int64, role string) (*models.User, error) {
	var candidates []staffLoad
	err := database.DB.WithContext(ctx).
		Model(&models.User{}).
		Select("users.*, COUNT(assignment.id) AS active_assignments").
		Joins("LEFT JOIN assignment ON assignment.user_id = users.id").
		Where("users.hospital_id = ? AND users.role = ?", hospitalID, role).
		Group("users.id").
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find available staff: %w", err)
	}
	return pickLeastLoaded(candidates), nil
}

// pickLeastLoaded selects the approved, active candidate carrying the fewest
// assignments, breaking ties by the lower user ID so the choice is stable.
func pickLeastLoaded(candidates []staffLoad) *models.User {
	var best *staffLoad
	for i := range candidates {
		c := &candidates[i]
		if !c.Approved || !c.Active {
			continue
		}
		if best == nil || c.ActiveAssignments < best.ActiveAssignments ||
			(c.ActiveAssignments == best.ActiveAssignments && c.ID < best.ID) {
			best = c
		}
	}
	if best == nil {
		return nil
	}
	staff := best.User
	return &staff
}

// AssignWithBed atomically allocates the first free bed of the patient's
// hospital to the given staff member. The bed row is locked for the duration
// of the transaction so two concurrent assignments cannot claim it.
func (r *AssignmentRepository) AssignWithBed(ctx context.Context, patient *models.Patient, staffID int64) (*models.Assignment, error) {
	var assignment *models.Assignment

	err := database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bed models.Resource
		err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("hospital_id = ? AND type = ? AND availability = ?",
				patient.HospitalID, models.ResourceBed, true).
			First(&bed).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoBedAvailable
			}
			return fmt.Errorf("failed to find available bed: %w", err)
		}

		assignment = &models.Assignment{
			PatientID:      patient.ID,
			ResourceID:     bed.ID,
			UserID:         staffID,
			AssignmentTime: time.Since(patient.AdmissionDate),
		}
		if err := tx.Create(assignment).Error; err != nil {
			return fmt.Errorf("failed to create assignment: %w", err)
		}

		if err := tx.Model(&models.Resource{}).Where("id = ?", bed.ID).
			Update("availability", false).Error; err != nil {
			return fmt.Errorf("failed to mark bed occupied: %w", err)
		}

		if err := tx.Model(&models.Patient{}).Where("id = ?", patient.ID).
			Update("status", models.StatusInTreatment).Error; err != nil {
			return fmt.Errorf("failed to update patient status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := r.cache.Delete(ctx, fmt.Sprintf("patient_cache:%s", patient.ID)); err != nil {
		return nil, fmt.Errorf("failed to delete patient cache: %w", err)
	}
	if err := r.cache.DeleteAll(ctx, "patients_cache*"); err != nil {
		return nil, err
	}
	return assignment, r.cache.DeleteAll(ctx, "resources_cache*")
}

// ReleaseForPatient frees every bed held by the patient and removes their
// assignments. Used on discharge and before an admin reassignment.
func (r *AssignmentRepository) ReleaseForPatient(ctx context.Context, patientID string) error {
	err := database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assignments []models.Assignment
		if err := tx.Where("patient_id = ?", patientID).Find(&assignments).Error; err != nil {
			return fmt.Errorf("failed to load assignments: %w", err)
		}
		for _, a := range assignments {
			if err := tx.Model(&models.Resource{}).Where("id = ?", a.ResourceID).
				Update("availability", true).Error; err != nil {
				return fmt.Errorf("failed to release bed: %w", err)
			}
		}
		if err := tx.Where("patient_id = ?", patientID).Delete(&models.Assignment{}).Error; err != nil {
			return fmt.Errorf("failed to delete assignments: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := r.cache.Delete(ctx, fmt.Sprintf("patient_cache:%s", patientID)); err != nil {
		return fmt.Errorf("failed to delete patient cache: %w", err)
	}
	if err := r.cache.DeleteAll(ctx, "patients_cache*"); err != nil {
		return err
	}
	return r.cache.DeleteAll(ctx, "resources_cache*")
}

// IsAssignedTo reports whether the patient is assigned to the given staff
// member. Doctors and nurses may only touch patients this returns true for.
func (r *AssignmentRepository) IsAssignedTo(ctx context.Context, patientID string, userID int64) (bool, error) {
	var count int64
	err := database.DB.WithContext(ctx).Model(&models.Assignment{}).
		Where("patient_id = ? AND user_id = ?", patientID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check assignment: %w", err)
	}
	return count > 0, nil
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*models.Assignment, error) {
	var assignment models.Assignment
	err := database.DB.WithContext(ctx).
		Preload("Resource").
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Omit("password")
		}).
		First(&assignment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return &assignment, nil
}

// ListForActor returns assignments in the actor's hospital, or all of them
// for admins.
func (r *AssignmentRepository) ListForActor(ctx context.Context, actor models.Actor) ([]models.Assignment, error) {
	query := database.DB.WithContext(ctx).
		Preload("Resource").
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Omit("password")
		}).
		Order("created_at DESC")
	if actor.Scoped() {
		query = query.
			Joins("JOIN patient ON patient.id = assignment.patient_id").
			Where("patient.hospital_id = ?", actor.HospitalID)
	}

	var assignments []models.Assignment
	if err := query.Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// AverageAssignmentTime returns the mean admission-to-assignment duration
// across all assignments, or nil when there are none.
func (r *AssignmentRepository) AverageAssignmentTime(ctx context.Context) (*time.Duration, error) {
	var avg *float64
	err := database.DB.WithContext(ctx).Model(&models.Assignment{}).
		Select("AVG(assignment_time)").
		Where("assignment_time IS NOT NULL").
		Scan(&avg).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute average assignment time: %w", err)
	}
	if avg == nil {
		return nil, nil
	}
	d := time.Duration(*avg)
	return &d, nil
}
