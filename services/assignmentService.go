package services

import (
	"HRAS/database"
	"HRAS/logging"
	"HRAS/models"
	"HRAS/repositories"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AssignmentDeadline bounds a single assignment attempt. A patient whose
// attempt runs out of time simply stays Waiting; the scheduler retries later.
const AssignmentDeadline = 10 * time.Second

type AssignmentService struct {
	patients    *repositories.PatientRepository
	assignments *repositories.AssignmentRepository
	users       repositories.UserRepository
}

func NewAssignmentService(patients *repositories.PatientRepository, assignments *repositories.AssignmentRepository, users repositories.UserRepository) *AssignmentService {
	return &AssignmentService{patients: patients, assignments: assignments, users: users}
}

// PreferredRoles returns the staff roles to try, in order, for a priority.
// High and Critical patients route to a doctor first; everyone else is seen
// by a nurse first.
func PreferredRoles(priority string) []string {
	if models.HighUrgency(priority) {
		return []string{models.RoleDoctor, models.RoleNurse}
	}
	return []string{models.RoleNurse, models.RoleDoctor}
}

// AutoAssign runs the assignment engine for one patient: pick the least
// loaded staff member of the preferred role and allocate the first free bed.
// When no staff or no bed is available the patient is left Waiting and a
// sentinel error is returned so callers can decide whether that is fatal.
func (s *AssignmentService) AutoAssign(ctx context.Context, patient *models.Patient) (*models.Assignment, error) {
	ctx, cancel := context.WithTimeout(ctx, AssignmentDeadline)
	defer cancel()

	lockKey := fmt.Sprintf("assign_lock:%s", patient.ID)
	lockValue := uuid.New().String()
	locked, err := database.NewLock(ctx, lockKey, lockValue, AssignmentDeadline)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire assignment lock: %w", err)
	}
	if !locked {
		return nil, errors.New("assignment already in progress for patient")
	}
	defer func() {
		if err := database.ReleaseLock(context.Background(), lockKey, lockValue); err != nil {
			logging.Log.Warnw("failed to release assignment lock", "patient", patient.ID, "error", err)
		}
	}()

	if current, err := s.hasAssignment(ctx, patient.ID); err != nil {
		return nil, err
	} else if current {
		return nil, errors.New("patient is already assigned")
	}

	for _, role := range PreferredRoles(patient.Priority) {
		staff, err := s.assignments.FindLeastLoadedStaff(ctx, patient.HospitalID, role)
		if err != nil {
			return nil, err
		}
		if staff == nil {
			continue
		}

		assignment, err := s.assignments.AssignWithBed(ctx, patient, staff.ID)
		if err != nil {
			return nil, err
		}
		logging.Log.Infow("patient assigned",
			"patient", patient.ID,
			"staff", staff.ID,
			"role", staff.Role,
			"assignment_time", assignment.AssignmentTime.String())
		return assignment, nil
	}
	return nil, ErrNoStaffAvailable
}

// Reassign is the admin override: it tears down the current allocation and
// binds the patient to the chosen staff member with a fresh bed.
func (s *AssignmentService) Reassign(ctx context.Context, patientID string, staffID int64) (*models.Assignment, error) {
	patient, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrNotFound
	}

	staff, err := s.users.GetUserByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, ErrNotFound
	}
	if !models.IsClinical(staff.Role) {
		return nil, errors.New("patients can only be assigned to doctors or nurses")
	}
	if !staff.CanLogin() {
		return nil, errors.New("staff member is not approved and active")
	}
	if staff.HospitalID == nil || *staff.HospitalID != patient.HospitalID {
		return nil, errors.New("staff member does not work at the patient's hospital")
	}

	if err := s.assignments.ReleaseForPatient(ctx, patientID); err != nil {
		return nil, err
	}
	assignment, err := s.assignments.AssignWithBed(ctx, patient, staffID)
	if err != nil {
		return nil, err
	}
	logging.Log.Infow("patient reassigned", "patient", patientID, "staff", staffID)
	return assignment, nil
}

// RetryWaiting runs an assignment attempt for every waiting, unassigned
// patient. The scheduler calls this periodically so patients who found no
// staff or bed at admission eventually get allocated.
func (s *AssignmentService) RetryWaiting(ctx context.Context) {
	patients, err := s.patients.ListWaitingUnassigned(ctx)
	if err != nil {
		logging.Log.Errorw("failed to list waiting patients", "error", err)
		return
	}
	for i := range patients {
		patient := &patients[i]
		if _, err := s.AutoAssign(ctx, patient); err != nil {
			if errors.Is(err, ErrNoStaffAvailable) || errors.Is(err, repositories.ErrNoBedAvailable) {
				continue
			}
			logging.Log.Warnw("assignment retry failed", "patient", patient.ID, "error", err)
		}
	}
}

func (s *AssignmentService) List(ctx context.Context, actor models.Actor) ([]models.Assignment, error) {
	return s.assignments.ListForActor(ctx, actor)
}

func (s *AssignmentService) Get(ctx context.Context, id int64) (*models.Assignment, error) {
	return s.assignments.GetByID(ctx, id)
}

// AverageAssignmentTime reports the mean admission-to-assignment duration.
func (s *AssignmentService) AverageAssignmentTime(ctx context.Context) (*time.Duration, error) {
	return s.assignments.AverageAssignmentTime(ctx)
}

func (s *AssignmentService) hasAssignment(ctx context.Context, patientID string) (bool, error) {
	patient, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return false, err
	}
	if patient == nil {
		return false, ErrNotFound
	}
	return patient.CurrentAssignment() != nil, nil
}
