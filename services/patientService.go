package services

import (
	"HRAS/logging"
	"HRAS/models"
	"HRAS/repositories"
	"HRAS/utils"
	"context"
	goerrors "errors"

	"github.com/pkg/errors"
)

type PatientService struct {
	patients    *repositories.PatientRepository
	hospitals   *repositories.HospitalRepository
	assignments *repositories.AssignmentRepository
	engine      *AssignmentService
	ai          *AIService
}

func NewPatientService(patients *repositories.PatientRepository, hospitals *repositories.HospitalRepository,
	assignments *repositories.AssignmentRepository, engine *AssignmentService, ai *AIService) *PatientService {
	return &PatientService{
		patients:    patients,
		hospitals:   hospitals,
		assignments: assignments,
		engine:      engine,
		ai:          ai,
	}
}

// Create registers a patient and runs the intake pipeline: an advisory AI
// triage suggestion when symptoms were given, then an automatic assignment
// attempt. Assignment failure is not fatal; the patient stays Waiting and the
// scheduler retries.
func (s *PatientService) Create(ctx context.Context, actor models.Actor, patient *models.Patient) (*models.Patient, error) {
	if !models.CanCreatePatients(actor.Role) {
		return nil, ErrForbidden
	}
	if err := utils.ValidatePatientData(*patient); err != nil {
		return nil, err
	}
	// Receptionists admit into their own hospital only.
	if actor.Role == models.RoleReceptionist {
		if actor.HospitalID == 0 {
			return nil, errors.New("account is not linked to a hospital")
		}
		patient.HospitalID = actor.HospitalID
	}
	if patient.HospitalID == 0 {
		if actor.HospitalID == 0 {
			return nil, errors.New("hospital is required")
		}
		patient.HospitalID = actor.HospitalID
	}
	hospital, err := s.hospitals.GetByID(ctx, patient.HospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, errors.New("hospital does not exist")
	}
	patient.CreatedByID = &actor.UserID

	// Advisory triage: suggest a priority from the symptoms, but only apply
	// it when the intake did not set one explicitly.
	if patient.Symptoms != "" {
		if result, err := s.ai.Triage(ctx, patient.Symptoms); err == nil {
			patient.AISuggestion = result.Suggestion
			if patient.Priority == "" {
				patient.Priority = result.Priority
			}
		} else {
			logging.Log.Warnw("triage suggestion failed", "error", err)
		}
	}

	if err := s.patients.Create(ctx, patient); err != nil {
		return nil, err
	}

	if _, err := s.engine.AutoAssign(ctx, patient); err != nil {
		if goerrors.Is(err, ErrNoStaffAvailable) || goerrors.Is(err, repositories.ErrNoBedAvailable) {
			logging.Log.Infow("patient queued for assignment", "patient", patient.ID, "reason", err.Error())
		} else {
			logging.Log.Warnw("automatic assignment failed", "patient", patient.ID, "error", err)
		}
	}

	return s.patients.GetByID(ctx, patient.ID)
}

// Get returns a patient the actor is allowed to see. Doctors and nurses only
// see patients assigned to them.
func (s *PatientService) Get(ctx context.Context, actor models.Actor, id string) (*models.Patient, error) {
	patient, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrNotFound
	}
	if err := s.authorizeView(ctx, actor, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *PatientService) List(ctx context.Context, actor models.Actor) ([]models.Patient, error) {
	return s.patients.ListForActor(ctx, actor)
}

// Update applies a patient edit under the role rules: receptionists cannot
// edit at all, nurses may only touch symptoms, severity and status, and
// nobody edits assignment columns here. Discharging releases the bed.
func (s *PatientService) Update(ctx context.Context, actor models.Actor, id string, updated *models.Patient) (*models.Patient, error) {
	if !models.CanEditPatients(actor.Role) {
		return nil, ErrForbidden
	}

	patient, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrNotFound
	}
	if err := s.authorizeView(ctx, actor, patient); err != nil {
		return nil, err
	}

	if updated.Status != "" && !models.ValidStatus(updated.Status) {
		return nil, utils.ErrInvalidStatus
	}
	discharging := updated.Status == models.StatusDischarged && patient.Status != models.StatusDischarged

	if actor.Role == models.RoleNurse {
		fields := map[string]interface{}{}
		if updated.Symptoms != "" {
			fields["symptoms"] = updated.Symptoms
		}
		if updated.Severity != "" {
			fields["severity"] = updated.Severity
		}
		if updated.Status != "" {
			fields["status"] = updated.Status
		}
		if len(fields) == 0 {
			return nil, errors.New("no editable fields in request")
		}
		if err := s.patients.UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	} else {
		if updated.Priority != "" && !models.ValidPriority(updated.Priority) {
			return nil, utils.ErrInvalidPriority
		}
		merged := *patient
		merged.Assignments = nil
		if updated.Name != "" {
			merged.Name = updated.Name
		}
		if updated.Age != 0 {
			merged.Age = updated.Age
		}
		if updated.Severity != "" {
			merged.Severity = updated.Severity
		}
		if updated.Priority != "" {
			merged.Priority = updated.Priority
		}
		if updated.Status != "" {
			merged.Status = updated.Status
		}
		if updated.Telephone != "" {
			merged.Telephone = updated.Telephone
		}
		if updated.EmergencyContact != "" {
			merged.EmergencyContact = updated.EmergencyContact
		}
		if updated.Symptoms != "" {
			merged.Symptoms = updated.Symptoms
		}
		if err := utils.ValidatePatientData(merged); err != nil {
			return nil, err
		}
		if err := s.patients.Update(ctx, &merged); err != nil {
			return nil, err
		}
	}

	if discharging {
		if err := s.assignments.ReleaseForPatient(ctx, id); err != nil {
			return nil, err
		}
		logging.Log.Infow("patient discharged", "patient", id)
	}

	return s.patients.GetByID(ctx, id)
}

func (s *PatientService) Delete(ctx context.Context, actor models.Actor, id string) error {
	if actor.Role != models.RoleAdmin {
		return ErrForbidden
	}
	patient, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if patient == nil {
		return ErrNotFound
	}
	if err := s.assignments.ReleaseForPatient(ctx, id); err != nil {
		return err
	}
	return s.patients.Delete(ctx, id)
}

// Reassign is the admin-only assignment override.
func (s *PatientService) Reassign(ctx context.Context, actor models.Actor, id string, staffID int64) (*models.Patient, error) {
	if !models.CanAssignStaff(actor.Role) {
		return nil, ErrForbidden
	}
	if _, err := s.engine.Reassign(ctx, id, staffID); err != nil {
		return nil, err
	}
	return s.patients.GetByID(ctx, id)
}

// authorizeView enforces role-scoped visibility on a single patient record.
func (s *PatientService) authorizeView(ctx context.Context, actor models.Actor, patient *models.Patient) error {
	switch actor.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleReceptionist:
		if patient.HospitalID != actor.HospitalID {
			return ErrForbidden
		}
		return nil
	case models.RoleDoctor, models.RoleNurse:
		assigned, err := s.assignments.IsAssignedTo(ctx, patient.ID, actor.UserID)
		if err != nil {
			return err
		}
		if !assigned {
			return ErrNotAssigned
		}
		return nil
	}
	return ErrForbidden
}

// AuthorizeClinicalAccess is the shared gate for patient subresources: the
// actor must be allowed to view the patient at all.
func (s *PatientService) AuthorizeClinicalAccess(ctx context.Context, actor models.Actor, patientID string) (*models.Patient, error) {
	return s.Get(ctx, actor, patientID)
}
