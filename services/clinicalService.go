package services

import (
	"HRAS/models"
	"HRAS/repositories"
	"HRAS/utils"
	"context"

	"github.com/pkg/errors"
)

// ClinicalService guards the patient subresources recorded at the bedside:
// observations (nurses), diagnoses, test orders and prescriptions (doctors).
type ClinicalService struct {
	clinical *repositories.ClinicalRepository
	patients *PatientService
}

func NewClinicalService(clinical *repositories.ClinicalRepository, patients *PatientService) *ClinicalService {
	return &ClinicalService{clinical: clinical, patients: patients}
}

// CreateObservation records vitals. Nurses only, and only for patients
// assigned to them.
func (s *ClinicalService) CreateObservation(ctx context.Context, actor models.Actor, obs *models.Observation) error {
	if actor.Role != models.RoleNurse {
		return ErrForbidden
	}
	if err := utils.ValidateObservationData(*obs); err != nil {
		return err
	}
	if _, err := s.patients.AuthorizeClinicalAccess(ctx, actor, obs.PatientID); err != nil {
		return err
	}
	obs.NurseID = actor.UserID
	return s.clinical.CreateObservation(ctx, obs)
}

func (s *ClinicalService) ListObservations(ctx context.Context, actor models.Actor, patientID string) ([]models.Observation, error) {
	if !models.IsClinical(actor.Role) && actor.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}
	if _, err := s.patients.AuthorizeClinicalAccess(ctx, actor, patientID); err != nil {
		return nil, err
	}
	return s.clinical.ListObservations(ctx, patientID)
}

// CreateDiagnosis records a diagnosis. Doctors only, assigned patients only.
func (s *ClinicalService) CreateDiagnosis(ctx context.Context, actor models.Actor, diagnosis *models.Diagnosis) error {
	if actor.Role != models.RoleDoctor {
		return ErrForbidden
	}
	if diagnosis.DiagnosisText == "" {
		return errors.New("diagnosis text is required")
	}
	if _, err := s.patients.AuthorizeClinicalAccess(ctx, actor, diagnosis.PatientID); err != nil {
		return err
	}
	diagnosis.DoctorID = actor.UserID
	return s.clinical.CreateDiagnosis(ctx, diagnosis)
}

func (s *ClinicalService) ListDiagnoses(ctx context.Context, actor models.Actor, patientID string) ([]models.Diagnosis, error) {
	if !models.IsClinical(actor.Role) && actor.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}
	if _, err := s.patients.AuthorizeClinicalAccess(ctx, actor, patientID); err != nil {
		return nil, err
	}
	return s.clinical.ListDiagnoses(ctx, patientID)
}

// CreateTestOrder places a test order in the ordered state.
func (s *ClinicalService) CreateTestOrder(ctx context.Context, actor models.Actor, order *models.TestOrder) error {
	if actor.Role != models.RoleDoctor {
		return ErrForbidden
	}
	if order.TestType == "" {
		return errors.New("test type is required")
	}
	if _, err := s.patients.AuthorizeClinicalAccess(ctx, actor, order.PatientID); err != nil {
		return err
	}
	order.DoctorID = actor.UserID
	order.Status = models.TestOrdered
	return s.clinical.CreateTestOrder(ctx, order)
}

func (s *ClinicalService) ListTestOrders(ctx context.Context, actor models.Actor, patientID string) ([]models.TestOrder, error) {
	if !models.IsClinical(actor.Role) && actor.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}
	if _, err := s.patients.AuthorizeClinicalAccess(ctx, actor, patientID); err != nil {
		return nil, err
	}
	return s.clinical.ListTestOrders(ctx, patientID)
}

// AdvanceTestOrder moves a test order to a new workflow status. The ordering
// doctor or an admin may advance it; cancelled and resulted orders are final.
func (s *ClinicalService) AdvanceTestOrder(ctx context.Context, actor models.Actor, id int64, status string) (*models.TestOrder, error) {
	if actor.Role != models.RoleDoctor && actor.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}
	if !models.ValidTestStatus(status) {
		return nil, errors.New("status must be one of ordered, pending, resulted, cancelled")
	}
	order, err := s.clinical.GetTestOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if actor.Role == models.RoleDoctor && order.DoctorID != actor.UserID {
		return nil, ErrForbidden
	}
	if order.Status == models.TestResulted || order.Status == models.TestCancelled {
		return nil, errors.New("test order is already finalized")
	}
	if err := s.clinical.UpdateTestOrderStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.clinical.GetTestOrder(ctx, id)
}

// CreatePrescription records a prescription. Doctors only, assigned only.
func (s *ClinicalService) CreatePrescription(ctx context.Context, actor models.Actor, prescription *models.Prescription) error {
	if actor.Role != models.RoleDoctor {
		return ErrForbidden
	}
	if prescription.Medication == "" || prescription.Dosage == "" || prescription.Frequency == "" {
		return errors.New("medication, dosage and frequency are required")
	}
	if _, err := s.patients.AuthorizeClinicalAccess(ctx, actor, prescription.PatientID); err != nil {
		return err
	}
	prescription.DoctorID = actor.UserID
	return s.clinical.CreatePrescription(ctx, prescription)
}

func (s *ClinicalService) ListPrescriptions(ctx context.Context, actor models.Actor, patientID string) ([]models.Prescription, error) {
	if !models.IsClinical(actor.Role) && actor.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}
	if _, err := s.patients.AuthorizeClinicalAccess(ctx, actor, patientID); err != nil {
		return nil, err
	}
	return s.clinical.ListPrescriptions(ctx, patientID)
}
