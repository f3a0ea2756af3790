package services

import (
	"HRAS/models"
	"HRAS/repositories"
	"context"
	"time"

	"github.com/pkg/errors"
)

type LabReportService struct {
	reports  *repositories.LabReportRepository
	patients *PatientService
}

func NewLabReportService(reports *repositories.LabReportRepository, patients *PatientService) *LabReportService {
	return &LabReportService{reports: reports, patients: patients}
}

// Create records a lab report. Doctors only; nurses and receptionists are
// denied the whole surface. The response time is stamped at creation.
func (s *LabReportService) Create(ctx context.Context, actor models.Actor, report *models.LabReport) error {
	if actor.Role != models.RoleDoctor && actor.Role != models.RoleAdmin {
		return ErrForbidden
	}
	if report.Diagnosis == "" {
		return errors.New("diagnosis is required")
	}
	if _, err := s.patients.AuthorizeClinicalAccess(ctx, actor, report.PatientID); err != nil {
		return err
	}
	report.DoctorID = actor.UserID
	now := time.Now()
	report.ResponseTime = &now
	return s.reports.Create(ctx, report)
}

func (s *LabReportService) Get(ctx context.Context, actor models.Actor, id int64) (*models.LabReport, error) {
	if actor.Role == models.RoleNurse || actor.Role == models.RoleReceptionist {
		return nil, ErrForbidden
	}
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrNotFound
	}
	if actor.Role == models.RoleDoctor && report.DoctorID != actor.UserID {
		return nil, ErrForbidden
	}
	return report, nil
}

func (s *LabReportService) List(ctx context.Context, actor models.Actor) ([]models.LabReport, error) {
	if actor.Role == models.RoleNurse || actor.Role == models.RoleReceptionist {
		return nil, ErrForbidden
	}
	return s.reports.ListForActor(ctx, actor)
}

func (s *LabReportService) ListByPatient(ctx context.Context, actor models.Actor, patientID string) ([]models.LabReport, error) {
	if actor.Role == models.RoleNurse || actor.Role == models.RoleReceptionist {
		return nil, ErrForbidden
	}
	if _, err := s.patients.AuthorizeClinicalAccess(ctx, actor, patientID); err != nil {
		return nil, err
	}
	return s.reports.ListByPatient(ctx, patientID)
}

func (s *LabReportService) Delete(ctx context.Context, actor models.Actor, id int64) error {
	if actor.Role != models.RoleAdmin {
		return ErrForbidden
	}
	if _, err := s.reports.GetByID(ctx, id); err != nil {
		return err
	}
	return s.reports.Delete(ctx, id)
}
