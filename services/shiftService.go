package services

import (
	"HRAS/models"
	"HRAS/repositories"
	"HRAS/utils"
	"context"

	"github.com/pkg/errors"
)

type ShiftService struct {
	shifts *repositories.ShiftRepository
	users  repositories.UserRepository
}

func NewShiftService(shifts *repositories.ShiftRepository, users repositories.UserRepository) *ShiftService {
	return &ShiftService{shifts: shifts, users: users}
}

// Create schedules a shift. Only admins and receptionists manage the roster;
// the staff member must be a clinical user at the shift's hospital.
func (s *ShiftService) Create(ctx context.Context, actor models.Actor, shift *models.Shift) error {
	if actor.Role != models.RoleAdmin && actor.Role != models.RoleReceptionist {
		return ErrForbidden
	}
	if err := utils.ValidateShiftData(*shift); err != nil {
		return err
	}
	staff, err := s.users.GetUserByID(ctx, shift.StaffID)
	if err != nil {
		return err
	}
	if staff == nil {
		return errors.New("staff member does not exist")
	}
	if !models.IsClinical(staff.Role) {
		return errors.New("shifts can only be scheduled for doctors and nurses")
	}
	if shift.HospitalID == 0 {
		if staff.HospitalID == nil {
			return errors.New("hospital is required")
		}
		shift.HospitalID = *staff.HospitalID
	}
	if actor.Role == models.RoleReceptionist && shift.HospitalID != actor.HospitalID {
		return ErrForbidden
	}
	return s.shifts.Create(ctx, shift)
}

func (s *ShiftService) Get(ctx context.Context, actor models.Actor, id int64) (*models.Shift, error) {
	shift, err := s.shifts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, ErrNotFound
	}
	switch actor.Role {
	case models.RoleAdmin:
	case models.RoleReceptionist:
		if shift.HospitalID != actor.HospitalID {
			return nil, ErrForbidden
		}
	default:
		if shift.StaffID != actor.UserID {
			return nil, ErrForbidden
		}
	}
	return shift, nil
}

func (s *ShiftService) List(ctx context.Context, actor models.Actor) ([]models.Shift, error) {
	return s.shifts.ListForActor(ctx, actor)
}

func (s *ShiftService) Update(ctx context.Context, actor models.Actor, shift *models.Shift) error {
	if actor.Role != models.RoleAdmin && actor.Role != models.RoleReceptionist {
		return ErrForbidden
	}
	if _, err := s.Get(ctx, actor, shift.ID); err != nil {
		return err
	}
	if err := utils.ValidateShiftData(*shift); err != nil {
		return err
	}
	return s.shifts.Update(ctx, shift)
}

func (s *ShiftService) Delete(ctx context.Context, actor models.Actor, id int64) error {
	if actor.Role != models.RoleAdmin && actor.Role != models.RoleReceptionist {
		return ErrForbidden
	}
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	return s.shifts.Delete(ctx, id)
}
