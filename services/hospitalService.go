package services

import (
	"HRAS/models"
	"HRAS/repositories"
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type HospitalService struct {
	hospitals *repositories.HospitalRepository
}

func NewHospitalService(hospitals *repositories.HospitalRepository) *HospitalService {
	return &HospitalService{hospitals: hospitals}
}

func validateHospital(h models.Hospital) error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&h.Address, validation.Length(0, 300)),
		validation.Field(&h.Beds, validation.Min(0)),
		validation.Field(&h.OTs, validation.Min(0)),
	)
}

func (s *HospitalService) Create(ctx context.Context, hospital *models.Hospital) error {
	if err := validateHospital(*hospital); err != nil {
		return err
	}
	return s.hospitals.Create(ctx, hospital)
}

func (s *HospitalService) Get(ctx context.Context, id int64) (*models.Hospital, error) {
	hospital, err := s.hospitals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, ErrNotFound
	}
	return hospital, nil
}

func (s *HospitalService) List(ctx context.Context, actor models.Actor) ([]models.Hospital, error) {
	return s.hospitals.GetAll(ctx, actor)
}

func (s *HospitalService) Update(ctx context.Context, hospital *models.Hospital) error {
	if err := validateHospital(*hospital); err != nil {
		return err
	}
	if _, err := s.Get(ctx, hospital.ID); err != nil {
		return err
	}
	return s.hospitals.Update(ctx, hospital)
}

func (s *HospitalService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.hospitals.Delete(ctx, id)
}
