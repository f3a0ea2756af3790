package services

import (
	"HRAS/models"
	"HRAS/repositories"
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
)

type ResourceService struct {
	resources *repositories.ResourceRepository
	hospitals *repositories.HospitalRepository
}

func NewResourceService(resources *repositories.ResourceRepository, hospitals *repositories.HospitalRepository) *ResourceService {
	return &ResourceService{resources: resources, hospitals: hospitals}
}

func validateResource(r models.Resource) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Type, validation.Required, validation.By(func(value interface{}) error {
			t, _ := value.(string)
			if !models.ValidResourceType(t) {
				return errors.New("type must be one of Bed, Staff, Equipment")
			}
			return nil
		})),
		validation.Field(&r.HospitalID, validation.Required),
	)
}

func (s *ResourceService) Create(ctx context.Context, resource *models.Resource) error {
	if err := validateResource(*resource); err != nil {
		return err
	}
	hospital, err := s.hospitals.GetByID(ctx, resource.HospitalID)
	if err != nil {
		return err
	}
	if hospital == nil {
		return errors.New("hospital does not exist")
	}
	return s.resources.Create(ctx, resource)
}

func (s *ResourceService) Get(ctx context.Context, id int64) (*models.Resource, error) {
	resource, err := s.resources.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, ErrNotFound
	}
	return resource, nil
}

func (s *ResourceService) List(ctx context.Context, actor models.Actor) ([]models.Resource, error) {
	return s.resources.ListForActor(ctx, actor)
}

func (s *ResourceService) ListAvailable(ctx context.Context, actor models.Actor) ([]models.Resource, error) {
	return s.resources.ListAvailable(ctx, actor)
}

func (s *ResourceService) Update(ctx context.Context, resource *models.Resource) error {
	if err := validateResource(*resource); err != nil {
		return err
	}
	if _, err := s.Get(ctx, resource.ID); err != nil {
		return err
	}
	return s.resources.Update(ctx, resource)
}

func (s *ResourceService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.resources.Delete(ctx, id)
}
