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
	"gorm.io/gorm"
)

const (
	ResourceCacheExpiry = 24 * time.Hour
)

type ResourceRepository struct {
	cache *cache.Cache
}

func NewResourceRepository(cache *cache.Cache) *ResourceRepository {
	return &ResourceRepository{cache: cache}
}

func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(resource).Error; err != nil {
			return fmt.Errorf("failed to create resource: %w", err)
		}
		return r.cache.DeleteAll(ctx, "resources_cache*")
	})
}

func (r *ResourceRepository) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	var resource models.Resource
	err := database.DB.First(&resource, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}
	return &resource, nil
}

// ListForActor returns resources scoped to the actor's hospital; admins see
// every hospital's resources.
func (r *ResourceRepository) ListForActor(ctx context.Context, actor models.Actor) ([]models.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := fmt.Sprintf("resources_cache:%s:%d", actor.Role, actor.HospitalID)
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var resources []models.Resource
		if err := json.Unmarshal([]byte(cached), &resources); err == nil {
			return resources, nil
		}
	} else if err != nil && err != redis.Nil {
		logging.Log.Warnw("failed to get resources from cache", "error", err)
	}

	query := database.DB.Order("type, name")
	if actor.Scoped() {
		query = query.Where("hospital_id = ?", actor.HospitalID)
	}

	var resources []models.Resource
	if err := query.Find(&resources).Error; err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}

	resourcesJSON, err := json.Marshal(resources)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resources: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, resourcesJSON, ResourceCacheExpiry); err != nil {
		logging.Log.Warnw("failed to set resources in cache", "error", err)
	}

	return resources, nil
}

// ListAvailable returns the available resources in the actor's scope.
func (r *ResourceRepository) ListAvailable(ctx context.Context, actor models.Actor) ([]models.Resource, error) {
	query := database.DB.Where("availability = ?", true).Order("type, name")
	if actor.Scoped() {
		query = query.Where("hospital_id = ?", actor.HospitalID)
	}

	var resources []models.Resource
	if err := query.Find(&resources).Error; err != nil {
		return nil, fmt.Errorf("failed to list available resources: %w", err)
	}
	return resources, nil
}

func (r *ResourceRepository) Update(ctx context.Context, resource *models.Resource) error {
	if err := database.DB.Save(resource).Error; err != nil {
		return fmt.Errorf("failed to update resource: %w", err)
	}
	return r.cache.DeleteAll(ctx, "resources_cache*")
}

func (r *ResourceRepository) Delete(ctx context.Context, id int64) error {
	if err := database.DB.Delete(&models.Resource{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}
	return r.cache.DeleteAll(ctx, "resources_cache*")
}
