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
	HospitalCacheExpiry = 7 * 24 * time.Hour
)

type HospitalRepository struct {
	cache *cache.Cache
}

func NewHospitalRepository(cache *cache.Cache) *HospitalRepository {
	return &HospitalRepository{cache: cache}
}

func (r *HospitalRepository) Create(ctx context.Context, hospital *models.Hospital) error {
	lockKey := fmt.Sprintf("hospital_lock:%s", hospital.Name)
	lockValue := uuid.New().String()

	locked, err := acquireLockWithRetry(ctx, lockKey, lockValue)
	if !locked {
		return fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	defer releaseLock(ctx, lockKey, lockValue)

	// Check if a hospital with the same name already exists
	var existing models.Hospital
	if err := database.DB.Where("name = ?", hospital.Name).First(&existing).Error; err == nil {
		return errors.New("hospital with the same name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for existing hospital: %w", err)
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(hospital).Error; err != nil {
			return fmt.Errorf("failed to create hospital: %w", err)
		}
		return r.cache.DeleteAll(ctx, "hospitals_cache*")
	})
}

func (r *HospitalRepository) GetByID(ctx context.Context, id int64) (*models.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getHospitalCacheKey(id)
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var hospital models.Hospital
		if err := json.Unmarshal([]byte(cached), &hospital); err == nil {
			return &hospital, nil
		}
	} else if err != nil && err != redis.Nil {
		logging.Log.Warnw("failed to get hospital from cache", "error", err)
	}

	var hospital models.Hospital
	err = database.DB.First(&hospital, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hospital: %w", err)
	}

	hospitalJSON, err := json.Marshal(hospital)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal hospital: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, hospitalJSON, HospitalCacheExpiry); err != nil {
		logging.Log.Warnw("failed to set hospital in cache", "error", err)
	}

	return &hospital, nil
}

// GetAll returns hospitals visible to the actor: every hospital for admins,
// the actor's own hospital otherwise.
func (r *HospitalRepository) GetAll(ctx context.Context, actor models.Actor) ([]models.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := fmt.Sprintf("hospitals_cache:%s:%d", actor.Role, actor.HospitalID)
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var hospitals []models.Hospital
		if err := json.Unmarshal([]byte(cached), &hospitals); err == nil {
			return hospitals, nil
		}
	} else if err != nil && err != redis.Nil {
		logging.Log.Warnw("failed to get hospitals from cache", "error", err)
	}

	query := database.DB.Order("created_at DESC")
	if actor.Scoped() {
		query = query.Where("id = ?", actor.HospitalID)
	}

	var hospitals []models.Hospital
	if err := query.Find(&hospitals).Error; err != nil {
		return nil, fmt.Errorf("failed to get all hospitals: %w", err)
	}

	hospitalsJSON, err := json.Marshal(hospitals)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal hospitals: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, hospitalsJSON, HospitalCacheExpiry); err != nil {
		logging.Log.Warnw("failed to set hospitals in cache", "error", err)
	}

	return hospitals, nil
}

func (r *HospitalRepository) Update(ctx context.Context, hospital *models.Hospital) error {
	lockKey := fmt.Sprintf("hospital_lock:%d", hospital.ID)
	lockValue := uuid.New().String()

	locked, err := acquireLockWithRetry(ctx, lockKey, lockValue)
	if !locked {
		return fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	defer releaseLock(ctx, lockKey, lockValue)

	if err := database.DB.Save(hospital).Error; err != nil {
		return fmt.Errorf("failed to update hospital: %w", err)
	}
	if err := r.cache.Delete(ctx, r.getHospitalCacheKey(hospital.ID)); err != nil {
		return fmt.Errorf("failed to delete hospital cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "hospitals_cache*")
}

func (r *HospitalRepository) Delete(ctx context.Context, id int64) error {
	if err := database.DB.Delete(&models.Hospital{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete hospital: %w", err)
	}
	if err := r.cache.Delete(ctx, r.getHospitalCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete hospital cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "hospitals_cache*")
}

func (r *HospitalRepository) getHospitalCacheKey(id int64) string {
	return fmt.Sprintf("hospital_cache:%d", id)
}

// acquireLockWithRetry wraps the Redis SetNX lock with the retry policy used
// by every repository create/update path.
func acquireLockWithRetry(ctx context.Context, lockKey, lockValue string) (bool, error) {
	maxRetries := 3
	retryDelay := 2 * time.Second
	var locked bool
	var err error
	for i := 0; i < maxRetries; i++ {
		locked, err = database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
		if err == nil && locked {
			return true, nil
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	return false, err
}

func releaseLock(ctx context.Context, lockKey, lockValue string) {
	if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
		logging.Log.Warnw("failed to release lock", "key", lockKey, "error", err)
	}
}
