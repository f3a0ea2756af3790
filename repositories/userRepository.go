package repositories

import (
	"HRAS/cache"
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
	UserCacheExpiry = 7 * 24 * time.Hour
)

type UserRepository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserWithPassword(ctx context.Context, email string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetPendingUsers(ctx context.Context) ([]models.User, error)
	GetStaff(ctx context.Context) ([]models.User, error)
	SetApproval(ctx context.Context, userID int64, approved, active bool) error
	SetActive(ctx context.Context, userID int64, active bool) error
	AssignHospital(ctx context.Context, userID, hospitalID int64) error
	ChangeRole(ctx context.Context, userID int64, role string) error
	UpdateUserProfile(ctx context.Context, userID int64, firstName, lastName, specialty string) error
	UpdateUserPassword(ctx context.Context, userID int64, hashedPassword string) error
	DeleteUser(ctx context.Context, userID int64) error
	DeleteUserCache(ctx context.Context, identifier string) error
}

type userRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewUserRepository(db *gorm.DB, cache *cache.Cache) UserRepository {
	return &userRepository{db: db, cache: cache}
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	return r.db.Create(&user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	err := r.db.Omit("password").
		Preload("Hospital").
		First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getUserCacheKey(email)
	cachedUser, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedUser != "" {
		var user models.User
		if err := json.Unmarshal([]byte(cachedUser), &user); err == nil {
			return &user, nil
		}
	} else if err != nil && err != redis.Nil {
		logging.Log.Warnw("failed to get user from cache", "error", err)
	}

	var user models.User
	err = r.db.Omit("password").
		Preload("Hospital").
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, cacheKey, userJSON, UserCacheExpiry); err != nil {
		logging.Log.Warnw("failed to set user in cache", "error", err)
	}

	return &user, nil
}

// GetUserWithPassword loads a user including the password hash. Only the
// authentication path needs it; it never goes through the cache.
func (r *userRepository) GetUserWithPassword(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Hospital").
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid email or password")
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.Omit("password").
		Preload("Hospital").
		Order("date_joined DESC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	return users, nil
}

func (r *userRepository) GetPendingUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.Omit("password").
		Where("approved = ?", false).
		Order("date_joined DESC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get pending users: %w", err)
	}
	return users, nil
}

// GetStaff returns the doctor/nurse roster.
func (r *userRepository) GetStaff(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.Omit("password").
		Preload("Hospital").
		Where("role IN ?", []string{models.RoleDoctor, models.RoleNurse}).
		Order("last_name").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	return users, nil
}

func (r *userRepository) SetApproval(ctx context.Context, userID int64, approved, active bool) error {
	return r.updateAndInvalidate(ctx, userID, map[string]interface{}{
		"approved": approved,
		"active":   active,
	})
}

func (r *userRepository) SetActive(ctx context.Context, userID int64, active bool) error {
	return r.updateAndInvalidate(ctx, userID, map[string]interface{}{"active": active})
}

func (r *userRepository) AssignHospital(ctx context.Context, userID, hospitalID int64) error {
	return r.updateAndInvalidate(ctx, userID, map[string]interface{}{"hospital_id": hospitalID})
}

func (r *userRepository) ChangeRole(ctx context.Context, userID int64, role string) error {
	if !models.ValidRole(role) {
		return fmt.Errorf("invalid role: %s", role)
	}
	return r.updateAndInvalidate(ctx, userID, map[string]interface{}{"role": role})
}

func (r *userRepository) UpdateUserProfile(ctx context.Context, userID int64, firstName, lastName, specialty string) error {
	return r.updateAndInvalidate(ctx, userID, map[string]interface{}{
		"first_name": firstName,
		"last_name":  lastName,
		"specialty":  specialty,
	})
}

func (r *userRepository) UpdateUserPassword(ctx context.Context, userID int64, hashedPassword string) error {
	return r.updateAndInvalidate(ctx, userID, map[string]interface{}{"password": hashedPassword})
}

func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	user, err := r.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}
	if err := r.db.Delete(&models.User{}, "id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return r.DeleteUserCache(ctx, user.Email)
}

func (r *userRepository) DeleteUserCache(ctx context.Context, identifier string) error {
	return r.cache.Delete(ctx, r.getUserCacheKey(identifier))
}

func (r *userRepository) updateAndInvalidate(ctx context.Context, userID int64, fields map[string]interface{}) error {
	user, err := r.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}
	if err := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(fields).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return r.DeleteUserCache(ctx, user.Email)
}

func (r *userRepository) getUserCacheKey(identifier string) string {
	return fmt.Sprintf("user_cache:%s", identifier)
}
