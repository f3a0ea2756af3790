package services

import (
	"HRAS/models"
	"HRAS/utils"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo satisfies repositories.UserRepository without a database.
type fakeUserRepo struct {
	exists  bool
	created []*models.User
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return f.exists, nil
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) GetUserWithPassword(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) GetAllUsers(ctx context.Context) ([]models.User, error)     { return nil, nil }
func (f *fakeUserRepo) GetPendingUsers(ctx context.Context) ([]models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetStaff(ctx context.Context) ([]models.User, error)        { return nil, nil }

func (f *fakeUserRepo) SetApproval(ctx context.Context, userID int64, approved, active bool) error {
	return nil
}

func (f *fakeUserRepo) SetActive(ctx context.Context, userID int64, active bool) error { return nil }

func (f *fakeUserRepo) AssignHospital(ctx context.Context, userID, hospitalID int64) error {
	return nil
}

func (f *fakeUserRepo) ChangeRole(ctx context.Context, userID int64, role string) error { return nil }

func (f *fakeUserRepo) UpdateUserProfile(ctx context.Context, userID int64, firstName, lastName, specialty string) error {
	return nil
}

func (f *fakeUserRepo) UpdateUserPassword(ctx context.Context, userID int64, hashedPassword string) error {
	return nil
}

func (f *fakeUserRepo) DeleteUser(ctx context.Context, userID int64) error           { return nil }
func (f *fakeUserRepo) DeleteUserCache(ctx context.Context, identifier string) error { return nil }

func registrationPayload(role string) *models.User {
	return &models.User{
		Email:     "staff@example.com",
		FirstName: "Jordan",
		LastName:  "Reyes",
		Role:      role,
		Password:  "Str0ng!Pass",
	}
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUsersService(repo)

	err := svc.Register(context.Background(), registrationPayload(models.RoleAdmin))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "admin accounts")
	assert.Empty(t, repo.created, "no account row may be written for an admin registration")
}

func TestRegisterCreatesPendingAccount(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUsersService(repo)

	err := svc.Register(context.Background(), registrationPayload(models.RoleNurse))
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	created := repo.created[0]
	assert.False(t, created.Approved, "new accounts await admin approval")
	assert.False(t, created.Active)
	assert.NotEqual(t, "Str0ng!Pass", created.Password)
	assert.True(t, utils.CheckPassword(created.Password, "Str0ng!Pass"))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{exists: true}
	svc := NewUsersService(repo)

	err := svc.Register(context.Background(), registrationPayload(models.RoleDoctor))
	require.Error(t, err)
	assert.Empty(t, repo.created)
}
