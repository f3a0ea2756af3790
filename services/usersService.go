package services

import (
	"HRAS/logging"
	"HRAS/models"
	"HRAS/repositories"
	"HRAS/utils"
	"context"
	"strconv"

	"github.com/pkg/errors"
)

type UsersService struct {
	users repositories.UserRepository
}

func NewUsersService(users repositories.UserRepository) *UsersService {
	return &UsersService{users: users}
}

// Register creates a pending account. The user cannot log in until an admin
// approves them. Admin accounts are provisioned by an existing admin and can
// never be self-registered.
func (s *UsersService) Register(ctx context.Context, user *models.User) error {
	if user.Role == models.RoleAdmin {
		return errors.New("admin accounts cannot be created through registration")
	}
	if err := utils.ValidateUserData(*user); err != nil {
		return err
	}

	exists, err := s.users.EmailExists(ctx, user.Email)
	if err != nil {
		return err
	}
	if exists {
		return errors.New("an account with this email already exists")
	}

	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}
	user.Password = hashed
	user.Approved = false
	user.Active = false

	if err := s.users.CreateUser(ctx, user); err != nil {
		return errors.Wrap(err, "failed to create user")
	}
	logging.Log.Infow("account registered pending approval", "email", user.Email, "role", user.Role)
	return nil
}

// Authenticate verifies credentials and issues a token pair. Pending and
// deactivated accounts are rejected with a distinct message so the client can
// explain the state.
func (s *UsersService) Authenticate(ctx context.Context, email, password string) (user *models.User, accessToken, refreshToken string, err error) {
	user, err = s.users.GetUserWithPassword(ctx, email)
	if err != nil {
		return nil, "", "", err
	}
	if !utils.CheckPassword(user.Password, password) {
		return nil, "", "", errors.New("invalid email or password")
	}
	if !user.Approved {
		return nil, "", "", errors.New("account is pending admin approval")
	}
	if !user.Active {
		return nil, "", "", errors.New("account has been deactivated")
	}

	var hospitalID int64
	if user.HospitalID != nil {
		hospitalID = *user.HospitalID
	}
	accessToken, refreshToken, err = utils.GenerateTokens(strconv.FormatInt(user.ID, 10), user.Role, hospitalID)
	if err != nil {
		return nil, "", "", err
	}
	user.Password = ""
	return user, accessToken, refreshToken, nil
}

// Refresh validates a refresh token and issues a fresh access token.
func (s *UsersService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := utils.ValidateToken(refreshToken)
	if err != nil {
		return "", err
	}
	return utils.GenerateAccessToken(claims.UserID, claims.Role, claims.HospitalID)
}

func (s *UsersService) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *UsersService) List(ctx context.Context) ([]models.User, error) {
	return s.users.GetAllUsers(ctx)
}

func (s *UsersService) ListPending(ctx context.Context) ([]models.User, error) {
	return s.users.GetPendingUsers(ctx)
}

// ListStaff returns the doctor and nurse roster for the assignment override UI.
func (s *UsersService) ListStaff(ctx context.Context) ([]models.User, error) {
	return s.users.GetStaff(ctx)
}

// Approve activates a pending account and notifies the user by email. Email
// failures are logged and swallowed; the approval itself stands.
func (s *UsersService) Approve(ctx context.Context, userID int64) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.users.SetApproval(ctx, userID, true, true); err != nil {
		return err
	}
	if err := utils.SendApprovalEmail(user.Email, user.FirstName); err != nil {
		logging.Log.Warnw("failed to send approval email", "email", user.Email, "error", err)
	}
	logging.Log.Infow("account approved", "user", userID)
	return nil
}

// Reject removes a pending account.
func (s *UsersService) Reject(ctx context.Context, userID int64) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Approved {
		return errors.New("account has already been approved")
	}
	return s.users.DeleteUser(ctx, userID)
}

// SetActive activates or deactivates an approved account. Admin accounts
// cannot be deactivated.
func (s *UsersService) SetActive(ctx context.Context, userID int64, active bool) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !active && user.Role == models.RoleAdmin {
		return errors.New("admin accounts cannot be deactivated")
	}
	return s.users.SetActive(ctx, userID, active)
}

func (s *UsersService) AssignHospital(ctx context.Context, userID, hospitalID int64) error {
	if _, err := s.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.users.AssignHospital(ctx, userID, hospitalID)
}

func (s *UsersService) ChangeRole(ctx context.Context, userID int64, role string) error {
	if !models.ValidRole(role) {
		return utils.ErrInvalidRole
	}
	if _, err := s.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.users.ChangeRole(ctx, userID, role)
}

func (s *UsersService) UpdateProfile(ctx context.Context, userID int64, firstName, lastName, specialty string) error {
	return s.users.UpdateUserProfile(ctx, userID, firstName, lastName, specialty)
}

// SendPasswordResetCode emails a short-lived reset code to the account.
func (s *UsersService) SendPasswordResetCode(ctx context.Context, email string) error {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		// Do not reveal whether the account exists.
		return nil
	}
	code := utils.GenerateResetCode()
	if err := utils.SetResetCode(ctx, email, code); err != nil {
		return err
	}
	return utils.SendResetCodeEmail(email, code)
}

// ResetPassword verifies the reset code and stores the new password hash.
func (s *UsersService) ResetPassword(ctx context.Context, email, resetCode, newPassword string) error {
	if err := utils.ValidatePasswordReset(resetCode, newPassword); err != nil {
		return err
	}
	stored, err := utils.GetResetCode(ctx, email)
	if err != nil {
		return err
	}
	if stored == nil || *stored != resetCode {
		return utils.ErrInvalidResetCode
	}
	if err := utils.DeleteResetCode(ctx, email); err != nil {
		logging.Log.Warnw("failed to delete reset code", "email", email, "error", err)
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}
	return s.users.UpdateUserPassword(ctx, user.ID, hashed)
}

func (s *UsersService) InvalidateCache(ctx context.Context, email string) error {
	return s.users.DeleteUserCache(ctx, email)
}
