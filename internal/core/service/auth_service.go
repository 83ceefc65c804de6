package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aciky/community-api/internal/core/domain"
	"github.com/aciky/community-api/internal/core/ports"
	"github.com/aciky/community-api/pkg/validation"
)

// dummyDigest is compared against when the login email is unknown, so the
// unknown-email and wrong-password paths cost the same and neither the
// response nor its latency reveals which one happened.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService implements registration, login and self-service profile
// updates over the user repository.
type AuthService struct {
	users ports.UserRepository
}

func NewAuthService(users ports.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register validates username, email and password in that order, rejects
// duplicates, and persists the account with the default user role. Returns
// the new user id.
func (s *AuthService) Register(ctx context.Context, params ports.RegisterParams) (int64, error) {
	usernameRes := validation.ValidateUsername(params.Username)
	if !usernameRes.Valid {
		return 0, &domain.ValidationError{Message: usernameRes.Message}
	}
	emailRes := validation.ValidateEmail(params.Email)
	if !emailRes.Valid {
		return 0, &domain.ValidationError{Message: emailRes.Message}
	}
	passwordRes := validation.ValidatePassword(params.Password)
	if !passwordRes.Valid {
		return 0, &domain.ValidationError{Message: passwordRes.Message}
	}

	existing, err := s.users.FindByEmailOrUsername(ctx, emailRes.Value, usernameRes.Value)
	if err != nil {
		return 0, fmt.Errorf("check existing user: %w", err)
	}
	if len(existing) > 0 {
		return 0, &domain.ConflictError{Message: "User already exists"}
	}

	digest, err := HashPassword(params.Password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.users.Create(ctx, &domain.User{
		Username:     usernameRes.Value,
		Email:        emailRes.Value,
		PasswordHash: digest,
		Role:         domain.RoleUser,
	})
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// Login checks the password against the stored digest. Unknown email and
// wrong password both come back as ErrInvalidCredentials; password strength
// is not re-validated here, only at creation and change.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, &domain.ValidationError{Message: "Email and password are required"}
	}
	emailRes := validation.ValidateEmail(email)
	if !emailRes.Valid {
		return nil, &domain.ValidationError{Message: emailRes.Message}
	}

	user, err := s.users.FindByEmail(ctx, emailRes.Value)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			VerifyPassword(password, dummyDigest)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// UpdateProfile changes identity fields and optionally the password. A new
// password requires the current one and is strength-checked; identity fields
// are re-checked for uniqueness excluding the caller's own row.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, params ports.UpdateProfileParams) (*domain.PublicUser, error) {
	if params.Username == "" || params.Email == "" {
		return nil, &domain.ValidationError{Message: "Username and email are required"}
	}

	usernameRes := validation.ValidateUsername(params.Username)
	if !usernameRes.Valid {
		return nil, &domain.ValidationError{Message: usernameRes.Message}
	}
	emailRes := validation.ValidateEmail(params.Email)
	if !emailRes.Valid {
		return nil, &domain.ValidationError{Message: emailRes.Message}
	}

	existing, err := s.users.FindByEmailOrUsernameExcluding(ctx, emailRes.Value, usernameRes.Value, userID)
	if err != nil {
		return nil, fmt.Errorf("check profile conflict: %w", err)
	}
	if len(existing) > 0 {
		return nil, &domain.ConflictError{Message: "Username or email already in use"}
	}

	update := domain.UserUpdate{
		Username: &usernameRes.Value,
		Email:    &emailRes.Value,
	}

	if params.NewPassword != "" {
		if params.CurrentPassword == "" {
			return nil, &domain.ValidationError{Message: "Current password is required to set a new password"}
		}
		passwordRes := validation.ValidatePassword(params.NewPassword)
		if !passwordRes.Valid {
			return nil, &domain.ValidationError{Message: passwordRes.Message}
		}

		user, err := s.users.FindByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if !VerifyPassword(params.CurrentPassword, user.PasswordHash) {
			return nil, domain.ErrWrongPassword
		}

		digest, err := HashPassword(params.NewPassword)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		update.PasswordHash = &digest
	}

	if err := s.users.Update(ctx, userID, update); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	updated, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return updated.Public(), nil
}
