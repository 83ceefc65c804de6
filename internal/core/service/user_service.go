package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aciky/community-api/internal/core/domain"
	"github.com/aciky/community-api/internal/core/ports"
	"github.com/aciky/community-api/pkg/validation"
)

const defaultListLimit = 50

// UserService implements admin user management and the public instructor
// listing.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

// Instructors returns every instructor account, for assignment to classes.
func (s *UserService) Instructors(ctx context.Context) ([]*domain.PublicUser, error) {
	users, err := s.users.FindAll(ctx, domain.UserFilter{Role: domain.RoleInstructor, Limit: defaultListLimit})
	if err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	return toPublic(users), nil
}

// List returns a page of users plus the total count for the filter.
func (s *UserService) List(ctx context.Context, filter domain.UserFilter) ([]*domain.PublicUser, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	users, err := s.users.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	total, err := s.users.Count(ctx, filter.Role)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}
	return toPublic(users), total, nil
}

// Get returns a single user without the password digest.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.PublicUser, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// Create adds an account with an explicit role. Admin-only; regular signups
// go through AuthService.Register and always get the user role.
func (s *UserService) Create(ctx context.Context, params ports.CreateUserParams) (*domain.PublicUser, error) {
	usernameRes := validation.ValidateUsername(params.Username)
	if !usernameRes.Valid {
		return nil, &domain.ValidationError{Message: usernameRes.Message}
	}
	emailRes := validation.ValidateEmail(params.Email)
	if !emailRes.Valid {
		return nil, &domain.ValidationError{Message: emailRes.Message}
	}
	passwordRes := validation.ValidatePassword(params.Password)
	if !passwordRes.Valid {
		return nil, &domain.ValidationError{Message: passwordRes.Message}
	}

	role := params.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.IsAssignableRole(role) {
		return nil, &domain.ValidationError{Message: "Invalid role. Must be: user, instructor, or admin"}
	}

	existing, err := s.users.FindByEmailOrUsername(ctx, emailRes.Value, usernameRes.Value)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if len(existing) > 0 {
		return nil, &domain.ConflictError{Message: "Email or username already registered"}
	}

	digest, err := HashPassword(params.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.users.Create(ctx, &domain.User{
		Username:     usernameRes.Value,
		Email:        emailRes.Value,
		PasswordHash: digest,
		Role:         role,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &domain.PublicUser{ID: id, Username: usernameRes.Value, Email: emailRes.Value, Role: role}, nil
}

// Update applies an admin edit. Empty fields are left unchanged. An admin
// cannot demote themselves; that guard fires before any field validation so
// the caller learns about it even when the rest of the payload is bad.
func (s *UserService) Update(ctx context.Context, id, actorID int64, update ports.AdminUserUpdate) (*domain.PublicUser, error) {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return nil, err
	}

	if id == actorID && update.Role != "" && update.Role != domain.RoleAdmin {
		return nil, domain.ErrSelfRoleChange
	}

	var fields domain.UserUpdate

	if update.Username != "" {
		usernameRes := validation.ValidateUsername(update.Username)
		if !usernameRes.Valid {
			return nil, &domain.ValidationError{Message: usernameRes.Message}
		}
		fields.Username = &usernameRes.Value
	}

	if update.Email != "" {
		emailRes := validation.ValidateEmail(update.Email)
		if !emailRes.Valid {
			return nil, &domain.ValidationError{Message: emailRes.Message}
		}
		conflicts, err := s.users.FindByEmailOrUsernameExcluding(ctx, emailRes.Value, "", id)
		if err != nil {
			return nil, fmt.Errorf("check email conflict: %w", err)
		}
		if len(conflicts) > 0 {
			return nil, &domain.ConflictError{Message: "Email already in use by another user"}
		}
		fields.Email = &emailRes.Value
	}

	if strings.TrimSpace(update.Password) != "" {
		passwordRes := validation.ValidatePassword(update.Password)
		if !passwordRes.Valid {
			return nil, &domain.ValidationError{Message: passwordRes.Message}
		}
		digest, err := HashPassword(update.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		fields.PasswordHash = &digest
	}

	if update.Role != "" {
		if !domain.IsAssignableRole(update.Role) {
			return nil, &domain.ValidationError{Message: "Invalid role. Must be: user, instructor, or admin"}
		}
		fields.Role = &update.Role
	}

	if !fields.IsEmpty() {
		if err := s.users.Update(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
	}

	return s.Get(ctx, id)
}

// Delete removes an account. Admins cannot delete themselves.
func (s *UserService) Delete(ctx context.Context, id, actorID int64) error {
	if id == actorID {
		return domain.ErrSelfDelete
	}
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func toPublic(users []*domain.User) []*domain.PublicUser {
	out := make([]*domain.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out
}
