package ports

import (
	"context"

	"github.com/aciky/community-api/internal/core/domain"
)

// RegisterParams is the input to account creation.
type RegisterParams struct {
	Username string
	Email    string
	Password string
}

// UpdateProfileParams updates the caller's own account. CurrentPassword is
// only required when NewPassword is set.
type UpdateProfileParams struct {
	Username        string
	Email           string
	CurrentPassword string
	NewPassword     string
}

// AuthService owns registration, login and self-service profile updates.
type AuthService interface {
	Register(ctx context.Context, params RegisterParams) (int64, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int64, params UpdateProfileParams) (*domain.PublicUser, error)
}
