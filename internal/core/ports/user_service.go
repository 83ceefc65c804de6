package ports

import (
	"context"

	"github.com/aciky/community-api/internal/core/domain"
)

// CreateUserParams is the admin-side account creation input, which unlike
// registration may set a role explicitly.
type CreateUserParams struct {
	Username string
	Email    string
	Password string
	Role     string
}

// AdminUserUpdate is the admin-side partial update. Empty strings mean
// "leave unchanged".
type AdminUserUpdate struct {
	Username string
	Email    string
	Password string
	Role     string
}

// UserService covers admin user management plus the public instructor list.
type UserService interface {
	Instructors(ctx context.Context) ([]*domain.PublicUser, error)
	List(ctx context.Context, filter domain.UserFilter) ([]*domain.PublicUser, int64, error)
	Get(ctx context.Context, id int64) (*domain.PublicUser, error)
	Create(ctx context.Context, params CreateUserParams) (*domain.PublicUser, error)
	// Update applies an admin edit. actorID is the caller; changing your own
	// admin role away from admin is rejected.
	Update(ctx context.Context, id, actorID int64, update AdminUserUpdate) (*domain.PublicUser, error)
	// Delete removes an account. Deleting your own account is rejected.
	Delete(ctx context.Context, id, actorID int64) error
}
