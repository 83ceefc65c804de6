package ports

import (
	"context"

	"github.com/aciky/community-api/internal/core/domain"
)

// UserRepository is the persistence boundary for accounts. Implementations
// must use parameterized statements exclusively.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByEmailOrUsername(ctx context.Context, email, username string) ([]*domain.User, error)
	FindByEmailOrUsernameExcluding(ctx context.Context, email, username string, excludeID int64) ([]*domain.User, error)
	FindAll(ctx context.Context, filter domain.UserFilter) ([]*domain.User, error)
	Count(ctx context.Context, role string) (int64, error)
	Update(ctx context.Context, id int64, update domain.UserUpdate) error
	Delete(ctx context.Context, id int64) error
	// RoleByID performs the fresh role read the authorization gates rely on.
	RoleByID(ctx context.Context, id int64) (string, error)
}
