package ports

import (
	"context"

	"github.com/aciky/community-api/internal/core/domain"
)

// TestimonialRepository persists visitor reviews.
type TestimonialRepository interface {
	Create(ctx context.Context, t *domain.Testimonial) (int64, error)
	FindApproved(ctx context.Context) ([]*domain.Testimonial, error)
	FindAll(ctx context.Context) ([]*domain.Testimonial, error)
	SetApproval(ctx context.Context, id int64, approved bool) error
	Delete(ctx context.Context, id int64) error
}
