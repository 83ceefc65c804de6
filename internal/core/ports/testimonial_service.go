package ports

import (
	"context"

	"github.com/aciky/community-api/internal/core/domain"
)

// SubmitTestimonialParams is a public review submission. Free text is
// sanitized by the service before persistence.
type SubmitTestimonialParams struct {
	AuthorName string
	Location   string
	Content    string
	Rating     int
	ActivityID *int64
}

// TestimonialService moderates visitor reviews.
type TestimonialService interface {
	Submit(ctx context.Context, params SubmitTestimonialParams) (int64, error)
	Approved(ctx context.Context) ([]*domain.Testimonial, error)
	All(ctx context.Context) ([]*domain.Testimonial, error)
	SetApproval(ctx context.Context, id int64, approved bool) error
	Delete(ctx context.Context, id int64) error
}
