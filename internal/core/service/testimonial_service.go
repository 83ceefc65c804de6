package service

import (
	"context"
	"fmt"

	"github.com/aciky/community-api/internal/core/domain"
	"github.com/aciky/community-api/internal/core/ports"
	"github.com/aciky/community-api/pkg/sanitize"
)

// TestimonialService handles visitor review submission and moderation. All
// free text is reduced to plain text on the way in; testimonials are rendered
// on the public site, so nothing tag-shaped may survive.
type TestimonialService struct {
	repo ports.TestimonialRepository
}

func NewTestimonialService(repo ports.TestimonialRepository) *TestimonialService {
	return &TestimonialService{repo: repo}
}

// Submit stores an unapproved testimonial from a public visitor.
func (s *TestimonialService) Submit(ctx context.Context, params ports.SubmitTestimonialParams) (int64, error) {
	if params.AuthorName == "" || params.Content == "" || params.Rating == 0 {
		return 0, &domain.ValidationError{Message: "Name, content and rating are required"}
	}
	if params.Rating < 1 || params.Rating > 5 {
		return 0, &domain.ValidationError{Message: "Rating must be between 1 and 5"}
	}

	t := &domain.Testimonial{
		AuthorName: sanitize.Text(params.AuthorName),
		Location:   sanitize.Text(params.Location),
		Content:    sanitize.Text(params.Content),
		Rating:     params.Rating,
		ActivityID: params.ActivityID,
	}

	id, err := s.repo.Create(ctx, t)
	if err != nil {
		return 0, fmt.Errorf("create testimonial: %w", err)
	}
	return id, nil
}

// Approved lists the testimonials shown on the public site.
func (s *TestimonialService) Approved(ctx context.Context) ([]*domain.Testimonial, error) {
	return s.repo.FindApproved(ctx)
}

// All lists every testimonial for the moderation view.
func (s *TestimonialService) All(ctx context.Context) ([]*domain.Testimonial, error) {
	return s.repo.FindAll(ctx)
}

// SetApproval publishes or hides a testimonial.
func (s *TestimonialService) SetApproval(ctx context.Context, id int64, approved bool) error {
	return s.repo.SetApproval(ctx, id, approved)
}

// Delete removes a testimonial permanently.
func (s *TestimonialService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
